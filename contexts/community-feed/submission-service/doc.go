// Package submissionservice implements post submission inside the
// community-feed context.
//
// The module owns the get-or-create channel resolution that precedes every
// post creation, plus the feed read paths (global feed, channel feed, single
// post/channel lookups). Business rules stay in application/domain layers;
// the channel and post stores sit behind ports and adapters.
package submissionservice
