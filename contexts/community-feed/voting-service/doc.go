// Package votingservice implements vote reconciliation inside the
// community-feed context.
//
// The vote log is append-only: the module derives a voter's effective vote by
// folding the log at read time and appends a new entry only when a cast
// changes that effective vote. Tallies apply the same fold, so redundant log
// entries never inflate a displayed score.
package votingservice
