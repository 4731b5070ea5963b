package entities

import "time"

// Vote is one append-only log entry. Nothing ever rewrites or deletes an
// entry; "changing your vote" appends a new one with the opposite direction.
type Vote struct {
	PostID   string
	Voter    string
	IsUpvote bool
	CastAt   time.Time
}

// VoteState is a voter's effective position on a post after folding the log.
type VoteState struct {
	Voted    bool
	IsUpvote bool
}

// Tally counts one effective vote per voter.
type Tally struct {
	Upvotes   int
	Downvotes int
	Score     int
}

// CurrentVote folds the log in append order and keeps the direction of the
// last entry cast by voter. The fold carries no state between calls: the log
// is owned by the store and can grow under concurrent writers, so every
// observation recomputes from the full sequence.
func CurrentVote(log []Vote, voter string) VoteState {
	var state VoteState
	for _, vote := range log {
		if vote.Voter == voter {
			state = VoteState{Voted: true, IsUpvote: vote.IsUpvote}
		}
	}
	return state
}

// TallyVotes folds the log down to one effective vote per voter before
// counting. Every reader of the log must apply the same last-entry-wins rule,
// so the raw entry count never leaks into a displayed score.
func TallyVotes(log []Vote) Tally {
	effective := make(map[string]bool, len(log))
	order := make([]string, 0, len(log))
	for _, vote := range log {
		if _, seen := effective[vote.Voter]; !seen {
			order = append(order, vote.Voter)
		}
		effective[vote.Voter] = vote.IsUpvote
	}

	var tally Tally
	for _, voter := range order {
		if effective[voter] {
			tally.Upvotes++
		} else {
			tally.Downvotes++
		}
	}
	tally.Score = tally.Upvotes - tally.Downvotes
	return tally
}
