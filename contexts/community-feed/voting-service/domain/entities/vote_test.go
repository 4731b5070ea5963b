package entities

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCurrentVoteEmptyLog(t *testing.T) {
	state := CurrentVote(nil, "alice")
	if state.Voted {
		t.Fatalf("expected no vote on empty log, got %+v", state)
	}
}

func TestCurrentVoteLastEntryWins(t *testing.T) {
	log := []Vote{
		{PostID: "post-1", Voter: "alice", IsUpvote: true},
		{PostID: "post-1", Voter: "bob", IsUpvote: false},
		{PostID: "post-1", Voter: "alice", IsUpvote: false},
	}

	state := CurrentVote(log, "alice")
	if !state.Voted || state.IsUpvote {
		t.Fatalf("expected alice's effective vote to be a downvote, got %+v", state)
	}

	state = CurrentVote(log, "bob")
	if !state.Voted || state.IsUpvote {
		t.Fatalf("expected bob's effective vote to be a downvote, got %+v", state)
	}

	state = CurrentVote(log, "carol")
	if state.Voted {
		t.Fatalf("expected no vote for carol, got %+v", state)
	}
}

func TestCurrentVoteIsPure(t *testing.T) {
	log := []Vote{
		{PostID: "post-1", Voter: "alice", IsUpvote: true},
		{PostID: "post-1", Voter: "alice", IsUpvote: false},
		{PostID: "post-1", Voter: "alice", IsUpvote: true},
	}
	first := CurrentVote(log, "alice")
	second := CurrentVote(log, "alice")
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("fold result changed between runs (-first +second):\n%s", diff)
	}
	if !first.Voted || !first.IsUpvote {
		t.Fatalf("expected effective upvote, got %+v", first)
	}
}

func TestTallyVotesFoldsPerVoter(t *testing.T) {
	log := []Vote{
		{PostID: "post-1", Voter: "alice", IsUpvote: true},
		{PostID: "post-1", Voter: "bob", IsUpvote: true},
		{PostID: "post-1", Voter: "alice", IsUpvote: false},
		{PostID: "post-1", Voter: "carol", IsUpvote: false},
	}

	got := TallyVotes(log)
	want := Tally{Upvotes: 1, Downvotes: 2, Score: -1}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected tally (-want +got):\n%s", diff)
	}
}

func TestTallyVotesEmptyLog(t *testing.T) {
	got := TallyVotes(nil)
	if got.Upvotes != 0 || got.Downvotes != 0 || got.Score != 0 {
		t.Fatalf("expected zero tally, got %+v", got)
	}
}
