package queries

import (
	"context"
	"testing"

	"agora/contexts/community-feed/voting-service/adapters/memory"
	"agora/contexts/community-feed/voting-service/domain/entities"
)

func TestStatusFoldsTallyAndCurrentFromOneLog(t *testing.T) {
	store := memory.NewStore([]entities.Vote{
		{PostID: "post-1", Voter: "alice", IsUpvote: true},
		{PostID: "post-1", Voter: "bob", IsUpvote: false},
		{PostID: "post-1", Voter: "alice", IsUpvote: false},
		{PostID: "post-2", Voter: "alice", IsUpvote: true},
	})
	uc := VoteStatusUseCase{Votes: store}

	status, err := uc.Status(context.Background(), "post-1", "alice")
	if err != nil {
		t.Fatalf("status failed: %v", err)
	}
	if status.Tally.Upvotes != 0 || status.Tally.Downvotes != 2 || status.Tally.Score != -2 {
		t.Fatalf("unexpected tally: %+v", status.Tally)
	}
	if !status.Current.Voted || status.Current.IsUpvote {
		t.Fatalf("expected alice's effective downvote, got %+v", status.Current)
	}
}

func TestStatusAnonymousReaderHasNoCurrentVote(t *testing.T) {
	store := memory.NewStore([]entities.Vote{
		{PostID: "post-1", Voter: "alice", IsUpvote: true},
	})
	uc := VoteStatusUseCase{Votes: store}

	status, err := uc.Status(context.Background(), "post-1", "")
	if err != nil {
		t.Fatalf("status failed: %v", err)
	}
	if status.Current.Voted {
		t.Fatalf("expected no current vote for anonymous reader, got %+v", status.Current)
	}
	if status.Tally.Upvotes != 1 {
		t.Fatalf("unexpected tally: %+v", status.Tally)
	}
}
