package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	"agora/contexts/community-feed/voting-service/adapters/memory"
	"agora/contexts/community-feed/voting-service/domain/entities"
	domainerrors "agora/contexts/community-feed/voting-service/domain/errors"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

func newCastUseCase(store *memory.Store) CastVoteUseCase {
	return CastVoteUseCase{
		Votes: store,
		Clock: fixedClock{now: time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)},
	}
}

func TestCastVoteRequiresIdentity(t *testing.T) {
	store := memory.NewStore(nil)
	uc := newCastUseCase(store)

	_, err := uc.Execute(context.Background(), CastVoteCommand{
		PostID:   "post-1",
		Voter:    "",
		IsUpvote: true,
	})
	if !errors.Is(err, domainerrors.ErrSignInRequired) {
		t.Fatalf("expected ErrSignInRequired, got %v", err)
	}
	if store.EntryCount("post-1") != 0 {
		t.Fatalf("unauthenticated cast must not append, log has %d entries", store.EntryCount("post-1"))
	}
}

func TestCastVoteSameDirectionIsNoOp(t *testing.T) {
	store := memory.NewStore(nil)
	uc := newCastUseCase(store)

	first, err := uc.Execute(context.Background(), CastVoteCommand{
		PostID:   "post-1",
		Voter:    "alice",
		IsUpvote: true,
	})
	if err != nil {
		t.Fatalf("first cast failed: %v", err)
	}
	if first.Effect != EffectApplied {
		t.Fatalf("expected applied effect, got %s", first.Effect)
	}

	second, err := uc.Execute(context.Background(), CastVoteCommand{
		PostID:   "post-1",
		Voter:    "alice",
		IsUpvote: true,
	})
	if err != nil {
		t.Fatalf("repeat cast failed: %v", err)
	}
	if second.Effect != EffectNoChange {
		t.Fatalf("expected no_change effect, got %s", second.Effect)
	}
	if count := store.EntryCount("post-1"); count != 1 {
		t.Fatalf("expected exactly one log entry after repeat cast, got %d", count)
	}
	if !second.Current.Voted || !second.Current.IsUpvote {
		t.Fatalf("expected current vote to stay an upvote, got %+v", second.Current)
	}
}

func TestCastVoteToggleAppendsSecondEntry(t *testing.T) {
	store := memory.NewStore(nil)
	uc := newCastUseCase(store)

	if _, err := uc.Execute(context.Background(), CastVoteCommand{
		PostID:   "post-1",
		Voter:    "alice",
		IsUpvote: true,
	}); err != nil {
		t.Fatalf("upvote failed: %v", err)
	}
	result, err := uc.Execute(context.Background(), CastVoteCommand{
		PostID:   "post-1",
		Voter:    "alice",
		IsUpvote: false,
	})
	if err != nil {
		t.Fatalf("downvote failed: %v", err)
	}
	if result.Effect != EffectApplied {
		t.Fatalf("expected applied effect on toggle, got %s", result.Effect)
	}
	if count := store.EntryCount("post-1"); count != 2 {
		t.Fatalf("expected two log entries after toggle, got %d", count)
	}

	log, err := store.ListVotesByPost(context.Background(), "post-1")
	if err != nil {
		t.Fatalf("list votes failed: %v", err)
	}
	state := entities.CurrentVote(log, "alice")
	if !state.Voted || state.IsUpvote {
		t.Fatalf("expected effective downvote after toggle, got %+v", state)
	}
}

func TestCastVoteScopedToPost(t *testing.T) {
	store := memory.NewStore([]entities.Vote{
		{PostID: "post-2", Voter: "alice", IsUpvote: true},
	})
	uc := newCastUseCase(store)

	result, err := uc.Execute(context.Background(), CastVoteCommand{
		PostID:   "post-1",
		Voter:    "alice",
		IsUpvote: true,
	})
	if err != nil {
		t.Fatalf("cast failed: %v", err)
	}
	if result.Effect != EffectApplied {
		t.Fatalf("vote on another post must not suppress this one, got %s", result.Effect)
	}
}

func TestCastVoteMissingPostID(t *testing.T) {
	uc := newCastUseCase(memory.NewStore(nil))

	_, err := uc.Execute(context.Background(), CastVoteCommand{
		Voter:    "alice",
		IsUpvote: true,
	})
	if !errors.Is(err, domainerrors.ErrPostRequired) {
		t.Fatalf("expected ErrPostRequired, got %v", err)
	}
}
