package commands

import (
	"context"
	"log/slog"
	"strings"

	application "agora/contexts/community-feed/voting-service/application"
	"agora/contexts/community-feed/voting-service/domain/entities"
	domainerrors "agora/contexts/community-feed/voting-service/domain/errors"
	"agora/contexts/community-feed/voting-service/ports"
)

type Effect string

const (
	// EffectApplied means one entry was appended to the log.
	EffectApplied Effect = "applied"
	// EffectNoChange means the requested direction already was the voter's
	// effective vote, so nothing was written.
	EffectNoChange Effect = "no_change"
)

type CastVoteCommand struct {
	PostID   string
	Voter    string
	IsUpvote bool
}

type CastVoteResult struct {
	Effect  Effect
	Current entities.VoteState
}

// CastVoteUseCase reconciles a requested vote against the voter's effective
// vote and writes only when the outcome changes. The effective vote is folded
// fresh from the full log on every call; two near-simultaneous casts by the
// same voter can both pass the fold and both append, in which case arrival
// order at the store decides, post hoc, which one is effective.
type CastVoteUseCase struct {
	Votes  ports.VoteLog
	Clock  ports.Clock
	Logger *slog.Logger
}

func (uc CastVoteUseCase) Execute(ctx context.Context, cmd CastVoteCommand) (CastVoteResult, error) {
	logger := application.ResolveLogger(uc.Logger)

	voter := strings.TrimSpace(cmd.Voter)
	postID := strings.TrimSpace(cmd.PostID)
	if voter == "" {
		// Guidance for the caller to prompt sign-in, not a fault.
		return CastVoteResult{}, domainerrors.ErrSignInRequired
	}
	if postID == "" {
		return CastVoteResult{}, domainerrors.ErrPostRequired
	}

	log, err := uc.Votes.ListVotesByPost(ctx, postID)
	if err != nil {
		return CastVoteResult{}, err
	}
	current := entities.CurrentVote(log, voter)
	if current.Voted && current.IsUpvote == cmd.IsUpvote {
		// Re-clicking the same direction retracts nothing and writes nothing.
		return CastVoteResult{Effect: EffectNoChange, Current: current}, nil
	}

	vote := entities.Vote{
		PostID:   postID,
		Voter:    voter,
		IsUpvote: cmd.IsUpvote,
		CastAt:   uc.Clock.Now().UTC(),
	}
	if err := uc.Votes.AppendVote(ctx, vote); err != nil {
		logger.Error("vote append failed",
			"event", "voting_vote_append_failed",
			"module", "community-feed/voting-service",
			"layer", "application",
			"post_id", postID,
			"voter", voter,
			"error", err.Error(),
		)
		return CastVoteResult{}, err
	}

	logger.Info("vote applied",
		"event", "voting_vote_applied",
		"module", "community-feed/voting-service",
		"layer", "application",
		"post_id", postID,
		"voter", voter,
		"is_upvote", cmd.IsUpvote,
		"was_voted", current.Voted,
	)
	return CastVoteResult{
		Effect:  EffectApplied,
		Current: entities.VoteState{Voted: true, IsUpvote: cmd.IsUpvote},
	}, nil
}
