package httpadapter

import (
	"context"
	"log/slog"

	"agora/contexts/community-feed/voting-service/application/commands"
	"agora/contexts/community-feed/voting-service/application/queries"
	"agora/contexts/community-feed/voting-service/domain/entities"
	domainerrors "agora/contexts/community-feed/voting-service/domain/errors"
	httptransport "agora/contexts/community-feed/voting-service/transport/http"
)

type Handler struct {
	Votes  commands.CastVoteUseCase
	Status queries.VoteStatusUseCase
	Logger *slog.Logger
}

func (h Handler) CastVoteHandler(
	ctx context.Context,
	voter string,
	postID string,
	req httptransport.CastVoteRequest,
) (httptransport.CastVoteResponse, error) {
	isUpvote, ok := parseDirection(req.Direction)
	if !ok {
		return httptransport.CastVoteResponse{}, domainerrors.ErrInvalidVoteInput
	}
	result, err := h.Votes.Execute(ctx, commands.CastVoteCommand{
		PostID:   postID,
		Voter:    voter,
		IsUpvote: isUpvote,
	})
	if err != nil {
		return httptransport.CastVoteResponse{}, err
	}
	return httptransport.CastVoteResponse{
		PostID:  postID,
		Effect:  string(result.Effect),
		Current: mapVoteState(result.Current),
	}, nil
}

func (h Handler) VoteStatusHandler(ctx context.Context, postID string, voter string) (httptransport.VoteStatusResponse, error) {
	status, err := h.Status.Status(ctx, postID, voter)
	if err != nil {
		return httptransport.VoteStatusResponse{}, err
	}
	return httptransport.VoteStatusResponse{
		PostID:    postID,
		Upvotes:   status.Tally.Upvotes,
		Downvotes: status.Tally.Downvotes,
		Score:     status.Tally.Score,
		Current:   mapVoteState(status.Current),
	}, nil
}

func parseDirection(direction string) (bool, bool) {
	switch direction {
	case httptransport.DirectionUp:
		return true, true
	case httptransport.DirectionDown:
		return false, true
	default:
		return false, false
	}
}

func mapVoteState(state entities.VoteState) httptransport.VoteStateResponse {
	resp := httptransport.VoteStateResponse{Voted: state.Voted}
	if state.Voted {
		resp.Direction = httptransport.DirectionDown
		if state.IsUpvote {
			resp.Direction = httptransport.DirectionUp
		}
	}
	return resp
}
