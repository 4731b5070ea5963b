package queries

import (
	"context"
	"strings"

	"agora/contexts/community-feed/voting-service/domain/entities"
	"agora/contexts/community-feed/voting-service/ports"
)

type VoteStatus struct {
	Tally   entities.Tally
	Current entities.VoteState
}

// VoteStatusUseCase is the single read path for a post's tally and the
// caller's own effective vote. Both come from one fetch of the log so the
// two never disagree within a response.
type VoteStatusUseCase struct {
	Votes ports.VoteLog
}

func (uc VoteStatusUseCase) Status(ctx context.Context, postID string, voter string) (VoteStatus, error) {
	log, err := uc.Votes.ListVotesByPost(ctx, strings.TrimSpace(postID))
	if err != nil {
		return VoteStatus{}, err
	}
	status := VoteStatus{
		Tally: entities.TallyVotes(log),
	}
	if strings.TrimSpace(voter) != "" {
		status.Current = entities.CurrentVote(log, strings.TrimSpace(voter))
	}
	return status, nil
}
