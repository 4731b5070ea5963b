package ports

import (
	"context"
	"time"

	"agora/contexts/community-feed/voting-service/domain/entities"
)

// VoteLog is the append-only store of vote entries. AppendVote never
// overwrites; ListVotesByPost returns entries in store arrival order, which
// is the order the effective-vote fold resolves by.
type VoteLog interface {
	AppendVote(ctx context.Context, vote entities.Vote) error
	ListVotesByPost(ctx context.Context, postID string) ([]entities.Vote, error)
}

type Clock interface {
	Now() time.Time
}
