package postgresadapter

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"agora/contexts/community-feed/voting-service/domain/entities"

	"gorm.io/gorm"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

// AppendVote inserts a new row, never updates. The bigserial key records
// arrival order at the store, which is the order the fold resolves by.
func (r *Repository) AppendVote(ctx context.Context, vote entities.Vote) error {
	row := voteModelFromEntity(vote)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return r.logError("voting_repo_append_vote_failed", err,
			"post_id", strings.TrimSpace(vote.PostID),
			"voter", strings.TrimSpace(vote.Voter),
		)
	}
	return nil
}

func (r *Repository) ListVotesByPost(ctx context.Context, postID string) ([]entities.Vote, error) {
	var rows []voteModel
	if err := r.db.WithContext(ctx).
		Where("post_id = ?", strings.TrimSpace(postID)).
		Order("seq ASC").
		Find(&rows).Error; err != nil {
		return nil, r.logError("voting_repo_list_votes_failed", err,
			"post_id", strings.TrimSpace(postID),
		)
	}
	votes := make([]entities.Vote, 0, len(rows))
	for _, row := range rows {
		votes = append(votes, row.toEntity())
	}
	return votes, nil
}

func (r *Repository) logError(event string, err error, args ...any) error {
	fields := append([]any{
		"event", event,
		"module", "community-feed/voting-service",
		"layer", "adapter",
		"error", err.Error(),
	}, args...)
	r.logger.Error("voting repository operation failed", fields...)
	return err
}

type voteModel struct {
	Seq      int64     `gorm:"column:seq;primaryKey;autoIncrement"`
	PostID   string    `gorm:"column:post_id;index"`
	Voter    string    `gorm:"column:voter"`
	IsUpvote bool      `gorm:"column:is_upvote"`
	CastAt   time.Time `gorm:"column:cast_at"`
}

func (voteModel) TableName() string {
	return "votes"
}

func voteModelFromEntity(vote entities.Vote) voteModel {
	row := voteModel{
		PostID:   strings.TrimSpace(vote.PostID),
		Voter:    strings.TrimSpace(vote.Voter),
		IsUpvote: vote.IsUpvote,
		CastAt:   vote.CastAt.UTC(),
	}
	if row.CastAt.IsZero() {
		row.CastAt = time.Now().UTC()
	}
	return row
}

func (m voteModel) toEntity() entities.Vote {
	return entities.Vote{
		PostID:   m.PostID,
		Voter:    m.Voter,
		IsUpvote: m.IsUpvote,
		CastAt:   m.CastAt,
	}
}
