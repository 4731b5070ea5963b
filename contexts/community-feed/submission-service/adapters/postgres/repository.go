package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"agora/contexts/community-feed/submission-service/domain/entities"
	domainerrors "agora/contexts/community-feed/submission-service/domain/errors"

	"github.com/jackc/pgx/v5/pgconn"
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

func (r *Repository) FindChannelsByTopic(ctx context.Context, topic string) ([]entities.Channel, error) {
	var rows []channelModel
	if err := r.db.WithContext(ctx).
		Where("topic = ?", topic).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, r.logError("feed_repo_find_channels_failed", err, "topic", topic)
	}
	channels := make([]entities.Channel, 0, len(rows))
	for _, row := range rows {
		channels = append(channels, row.toEntity())
	}
	return channels, nil
}

func (r *Repository) CreateChannel(ctx context.Context, channel entities.Channel) error {
	row := channelModelFromEntity(channel)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		// The unique index on topic turns a creation race into a conflict the
		// coordinator resolves by re-running its lookup.
		if isUniqueViolation(err) {
			return domainerrors.ErrChannelExists
		}
		return r.logError("feed_repo_create_channel_failed", err,
			"channel_id", strings.TrimSpace(channel.ChannelID),
			"topic", channel.Topic,
		)
	}
	return nil
}

func (r *Repository) GetChannel(ctx context.Context, channelID string) (entities.Channel, error) {
	var row channelModel
	err := r.db.WithContext(ctx).
		Where("id = ?", strings.TrimSpace(channelID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Channel{}, domainerrors.ErrChannelNotFound
		}
		return entities.Channel{}, r.logError("feed_repo_get_channel_failed", err,
			"channel_id", strings.TrimSpace(channelID),
		)
	}
	return row.toEntity(), nil
}

func (r *Repository) CreatePost(ctx context.Context, post entities.Post) error {
	row := postModelFromEntity(post)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return r.logError("feed_repo_create_post_failed", err,
			"post_id", strings.TrimSpace(post.PostID),
			"channel_id", strings.TrimSpace(post.ChannelID),
		)
	}
	return nil
}

func (r *Repository) GetPost(ctx context.Context, postID string) (entities.Post, error) {
	var row postModel
	err := r.db.WithContext(ctx).
		Where("id = ?", strings.TrimSpace(postID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Post{}, domainerrors.ErrPostNotFound
		}
		return entities.Post{}, r.logError("feed_repo_get_post_failed", err,
			"post_id", strings.TrimSpace(postID),
		)
	}
	return row.toEntity(), nil
}

func (r *Repository) ListPostsByChannel(ctx context.Context, channelID string) ([]entities.Post, error) {
	var rows []postModel
	if err := r.db.WithContext(ctx).
		Where("channel_id = ?", strings.TrimSpace(channelID)).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, r.logError("feed_repo_list_posts_by_channel_failed", err,
			"channel_id", strings.TrimSpace(channelID),
		)
	}
	return toPostEntities(rows), nil
}

func (r *Repository) ListPosts(ctx context.Context) ([]entities.Post, error) {
	var rows []postModel
	if err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, r.logError("feed_repo_list_posts_failed", err)
	}
	return toPostEntities(rows), nil
}

func (r *Repository) logError(event string, err error, args ...any) error {
	fields := append([]any{
		"event", event,
		"module", "community-feed/submission-service",
		"layer", "adapter",
		"error", err.Error(),
	}, args...)
	r.logger.Error("feed repository operation failed", fields...)
	return err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

type channelModel struct {
	ID        string    `gorm:"column:id;primaryKey"`
	Topic     string    `gorm:"column:topic;uniqueIndex:idx_channels_topic"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (channelModel) TableName() string {
	return "channels"
}

func channelModelFromEntity(channel entities.Channel) channelModel {
	row := channelModel{
		ID:        strings.TrimSpace(channel.ChannelID),
		Topic:     channel.Topic,
		CreatedAt: channel.CreatedAt.UTC(),
	}
	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now().UTC()
	}
	return row
}

func (m channelModel) toEntity() entities.Channel {
	return entities.Channel{
		ChannelID: m.ID,
		Topic:     m.Topic,
		CreatedAt: m.CreatedAt,
	}
}

type postModel struct {
	ID        string    `gorm:"column:id;primaryKey"`
	Title     string    `gorm:"column:title"`
	Body      string    `gorm:"column:body"`
	Image     string    `gorm:"column:image"`
	ChannelID string    `gorm:"column:channel_id;index"`
	Author    string    `gorm:"column:author"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (postModel) TableName() string {
	return "posts"
}

func postModelFromEntity(post entities.Post) postModel {
	row := postModel{
		ID:        strings.TrimSpace(post.PostID),
		Title:     strings.TrimSpace(post.Title),
		Body:      post.Body,
		Image:     strings.TrimSpace(post.Image),
		ChannelID: strings.TrimSpace(post.ChannelID),
		Author:    strings.TrimSpace(post.Author),
		CreatedAt: post.CreatedAt.UTC(),
	}
	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now().UTC()
	}
	return row
}

func (m postModel) toEntity() entities.Post {
	return entities.Post{
		PostID:    m.ID,
		Title:     m.Title,
		Body:      m.Body,
		Image:     m.Image,
		ChannelID: m.ChannelID,
		Author:    m.Author,
		CreatedAt: m.CreatedAt,
	}
}

func toPostEntities(rows []postModel) []entities.Post {
	posts := make([]entities.Post, 0, len(rows))
	for _, row := range rows {
		posts = append(posts, row.toEntity())
	}
	return posts
}
