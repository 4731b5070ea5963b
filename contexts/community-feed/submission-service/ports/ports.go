package ports

import (
	"context"
	"time"

	"agora/contexts/community-feed/submission-service/domain/entities"
)

type ChannelRepository interface {
	// FindChannelsByTopic matches the topic exactly (case-sensitive) and
	// returns channels in creation order. More than one match means a
	// historical creation race; callers pick the first deterministically.
	FindChannelsByTopic(ctx context.Context, topic string) ([]entities.Channel, error)
	CreateChannel(ctx context.Context, channel entities.Channel) error
	GetChannel(ctx context.Context, channelID string) (entities.Channel, error)
}

type PostRepository interface {
	CreatePost(ctx context.Context, post entities.Post) error
	GetPost(ctx context.Context, postID string) (entities.Post, error)
	ListPostsByChannel(ctx context.Context, channelID string) ([]entities.Post, error)
	ListPosts(ctx context.Context) ([]entities.Post, error)
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
