package queries

import (
	"context"
	"sort"
	"strings"

	"agora/contexts/community-feed/submission-service/domain/entities"
	domainerrors "agora/contexts/community-feed/submission-service/domain/errors"
	"agora/contexts/community-feed/submission-service/ports"
)

// FeedUseCase serves the read paths the feed pages render: the global feed,
// one channel's feed, and single post/channel lookups. Listings are newest
// first; ties fall back to post id so ordering stays deterministic.
type FeedUseCase struct {
	Channels ports.ChannelRepository
	Posts    ports.PostRepository
}

func (uc FeedUseCase) ListPosts(ctx context.Context) ([]entities.Post, error) {
	posts, err := uc.Posts.ListPosts(ctx)
	if err != nil {
		return nil, err
	}
	sortNewestFirst(posts)
	return posts, nil
}

func (uc FeedUseCase) ListPostsByTopic(ctx context.Context, topic string) ([]entities.Post, error) {
	matches, err := uc.Channels.FindChannelsByTopic(ctx, strings.TrimSpace(topic))
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		// Unknown topic renders as an empty feed, not an error.
		return []entities.Post{}, nil
	}
	posts, err := uc.Posts.ListPostsByChannel(ctx, matches[0].ChannelID)
	if err != nil {
		return nil, err
	}
	sortNewestFirst(posts)
	return posts, nil
}

func (uc FeedUseCase) GetPost(ctx context.Context, postID string) (entities.Post, error) {
	return uc.Posts.GetPost(ctx, strings.TrimSpace(postID))
}

func (uc FeedUseCase) GetChannelByTopic(ctx context.Context, topic string) (entities.Channel, error) {
	matches, err := uc.Channels.FindChannelsByTopic(ctx, strings.TrimSpace(topic))
	if err != nil {
		return entities.Channel{}, err
	}
	if len(matches) == 0 {
		return entities.Channel{}, domainerrors.ErrChannelNotFound
	}
	return matches[0], nil
}

func sortNewestFirst(posts []entities.Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		if posts[i].CreatedAt.Equal(posts[j].CreatedAt) {
			return posts[i].PostID < posts[j].PostID
		}
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
}
