package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"agora/contexts/community-feed/submission-service/application/commands"
	"agora/contexts/community-feed/submission-service/application/queries"
	"agora/contexts/community-feed/submission-service/domain/entities"
	httptransport "agora/contexts/community-feed/submission-service/transport/http"
)

type Handler struct {
	Submissions commands.SubmitPostUseCase
	Feed        queries.FeedUseCase
	Logger      *slog.Logger
}

func (h Handler) SubmitPostHandler(
	ctx context.Context,
	author string,
	req httptransport.SubmitPostRequest,
) (httptransport.SubmitPostResponse, error) {
	result, err := h.Submissions.Execute(ctx, commands.SubmitPostCommand{
		Topic:  req.Topic,
		Title:  req.Title,
		Body:   req.Body,
		Image:  req.Image,
		Author: author,
	})
	if err != nil {
		return httptransport.SubmitPostResponse{}, err
	}
	post := mapPost(result.Post)
	post.Topic = result.Channel.Topic
	return httptransport.SubmitPostResponse{
		Post:           post,
		ChannelCreated: result.ChannelCreated,
	}, nil
}

func (h Handler) FeedHandler(ctx context.Context) (httptransport.FeedResponse, error) {
	posts, err := h.Feed.ListPosts(ctx)
	if err != nil {
		return httptransport.FeedResponse{}, err
	}
	return httptransport.FeedResponse{Posts: mapPosts(posts)}, nil
}

func (h Handler) ChannelFeedHandler(ctx context.Context, topic string) (httptransport.FeedResponse, error) {
	posts, err := h.Feed.ListPostsByTopic(ctx, topic)
	if err != nil {
		return httptransport.FeedResponse{}, err
	}
	return httptransport.FeedResponse{Posts: mapPosts(posts)}, nil
}

func (h Handler) GetPostHandler(ctx context.Context, postID string) (httptransport.PostResponse, error) {
	post, err := h.Feed.GetPost(ctx, postID)
	if err != nil {
		return httptransport.PostResponse{}, err
	}
	return mapPost(post), nil
}

func (h Handler) GetChannelHandler(ctx context.Context, topic string) (httptransport.ChannelResponse, error) {
	channel, err := h.Feed.GetChannelByTopic(ctx, topic)
	if err != nil {
		return httptransport.ChannelResponse{}, err
	}
	return httptransport.ChannelResponse{
		ChannelID: channel.ChannelID,
		Topic:     channel.Topic,
		CreatedAt: channel.CreatedAt.UTC().Format(time.RFC3339),
	}, nil
}

func mapPost(post entities.Post) httptransport.PostResponse {
	return httptransport.PostResponse{
		PostID:    post.PostID,
		Title:     post.Title,
		Body:      post.Body,
		Image:     post.Image,
		ChannelID: post.ChannelID,
		Author:    post.Author,
		CreatedAt: post.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func mapPosts(posts []entities.Post) []httptransport.PostResponse {
	items := make([]httptransport.PostResponse, 0, len(posts))
	for _, post := range posts {
		items = append(items, mapPost(post))
	}
	return items
}
