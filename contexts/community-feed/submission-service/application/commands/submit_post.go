package commands

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	application "agora/contexts/community-feed/submission-service/application"
	"agora/contexts/community-feed/submission-service/domain/entities"
	domainerrors "agora/contexts/community-feed/submission-service/domain/errors"
	"agora/contexts/community-feed/submission-service/ports"
)

type SubmitPostCommand struct {
	Topic  string
	Title  string
	Body   string
	Image  string
	Author string
}

// SubmitPostResult carries the created post plus the resolved channel and
// whether this submission created it, so callers can observe the
// zero-or-one channel creation per call.
type SubmitPostResult struct {
	Post           entities.Post
	Channel        entities.Channel
	ChannelCreated bool
}

// SubmitPostUseCase resolves a topic to a channel, creating the channel on
// first use, then attaches the new post to it. The lookup-then-create sequence
// is best effort: two concurrent first submissions to the same topic race, and
// the store's per-write atomicity is the only synchronization point. When the
// store reports the topic as already taken, the lookup is re-run once and the
// post attaches to the winner's channel.
type SubmitPostUseCase struct {
	Channels ports.ChannelRepository
	Posts    ports.PostRepository
	Clock    ports.Clock
	IDGen    ports.IDGenerator
	Logger   *slog.Logger
}

func (uc SubmitPostUseCase) Execute(ctx context.Context, cmd SubmitPostCommand) (SubmitPostResult, error) {
	logger := application.ResolveLogger(uc.Logger)

	topic := strings.TrimSpace(cmd.Topic)
	title := strings.TrimSpace(cmd.Title)
	author := strings.TrimSpace(cmd.Author)
	if topic == "" {
		return SubmitPostResult{}, domainerrors.ErrTopicRequired
	}
	if title == "" {
		return SubmitPostResult{}, domainerrors.ErrTitleRequired
	}
	if author == "" {
		return SubmitPostResult{}, domainerrors.ErrAuthorRequired
	}

	channel, created, err := uc.resolveChannel(ctx, topic)
	if err != nil {
		return SubmitPostResult{}, err
	}

	postID, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return SubmitPostResult{}, domainerrors.NewSubmissionError(domainerrors.StageCreatePost, err)
	}
	post := entities.Post{
		PostID:    postID,
		Title:     title,
		Body:      cmd.Body,
		Image:     strings.TrimSpace(cmd.Image),
		ChannelID: channel.ChannelID,
		Author:    author,
		CreatedAt: uc.Clock.Now().UTC(),
	}
	if err := uc.Posts.CreatePost(ctx, post); err != nil {
		// A channel created above stays behind with no post; a retried
		// submission finds it via the lookup step and attaches there.
		logger.Error("post create failed",
			"event", "feed_post_create_failed",
			"module", "community-feed/submission-service",
			"layer", "application",
			"channel_id", channel.ChannelID,
			"topic", topic,
			"author", author,
			"error", err.Error(),
		)
		return SubmitPostResult{}, domainerrors.NewSubmissionError(domainerrors.StageCreatePost, err)
	}

	logger.Info("post submitted",
		"event", "feed_post_submitted",
		"module", "community-feed/submission-service",
		"layer", "application",
		"post_id", post.PostID,
		"channel_id", channel.ChannelID,
		"topic", topic,
		"author", author,
		"channel_created", created,
	)
	return SubmitPostResult{Post: post, Channel: channel, ChannelCreated: created}, nil
}

func (uc SubmitPostUseCase) resolveChannel(ctx context.Context, topic string) (entities.Channel, bool, error) {
	logger := application.ResolveLogger(uc.Logger)

	matches, err := uc.Channels.FindChannelsByTopic(ctx, topic)
	if err != nil {
		return entities.Channel{}, false, domainerrors.NewSubmissionError(domainerrors.StageLookup, err)
	}
	if len(matches) > 0 {
		// Uniqueness is enforced at creation time, so multiple matches are an
		// anomaly to tolerate, not a fatal condition.
		if len(matches) > 1 {
			logger.Warn("multiple channels share one topic",
				"event", "feed_channel_topic_duplicated",
				"module", "community-feed/submission-service",
				"layer", "application",
				"topic", topic,
				"count", len(matches),
			)
		}
		return matches[0], false, nil
	}

	channelID, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return entities.Channel{}, false, domainerrors.NewSubmissionError(domainerrors.StageCreateChannel, err)
	}
	channel := entities.Channel{
		ChannelID: channelID,
		Topic:     topic,
		CreatedAt: uc.Clock.Now().UTC(),
	}
	if err := uc.Channels.CreateChannel(ctx, channel); err != nil {
		if errors.Is(err, domainerrors.ErrChannelExists) {
			// Lost the creation race; use the winner's channel.
			matches, lookupErr := uc.Channels.FindChannelsByTopic(ctx, topic)
			if lookupErr != nil {
				return entities.Channel{}, false, domainerrors.NewSubmissionError(domainerrors.StageLookup, lookupErr)
			}
			if len(matches) > 0 {
				return matches[0], false, nil
			}
		}
		return entities.Channel{}, false, domainerrors.NewSubmissionError(domainerrors.StageCreateChannel, err)
	}

	logger.Info("channel created",
		"event", "feed_channel_created",
		"module", "community-feed/submission-service",
		"layer", "application",
		"channel_id", channel.ChannelID,
		"topic", topic,
	)
	return channel, true, nil
}
