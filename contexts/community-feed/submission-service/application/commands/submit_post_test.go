package commands

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"agora/contexts/community-feed/submission-service/domain/entities"
	domainerrors "agora/contexts/community-feed/submission-service/domain/errors"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

type sequenceIDs struct {
	next int
}

func (g *sequenceIDs) NewID(_ context.Context) (string, error) {
	g.next++
	return fmt.Sprintf("id-%d", g.next), nil
}

// scriptedStore counts repository calls so tests can assert the
// zero-or-one-channel-creation property directly.
type scriptedStore struct {
	channels []entities.Channel
	posts    []entities.Post

	findCalls          int
	createChannelCalls int
	createPostCalls    int

	findErr          error
	createChannelErr error
	createPostErr    error
}

func (s *scriptedStore) FindChannelsByTopic(_ context.Context, topic string) ([]entities.Channel, error) {
	s.findCalls++
	if s.findErr != nil {
		return nil, s.findErr
	}
	var matches []entities.Channel
	for _, channel := range s.channels {
		if channel.Topic == topic {
			matches = append(matches, channel)
		}
	}
	return matches, nil
}

func (s *scriptedStore) CreateChannel(_ context.Context, channel entities.Channel) error {
	s.createChannelCalls++
	if s.createChannelErr != nil {
		return s.createChannelErr
	}
	s.channels = append(s.channels, channel)
	return nil
}

func (s *scriptedStore) GetChannel(_ context.Context, channelID string) (entities.Channel, error) {
	for _, channel := range s.channels {
		if channel.ChannelID == channelID {
			return channel, nil
		}
	}
	return entities.Channel{}, domainerrors.ErrChannelNotFound
}

func (s *scriptedStore) CreatePost(_ context.Context, post entities.Post) error {
	s.createPostCalls++
	if s.createPostErr != nil {
		return s.createPostErr
	}
	s.posts = append(s.posts, post)
	return nil
}

func (s *scriptedStore) GetPost(_ context.Context, postID string) (entities.Post, error) {
	for _, post := range s.posts {
		if post.PostID == postID {
			return post, nil
		}
	}
	return entities.Post{}, domainerrors.ErrPostNotFound
}

func (s *scriptedStore) ListPostsByChannel(_ context.Context, channelID string) ([]entities.Post, error) {
	var posts []entities.Post
	for _, post := range s.posts {
		if post.ChannelID == channelID {
			posts = append(posts, post)
		}
	}
	return posts, nil
}

func (s *scriptedStore) ListPosts(_ context.Context) ([]entities.Post, error) {
	return append([]entities.Post(nil), s.posts...), nil
}

func newSubmitUseCase(store *scriptedStore) SubmitPostUseCase {
	return SubmitPostUseCase{
		Channels: store,
		Posts:    store,
		Clock:    fixedClock{now: time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)},
		IDGen:    &sequenceIDs{},
	}
}

func TestSubmitPostCreatesChannelOnFirstUse(t *testing.T) {
	store := &scriptedStore{}
	uc := newSubmitUseCase(store)

	result, err := uc.Execute(context.Background(), SubmitPostCommand{
		Topic:  "reactjs",
		Title:  "Hello",
		Author: "alice",
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if store.createChannelCalls != 1 {
		t.Fatalf("expected exactly one channel creation, got %d", store.createChannelCalls)
	}
	if store.createPostCalls != 1 {
		t.Fatalf("expected exactly one post creation, got %d", store.createPostCalls)
	}
	if !result.ChannelCreated {
		t.Fatalf("expected ChannelCreated flag")
	}
	if result.Post.ChannelID != result.Channel.ChannelID {
		t.Fatalf("post references channel %s, resolved channel is %s", result.Post.ChannelID, result.Channel.ChannelID)
	}
	if result.Channel.Topic != "reactjs" {
		t.Fatalf("expected channel topic reactjs, got %s", result.Channel.Topic)
	}
}

func TestSubmitPostReusesExistingChannel(t *testing.T) {
	store := &scriptedStore{
		channels: []entities.Channel{
			{ChannelID: "7", Topic: "reactjs"},
		},
	}
	uc := newSubmitUseCase(store)

	result, err := uc.Execute(context.Background(), SubmitPostCommand{
		Topic:  "reactjs",
		Title:  "Hello2",
		Author: "bob",
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if store.createChannelCalls != 0 {
		t.Fatalf("expected zero channel creations, got %d", store.createChannelCalls)
	}
	if store.createPostCalls != 1 {
		t.Fatalf("expected one post creation, got %d", store.createPostCalls)
	}
	if result.ChannelCreated {
		t.Fatalf("did not expect ChannelCreated flag")
	}
	if result.Post.ChannelID != "7" {
		t.Fatalf("expected post attached to channel 7, got %s", result.Post.ChannelID)
	}
}

func TestSubmitPostPicksFirstOfDuplicateChannels(t *testing.T) {
	store := &scriptedStore{
		channels: []entities.Channel{
			{ChannelID: "older", Topic: "golang"},
			{ChannelID: "newer", Topic: "golang"},
		},
	}
	uc := newSubmitUseCase(store)

	result, err := uc.Execute(context.Background(), SubmitPostCommand{
		Topic:  "golang",
		Title:  "Duplicate topics happen",
		Author: "alice",
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if result.Post.ChannelID != "older" {
		t.Fatalf("expected first matching channel, got %s", result.Post.ChannelID)
	}
}

func TestSubmitPostValidationFailsBeforeAnyStoreCall(t *testing.T) {
	cases := []struct {
		name    string
		cmd     SubmitPostCommand
		wantErr error
	}{
		{
			name:    "empty topic",
			cmd:     SubmitPostCommand{Title: "Hello", Author: "alice"},
			wantErr: domainerrors.ErrTopicRequired,
		},
		{
			name:    "empty title",
			cmd:     SubmitPostCommand{Topic: "reactjs", Author: "alice"},
			wantErr: domainerrors.ErrTitleRequired,
		},
		{
			name:    "whitespace title",
			cmd:     SubmitPostCommand{Topic: "reactjs", Title: "   ", Author: "alice"},
			wantErr: domainerrors.ErrTitleRequired,
		},
		{
			name:    "missing author",
			cmd:     SubmitPostCommand{Topic: "reactjs", Title: "Hello"},
			wantErr: domainerrors.ErrAuthorRequired,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := &scriptedStore{}
			uc := newSubmitUseCase(store)

			_, err := uc.Execute(context.Background(), tc.cmd)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
			if store.findCalls != 0 || store.createChannelCalls != 0 || store.createPostCalls != 0 {
				t.Fatalf("validation failure must not reach the store: %+v", store)
			}
		})
	}
}

func TestSubmitPostDefaultsImageToEmpty(t *testing.T) {
	store := &scriptedStore{}
	uc := newSubmitUseCase(store)

	result, err := uc.Execute(context.Background(), SubmitPostCommand{
		Topic:  "reactjs",
		Title:  "Hello",
		Author: "alice",
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if result.Post.Image != "" {
		t.Fatalf("expected empty image default, got %q", result.Post.Image)
	}
}

func TestSubmitPostWrapsStageErrors(t *testing.T) {
	cause := errors.New("connection reset")
	cases := []struct {
		name      string
		store     *scriptedStore
		wantStage domainerrors.SubmissionStage
	}{
		{
			name:      "lookup failure",
			store:     &scriptedStore{findErr: cause},
			wantStage: domainerrors.StageLookup,
		},
		{
			name:      "channel create failure",
			store:     &scriptedStore{createChannelErr: cause},
			wantStage: domainerrors.StageCreateChannel,
		},
		{
			name:      "post create failure",
			store:     &scriptedStore{createPostErr: cause},
			wantStage: domainerrors.StageCreatePost,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := newSubmitUseCase(tc.store)
			_, err := uc.Execute(context.Background(), SubmitPostCommand{
				Topic:  "reactjs",
				Title:  "Hello",
				Author: "alice",
			})

			var submissionErr *domainerrors.SubmissionError
			if !errors.As(err, &submissionErr) {
				t.Fatalf("expected SubmissionError, got %v", err)
			}
			if submissionErr.Stage != tc.wantStage {
				t.Fatalf("expected stage %s, got %s", tc.wantStage, submissionErr.Stage)
			}
			if !errors.Is(err, cause) {
				t.Fatalf("expected cause to be preserved through Unwrap")
			}
		})
	}
}

func TestSubmitPostRecoversFromLostCreationRace(t *testing.T) {
	// The store reports the topic as taken even though the initial lookup saw
	// nothing; the coordinator re-runs the lookup and attaches to the winner.
	store := &scriptedStore{createChannelErr: domainerrors.ErrChannelExists}
	uc := newSubmitUseCase(store)

	raceWinner := entities.Channel{ChannelID: "winner", Topic: "reactjs"}
	firstLookup := true

	// Simulate the winner appearing between the two lookups.
	storeWithRace := &racingStore{
		scriptedStore: store,
		onSecondFind:  func() { store.channels = []entities.Channel{raceWinner} },
		firstLookup:   &firstLookup,
	}
	uc.Channels = storeWithRace

	result, err := uc.Execute(context.Background(), SubmitPostCommand{
		Topic:  "reactjs",
		Title:  "Hello",
		Author: "alice",
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if result.ChannelCreated {
		t.Fatalf("lost race must not report a created channel")
	}
	if result.Post.ChannelID != "winner" {
		t.Fatalf("expected post attached to race winner, got %s", result.Post.ChannelID)
	}
}

type racingStore struct {
	*scriptedStore
	onSecondFind func()
	firstLookup  *bool
}

func (s *racingStore) FindChannelsByTopic(ctx context.Context, topic string) ([]entities.Channel, error) {
	if *s.firstLookup {
		*s.firstLookup = false
		return nil, nil
	}
	s.onSecondFind()
	return s.scriptedStore.FindChannelsByTopic(ctx, topic)
}
