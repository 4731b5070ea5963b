package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"agora/contexts/community-feed/submission-service/domain/entities"
	domainerrors "agora/contexts/community-feed/submission-service/domain/errors"

	"github.com/google/uuid"
)

// Store is the in-memory repository used for tests and dependency-free
// wiring. It enforces the same topic uniqueness as the Postgres schema.
type Store struct {
	mu sync.RWMutex

	channels []entities.Channel
	posts    []entities.Post
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) FindChannelsByTopic(_ context.Context, topic string) ([]entities.Channel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var matches []entities.Channel
	for _, channel := range s.channels {
		if channel.Topic == topic {
			matches = append(matches, channel)
		}
	}
	return matches, nil
}

func (s *Store) CreateChannel(_ context.Context, channel entities.Channel) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.channels {
		if existing.Topic == channel.Topic {
			return domainerrors.ErrChannelExists
		}
	}
	s.channels = append(s.channels, channel)
	return nil
}

func (s *Store) GetChannel(_ context.Context, channelID string) (entities.Channel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, channel := range s.channels {
		if channel.ChannelID == strings.TrimSpace(channelID) {
			return channel, nil
		}
	}
	return entities.Channel{}, domainerrors.ErrChannelNotFound
}

func (s *Store) CreatePost(_ context.Context, post entities.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts = append(s.posts, post)
	return nil
}

func (s *Store) GetPost(_ context.Context, postID string) (entities.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, post := range s.posts {
		if post.PostID == strings.TrimSpace(postID) {
			return post, nil
		}
	}
	return entities.Post{}, domainerrors.ErrPostNotFound
}

func (s *Store) ListPostsByChannel(_ context.Context, channelID string) ([]entities.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var posts []entities.Post
	for _, post := range s.posts {
		if post.ChannelID == strings.TrimSpace(channelID) {
			posts = append(posts, post)
		}
	}
	return posts, nil
}

func (s *Store) ListPosts(_ context.Context) ([]entities.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entities.Post(nil), s.posts...), nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
