package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"agora/contexts/community-feed/voting-service/domain/entities"
)

// Store keeps the vote log as an in-memory append-only slice. Append order is
// arrival order, matching the serial ordering of the Postgres votes table.
type Store struct {
	mu    sync.RWMutex
	votes []entities.Vote
}

func NewStore(seed []entities.Vote) *Store {
	return &Store{
		votes: append([]entities.Vote(nil), seed...),
	}
}

func (s *Store) AppendVote(_ context.Context, vote entities.Vote) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.votes = append(s.votes, vote)
	return nil
}

func (s *Store) ListVotesByPost(_ context.Context, postID string) ([]entities.Vote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var log []entities.Vote
	for _, vote := range s.votes {
		if vote.PostID == strings.TrimSpace(postID) {
			log = append(log, vote)
		}
	}
	return log, nil
}

// EntryCount reports raw log length for a post, before any fold.
func (s *Store) EntryCount(postID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, vote := range s.votes {
		if vote.PostID == strings.TrimSpace(postID) {
			count++
		}
	}
	return count
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}
