package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"inkwell/contexts/publishing/comment-service/domain/entities"
	domainerrors "inkwell/contexts/publishing/comment-service/domain/errors"
)

// Store is an in-memory adapter implementing the repository port plus
// clock and id generation. It is intended for tests and local wiring.
type Store struct {
	mu       sync.RWMutex
	comments map[string]entities.Comment
}

func NewStore() *Store {
	return &Store{
		comments: make(map[string]entities.Comment),
	}
}

func (s *Store) CreateComment(_ context.Context, comment entities.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.comments[comment.CommentID] = comment
	return nil
}

func (s *Store) GetComment(_ context.Context, commentID string) (entities.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	comment, ok := s.comments[commentID]
	if !ok || comment.Deleted {
		return entities.Comment{}, domainerrors.ErrCommentNotFound
	}
	return comment, nil
}

func (s *Store) SaveComment(_ context.Context, comment entities.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.comments[comment.CommentID]; !ok {
		return domainerrors.ErrCommentNotFound
	}
	s.comments[comment.CommentID] = comment
	return nil
}

func (s *Store) ListComments(_ context.Context, postID string) ([]entities.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Comment, 0)
	for _, comment := range s.comments {
		if comment.PostID != postID || comment.Deleted {
			continue
		}
		items = append(items, comment)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].CommentID < items[j].CommentID
		}
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	return items, nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
