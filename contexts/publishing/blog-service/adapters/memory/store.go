package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"inkwell/contexts/publishing/blog-service/domain/entities"
	domainerrors "inkwell/contexts/publishing/blog-service/domain/errors"
	"inkwell/contexts/publishing/blog-service/ports"
)

// Store is an in-memory adapter implementing the repository port plus
// clock and id generation. It is intended for tests and local wiring.
type Store struct {
	mu    sync.RWMutex
	posts map[string]entities.Post
}

func NewStore() *Store {
	return &Store{
		posts: make(map[string]entities.Post),
	}
}

func (s *Store) CreatePost(_ context.Context, post entities.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.posts[post.PostID] = clonePost(post)
	return nil
}

func (s *Store) GetPost(_ context.Context, postID string) (entities.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	post, ok := s.posts[postID]
	if !ok || post.Deleted {
		return entities.Post{}, domainerrors.ErrPostNotFound
	}
	return clonePost(post), nil
}

func (s *Store) SavePost(_ context.Context, post entities.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.posts[post.PostID]; !ok {
		return domainerrors.ErrPostNotFound
	}
	s.posts[post.PostID] = clonePost(post)
	return nil
}

func (s *Store) ListPosts(_ context.Context, filter ports.PostListFilter) ([]entities.Post, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]entities.Post, 0, len(s.posts))
	for _, post := range s.posts {
		if post.Deleted || !matches(post, filter) {
			continue
		}
		matched = append(matched, clonePost(post))
	}
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].PostID > matched[j].PostID
		}
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	start := (filter.Page - 1) * filter.Limit
	if start < 0 {
		start = 0
	}
	if start >= len(matched) {
		return []entities.Post{}, total, nil
	}
	end := start + filter.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

// PostActive implements the post directory consumed by the comment
// service: comments attach only to live posts.
func (s *Store) PostActive(_ context.Context, postID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	post, ok := s.posts[postID]
	return ok && !post.Deleted, nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

func matches(post entities.Post, filter ports.PostListFilter) bool {
	if filter.AuthorID != "" && post.CreatedBy != filter.AuthorID {
		return false
	}
	if filter.Tag != "" {
		found := false
		for _, tag := range post.Tags {
			if tag == filter.Tag {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if filter.TitleQuery != "" &&
		!strings.Contains(strings.ToLower(post.Title), strings.ToLower(filter.TitleQuery)) {
		return false
	}
	return true
}

func clonePost(post entities.Post) entities.Post {
	if post.Tags != nil {
		post.Tags = append([]string(nil), post.Tags...)
	}
	return post
}
