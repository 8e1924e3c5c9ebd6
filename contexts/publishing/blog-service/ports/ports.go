package ports

import (
	"context"
	"time"

	"inkwell/contexts/publishing/blog-service/domain/entities"
)

// Clock abstracts current time for deterministic tests.
type Clock interface {
	Now() time.Time
}

// IDGenerator abstracts UUID generation for new post rows.
type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

// PostListFilter narrows the public post listing. Zero values mean
// "no filter"; TitleQuery is a case-insensitive substring match.
type PostListFilter struct {
	Tag        string
	AuthorID   string
	TitleQuery string
	Page       int
	Limit      int
}

// Repository is the persistence boundary for post state. Every read
// filters soft-deleted rows, so a second delete observes not-found.
type Repository interface {
	CreatePost(ctx context.Context, post entities.Post) error

	// GetPost returns an active post or ErrPostNotFound.
	GetPost(ctx context.Context, postID string) (entities.Post, error)

	// SavePost persists a mutated post record. Concurrent saves of the
	// same post are last-writer-wins; there is no version check.
	SavePost(ctx context.Context, post entities.Post) error

	// ListPosts returns one page of active posts newest-first plus the
	// total match count.
	ListPosts(ctx context.Context, filter PostListFilter) ([]entities.Post, int64, error)
}

// AccountDirectory resolves author usernames from the identity-access
// context. Implementations must not expose anything beyond the username.
type AccountDirectory interface {
	Username(ctx context.Context, accountID string) (string, error)
}
