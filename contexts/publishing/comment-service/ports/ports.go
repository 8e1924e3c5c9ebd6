package ports

import (
	"context"
	"time"

	"inkwell/contexts/publishing/comment-service/domain/entities"
)

// Clock abstracts current time for deterministic tests.
type Clock interface {
	Now() time.Time
}

// IDGenerator abstracts UUID generation for new comment rows.
type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

// Repository is the persistence boundary for comment state.
type Repository interface {
	CreateComment(ctx context.Context, comment entities.Comment) error

	// GetComment returns an active comment or ErrCommentNotFound.
	GetComment(ctx context.Context, commentID string) (entities.Comment, error)

	// SaveComment persists a mutated comment record.
	SaveComment(ctx context.Context, comment entities.Comment) error

	// ListComments returns active comments of one post, oldest first.
	// The post itself is not checked: comments outlive post deletion.
	ListComments(ctx context.Context, postID string) ([]entities.Comment, error)
}

// PostDirectory answers whether the parent post is live. Creation is the
// only operation that consults it.
type PostDirectory interface {
	PostActive(ctx context.Context, postID string) (bool, error)
}

// AccountDirectory resolves author usernames from the identity-access
// context.
type AccountDirectory interface {
	Username(ctx context.Context, accountID string) (string, error)
}
