package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	application "inkwell/contexts/publishing/blog-service/application"
	"inkwell/contexts/publishing/blog-service/domain/entities"
	domainerrors "inkwell/contexts/publishing/blog-service/domain/errors"
	"inkwell/contexts/publishing/blog-service/ports"
	"inkwell/internal/shared/identity"
)

// CreatePostCommand contains transport-agnostic authoring input. The
// author is always the acting identity, never a client-supplied field.
type CreatePostCommand struct {
	Actor   identity.Identity
	Title   string
	Content string
	Tags    []string
}

// CreatePostUseCase creates a post owned by the acting identity.
type CreatePostUseCase struct {
	Repository  ports.Repository
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func (u CreatePostUseCase) Execute(ctx context.Context, cmd CreatePostCommand) (entities.Post, error) {
	logger := application.ResolveLogger(u.Logger)

	if cmd.Actor.IsAnonymous() {
		return entities.Post{}, domainerrors.ErrNotAuthenticated
	}
	if strings.TrimSpace(cmd.Title) == "" || strings.TrimSpace(cmd.Content) == "" {
		return entities.Post{}, domainerrors.ErrMissingFields
	}

	postID, err := u.IDGenerator.NewID(ctx)
	if err != nil {
		return entities.Post{}, err
	}

	now := u.now()
	post := entities.Post{
		PostID:    postID,
		Title:     cmd.Title,
		Content:   cmd.Content,
		Tags:      cmd.Tags,
		CreatedBy: cmd.Actor.UserID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := u.Repository.CreatePost(ctx, post); err != nil {
		logger.Error("create post failed",
			"event", "blog_create_failed",
			"module", "publishing/blog-service",
			"layer", "application",
			"author_id", cmd.Actor.UserID,
			"error", err.Error(),
		)
		return entities.Post{}, err
	}

	logger.Info("post created",
		"event", "blog_created",
		"module", "publishing/blog-service",
		"layer", "application",
		"post_id", postID,
		"author_id", cmd.Actor.UserID,
	)
	return post, nil
}

func (u CreatePostUseCase) now() time.Time {
	if u.Clock != nil {
		return u.Clock.Now().UTC()
	}
	return time.Now().UTC()
}
