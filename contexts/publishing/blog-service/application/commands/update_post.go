package commands

import (
	"context"
	"log/slog"
	"time"

	application "inkwell/contexts/publishing/blog-service/application"
	"inkwell/contexts/publishing/blog-service/domain/entities"
	domainerrors "inkwell/contexts/publishing/blog-service/domain/errors"
	"inkwell/contexts/publishing/blog-service/ports"
	"inkwell/internal/shared/identity"
)

// UpdatePostCommand patches an existing post. Empty title/content mean
// "not provided"; a nil Tags slice leaves tags untouched while an empty
// non-nil slice clears them.
type UpdatePostCommand struct {
	Actor   identity.Identity
	PostID  string
	Title   string
	Content string
	Tags    []string
}

// UpdatePostUseCase applies a partial update under the ownership guard.
// Admins may update any post.
type UpdatePostUseCase struct {
	Repository ports.Repository
	Clock      ports.Clock
	Logger     *slog.Logger
}

func (u UpdatePostUseCase) Execute(ctx context.Context, cmd UpdatePostCommand) (entities.Post, error) {
	logger := application.ResolveLogger(u.Logger)

	post, err := u.Repository.GetPost(ctx, cmd.PostID)
	if err != nil {
		return entities.Post{}, err
	}
	if !identity.CanMutate(cmd.Actor, post.CreatedBy, true) {
		logger.Warn("post update denied",
			"event", "blog_update_denied",
			"module", "publishing/blog-service",
			"layer", "application",
			"post_id", cmd.PostID,
			"actor_id", cmd.Actor.UserID,
			"owner_id", post.CreatedBy,
		)
		return entities.Post{}, domainerrors.ErrForbidden
	}

	// CreatedBy is never touched here: authorship is immutable.
	if cmd.Title != "" {
		post.Title = cmd.Title
	}
	if cmd.Content != "" {
		post.Content = cmd.Content
	}
	if cmd.Tags != nil {
		post.Tags = cmd.Tags
	}
	post.UpdatedBy = cmd.Actor.UserID
	post.UpdatedAt = u.now()

	if err := u.Repository.SavePost(ctx, post); err != nil {
		return entities.Post{}, err
	}

	logger.Info("post updated",
		"event", "blog_updated",
		"module", "publishing/blog-service",
		"layer", "application",
		"post_id", cmd.PostID,
		"actor_id", cmd.Actor.UserID,
	)
	return post, nil
}

func (u UpdatePostUseCase) now() time.Time {
	if u.Clock != nil {
		return u.Clock.Now().UTC()
	}
	return time.Now().UTC()
}
