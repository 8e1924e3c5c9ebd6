package commands

import (
	"context"
	"log/slog"
	"time"

	application "inkwell/contexts/publishing/blog-service/application"
	domainerrors "inkwell/contexts/publishing/blog-service/domain/errors"
	"inkwell/contexts/publishing/blog-service/ports"
	"inkwell/internal/shared/identity"
)

// DeletePostCommand soft-deletes a post. Owner or admin.
type DeletePostCommand struct {
	Actor  identity.Identity
	PostID string
}

// DeletePostUseCase marks a post deleted. The active-only load makes a
// second delete of the same post report not-found, not a no-op success.
type DeletePostUseCase struct {
	Repository ports.Repository
	Clock      ports.Clock
	Logger     *slog.Logger
}

func (u DeletePostUseCase) Execute(ctx context.Context, cmd DeletePostCommand) error {
	logger := application.ResolveLogger(u.Logger)

	post, err := u.Repository.GetPost(ctx, cmd.PostID)
	if err != nil {
		return err
	}
	if !identity.CanMutate(cmd.Actor, post.CreatedBy, true) {
		return domainerrors.ErrForbidden
	}

	post.Deleted = true
	post.DeletedBy = cmd.Actor.UserID
	post.UpdatedAt = u.now()
	if err := u.Repository.SavePost(ctx, post); err != nil {
		return err
	}

	logger.Info("post soft deleted",
		"event", "blog_soft_deleted",
		"module", "publishing/blog-service",
		"layer", "application",
		"post_id", cmd.PostID,
		"actor_id", cmd.Actor.UserID,
	)
	return nil
}

func (u DeletePostUseCase) now() time.Time {
	if u.Clock != nil {
		return u.Clock.Now().UTC()
	}
	return time.Now().UTC()
}
