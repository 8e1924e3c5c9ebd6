package commands

import (
	"context"
	"log/slog"
	"time"

	application "inkwell/contexts/publishing/comment-service/application"
	domainerrors "inkwell/contexts/publishing/comment-service/domain/errors"
	"inkwell/contexts/publishing/comment-service/ports"
	"inkwell/internal/shared/identity"
)

// DeleteCommentCommand soft-deletes a comment. Author only.
type DeleteCommentCommand struct {
	Actor     identity.Identity
	CommentID string
}

// DeleteCommentUseCase marks a comment deleted and stamps DeletedAt.
// A second delete of the same comment observes not-found.
type DeleteCommentUseCase struct {
	Repository ports.Repository
	Clock      ports.Clock
	Logger     *slog.Logger
}

func (u DeleteCommentUseCase) Execute(ctx context.Context, cmd DeleteCommentCommand) error {
	logger := application.ResolveLogger(u.Logger)

	comment, err := u.Repository.GetComment(ctx, cmd.CommentID)
	if err != nil {
		return err
	}
	if !identity.CanMutate(cmd.Actor, comment.AuthorID, false) {
		return domainerrors.ErrForbidden
	}

	now := u.now()
	comment.Deleted = true
	comment.DeletedAt = &now
	comment.UpdatedAt = now
	if err := u.Repository.SaveComment(ctx, comment); err != nil {
		return err
	}

	logger.Info("comment soft deleted",
		"event", "comment_soft_deleted",
		"module", "publishing/comment-service",
		"layer", "application",
		"comment_id", cmd.CommentID,
		"author_id", comment.AuthorID,
	)
	return nil
}

func (u DeleteCommentUseCase) now() time.Time {
	if u.Clock != nil {
		return u.Clock.Now().UTC()
	}
	return time.Now().UTC()
}
