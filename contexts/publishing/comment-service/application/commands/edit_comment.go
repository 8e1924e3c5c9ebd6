package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	application "inkwell/contexts/publishing/comment-service/application"
	"inkwell/contexts/publishing/comment-service/domain/entities"
	domainerrors "inkwell/contexts/publishing/comment-service/domain/errors"
	"inkwell/contexts/publishing/comment-service/ports"
	"inkwell/internal/shared/identity"
)

// EditCommentCommand replaces a comment's content. Author only.
type EditCommentCommand struct {
	Actor     identity.Identity
	CommentID string
	Content   string
}

// EditCommentUseCase applies a content edit under the author-only guard.
// Admins get no override on comments.
type EditCommentUseCase struct {
	Repository ports.Repository
	Clock      ports.Clock
	Logger     *slog.Logger
}

func (u EditCommentUseCase) Execute(ctx context.Context, cmd EditCommentCommand) (entities.Comment, error) {
	logger := application.ResolveLogger(u.Logger)

	comment, err := u.Repository.GetComment(ctx, cmd.CommentID)
	if err != nil {
		return entities.Comment{}, err
	}
	if !identity.CanMutate(cmd.Actor, comment.AuthorID, false) {
		return entities.Comment{}, domainerrors.ErrForbidden
	}
	// Validation deliberately runs after the ownership check, matching
	// the established endpoint behavior.
	if strings.TrimSpace(cmd.Content) == "" {
		return entities.Comment{}, domainerrors.ErrContentRequired
	}

	comment.Content = cmd.Content
	comment.UpdatedAt = u.now()
	if err := u.Repository.SaveComment(ctx, comment); err != nil {
		return entities.Comment{}, err
	}

	logger.Info("comment edited",
		"event", "comment_edited",
		"module", "publishing/comment-service",
		"layer", "application",
		"comment_id", cmd.CommentID,
		"author_id", comment.AuthorID,
	)
	return comment, nil
}

func (u EditCommentUseCase) now() time.Time {
	if u.Clock != nil {
		return u.Clock.Now().UTC()
	}
	return time.Now().UTC()
}
