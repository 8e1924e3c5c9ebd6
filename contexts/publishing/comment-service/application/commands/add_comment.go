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

// AddCommentCommand attaches a new comment to a live post. The author is
// always the acting identity.
type AddCommentCommand struct {
	Actor   identity.Identity
	PostID  string
	Content string
}

// AddCommentUseCase validates content, confirms the parent post is live,
// and persists the comment.
type AddCommentUseCase struct {
	Repository  ports.Repository
	Posts       ports.PostDirectory
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func (u AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (entities.Comment, error) {
	logger := application.ResolveLogger(u.Logger)

	if cmd.Actor.IsAnonymous() {
		return entities.Comment{}, domainerrors.ErrNotAuthenticated
	}
	// Content is validated before the parent lookup, so an empty comment
	// on a missing post reports the validation failure.
	if strings.TrimSpace(cmd.Content) == "" {
		return entities.Comment{}, domainerrors.ErrContentRequired
	}

	active, err := u.Posts.PostActive(ctx, cmd.PostID)
	if err != nil {
		logger.Error("parent post lookup failed",
			"event", "comment_post_lookup_failed",
			"module", "publishing/comment-service",
			"layer", "application",
			"post_id", cmd.PostID,
			"error", err.Error(),
		)
		return entities.Comment{}, err
	}
	if !active {
		return entities.Comment{}, domainerrors.ErrPostNotFound
	}

	commentID, err := u.IDGenerator.NewID(ctx)
	if err != nil {
		return entities.Comment{}, err
	}

	now := u.now()
	comment := entities.Comment{
		CommentID: commentID,
		PostID:    cmd.PostID,
		AuthorID:  cmd.Actor.UserID,
		Content:   cmd.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := u.Repository.CreateComment(ctx, comment); err != nil {
		return entities.Comment{}, err
	}

	logger.Info("comment added",
		"event", "comment_added",
		"module", "publishing/comment-service",
		"layer", "application",
		"comment_id", commentID,
		"post_id", cmd.PostID,
		"author_id", cmd.Actor.UserID,
	)
	return comment, nil
}

func (u AddCommentUseCase) now() time.Time {
	if u.Clock != nil {
		return u.Clock.Now().UTC()
	}
	return time.Now().UTC()
}
