package queries

import (
	"context"
	"log/slog"

	application "inkwell/contexts/publishing/comment-service/application"
	"inkwell/contexts/publishing/comment-service/domain/entities"
	"inkwell/contexts/publishing/comment-service/ports"
)

// CommentView is a comment annotated with its author's username.
type CommentView struct {
	Comment        entities.Comment
	AuthorUsername string
}

// ListCommentsUseCase returns the live comments of a post, oldest first.
// The parent post's liveness is deliberately not checked: comment threads
// stay readable after the post is deleted.
type ListCommentsUseCase struct {
	Repository ports.Repository
	Accounts   ports.AccountDirectory
	Logger     *slog.Logger
}

func (u ListCommentsUseCase) Execute(ctx context.Context, postID string) ([]CommentView, error) {
	logger := application.ResolveLogger(u.Logger)

	comments, err := u.Repository.ListComments(ctx, postID)
	if err != nil {
		logger.Error("list comments failed",
			"event", "comment_list_failed",
			"module", "publishing/comment-service",
			"layer", "application",
			"post_id", postID,
			"error", err.Error(),
		)
		return nil, err
	}

	usernames := make(map[string]string, len(comments))
	views := make([]CommentView, 0, len(comments))
	for _, comment := range comments {
		username, ok := usernames[comment.AuthorID]
		if !ok {
			username = u.resolveUsername(ctx, comment.AuthorID)
			usernames[comment.AuthorID] = username
		}
		views = append(views, CommentView{
			Comment:        comment,
			AuthorUsername: username,
		})
	}
	return views, nil
}

func (u ListCommentsUseCase) resolveUsername(ctx context.Context, accountID string) string {
	if u.Accounts == nil {
		return ""
	}
	username, err := u.Accounts.Username(ctx, accountID)
	if err != nil {
		return ""
	}
	return username
}
