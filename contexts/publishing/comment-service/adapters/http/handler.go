package httpadapter

import (
	"context"
	"log/slog"

	"inkwell/contexts/publishing/comment-service/application/commands"
	"inkwell/contexts/publishing/comment-service/application/queries"
	"inkwell/contexts/publishing/comment-service/domain/entities"
	httptransport "inkwell/contexts/publishing/comment-service/transport/http"
	"inkwell/internal/shared/identity"
)

// Handler maps HTTP DTOs to application commands/queries.
type Handler struct {
	AddComment    commands.AddCommentUseCase
	EditComment   commands.EditCommentUseCase
	DeleteComment commands.DeleteCommentUseCase
	ListComments  queries.ListCommentsUseCase
	Logger        *slog.Logger
}

// AddCommentHandler posts a comment on a live blog post.
func (h Handler) AddCommentHandler(
	ctx context.Context,
	actor identity.Identity,
	postID string,
	request httptransport.AddCommentRequest,
) (httptransport.CommentResponse, error) {
	comment, err := h.AddComment.Execute(ctx, commands.AddCommentCommand{
		Actor:   actor,
		PostID:  postID,
		Content: request.Content,
	})
	if err != nil {
		return httptransport.CommentResponse{}, err
	}
	return toCommentResponse(comment, ""), nil
}

// EditCommentHandler replaces a comment's content.
func (h Handler) EditCommentHandler(
	ctx context.Context,
	actor identity.Identity,
	commentID string,
	request httptransport.EditCommentRequest,
) (httptransport.CommentResponse, error) {
	comment, err := h.EditComment.Execute(ctx, commands.EditCommentCommand{
		Actor:     actor,
		CommentID: commentID,
		Content:   request.Content,
	})
	if err != nil {
		return httptransport.CommentResponse{}, err
	}
	return toCommentResponse(comment, ""), nil
}

// DeleteCommentHandler soft-deletes a comment.
func (h Handler) DeleteCommentHandler(
	ctx context.Context,
	actor identity.Identity,
	commentID string,
) (httptransport.MessageResponse, error) {
	if err := h.DeleteComment.Execute(ctx, commands.DeleteCommentCommand{
		Actor:     actor,
		CommentID: commentID,
	}); err != nil {
		return httptransport.MessageResponse{}, err
	}
	return httptransport.MessageResponse{Message: "Comment deleted"}, nil
}

// ListCommentsHandler returns the live comments of a post, oldest first.
func (h Handler) ListCommentsHandler(ctx context.Context, postID string) ([]httptransport.CommentResponse, error) {
	views, err := h.ListComments.Execute(ctx, postID)
	if err != nil {
		return nil, err
	}
	items := make([]httptransport.CommentResponse, 0, len(views))
	for _, view := range views {
		items = append(items, toCommentResponse(view.Comment, view.AuthorUsername))
	}
	return items, nil
}

func toCommentResponse(comment entities.Comment, authorUsername string) httptransport.CommentResponse {
	return httptransport.CommentResponse{
		ID:     comment.CommentID,
		PostID: comment.PostID,
		Author: httptransport.AuthorRef{
			ID:       comment.AuthorID,
			Username: authorUsername,
		},
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
		UpdatedAt: comment.UpdatedAt,
	}
}
