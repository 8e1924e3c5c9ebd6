package httpadapter

import (
	"context"
	"log/slog"

	"inkwell/contexts/publishing/blog-service/application/commands"
	"inkwell/contexts/publishing/blog-service/application/queries"
	"inkwell/contexts/publishing/blog-service/domain/entities"
	httptransport "inkwell/contexts/publishing/blog-service/transport/http"
	"inkwell/internal/shared/identity"
)

// Handler maps HTTP DTOs to application commands/queries.
type Handler struct {
	CreatePost commands.CreatePostUseCase
	UpdatePost commands.UpdatePostUseCase
	DeletePost commands.DeletePostUseCase
	GetPost    queries.GetPostUseCase
	ListPosts  queries.ListPostsUseCase
	Logger     *slog.Logger
}

// CreatePostHandler authors a new post owned by the acting identity.
func (h Handler) CreatePostHandler(
	ctx context.Context,
	actor identity.Identity,
	request httptransport.CreatePostRequest,
) (httptransport.PostResponse, error) {
	post, err := h.CreatePost.Execute(ctx, commands.CreatePostCommand{
		Actor:   actor,
		Title:   request.Title,
		Content: request.Content,
		Tags:    request.Tags,
	})
	if err != nil {
		return httptransport.PostResponse{}, err
	}
	// The author just created the post, so the view is trivially editable.
	return toPostResponse(post, "", true), nil
}

// UpdatePostHandler applies a partial patch under the ownership guard.
func (h Handler) UpdatePostHandler(
	ctx context.Context,
	actor identity.Identity,
	postID string,
	request httptransport.UpdatePostRequest,
) (httptransport.PostResponse, error) {
	post, err := h.UpdatePost.Execute(ctx, commands.UpdatePostCommand{
		Actor:   actor,
		PostID:  postID,
		Title:   request.Title,
		Content: request.Content,
		Tags:    request.Tags,
	})
	if err != nil {
		return httptransport.PostResponse{}, err
	}
	return toPostResponse(post, "", identity.Editable(actor, post.CreatedBy)), nil
}

// DeletePostHandler soft-deletes a post.
func (h Handler) DeletePostHandler(
	ctx context.Context,
	actor identity.Identity,
	postID string,
) (httptransport.MessageResponse, error) {
	if err := h.DeletePost.Execute(ctx, commands.DeletePostCommand{
		Actor:  actor,
		PostID: postID,
	}); err != nil {
		return httptransport.MessageResponse{}, err
	}
	return httptransport.MessageResponse{Message: "Blog soft deleted"}, nil
}

// GetPostHandler returns one active post annotated for the viewer.
func (h Handler) GetPostHandler(
	ctx context.Context,
	viewer identity.Identity,
	postID string,
) (httptransport.PostResponse, error) {
	view, err := h.GetPost.Execute(ctx, postID, viewer)
	if err != nil {
		return httptransport.PostResponse{}, err
	}
	return toPostResponse(view.Post, view.AuthorUsername, view.Editable), nil
}

// ListPostsHandler returns one page of the public listing.
func (h Handler) ListPostsHandler(
	ctx context.Context,
	viewer identity.Identity,
	request httptransport.ListPostsQueryParams,
) (httptransport.ListPostsResponse, error) {
	page, err := h.ListPosts.Execute(ctx, queries.ListPostsQuery{
		Tag:    request.Tag,
		Author: request.Author,
		Title:  request.Title,
		Page:   request.Page,
		Limit:  request.Limit,
	}, viewer)
	if err != nil {
		return httptransport.ListPostsResponse{}, err
	}

	data := make([]httptransport.PostResponse, 0, len(page.Items))
	for _, item := range page.Items {
		data = append(data, toPostResponse(item.Post, item.AuthorUsername, item.Editable))
	}
	return httptransport.ListPostsResponse{
		Data:       data,
		Page:       page.Page,
		Limit:      page.Limit,
		Total:      page.Total,
		TotalPages: page.TotalPages,
	}, nil
}

func toPostResponse(post entities.Post, authorUsername string, editable bool) httptransport.PostResponse {
	tags := post.Tags
	if tags == nil {
		tags = []string{}
	}
	return httptransport.PostResponse{
		ID:      post.PostID,
		Title:   post.Title,
		Content: post.Content,
		Tags:    tags,
		CreatedBy: httptransport.AuthorRef{
			ID:       post.CreatedBy,
			Username: authorUsername,
		},
		UpdatedBy: post.UpdatedBy,
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
		Edit:      editable,
	}
}
