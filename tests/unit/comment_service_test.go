package unit

import (
	"context"
	"errors"
	"testing"

	blog "inkwell/contexts/publishing/blog-service"
	bloghttp "inkwell/contexts/publishing/blog-service/transport/http"
	comment "inkwell/contexts/publishing/comment-service"
	domainerrors "inkwell/contexts/publishing/comment-service/domain/errors"
	httptransport "inkwell/contexts/publishing/comment-service/transport/http"
	"inkwell/internal/shared/identity"
)

var (
	commentAuthor = identity.Identity{UserID: "author-1", Role: identity.RoleUser}
	commentOther  = identity.Identity{UserID: "other-1", Role: identity.RoleUser}
	commentAdmin  = identity.Identity{UserID: "admin-1", Role: identity.RoleAdmin}
)

// newCommentFixture wires a comment module against a live blog module so the
// parent-post checks run against real state.
func newCommentFixture(t *testing.T) (comment.Module, string) {
	t.Helper()

	posts := blog.NewInMemoryModule(nil, nil)
	created, err := posts.Handler.CreatePostHandler(context.Background(), commentAuthor, bloghttp.CreatePostRequest{
		Title:   "parent",
		Content: "content",
	})
	if err != nil {
		t.Fatalf("create parent post: %v", err)
	}

	module := comment.NewInMemoryModule(nil, posts.Store, nil)
	return module, created.ID
}

func TestCommentAddRequiresContentBeforeParentLookup(t *testing.T) {
	module, _ := newCommentFixture(t)

	_, err := module.Handler.AddCommentHandler(context.Background(), commentAuthor, "no-such-post", httptransport.AddCommentRequest{
		Content: "   ",
	})
	if !errors.Is(err, domainerrors.ErrContentRequired) {
		t.Fatalf("expected content error before parent lookup, got %v", err)
	}
}

func TestCommentAddRejectsMissingParent(t *testing.T) {
	module, _ := newCommentFixture(t)

	_, err := module.Handler.AddCommentHandler(context.Background(), commentAuthor, "no-such-post", httptransport.AddCommentRequest{
		Content: "hello",
	})
	if !errors.Is(err, domainerrors.ErrPostNotFound) {
		t.Fatalf("expected parent not found, got %v", err)
	}
}

func TestCommentAddRejectsAnonymous(t *testing.T) {
	module, postID := newCommentFixture(t)

	_, err := module.Handler.AddCommentHandler(context.Background(), identity.Anonymous, postID, httptransport.AddCommentRequest{
		Content: "hello",
	})
	if !errors.Is(err, domainerrors.ErrNotAuthenticated) {
		t.Fatalf("expected authentication failure, got %v", err)
	}
}

func TestCommentEditIsAuthorOnly(t *testing.T) {
	module, postID := newCommentFixture(t)
	ctx := context.Background()

	created, err := module.Handler.AddCommentHandler(ctx, commentAuthor, postID, httptransport.AddCommentRequest{
		Content: "first!",
	})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}

	if _, err := module.Handler.EditCommentHandler(ctx, commentOther, created.ID, httptransport.EditCommentRequest{
		Content: "hijacked",
	}); !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected forbidden for non-author, got %v", err)
	}

	// Admins hold no override on comments.
	if _, err := module.Handler.EditCommentHandler(ctx, commentAdmin, created.ID, httptransport.EditCommentRequest{
		Content: "moderated",
	}); !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected forbidden for admin, got %v", err)
	}

	edited, err := module.Handler.EditCommentHandler(ctx, commentAuthor, created.ID, httptransport.EditCommentRequest{
		Content: "first! (edited)",
	})
	if err != nil {
		t.Fatalf("author edit failed: %v", err)
	}
	if edited.Content != "first! (edited)" {
		t.Fatalf("unexpected content %q", edited.Content)
	}
}

// The ownership check runs before content validation on edits, so a blank
// edit by a stranger reports forbidden, not a validation failure.
func TestCommentEditChecksOwnershipBeforeContent(t *testing.T) {
	module, postID := newCommentFixture(t)
	ctx := context.Background()

	created, err := module.Handler.AddCommentHandler(ctx, commentAuthor, postID, httptransport.AddCommentRequest{
		Content: "first!",
	})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}

	if _, err := module.Handler.EditCommentHandler(ctx, commentOther, created.ID, httptransport.EditCommentRequest{
		Content: "",
	}); !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}

	if _, err := module.Handler.EditCommentHandler(ctx, commentAuthor, created.ID, httptransport.EditCommentRequest{
		Content: "",
	}); !errors.Is(err, domainerrors.ErrContentRequired) {
		t.Fatalf("expected content error for author, got %v", err)
	}
}

func TestCommentDeleteIsTerminal(t *testing.T) {
	module, postID := newCommentFixture(t)
	ctx := context.Background()

	created, err := module.Handler.AddCommentHandler(ctx, commentAuthor, postID, httptransport.AddCommentRequest{
		Content: "first!",
	})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}

	if _, err := module.Handler.DeleteCommentHandler(ctx, commentAuthor, created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := module.Handler.DeleteCommentHandler(ctx, commentAuthor, created.ID); !errors.Is(err, domainerrors.ErrCommentNotFound) {
		t.Fatalf("expected not found on repeat delete, got %v", err)
	}

	views, err := module.Handler.ListCommentsHandler(ctx, postID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(views) != 0 {
		t.Fatalf("expected deleted comment to drop from listing, got %d", len(views))
	}
}

func TestCommentListIsOldestFirst(t *testing.T) {
	module, postID := newCommentFixture(t)
	ctx := context.Background()

	first, err := module.Handler.AddCommentHandler(ctx, commentAuthor, postID, httptransport.AddCommentRequest{
		Content: "first!",
	})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if _, err := module.Handler.AddCommentHandler(ctx, commentOther, postID, httptransport.AddCommentRequest{
		Content: "second!",
	}); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	views, err := module.Handler.ListCommentsHandler(ctx, postID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("expected 2 comments, got %d", len(views))
	}
	if views[0].ID != first.ID {
		t.Fatalf("expected oldest first, got %s", views[0].ID)
	}
}
