package unit

import (
	"context"
	"errors"
	"testing"

	blog "inkwell/contexts/publishing/blog-service"
	domainerrors "inkwell/contexts/publishing/blog-service/domain/errors"
	httptransport "inkwell/contexts/publishing/blog-service/transport/http"
	"inkwell/internal/shared/identity"
)

var (
	blogAuthor = identity.Identity{UserID: "author-1", Role: identity.RoleUser}
	blogOther  = identity.Identity{UserID: "other-1", Role: identity.RoleUser}
	blogAdmin  = identity.Identity{UserID: "admin-1", Role: identity.RoleAdmin}
)

func newBlogModule() blog.Module {
	return blog.NewInMemoryModule(nil, nil)
}

func TestBlogCreateRequiresTitleAndContent(t *testing.T) {
	module := newBlogModule()

	_, err := module.Handler.CreatePostHandler(context.Background(), blogAuthor, httptransport.CreatePostRequest{
		Title: "only a title",
	})
	if !errors.Is(err, domainerrors.ErrMissingFields) {
		t.Fatalf("expected missing fields, got %v", err)
	}
}

func TestBlogCreateRejectsAnonymous(t *testing.T) {
	module := newBlogModule()

	_, err := module.Handler.CreatePostHandler(context.Background(), identity.Anonymous, httptransport.CreatePostRequest{
		Title:   "t",
		Content: "c",
	})
	if !errors.Is(err, domainerrors.ErrNotAuthenticated) {
		t.Fatalf("expected authentication failure, got %v", err)
	}
}

func TestBlogUpdateGuardAndAdminOverride(t *testing.T) {
	module := newBlogModule()
	ctx := context.Background()

	created, err := module.Handler.CreatePostHandler(ctx, blogAuthor, httptransport.CreatePostRequest{
		Title:   "original",
		Content: "content",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	_, err = module.Handler.UpdatePostHandler(ctx, blogOther, created.ID, httptransport.UpdatePostRequest{
		Title: "hijacked",
	})
	if !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected forbidden for non-owner, got %v", err)
	}

	patched, err := module.Handler.UpdatePostHandler(ctx, blogAdmin, created.ID, httptransport.UpdatePostRequest{
		Title: "moderated",
	})
	if err != nil {
		t.Fatalf("admin update failed: %v", err)
	}
	if patched.Title != "moderated" || patched.Content != "content" {
		t.Fatalf("unexpected patch result %+v", patched)
	}
	if patched.CreatedBy.ID != blogAuthor.UserID {
		t.Fatalf("authorship moved to %s", patched.CreatedBy.ID)
	}
	if patched.UpdatedBy != blogAdmin.UserID {
		t.Fatalf("expected editor to be recorded, got %s", patched.UpdatedBy)
	}
}

func TestBlogUpdateTreatsEmptyStringsAsAbsent(t *testing.T) {
	module := newBlogModule()
	ctx := context.Background()

	created, err := module.Handler.CreatePostHandler(ctx, blogAuthor, httptransport.CreatePostRequest{
		Title:   "original",
		Content: "content",
		Tags:    []string{"go", "web"},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	patched, err := module.Handler.UpdatePostHandler(ctx, blogAuthor, created.ID, httptransport.UpdatePostRequest{
		Title:   "",
		Content: "",
		Tags:    []string{},
	})
	if err != nil {
		t.Fatalf("patch failed: %v", err)
	}
	if patched.Title != "original" || patched.Content != "content" {
		t.Fatalf("blank strings must not clear fields: %+v", patched)
	}
	if len(patched.Tags) != 0 {
		t.Fatalf("an explicit empty tag list clears tags, got %v", patched.Tags)
	}
}

func TestBlogDeleteIsTerminal(t *testing.T) {
	module := newBlogModule()
	ctx := context.Background()

	created, err := module.Handler.CreatePostHandler(ctx, blogAuthor, httptransport.CreatePostRequest{
		Title:   "doomed",
		Content: "content",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := module.Handler.DeletePostHandler(ctx, blogAuthor, created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := module.Handler.GetPostHandler(ctx, blogAuthor, created.ID); !errors.Is(err, domainerrors.ErrPostNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
	if _, err := module.Handler.DeletePostHandler(ctx, blogAuthor, created.ID); !errors.Is(err, domainerrors.ErrPostNotFound) {
		t.Fatalf("expected not found on repeat delete, got %v", err)
	}
}

func TestBlogListPaginationDefaults(t *testing.T) {
	module := newBlogModule()
	ctx := context.Background()

	for i := 0; i < 12; i++ {
		if _, err := module.Handler.CreatePostHandler(ctx, blogAuthor, httptransport.CreatePostRequest{
			Title:   "post",
			Content: "content",
		}); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	page, err := module.Handler.ListPostsHandler(ctx, identity.Anonymous, httptransport.ListPostsQueryParams{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if page.Page != 1 || page.Limit != 10 {
		t.Fatalf("expected defaults 1/10, got %d/%d", page.Page, page.Limit)
	}
	if page.Total != 12 || page.TotalPages != 2 {
		t.Fatalf("expected total=12 pages=2, got %d/%d", page.Total, page.TotalPages)
	}
	if len(page.Data) != 10 {
		t.Fatalf("expected 10 items on page 1, got %d", len(page.Data))
	}

	second, err := module.Handler.ListPostsHandler(ctx, identity.Anonymous, httptransport.ListPostsQueryParams{Page: 2})
	if err != nil {
		t.Fatalf("list page 2 failed: %v", err)
	}
	if len(second.Data) != 2 {
		t.Fatalf("expected 2 items on page 2, got %d", len(second.Data))
	}
}

func TestBlogListFiltersByAuthorAndTag(t *testing.T) {
	module := newBlogModule()
	ctx := context.Background()

	if _, err := module.Handler.CreatePostHandler(ctx, blogAuthor, httptransport.CreatePostRequest{
		Title:   "go post",
		Content: "content",
		Tags:    []string{"go"},
	}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := module.Handler.CreatePostHandler(ctx, blogOther, httptransport.CreatePostRequest{
		Title:   "rust post",
		Content: "content",
		Tags:    []string{"rust"},
	}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	byAuthor, err := module.Handler.ListPostsHandler(ctx, identity.Anonymous, httptransport.ListPostsQueryParams{
		Author: blogAuthor.UserID,
	})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if byAuthor.Total != 1 || byAuthor.Data[0].Title != "go post" {
		t.Fatalf("unexpected author filter result %+v", byAuthor)
	}

	byTag, err := module.Handler.ListPostsHandler(ctx, identity.Anonymous, httptransport.ListPostsQueryParams{
		Tag: "rust",
	})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if byTag.Total != 1 || byTag.Data[0].Title != "rust post" {
		t.Fatalf("unexpected tag filter result %+v", byTag)
	}
}
