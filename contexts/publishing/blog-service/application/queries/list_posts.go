package queries

import (
	"context"
	"log/slog"

	application "inkwell/contexts/publishing/blog-service/application"
	"inkwell/contexts/publishing/blog-service/ports"
	"inkwell/internal/shared/identity"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// ListPostsQuery narrows the public listing. All filters are optional.
type ListPostsQuery struct {
	Tag    string
	Author string
	Title  string
	Page   int
	Limit  int
}

// PostPage is one page of the newest-first listing plus pagination totals.
type PostPage struct {
	Items      []PostView
	Page       int
	Limit      int
	Total      int64
	TotalPages int
}

// ListPostsUseCase returns active posts for any viewer, annotating each
// item with the viewer-relative edit flag.
type ListPostsUseCase struct {
	Repository ports.Repository
	Accounts   ports.AccountDirectory
	Logger     *slog.Logger
}

func (u ListPostsUseCase) Execute(ctx context.Context, query ListPostsQuery, viewer identity.Identity) (PostPage, error) {
	logger := application.ResolveLogger(u.Logger)

	page := query.Page
	if page <= 0 {
		page = defaultPage
	}
	limit := query.Limit
	if limit <= 0 {
		limit = defaultLimit
	}

	posts, total, err := u.Repository.ListPosts(ctx, ports.PostListFilter{
		Tag:        query.Tag,
		AuthorID:   query.Author,
		TitleQuery: query.Title,
		Page:       page,
		Limit:      limit,
	})
	if err != nil {
		logger.Error("list posts failed",
			"event", "blog_list_failed",
			"module", "publishing/blog-service",
			"layer", "application",
			"error", err.Error(),
		)
		return PostPage{}, err
	}

	usernames := make(map[string]string, len(posts))
	items := make([]PostView, 0, len(posts))
	for _, post := range posts {
		username, ok := usernames[post.CreatedBy]
		if !ok {
			username = u.resolveUsername(ctx, post.CreatedBy)
			usernames[post.CreatedBy] = username
		}
		items = append(items, PostView{
			Post:           post,
			AuthorUsername: username,
			Editable:       identity.Editable(viewer, post.CreatedBy),
		})
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return PostPage{
		Items:      items,
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}, nil
}

func (u ListPostsUseCase) resolveUsername(ctx context.Context, accountID string) string {
	if u.Accounts == nil {
		return ""
	}
	username, err := u.Accounts.Username(ctx, accountID)
	if err != nil {
		return ""
	}
	return username
}
