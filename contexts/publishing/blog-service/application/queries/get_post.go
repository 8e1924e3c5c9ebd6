package queries

import (
	"context"
	"log/slog"

	application "inkwell/contexts/publishing/blog-service/application"
	"inkwell/contexts/publishing/blog-service/domain/entities"
	"inkwell/contexts/publishing/blog-service/ports"
	"inkwell/internal/shared/identity"
)

// PostView is a post annotated for one viewer: the resolved author
// username and the viewer-relative edit flag.
type PostView struct {
	Post           entities.Post
	AuthorUsername string
	Editable       bool
}

// GetPostUseCase returns one active post personalized for the viewer.
// The viewer may be anonymous; the edit flag is then false.
type GetPostUseCase struct {
	Repository ports.Repository
	Accounts   ports.AccountDirectory
	Logger     *slog.Logger
}

func (u GetPostUseCase) Execute(ctx context.Context, postID string, viewer identity.Identity) (PostView, error) {
	post, err := u.Repository.GetPost(ctx, postID)
	if err != nil {
		return PostView{}, err
	}
	return PostView{
		Post:           post,
		AuthorUsername: u.resolveUsername(ctx, post.CreatedBy),
		Editable:       identity.Editable(viewer, post.CreatedBy),
	}, nil
}

// resolveUsername degrades to an empty username on directory failures so a
// public read never breaks on a missing author row.
func (u GetPostUseCase) resolveUsername(ctx context.Context, accountID string) string {
	if u.Accounts == nil {
		return ""
	}
	username, err := u.Accounts.Username(ctx, accountID)
	if err != nil {
		application.ResolveLogger(u.Logger).Warn("author lookup failed",
			"event", "blog_author_lookup_failed",
			"module", "publishing/blog-service",
			"layer", "application",
			"account_id", accountID,
			"error", err.Error(),
		)
		return ""
	}
	return username
}
