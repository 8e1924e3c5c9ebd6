package comment

import (
	"log/slog"

	httpadapter "inkwell/contexts/publishing/comment-service/adapters/http"
	"inkwell/contexts/publishing/comment-service/adapters/memory"
	"inkwell/contexts/publishing/comment-service/application/commands"
	"inkwell/contexts/publishing/comment-service/application/queries"
	"inkwell/contexts/publishing/comment-service/ports"
)

// Module is the comment-service composition root exposed to runtime wiring.
type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

// Dependencies captures all runtime ports/config required by NewModule.
type Dependencies struct {
	Repository  ports.Repository
	Posts       ports.PostDirectory
	Accounts    ports.AccountDirectory
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

// NewModule wires comment use-cases and the transport handler using explicit
// ports.
func NewModule(deps Dependencies) Module {
	addComment := commands.AddCommentUseCase{
		Repository:  deps.Repository,
		Posts:       deps.Posts,
		Clock:       deps.Clock,
		IDGenerator: deps.IDGenerator,
		Logger:      deps.Logger,
	}
	editComment := commands.EditCommentUseCase{
		Repository: deps.Repository,
		Clock:      deps.Clock,
		Logger:     deps.Logger,
	}
	deleteComment := commands.DeleteCommentUseCase{
		Repository: deps.Repository,
		Clock:      deps.Clock,
		Logger:     deps.Logger,
	}
	listComments := queries.ListCommentsUseCase{
		Repository: deps.Repository,
		Accounts:   deps.Accounts,
		Logger:     deps.Logger,
	}

	handler := httpadapter.Handler{
		AddComment:    addComment,
		EditComment:   editComment,
		DeleteComment: deleteComment,
		ListComments:  listComments,
		Logger:        deps.Logger,
	}

	return Module{
		Handler: handler,
	}
}

// NewInMemoryModule builds a development/testing module with in-memory
// persistence. Post and account directories are injected so tests can share
// the sibling modules' stores.
func NewInMemoryModule(logger *slog.Logger, posts ports.PostDirectory, accounts ports.AccountDirectory) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Repository:  store,
		Posts:       posts,
		Accounts:    accounts,
		Clock:       store,
		IDGenerator: store,
		Logger:      logger,
	})
	module.Store = store
	return module
}
