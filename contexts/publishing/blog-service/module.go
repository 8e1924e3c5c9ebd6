package blog

import (
	"log/slog"

	httpadapter "inkwell/contexts/publishing/blog-service/adapters/http"
	"inkwell/contexts/publishing/blog-service/adapters/memory"
	"inkwell/contexts/publishing/blog-service/application/commands"
	"inkwell/contexts/publishing/blog-service/application/queries"
	"inkwell/contexts/publishing/blog-service/ports"
)

// Module is the blog-service composition root exposed to runtime wiring.
type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

// Dependencies captures all runtime ports/config required by NewModule.
type Dependencies struct {
	Repository  ports.Repository
	Accounts    ports.AccountDirectory
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

// NewModule wires blog use-cases and the transport handler using explicit
// ports.
func NewModule(deps Dependencies) Module {
	createPost := commands.CreatePostUseCase{
		Repository:  deps.Repository,
		Clock:       deps.Clock,
		IDGenerator: deps.IDGenerator,
		Logger:      deps.Logger,
	}
	updatePost := commands.UpdatePostUseCase{
		Repository: deps.Repository,
		Clock:      deps.Clock,
		Logger:     deps.Logger,
	}
	deletePost := commands.DeletePostUseCase{
		Repository: deps.Repository,
		Clock:      deps.Clock,
		Logger:     deps.Logger,
	}
	getPost := queries.GetPostUseCase{
		Repository: deps.Repository,
		Accounts:   deps.Accounts,
		Logger:     deps.Logger,
	}
	listPosts := queries.ListPostsUseCase{
		Repository: deps.Repository,
		Accounts:   deps.Accounts,
		Logger:     deps.Logger,
	}

	handler := httpadapter.Handler{
		CreatePost: createPost,
		UpdatePost: updatePost,
		DeletePost: deletePost,
		GetPost:    getPost,
		ListPosts:  listPosts,
		Logger:     deps.Logger,
	}

	return Module{
		Handler: handler,
	}
}

// NewInMemoryModule builds a development/testing module with in-memory
// persistence. The account directory is injected so tests can share the
// account module's store.
func NewInMemoryModule(logger *slog.Logger, accounts ports.AccountDirectory) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Repository:  store,
		Accounts:    accounts,
		Clock:       store,
		IDGenerator: store,
		Logger:      logger,
	})
	module.Store = store
	return module
}
