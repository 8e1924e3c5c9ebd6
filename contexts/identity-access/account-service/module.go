package account

import (
	"log/slog"

	bcryptadapter "inkwell/contexts/identity-access/account-service/adapters/bcrypt"
	httpadapter "inkwell/contexts/identity-access/account-service/adapters/http"
	"inkwell/contexts/identity-access/account-service/adapters/memory"
	"inkwell/contexts/identity-access/account-service/application/commands"
	"inkwell/contexts/identity-access/account-service/application/queries"
	"inkwell/contexts/identity-access/account-service/ports"
)

// Module is the account-service composition root exposed to runtime wiring.
type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

// Dependencies captures all runtime ports/config required by NewModule.
type Dependencies struct {
	Repository  ports.Repository
	Passwords   ports.PasswordHasher
	Tokens      ports.TokenIssuer
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

// NewModule wires account use-cases and the transport handler using
// explicit ports.
func NewModule(deps Dependencies) Module {
	register := commands.RegisterUseCase{
		Repository:  deps.Repository,
		Passwords:   deps.Passwords,
		Clock:       deps.Clock,
		IDGenerator: deps.IDGenerator,
		Logger:      deps.Logger,
	}
	login := commands.LoginUseCase{
		Repository: deps.Repository,
		Passwords:  deps.Passwords,
		Tokens:     deps.Tokens,
		Logger:     deps.Logger,
	}
	changeRole := commands.ChangeRoleUseCase{
		Repository: deps.Repository,
		Clock:      deps.Clock,
		Logger:     deps.Logger,
	}
	updateProfile := commands.UpdateProfileUseCase{
		Repository: deps.Repository,
		Clock:      deps.Clock,
		Logger:     deps.Logger,
	}
	deleteAccount := commands.DeleteAccountUseCase{
		Repository: deps.Repository,
		Clock:      deps.Clock,
		Logger:     deps.Logger,
	}
	getProfile := queries.GetProfileUseCase{
		Repository: deps.Repository,
		Logger:     deps.Logger,
	}
	listAccounts := queries.ListAccountsUseCase{
		Repository: deps.Repository,
		Logger:     deps.Logger,
	}

	handler := httpadapter.Handler{
		Register:      register,
		Login:         login,
		ChangeRole:    changeRole,
		UpdateProfile: updateProfile,
		DeleteAccount: deleteAccount,
		GetProfile:    getProfile,
		ListAccounts:  listAccounts,
		Logger:        deps.Logger,
	}

	return Module{
		Handler: handler,
	}
}

// NewInMemoryModule builds a development/testing module with in-memory
// persistence and a minimal-cost hasher. The token issuer is injected so
// tests can share one signing secret across modules.
func NewInMemoryModule(logger *slog.Logger, tokens ports.TokenIssuer) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Repository:  store,
		Passwords:   bcryptadapter.Hasher{Cost: 4},
		Tokens:      tokens,
		Clock:       store,
		IDGenerator: store,
		Logger:      logger,
	})
	module.Store = store
	return module
}
