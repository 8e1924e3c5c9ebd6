package httpadapter

import (
	"context"
	"log/slog"

	application "inkwell/contexts/identity-access/account-service/application"
	"inkwell/contexts/identity-access/account-service/application/commands"
	"inkwell/contexts/identity-access/account-service/application/queries"
	"inkwell/contexts/identity-access/account-service/domain/entities"
	httptransport "inkwell/contexts/identity-access/account-service/transport/http"
	"inkwell/internal/shared/identity"
)

// Handler maps HTTP DTOs to application commands/queries.
type Handler struct {
	Register      commands.RegisterUseCase
	Login         commands.LoginUseCase
	ChangeRole    commands.ChangeRoleUseCase
	UpdateProfile commands.UpdateProfileUseCase
	DeleteAccount commands.DeleteAccountUseCase
	GetProfile    queries.GetProfileUseCase
	ListAccounts  queries.ListAccountsUseCase
	Logger        *slog.Logger
}

// RegisterHandler creates a new account.
func (h Handler) RegisterHandler(ctx context.Context, request httptransport.RegisterRequest) (httptransport.MessageResponse, error) {
	logger := application.ResolveLogger(h.Logger)
	logger.Debug("http register received",
		"event", "account_http_register_received",
		"module", "identity-access/account-service",
		"layer", "transport",
		"username", request.Username,
	)

	_, err := h.Register.Execute(ctx, commands.RegisterCommand{
		Username: request.Username,
		Email:    request.Email,
		Password: request.Password,
		Role:     identity.Role(request.Role),
	})
	if err != nil {
		return httptransport.MessageResponse{}, err
	}
	return httptransport.MessageResponse{Message: "User registered successfully"}, nil
}

// LoginHandler authenticates credentials and returns a token plus the user.
func (h Handler) LoginHandler(ctx context.Context, request httptransport.LoginRequest) (httptransport.LoginResponse, error) {
	result, err := h.Login.Execute(ctx, commands.LoginCommand{
		Email:    request.Email,
		Password: request.Password,
	})
	if err != nil {
		return httptransport.LoginResponse{}, err
	}
	return httptransport.LoginResponse{
		Token: result.Token,
		User: httptransport.AccountSummary{
			Username: result.Account.Username,
			Email:    result.Account.Email,
			Role:     string(result.Account.Role),
		},
	}, nil
}

// ChangeRoleHandler applies an admin role update.
func (h Handler) ChangeRoleHandler(
	ctx context.Context,
	actor identity.Identity,
	accountID string,
	request httptransport.ChangeRoleRequest,
) (httptransport.MessageResponse, error) {
	err := h.ChangeRole.Execute(ctx, commands.ChangeRoleCommand{
		Actor:     actor,
		AccountID: accountID,
		Role:      identity.Role(request.Role),
	})
	if err != nil {
		return httptransport.MessageResponse{}, err
	}
	return httptransport.MessageResponse{Message: "User role updated successfully"}, nil
}

// GetProfileHandler returns the caller's own account.
func (h Handler) GetProfileHandler(ctx context.Context, actor identity.Identity) (httptransport.AccountResponse, error) {
	account, err := h.GetProfile.Execute(ctx, actor)
	if err != nil {
		return httptransport.AccountResponse{}, err
	}
	return toAccountResponse(account), nil
}

// UpdateProfileHandler patches the caller's own username/email.
func (h Handler) UpdateProfileHandler(
	ctx context.Context,
	actor identity.Identity,
	request httptransport.UpdateProfileRequest,
) (httptransport.AccountResponse, error) {
	account, err := h.UpdateProfile.Execute(ctx, commands.UpdateProfileCommand{
		Actor:    actor,
		Username: request.Username,
		Email:    request.Email,
	})
	if err != nil {
		return httptransport.AccountResponse{}, err
	}
	return toAccountResponse(account), nil
}

// DeleteAccountHandler soft-deletes the target account.
func (h Handler) DeleteAccountHandler(
	ctx context.Context,
	actor identity.Identity,
	accountID string,
) (httptransport.MessageResponse, error) {
	if err := h.DeleteAccount.Execute(ctx, commands.DeleteAccountCommand{
		Actor:     actor,
		AccountID: accountID,
	}); err != nil {
		return httptransport.MessageResponse{}, err
	}
	return httptransport.MessageResponse{Message: "User soft deleted successfully"}, nil
}

// ListAccountsHandler returns all active accounts for admins.
func (h Handler) ListAccountsHandler(ctx context.Context, actor identity.Identity) ([]httptransport.AccountResponse, error) {
	accounts, err := h.ListAccounts.Execute(ctx, actor)
	if err != nil {
		return nil, err
	}
	items := make([]httptransport.AccountResponse, 0, len(accounts))
	for _, account := range accounts {
		items = append(items, toAccountResponse(account))
	}
	return items, nil
}

func toAccountResponse(account entities.Account) httptransport.AccountResponse {
	return httptransport.AccountResponse{
		ID:       account.AccountID,
		Username: account.Username,
		Email:    account.Email,
		Role:     string(account.Role),
	}
}
