package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	accounterrors "inkwell/contexts/identity-access/account-service/domain/errors"
	accounthttp "inkwell/contexts/identity-access/account-service/transport/http"
)

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req accounthttp.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAccountError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	resp, err := s.accounts.Handler.RegisterHandler(r.Context(), req)
	if err != nil {
		writeRegisterError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req accounthttp.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAccountError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	resp, err := s.accounts.Handler.LoginHandler(r.Context(), req)
	if err != nil {
		writeLoginError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleLogout acknowledges the logout. Credentials are stateless signed
// tokens, so there is no server-side session to tear down; clients drop
// the token.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireIdentity(w, r); !ok {
		return
	}
	writeJSON(w, http.StatusOK, accounthttp.MessageResponse{Message: "Logged out"})
}

func (s *Server) handleChangeRole(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.requireAdmin(w, r)
	if !ok {
		return
	}

	var req accounthttp.ChangeRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAccountError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	resp, err := s.accounts.Handler.ChangeRoleHandler(r.Context(), actor, r.PathValue("id"), req)
	if err != nil {
		writeChangeRoleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeRegisterError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, accounterrors.ErrMissingFields):
		writeAccountError(w, http.StatusBadRequest, "All fields are required")
	case errors.Is(err, accounterrors.ErrAccountExists):
		writeAccountError(w, http.StatusBadRequest, "User already exists")
	case errors.Is(err, accounterrors.ErrInvalidRole):
		writeAccountError(w, http.StatusBadRequest, "Invalid role")
	default:
		writeAccountError(w, http.StatusInternalServerError, "internal server error")
	}
}

func writeLoginError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, accounterrors.ErrInvalidCredentials):
		writeAccountError(w, http.StatusBadRequest, "Invalid credentials")
	default:
		writeAccountError(w, http.StatusInternalServerError, "internal server error")
	}
}

func writeChangeRoleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, accounterrors.ErrInvalidRole):
		writeAccountError(w, http.StatusBadRequest, "Invalid role")
	// The original surface reports a missing target as a bad request
	// here, not a 404.
	case errors.Is(err, accounterrors.ErrAccountNotFound):
		writeAccountError(w, http.StatusBadRequest, "User not found")
	case errors.Is(err, accounterrors.ErrForbidden):
		writeAccountError(w, http.StatusForbidden, "Forbidden")
	default:
		writeAccountError(w, http.StatusInternalServerError, "internal server error")
	}
}

func writeAccountError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, accounthttp.ErrorResponse{Message: message})
}
