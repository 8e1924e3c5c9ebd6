package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	accounterrors "inkwell/contexts/identity-access/account-service/domain/errors"
	accounthttp "inkwell/contexts/identity-access/account-service/transport/http"
	"inkwell/internal/shared/identity"
)

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.requireAdmin(w, r)
	if !ok {
		return
	}

	resp, err := s.accounts.Handler.ListAccountsHandler(r.Context(), actor)
	if err != nil {
		writeProfileError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetMe(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.requireIdentity(w, r)
	if !ok {
		return
	}

	resp, err := s.accounts.Handler.GetProfileHandler(r.Context(), actor)
	if err != nil {
		writeProfileError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateMe(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.requireIdentity(w, r)
	if !ok {
		return
	}

	var req accounthttp.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAccountError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	resp, err := s.accounts.Handler.UpdateProfileHandler(r.Context(), actor, req)
	if err != nil {
		writeUpdateProfileError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteMe(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.requireIdentity(w, r)
	if !ok {
		return
	}
	s.deleteAccount(w, r, actor, actor.UserID)
}

func (s *Server) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.requireIdentity(w, r)
	if !ok {
		return
	}
	s.deleteAccount(w, r, actor, r.PathValue("id"))
}

func (s *Server) deleteAccount(w http.ResponseWriter, r *http.Request, actor identity.Identity, accountID string) {
	resp, err := s.accounts.Handler.DeleteAccountHandler(r.Context(), actor, accountID)
	if err != nil {
		writeDeleteAccountError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeProfileError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, accounterrors.ErrAccountNotFound):
		writeAccountError(w, http.StatusNotFound, "User not found")
	case errors.Is(err, accounterrors.ErrForbidden):
		writeAccountError(w, http.StatusForbidden, "Forbidden")
	default:
		writeAccountError(w, http.StatusInternalServerError, "internal server error")
	}
}

func writeUpdateProfileError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, accounterrors.ErrNoUpdates):
		writeAccountError(w, http.StatusBadRequest, "No updates provided")
	// Username/email collisions on a patch report a generic bad request.
	case errors.Is(err, accounterrors.ErrAccountExists):
		writeAccountError(w, http.StatusBadRequest, "Invalid input")
	case errors.Is(err, accounterrors.ErrAccountNotFound):
		writeAccountError(w, http.StatusNotFound, "User not found")
	case errors.Is(err, accounterrors.ErrForbidden):
		writeAccountError(w, http.StatusForbidden, "Forbidden")
	default:
		writeAccountError(w, http.StatusInternalServerError, "internal server error")
	}
}

func writeDeleteAccountError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, accounterrors.ErrAccountNotFound):
		writeAccountError(w, http.StatusNotFound, "User not found or already deleted")
	case errors.Is(err, accounterrors.ErrForbidden):
		writeAccountError(w, http.StatusForbidden, "Forbidden")
	default:
		writeAccountError(w, http.StatusInternalServerError, "internal server error")
	}
}
