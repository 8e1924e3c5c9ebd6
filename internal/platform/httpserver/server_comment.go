package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	commenterrors "inkwell/contexts/publishing/comment-service/domain/errors"
	commenthttp "inkwell/contexts/publishing/comment-service/transport/http"
)

func (s *Server) handleAddComment(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.requireIdentity(w, r)
	if !ok {
		return
	}

	var req commenthttp.AddCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeCommentError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	resp, err := s.comments.Handler.AddCommentHandler(r.Context(), actor, r.PathValue("blog_id"), req)
	if err != nil {
		writeCommentDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleListComments(w http.ResponseWriter, r *http.Request) {
	resp, err := s.comments.Handler.ListCommentsHandler(r.Context(), r.PathValue("blog_id"))
	if err != nil {
		writeCommentDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleEditComment(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.requireIdentity(w, r)
	if !ok {
		return
	}

	var req commenthttp.EditCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeCommentError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	resp, err := s.comments.Handler.EditCommentHandler(r.Context(), actor, r.PathValue("comment_id"), req)
	if err != nil {
		writeCommentDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteComment(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.requireIdentity(w, r)
	if !ok {
		return
	}

	resp, err := s.comments.Handler.DeleteCommentHandler(r.Context(), actor, r.PathValue("comment_id"))
	if err != nil {
		writeCommentDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeCommentDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, commenterrors.ErrCommentNotFound):
		writeCommentError(w, http.StatusNotFound, "Comment not found")
	case errors.Is(err, commenterrors.ErrPostNotFound):
		writeCommentError(w, http.StatusNotFound, "Blog not found")
	case errors.Is(err, commenterrors.ErrContentRequired):
		writeCommentError(w, http.StatusBadRequest, "Content required")
	case errors.Is(err, commenterrors.ErrForbidden):
		writeCommentError(w, http.StatusForbidden, "Forbidden")
	case errors.Is(err, commenterrors.ErrNotAuthenticated):
		writeCommentError(w, http.StatusUnauthorized, "Unauthorized")
	default:
		writeCommentError(w, http.StatusInternalServerError, "internal server error")
	}
}

func writeCommentError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, commenthttp.ErrorResponse{Message: message})
}
