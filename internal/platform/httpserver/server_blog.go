package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	blogerrors "inkwell/contexts/publishing/blog-service/domain/errors"
	bloghttp "inkwell/contexts/publishing/blog-service/transport/http"
)

func (s *Server) handleCreatePost(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.requireIdentity(w, r)
	if !ok {
		return
	}

	var req bloghttp.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBlogError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	resp, err := s.posts.Handler.CreatePostHandler(r.Context(), actor, req)
	if err != nil {
		writeBlogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleListPosts(w http.ResponseWriter, r *http.Request) {
	viewer := s.resolveIdentity(r)

	query := r.URL.Query()
	req := bloghttp.ListPostsQueryParams{
		Tag:    query.Get("tag"),
		Author: query.Get("author"),
		Title:  query.Get("title"),
	}
	// Unparseable paging values fall back to the defaults.
	if page, err := strconv.Atoi(query.Get("page")); err == nil {
		req.Page = page
	}
	if limit, err := strconv.Atoi(query.Get("limit")); err == nil {
		req.Limit = limit
	}

	resp, err := s.posts.Handler.ListPostsHandler(r.Context(), viewer, req)
	if err != nil {
		writeBlogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetPost(w http.ResponseWriter, r *http.Request) {
	viewer := s.resolveIdentity(r)

	resp, err := s.posts.Handler.GetPostHandler(r.Context(), viewer, r.PathValue("id"))
	if err != nil {
		writeBlogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdatePost(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.requireIdentity(w, r)
	if !ok {
		return
	}

	var req bloghttp.UpdatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBlogError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	resp, err := s.posts.Handler.UpdatePostHandler(r.Context(), actor, r.PathValue("id"), req)
	if err != nil {
		writeBlogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeletePost(w http.ResponseWriter, r *http.Request) {
	actor, ok := s.requireIdentity(w, r)
	if !ok {
		return
	}

	resp, err := s.posts.Handler.DeletePostHandler(r.Context(), actor, r.PathValue("id"))
	if err != nil {
		writeBlogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeBlogDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, blogerrors.ErrPostNotFound):
		writeBlogError(w, http.StatusNotFound, "Blog not found")
	case errors.Is(err, blogerrors.ErrMissingFields):
		writeBlogError(w, http.StatusBadRequest, "Title and content required")
	case errors.Is(err, blogerrors.ErrForbidden):
		writeBlogError(w, http.StatusForbidden, "Forbidden")
	case errors.Is(err, blogerrors.ErrNotAuthenticated):
		writeBlogError(w, http.StatusUnauthorized, "Unauthorized")
	default:
		writeBlogError(w, http.StatusInternalServerError, "internal server error")
	}
}

func writeBlogError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, bloghttp.ErrorResponse{Message: message})
}
