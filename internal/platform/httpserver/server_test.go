package httpserver

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	account "inkwell/contexts/identity-access/account-service"
	blog "inkwell/contexts/publishing/blog-service"
	comment "inkwell/contexts/publishing/comment-service"
	"inkwell/internal/platform/token"
)

func newTestServer() *Server {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tokens := token.NewService([]byte("test-secret"), time.Hour, nil)
	accounts := account.NewInMemoryModule(logger, tokens)
	posts := blog.NewInMemoryModule(logger, accounts.Store)
	comments := comment.NewInMemoryModule(logger, posts.Store, accounts.Store)
	return New(accounts, posts, comments, tokens, logger, ":0")
}

func doJSON(t *testing.T, s *Server, method, path, bearer string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal request: %v", err)
		}
		body = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	rr := httptest.NewRecorder()
	s.mux.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", rr.Body.String(), err)
	}
	return out
}

// registerAndLogin creates an account and returns its bearer token.
func registerAndLogin(t *testing.T, s *Server, username, email, role string) string {
	t.Helper()

	rr := doJSON(t, s, http.MethodPost, "/api/auth/register", "", map[string]any{
		"username": username,
		"email":    email,
		"password": "hunter2!",
		"role":     role,
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("register %s: expected 201, got %d body=%s", username, rr.Code, rr.Body.String())
	}

	rr = doJSON(t, s, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email":    email,
		"password": "hunter2!",
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("login %s: expected 200, got %d body=%s", username, rr.Code, rr.Body.String())
	}
	tokenValue, _ := decodeBody(t, rr)["token"].(string)
	if tokenValue == "" {
		t.Fatalf("login %s: no token in body %s", username, rr.Body.String())
	}
	return tokenValue
}

// createPost authors a post and returns its id.
func createPost(t *testing.T, s *Server, bearer, title string) string {
	t.Helper()

	rr := doJSON(t, s, http.MethodPost, "/api/blog", bearer, map[string]any{
		"title":   title,
		"content": "some content",
		"tags":    []string{"go"},
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("create post: expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}
	id, _ := decodeBody(t, rr)["id"].(string)
	if id == "" {
		t.Fatalf("create post: no id in body %s", rr.Body.String())
	}
	return id
}

// addComment posts a comment and returns its id.
func addComment(t *testing.T, s *Server, bearer, postID, content string) string {
	t.Helper()

	rr := doJSON(t, s, http.MethodPost, "/api/blog/"+postID+"/comments", bearer, map[string]any{
		"content": content,
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("add comment: expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}
	id, _ := decodeBody(t, rr)["id"].(string)
	if id == "" {
		t.Fatalf("add comment: no id in body %s", rr.Body.String())
	}
	return id
}
