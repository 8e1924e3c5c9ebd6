package httpserver

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	account "inkwell/contexts/identity-access/account-service"
	blog "inkwell/contexts/publishing/blog-service"
	comment "inkwell/contexts/publishing/comment-service"
	"inkwell/internal/platform/token"
	"inkwell/internal/shared/identity"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "inkwell/internal/platform/httpserver/docs"
)

type Server struct {
	mux      *http.ServeMux
	logger   *slog.Logger
	addr     string
	accounts account.Module
	posts    blog.Module
	comments comment.Module
	tokens   *token.Service
}

func New(
	accounts account.Module,
	posts blog.Module,
	comments comment.Module,
	tokens *token.Service,
	logger *slog.Logger,
	addr string,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:      http.NewServeMux(),
		logger:   logger,
		addr:     addr,
		accounts: accounts,
		posts:    posts,
		comments: comments,
		tokens:   tokens,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("GET /api/health", s.handleHealth)

	s.mux.HandleFunc("POST /api/auth/register", s.handleRegister)
	s.mux.HandleFunc("POST /api/auth/login", s.handleLogin)
	s.mux.HandleFunc("POST /api/auth/logout", s.handleLogout)
	s.mux.HandleFunc("PATCH /api/auth/{id}/role", s.handleChangeRole)

	s.mux.HandleFunc("GET /api/blog", s.handleListPosts)
	s.mux.HandleFunc("POST /api/blog", s.handleCreatePost)
	s.mux.HandleFunc("GET /api/blog/{id}", s.handleGetPost)
	s.mux.HandleFunc("PATCH /api/blog/{id}", s.handleUpdatePost)
	s.mux.HandleFunc("DELETE /api/blog/{id}", s.handleDeletePost)

	s.mux.HandleFunc("POST /api/blog/{blog_id}/comments", s.handleAddComment)
	s.mux.HandleFunc("GET /api/blog/{blog_id}/comments", s.handleListComments)
	s.mux.HandleFunc("PATCH /api/blog/{blog_id}/comments/{comment_id}", s.handleEditComment)
	s.mux.HandleFunc("DELETE /api/blog/{blog_id}/comments/{comment_id}", s.handleDeleteComment)

	s.mux.HandleFunc("GET /api/user", s.handleListUsers)
	s.mux.HandleFunc("GET /api/user/me", s.handleGetMe)
	s.mux.HandleFunc("PATCH /api/user/me", s.handleUpdateMe)
	s.mux.HandleFunc("DELETE /api/user/me", s.handleDeleteMe)
	s.mux.HandleFunc("DELETE /api/user/{id}", s.handleDeleteUser)
}

type healthResponse struct {
	Status string `json:"status"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, prefix))
}

// resolveIdentity degrades to the anonymous identity when the request
// carries no usable credential. Read paths personalize, they never reject.
func (s *Server) resolveIdentity(r *http.Request) identity.Identity {
	raw := bearerToken(r)
	if raw == "" {
		return identity.Anonymous
	}
	actor, err := s.tokens.Verify(raw)
	if err != nil {
		return identity.Anonymous
	}
	return actor
}

// requireIdentity rejects requests without a valid credential. A missing,
// malformed, tampered, or expired token all observe the same 401.
func (s *Server) requireIdentity(w http.ResponseWriter, r *http.Request) (identity.Identity, bool) {
	actor, err := s.tokens.Verify(bearerToken(r))
	if err != nil {
		writePlatformMessage(w, http.StatusUnauthorized, "Unauthorized")
		return identity.Anonymous, false
	}
	return actor, true
}

func (s *Server) requireAdmin(w http.ResponseWriter, r *http.Request) (identity.Identity, bool) {
	actor, ok := s.requireIdentity(w, r)
	if !ok {
		return identity.Anonymous, false
	}
	if !actor.IsAdmin() {
		writePlatformMessage(w, http.StatusForbidden, "Forbidden")
		return identity.Anonymous, false
	}
	return actor, true
}

type platformMessage struct {
	Message string `json:"message"`
}

func writePlatformMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, platformMessage{Message: message})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
