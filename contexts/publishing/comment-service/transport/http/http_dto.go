package httptransport

import "time"

// AuthorRef is the public author reference embedded in comment responses.
type AuthorRef struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// AddCommentRequest is the request body for posting a comment.
type AddCommentRequest struct {
	Content string `json:"content"`
}

// EditCommentRequest is the request body for editing a comment.
type EditCommentRequest struct {
	Content string `json:"content"`
}

// CommentResponse is the public comment shape.
type CommentResponse struct {
	ID        string    `json:"id"`
	PostID    string    `json:"blog_id"`
	Author    AuthorRef `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MessageResponse is the generic success acknowledgement body.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the error body.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}
