package httptransport

import "time"

// AuthorRef is the public author reference embedded in post responses.
type AuthorRef struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// CreatePostRequest is the request body for authoring a post.
type CreatePostRequest struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags,omitempty"`
}

// UpdatePostRequest is the partial-update body. Absent fields are left
// untouched; an empty string counts as absent.
type UpdatePostRequest struct {
	Title   string   `json:"title,omitempty"`
	Content string   `json:"content,omitempty"`
	Tags    []string `json:"tags,omitempty"`
}

// ListPostsQueryParams carries the parsed listing query string.
type ListPostsQueryParams struct {
	Tag    string `json:"tag,omitempty"`
	Author string `json:"author,omitempty"`
	Title  string `json:"title,omitempty"`
	Page   int    `json:"page,omitempty"`
	Limit  int    `json:"limit,omitempty"`
}

// PostResponse is the public post shape. Edit is viewer-relative and
// true only for the post's author.
type PostResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags"`
	CreatedBy AuthorRef `json:"created_by"`
	UpdatedBy string    `json:"updated_by,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Edit      bool      `json:"edit"`
}

// ListPostsResponse is one page of the newest-first listing.
type ListPostsResponse struct {
	Data       []PostResponse `json:"data"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	Total      int64          `json:"total"`
	TotalPages int            `json:"total_pages"`
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
