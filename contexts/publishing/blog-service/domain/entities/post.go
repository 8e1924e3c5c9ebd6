package entities

import "time"

// Post is a blog post. CreatedBy is set once from the authenticated
// identity at creation and never changes; Deleted is monotonic.
type Post struct {
	PostID    string    `json:"post_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags"`
	CreatedBy string    `json:"created_by"`
	UpdatedBy string    `json:"updated_by,omitempty"`
	DeletedBy string    `json:"deleted_by,omitempty"`
	Deleted   bool      `json:"deleted"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
