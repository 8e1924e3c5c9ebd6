package entities

import "time"

// Comment is a reply on a post. PostID and AuthorID are immutable after
// creation; Deleted is monotonic and stamps DeletedAt.
type Comment struct {
	CommentID string     `json:"comment_id"`
	PostID    string     `json:"post_id"`
	AuthorID  string     `json:"author_id"`
	Content   string     `json:"content"`
	Deleted   bool       `json:"deleted"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
