package errors

import "errors"

var (
	ErrCommentNotFound  = errors.New("comment not found")
	ErrPostNotFound     = errors.New("blog not found")
	ErrContentRequired  = errors.New("content is required")
	ErrForbidden        = errors.New("forbidden")
	ErrNotAuthenticated = errors.New("authentication required")
)
