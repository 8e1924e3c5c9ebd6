package errors

import "errors"

var (
	ErrPostNotFound     = errors.New("blog not found")
	ErrMissingFields    = errors.New("title and content are required")
	ErrForbidden        = errors.New("forbidden")
	ErrNotAuthenticated = errors.New("authentication required")
)
