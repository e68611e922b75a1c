package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrDependencyUnavailable = errors.New("dependency unavailable")

	// ErrUpstreamAccess marks private-league rejections from the vendor.
	// Handlers translate it into a hint to authenticate first.
	ErrUpstreamAccess = errors.New("upstream denied access")
)
