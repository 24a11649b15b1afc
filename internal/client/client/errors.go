package client

import "errors"

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("asset not found")
	ErrDenied       = errors.New("access denied")
	ErrInvalid      = errors.New("invalid request")
)
