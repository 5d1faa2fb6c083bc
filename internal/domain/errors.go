package domain

import "errors"

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrInvalidDraft     = errors.New("invalid booking draft")
	ErrNoSession        = errors.New("no stored session")
)
