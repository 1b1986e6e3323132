package chat

import "errors"

// Domain-specific errors for the chat package.
var (
	ErrInvalidLimit = errors.New("history limit must not be negative")
)
