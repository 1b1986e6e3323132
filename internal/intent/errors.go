package intent

import "errors"

var (
	ErrEmptyCatalog = errors.New("intent catalog has no entries")
	ErrDuplicateTag = errors.New("intent catalog has duplicate tags")
)
