package resumes

import "errors"

var (
	// ErrNotFound indicates a missing record.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates a bad request payload.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnreadableDocument indicates the uploaded file could not be decoded.
	ErrUnreadableDocument = errors.New("unreadable document")
)
