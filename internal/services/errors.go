package services

import "errors"

var (
	// ErrNotFound covers both a missing row and a row owned by someone
	// else, so callers cannot probe for other users' entities.
	ErrNotFound = errors.New("not found")

	// ErrInvalid marks malformed or rejected input.
	ErrInvalid = errors.New("invalid input")

	// ErrStorage marks a blob read or write failure.
	ErrStorage = errors.New("storage failure")
)
