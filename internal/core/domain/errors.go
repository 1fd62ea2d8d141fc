package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrMetadataUnavailable indicates the book-metadata API could not be
	// reached. The incremental search core absorbs this via the local
	// fallback scan; it surfaces only from one-shot CLI/MCP paths.
	ErrMetadataUnavailable = errors.New("metadata service unavailable")

	// ErrRateLimited indicates the metadata API rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")
)
