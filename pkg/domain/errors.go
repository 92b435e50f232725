package domain

import "errors"

// Common storage-level errors. Business failures live in the account package.
var (
	// ErrNotFound is returned when a requested record is not found
	ErrNotFound = errors.New("resource not found")
	// ErrAlreadyExists is returned when trying to insert a record whose id is taken
	ErrAlreadyExists = errors.New("resource already exists")
)
