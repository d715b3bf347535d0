package service

import "errors"

var (
	// ErrNotFound covers both absence and ownership mismatch; the two are
	// deliberately indistinguishable to callers.
	ErrNotFound = errors.New("resource not found")

	// ErrCategoryNotFound signals a request referencing a category the
	// caller does not own or that does not exist.
	ErrCategoryNotFound = errors.New("category not found")
)
