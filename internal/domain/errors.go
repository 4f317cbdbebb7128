package domain

import "errors"

var (
	// ErrNotFound covers both missing rows and rows owned by another
	// user; callers must not be able to tell the two apart.
	ErrNotFound = errors.New("not found")

	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrOwnerImmutable     = errors.New("owning user cannot be changed")
	ErrMalformedImage     = errors.New("malformed image payload")
)
