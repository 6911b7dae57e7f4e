package service

import "errors"

// Sentinel errors the controllers translate to HTTP statuses. Services wrap
// them with context via fmt.Errorf("...: %w", Err...).
var (
	// ErrNotFound: a referenced assessment, user, or question is absent.
	ErrNotFound = errors.New("not found")
	// ErrConflict: scoring an already-completed assessment, starting a
	// second in-progress assessment, or registering a taken email.
	ErrConflict = errors.New("conflict")
	// ErrValidation: a submission that fails the completeness or bounds
	// checks, or otherwise malformed user input.
	ErrValidation = errors.New("validation failed")
	// ErrUnauthorized: bad credentials.
	ErrUnauthorized = errors.New("unauthorized")
)
