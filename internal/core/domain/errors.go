package domain

import "errors"

var (
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrAlreadyVoted       = errors.New("user has already voted")
	ErrCandidateNotFound  = errors.New("candidate not found")
	ErrForbidden          = errors.New("admin access required")
	ErrValidation         = errors.New("validation failed")
)
