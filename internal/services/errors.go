package services

import "errors"

// Outcomes the presentation layer needs to tell apart. Anything else that
// comes back from a service is a persistence failure passed through as-is.
var (
	ErrNotFound            = errors.New("not found")
	ErrAlreadyEnrolled     = errors.New("already enrolled in this challenge")
	ErrAlreadyCompleted    = errors.New("already completed")
	ErrInvalidResponse     = errors.New("task requires a written response")
	ErrInvalidBrandType    = errors.New("unknown brand type")
	ErrNotEntitled         = errors.New("challenge requires a pro plan")
	ErrEnrollmentNotActive = errors.New("enrollment is not active")
)
