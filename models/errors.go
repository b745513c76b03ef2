package models

import "errors"

// Constraint violation categories. Validation hooks wrap these with %w so
// callers can classify failures with errors.Is and map them to responses.
var (
	ErrUniquenessViolation  = errors.New("uniqueness violation")
	ErrReferentialViolation = errors.New("referential integrity violation")
	ErrDomainCheckViolation = errors.New("domain check violation")
	ErrNotNullViolation     = errors.New("not null violation")
)
