package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrValidation is the root of all field-level validation failures.
	// The validator wraps every field sentinel below with it, so callers can
	// match the whole family with errors.Is(err, ErrValidation).
	ErrValidation = errors.New("validation failed")

	ErrEmptyTitle       = errors.New("title is required")
	ErrEmptyUsername    = errors.New("username is required")
	ErrEmptyPassword    = errors.New("password is required")
	ErrTitleTooLong     = errors.New("title exceeds allowed length")
	ErrUsernameTooLong  = errors.New("username exceeds allowed length")
	ErrPasswordTooLong  = errors.New("password exceeds allowed length")
	ErrUnsafeCharacters = errors.New("input contains control characters")
)
