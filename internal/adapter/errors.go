package adapter

import "errors"

// Sentinel errors returned by adapter methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrInvalidCredentials is returned by Authenticate when the email is
	// unknown or the password does not match.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAccountExists is returned by CreateAccount when an account with the
	// same email is already registered.
	ErrAccountExists = errors.New("account already exists")

	// ErrAccountNotFound is returned by setup operations that reference an
	// unknown account identifier.
	ErrAccountNotFound = errors.New("account not found")

	// ErrBreachLookup is returned when a breach range query fails at the
	// transport level or the response cannot be parsed.
	ErrBreachLookup = errors.New("breach lookup failed")
)
