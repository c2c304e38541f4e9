package service

import "errors"

var (
	// ErrInvalidState is returned when an operation is called in a state
	// where it is not permitted (e.g. Login while already signed in).
	ErrInvalidState = errors.New("operation not allowed in current state")

	// ErrInvalidTwoFactorCode is returned when the submitted TOTP code does
	// not match the pending enrollment secret.
	ErrInvalidTwoFactorCode = errors.New("invalid two-factor code")

	// ErrSessionRestore is returned when a persisted session snapshot
	// cannot be resumed. The snapshot is cleared and the state machine
	// stays unauthenticated.
	ErrSessionRestore = errors.New("unable to restore session")

	// ErrCorruptSnapshot is returned when a persisted encrypted snapshot
	// fails decryption or decoding. Callers fail closed.
	ErrCorruptSnapshot = errors.New("corrupt snapshot")

	// ErrCredentialNotFound is returned when a write operation targets a
	// vault record that does not exist.
	ErrCredentialNotFound = errors.New("credential not found")
)
