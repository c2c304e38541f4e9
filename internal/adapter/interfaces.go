// Package adapter contains the client-side gateways to external
// collaborators: the authentication backend and the breach-lookup service.
//
// The backend is currently a simulated in-process implementation with a
// fixed latency per call; the interfaces define the contract a real remote
// backend must satisfy when one is built.
package adapter

import (
	"context"

	"github.com/securevault/securevault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// ServerAdapter is the authentication backend collaborator. Every call may
// suspend for the backend's latency before resolving; implementations must
// honor ctx cancellation during the wait.
//
// Sessions returned by the adapter carry the authoritative IsFirstLogin and
// HasTwoFactor flags; callers never infer or hardcode them.
type ServerAdapter interface {
	// Authenticate verifies email+password and returns the account session.
	// Returns ErrInvalidCredentials for unknown accounts or wrong passwords.
	Authenticate(ctx context.Context, email, password string) (models.Session, error)

	// CreateAccount registers a new account. The returned session always has
	// IsFirstLogin=true and HasTwoFactor=false. Returns ErrAccountExists if
	// the email is already registered.
	CreateAccount(ctx context.Context, email, password string) (models.Session, error)

	// SetupMasterPassword records the master password for the account and
	// clears its first-login flag. Returns the updated session.
	SetupMasterPassword(ctx context.Context, userID, masterPassword string) (models.Session, error)

	// SetupTwoFactor records the TOTP secret for the account and sets its
	// two-factor flag. Returns the updated session.
	SetupTwoFactor(ctx context.Context, userID, secret string) (models.Session, error)
}

// BreachChecker is the breach-lookup collaborator. Implementations report
// how many times a password appears in known breach corpora (0 = not found).
type BreachChecker interface {
	CheckPassword(ctx context.Context, password string) (int, error)
}
