package service

import (
	"context"

	"github.com/securevault/securevault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthSessionService owns the authentication state machine. All transitions
// happen through its operations; other components only read the current
// state and session. Implementations are safe for concurrent use.
type AuthSessionService interface {
	// Login authenticates an existing account against the backend.
	// Valid only in StateUnauthenticated; the service holds
	// StateAuthenticating for the whole backend call. On success the state
	// derived from the returned session flags is entered and an encrypted
	// session snapshot is persisted. Cancelling ctx aborts the call and
	// returns the state machine to StateUnauthenticated.
	Login(ctx context.Context, email, password string) (models.Session, error)

	// Register creates a new account. Same state discipline as Login; the
	// resulting session always carries IsFirstLogin=true, so the machine
	// lands in StateFirstLogin.
	Register(ctx context.Context, email, password string) (models.Session, error)

	// CompleteMasterPasswordSetup finishes first-login onboarding.
	// Valid only in StateFirstLogin. Lands in StateActive, or in
	// StateNeedsTwoFactor when the backend mandates enrollment.
	CompleteMasterPasswordSetup(ctx context.Context, masterPassword string) (models.Session, error)

	// TwoFactorEnrollment returns the pending TOTP secret and its otpauth
	// URL for authenticator enrollment. Valid while the session has
	// HasTwoFactor=false, in StateNeedsTwoFactor or StateActive; the secret
	// is generated on first call and stable until setup completes or the
	// session ends.
	TwoFactorEnrollment(ctx context.Context) (secret, url string, err error)

	// CompleteTwoFactorSetup verifies code against the pending TOTP secret
	// and, if valid, records enrollment with the backend. Same validity
	// window as TwoFactorEnrollment.
	CompleteTwoFactorSetup(ctx context.Context, code string) (models.Session, error)

	// Logout destroys the current session, clears the persisted snapshot,
	// and returns to StateUnauthenticated. Idempotent.
	Logout(ctx context.Context) error

	// RestoreSession attempts to resume the previously persisted session.
	// Valid only in StateUnauthenticated. Any defect in the snapshot
	// (corruption, failed decryption, invalid or expired token) clears it
	// and leaves the machine in StateUnauthenticated.
	RestoreSession(ctx context.Context) (models.Session, error)

	// State returns the current state of the machine.
	State() models.SessionState

	// Current returns a copy of the live session, or false when no user is
	// signed in.
	Current() (models.Session, bool)
}

// VaultService is the in-memory credential collection for the signed-in
// user. Implementations are safe for concurrent use.
type VaultService interface {
	// List returns fresh copies of the stored credentials in insertion
	// order. A non-empty filter selects records whose title, username, or
	// website contains it case-insensitively.
	List(filter string) []models.Credential

	// Add validates input, assigns an id and timestamps, appends the record,
	// and returns the stored copy.
	Add(ctx context.Context, input models.CredentialInput) (models.Credential, error)

	// Remove deletes the record with the given id. Removing an unknown id
	// is a no-op.
	Remove(id string)

	// ToggleVisibility flips the reveal flag for the given id and returns
	// the new value. Visibility is per-record, off by default, and never
	// persisted.
	ToggleVisibility(id string) bool

	// IsVisible reports whether the record's password is currently revealed.
	IsVisible(id string) bool

	// MarkCompromised sets the compromised flag on the record with the
	// given id. Returns ErrCredentialNotFound for unknown ids.
	MarkCompromised(id string, compromised bool) error

	// Reset discards all records and visibility state. Called at the
	// logout boundary.
	Reset()

	// Snapshot encrypts the whole collection and persists it for the given
	// user. Visibility state is excluded.
	Snapshot(ctx context.Context, userID string) error

	// Load replaces the collection with the decrypted persisted snapshot
	// for the given user. A missing snapshot yields an empty vault; a
	// corrupt one is deleted from storage and fails with
	// ErrCorruptSnapshot, leaving the vault empty.
	Load(ctx context.Context, userID string) error
}

// BreachService checks stored passwords against a breach corpus and marks
// affected records.
type BreachService interface {
	// CheckVault runs every stored password through the breach checker and
	// sets the compromised flag on records whose password was found.
	// Returns the number of compromised records.
	CheckVault(ctx context.Context) (int, error)
}
