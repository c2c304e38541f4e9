package models

import "time"

// SessionState enumerates the states of the authentication state machine.
// Transitions are driven exclusively by the auth session service; other
// components only read the current state.
type SessionState int

const (
	// StateUnauthenticated is the initial state: no user is signed in and
	// no vault access is permitted.
	StateUnauthenticated SessionState = iota

	// StateAuthenticating is the transient state held for the full duration
	// of a pending login or register call against the backend.
	StateAuthenticating

	// StateFirstLogin is entered after registration: the account exists but
	// the user has not yet completed master-password setup. Routing layers
	// must force the user into the setup flow from this state.
	StateFirstLogin

	// StateNeedsTwoFactor is entered when the backend mandates two-factor
	// enrollment before full access. Backends that treat enrollment as
	// optional never produce it; those sessions go straight to StateActive.
	StateNeedsTwoFactor

	// StateActive is the only state in which vault operations are valid.
	StateActive
)

// String returns a short lowercase label for logging.
func (s SessionState) String() string {
	switch s {
	case StateUnauthenticated:
		return "unauthenticated"
	case StateAuthenticating:
		return "authenticating"
	case StateFirstLogin:
		return "first_login"
	case StateNeedsTwoFactor:
		return "needs_two_factor"
	case StateActive:
		return "active"
	default:
		return "unknown"
	}
}

// Session represents the authenticated identity and security-setup progress
// for the current user. Exactly one Session is live per session context;
// setup operations mutate it in place so its identity is preserved until
// logout destroys it.
type Session struct {
	// UserID is the opaque account identifier assigned by the backend.
	// Stable for the lifetime of an account.
	UserID string `json:"user_id"`

	// Email is the login key and display identity of the user.
	Email string `json:"email"`

	// IsFirstLogin is true immediately after registration and becomes false
	// only after master-password setup completes.
	IsFirstLogin bool `json:"is_first_login"`

	// HasTwoFactor is false until two-factor enrollment completes.
	HasTwoFactor bool `json:"has_two_factor"`

	// RequiresTwoFactor is reported by the backend when it mandates
	// two-factor enrollment before full access. When false, enrollment
	// remains available as an optional action from the vault.
	RequiresTwoFactor bool `json:"requires_two_factor,omitempty"`

	// TwoFactorSecret is the base64-encoded TOTP secret issued during
	// enrollment. Empty until HasTwoFactor is true. Never leaves the client
	// in plaintext; the persisted snapshot is encrypted as a whole.
	TwoFactorSecret string `json:"two_factor_secret,omitempty"`

	// Token is the compact signed JWT issued by the backend for this
	// session. Restore paths verify it before trusting the snapshot.
	Token string `json:"token"`

	// CreatedAt is the time the session was established.
	CreatedAt time.Time `json:"created_at"`
}

// State derives the session state implied by the setup flags. The transient
// Authenticating state is owned by the auth service, not the snapshot.
func (s *Session) State() SessionState {
	switch {
	case s == nil:
		return StateUnauthenticated
	case s.IsFirstLogin:
		return StateFirstLogin
	case s.RequiresTwoFactor && !s.HasTwoFactor:
		return StateNeedsTwoFactor
	default:
		return StateActive
	}
}
