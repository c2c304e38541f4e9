package adapter

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/securevault/securevault/internal/crypto"
	"github.com/securevault/securevault/internal/utils"
)

func newTestBackend(t *testing.T) ServerAdapter {
	t.Helper()
	return NewSimulatedServerAdapter(SimulatedConfig{
		Latency:       time.Millisecond,
		TokenIssuer:   "securevault-test",
		TokenDuration: time.Hour,
		TokenSignKey:  "test-sign-key",
	}, crypto.NewKeyChainService())
}

func TestCreateAccount_FirstLoginFlags(t *testing.T) {
	backend := newTestBackend(t)
	ctx := context.Background()

	session, err := backend.CreateAccount(ctx, "a@b.com", "pw")
	require.NoError(t, err)

	assert.NotEmpty(t, session.UserID)
	assert.Equal(t, "a@b.com", session.Email)
	assert.True(t, session.IsFirstLogin)
	assert.False(t, session.HasTwoFactor)
	assert.NotEmpty(t, session.Token)
}

func TestCreateAccount_DuplicateEmail(t *testing.T) {
	backend := newTestBackend(t)
	ctx := context.Background()

	_, err := backend.CreateAccount(ctx, "a@b.com", "pw")
	require.NoError(t, err)

	_, err = backend.CreateAccount(ctx, "a@b.com", "other")
	assert.ErrorIs(t, err, ErrAccountExists)
}

func TestAuthenticate_Success(t *testing.T) {
	backend := newTestBackend(t)
	ctx := context.Background()

	created, err := backend.CreateAccount(ctx, "a@b.com", "pw")
	require.NoError(t, err)

	session, err := backend.Authenticate(ctx, "a@b.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, created.UserID, session.UserID)
}

func TestAuthenticate_WrongPassword(t *testing.T) {
	backend := newTestBackend(t)
	ctx := context.Background()

	_, err := backend.CreateAccount(ctx, "a@b.com", "pw")
	require.NoError(t, err)

	_, err = backend.Authenticate(ctx, "a@b.com", "nope")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticate_UnknownAccount(t *testing.T) {
	backend := newTestBackend(t)

	_, err := backend.Authenticate(context.Background(), "ghost@b.com", "pw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticate_FlagsComeFromBackendState(t *testing.T) {
	backend := newTestBackend(t)
	ctx := context.Background()

	created, err := backend.CreateAccount(ctx, "a@b.com", "pw")
	require.NoError(t, err)

	// Before setup the account still reports first-login.
	session, err := backend.Authenticate(ctx, "a@b.com", "pw")
	require.NoError(t, err)
	assert.True(t, session.IsFirstLogin)

	_, err = backend.SetupMasterPassword(ctx, created.UserID, "master")
	require.NoError(t, err)

	session, err = backend.Authenticate(ctx, "a@b.com", "pw")
	require.NoError(t, err)
	assert.False(t, session.IsFirstLogin)
}

func TestSetupMasterPassword_ClearsFirstLogin(t *testing.T) {
	backend := newTestBackend(t)
	ctx := context.Background()

	created, err := backend.CreateAccount(ctx, "a@b.com", "pw")
	require.NoError(t, err)

	session, err := backend.SetupMasterPassword(ctx, created.UserID, "master")
	require.NoError(t, err)
	assert.False(t, session.IsFirstLogin)
}

func TestSetupMasterPassword_WrapsDataKey(t *testing.T) {
	keychain := crypto.NewKeyChainService()
	backend := NewSimulatedServerAdapter(SimulatedConfig{
		Latency:       time.Millisecond,
		TokenIssuer:   "securevault-test",
		TokenDuration: time.Hour,
		TokenSignKey:  "test-sign-key",
	}, keychain)
	ctx := context.Background()

	created, err := backend.CreateAccount(ctx, "a@b.com", "pw")
	require.NoError(t, err)

	_, err = backend.SetupMasterPassword(ctx, created.UserID, "master")
	require.NoError(t, err)

	acc := backend.(*simulatedServerAdapter).byID[created.UserID]
	require.NotEmpty(t, acc.encryptedDEK)

	// The right master password unwraps the stored DEK; a wrong one does not.
	dek, err := keychain.DecryptDEK(acc.encryptedDEK, keychain.GenerateKEK("master", acc.salt))
	require.NoError(t, err)
	assert.Len(t, dek, 32)

	_, err = keychain.DecryptDEK(acc.encryptedDEK, keychain.GenerateKEK("wrong", acc.salt))
	assert.Error(t, err)
}

func TestSetupMasterPassword_RepeatKeepsDataKey(t *testing.T) {
	backend := newTestBackend(t)
	ctx := context.Background()

	created, err := backend.CreateAccount(ctx, "a@b.com", "pw")
	require.NoError(t, err)

	_, err = backend.SetupMasterPassword(ctx, created.UserID, "master")
	require.NoError(t, err)

	acc := backend.(*simulatedServerAdapter).byID[created.UserID]
	wrapped := append([]byte(nil), acc.encryptedDEK...)

	// Retrying with the same master password must not rotate the data key.
	_, err = backend.SetupMasterPassword(ctx, created.UserID, "master")
	require.NoError(t, err)
	assert.Equal(t, wrapped, acc.encryptedDEK)

	// A different master password cannot unwrap the stored DEK and is
	// rejected outright.
	_, err = backend.SetupMasterPassword(ctx, created.UserID, "other")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Equal(t, wrapped, acc.encryptedDEK)
}

func TestSessionFlags_RequireTwoFactorKnob(t *testing.T) {
	backend := NewSimulatedServerAdapter(SimulatedConfig{
		Latency:          time.Millisecond,
		TokenIssuer:      "securevault-test",
		TokenDuration:    time.Hour,
		TokenSignKey:     "test-sign-key",
		RequireTwoFactor: true,
	}, crypto.NewKeyChainService())
	ctx := context.Background()

	session, err := backend.CreateAccount(ctx, "a@b.com", "pw")
	require.NoError(t, err)
	assert.True(t, session.RequiresTwoFactor)

	// The default backend leaves enrollment optional.
	session, err = newTestBackend(t).CreateAccount(ctx, "a@b.com", "pw")
	require.NoError(t, err)
	assert.False(t, session.RequiresTwoFactor)
}

func TestSetupMasterPassword_UnknownAccount(t *testing.T) {
	backend := newTestBackend(t)

	_, err := backend.SetupMasterPassword(context.Background(), "no-such-id", "master")
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestSetupTwoFactor_SetsFlagAndSecret(t *testing.T) {
	backend := newTestBackend(t)
	ctx := context.Background()

	created, err := backend.CreateAccount(ctx, "a@b.com", "pw")
	require.NoError(t, err)

	session, err := backend.SetupTwoFactor(ctx, created.UserID, "c2VjcmV0")
	require.NoError(t, err)
	assert.True(t, session.HasTwoFactor)
	assert.Equal(t, "c2VjcmV0", session.TwoFactorSecret)
}

func TestSessionToken_IsValidJWT(t *testing.T) {
	backend := newTestBackend(t)

	session, err := backend.CreateAccount(context.Background(), "a@b.com", "pw")
	require.NoError(t, err)

	token, err := utils.ValidateAndParseJWTToken(session.Token, "test-sign-key", "securevault-test")
	require.NoError(t, err)
	assert.Equal(t, session.UserID, token.UserID)
}

func TestWait_CancelledContext(t *testing.T) {
	backend := NewSimulatedServerAdapter(SimulatedConfig{
		Latency:       5 * time.Second,
		TokenIssuer:   "securevault-test",
		TokenDuration: time.Hour,
		TokenSignKey:  "test-sign-key",
	}, crypto.NewKeyChainService())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := backend.Authenticate(ctx, "a@b.com", "pw")
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second, "call should abort on ctx, not wait out the latency")
}
