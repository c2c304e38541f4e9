package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/securevault/securevault/internal/adapter"
	"github.com/securevault/securevault/internal/config"
	"github.com/securevault/securevault/internal/crypto"
	"github.com/securevault/securevault/internal/logger"
	"github.com/securevault/securevault/internal/mock"
	"github.com/securevault/securevault/internal/totp"
	"github.com/securevault/securevault/internal/utils"
	"github.com/securevault/securevault/models"
)

var testAppCfg = config.App{
	TokenSignKey:  "test-sign-key",
	TokenIssuer:   "securevault-test",
	TokenDuration: time.Hour,
	StorageKey:    "test-storage-secret",
}

func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (*authSessionService, *mock.MockServerAdapter, *mock.MockSessionRepository) {
	t.Helper()
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockSessions := mock.NewMockSessionRepository(ctrl)

	svc := NewAuthSessionService(mockAdapter, mockSessions, crypto.NewKeyChainService(), testAppCfg, logger.Nop()).(*authSessionService)

	return svc, mockAdapter, mockSessions
}

func signedSession(t *testing.T, firstLogin, twoFactor bool) models.Session {
	t.Helper()
	token, err := utils.GenerateJWTToken(testAppCfg.TokenIssuer, "user-1", testAppCfg.TokenDuration, testAppCfg.TokenSignKey)
	require.NoError(t, err)

	return models.Session{
		UserID:       "user-1",
		Email:        "a@b.com",
		IsFirstLogin: firstLogin,
		HasTwoFactor: twoFactor,
		Token:        token.String(),
		CreatedAt:    time.Now(),
	}
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthSession_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockSessions := newTestAuthSvc(t, ctrl)
	ctx := context.Background()
	session := signedSession(t, false, true)

	mockAdapter.EXPECT().Authenticate(ctx, "a@b.com", "pw").Return(session, nil)
	mockSessions.EXPECT().Save(ctx, gomock.Any()).Return(nil)

	got, err := svc.Login(ctx, "a@b.com", "pw")
	require.NoError(t, err)

	assert.Equal(t, session.UserID, got.UserID)
	assert.Equal(t, models.StateActive, svc.State())

	current, ok := svc.Current()
	require.True(t, ok)
	assert.Equal(t, session.UserID, current.UserID)
}

func TestAuthSession_Login_HoldsAuthenticatingDuringBackendCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockSessions := newTestAuthSvc(t, ctrl)
	ctx := context.Background()
	session := signedSession(t, false, true)

	mockAdapter.EXPECT().Authenticate(ctx, "a@b.com", "pw").DoAndReturn(
		func(context.Context, string, string) (models.Session, error) {
			assert.Equal(t, models.StateAuthenticating, svc.State())
			return session, nil
		},
	)
	mockSessions.EXPECT().Save(ctx, gomock.Any()).Return(nil)

	_, err := svc.Login(ctx, "a@b.com", "pw")
	require.NoError(t, err)
}

func TestAuthSession_Login_InvalidCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Authenticate(ctx, "a@b.com", "bad").Return(models.Session{}, adapter.ErrInvalidCredentials)

	_, err := svc.Login(ctx, "a@b.com", "bad")
	require.ErrorIs(t, err, adapter.ErrInvalidCredentials)

	assert.Equal(t, models.StateUnauthenticated, svc.State())
	_, ok := svc.Current()
	assert.False(t, ok)
}

func TestAuthSession_Login_WrongState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockSessions := newTestAuthSvc(t, ctrl)
	ctx := context.Background()
	session := signedSession(t, false, true)

	mockAdapter.EXPECT().Authenticate(ctx, "a@b.com", "pw").Return(session, nil)
	mockSessions.EXPECT().Save(ctx, gomock.Any()).Return(nil)

	_, err := svc.Login(ctx, "a@b.com", "pw")
	require.NoError(t, err)

	_, err = svc.Login(ctx, "a@b.com", "pw")
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestAuthSession_Login_CancelledContext(t *testing.T) {
	// Uses the real simulated backend so cancellation interrupts the latency
	// wait rather than a mock shortcut.
	backend := adapter.NewSimulatedServerAdapter(adapter.SimulatedConfig{
		Latency:       5 * time.Second,
		TokenIssuer:   testAppCfg.TokenIssuer,
		TokenDuration: testAppCfg.TokenDuration,
		TokenSignKey:  testAppCfg.TokenSignKey,
	}, crypto.NewKeyChainService())

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockSessions := mock.NewMockSessionRepository(ctrl)

	svc := NewAuthSessionService(backend, mockSessions, crypto.NewKeyChainService(), testAppCfg, logger.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := svc.Login(ctx, "a@b.com", "pw")
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, models.StateUnauthenticated, svc.State())
}

// ── Register and setup flow ─────────────────────────────────────────────────

func TestAuthSession_Register_EntersFirstLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockSessions := newTestAuthSvc(t, ctrl)
	ctx := context.Background()
	session := signedSession(t, true, false)

	mockAdapter.EXPECT().CreateAccount(ctx, "a@b.com", "pw").Return(session, nil)
	mockSessions.EXPECT().Save(ctx, gomock.Any()).Return(nil)

	got, err := svc.Register(ctx, "a@b.com", "pw")
	require.NoError(t, err)

	assert.True(t, got.IsFirstLogin)
	assert.Equal(t, models.StateFirstLogin, svc.State())
}

func TestAuthSession_MasterPasswordSetup_WrongState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.CompleteMasterPasswordSetup(context.Background(), "master")
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestAuthSession_FullOnboardingFlow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockSessions := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	registered := signedSession(t, true, false)
	afterMaster := signedSession(t, false, false)

	mockAdapter.EXPECT().CreateAccount(ctx, "a@b.com", "pw").Return(registered, nil)
	mockAdapter.EXPECT().SetupMasterPassword(ctx, "user-1", "master").Return(afterMaster, nil)
	mockAdapter.EXPECT().SetupTwoFactor(ctx, "user-1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, secret string) (models.Session, error) {
			session := signedSession(t, false, true)
			session.TwoFactorSecret = secret
			return session, nil
		},
	)
	mockSessions.EXPECT().Save(ctx, gomock.Any()).Return(nil).Times(3)

	_, err := svc.Register(ctx, "a@b.com", "pw")
	require.NoError(t, err)
	require.Equal(t, models.StateFirstLogin, svc.State())

	// Master-password setup alone unlocks the vault; authenticator
	// enrollment stays available but is not a gate.
	afterSetup, err := svc.CompleteMasterPasswordSetup(ctx, "master")
	require.NoError(t, err)
	assert.False(t, afterSetup.IsFirstLogin)
	require.Equal(t, models.StateActive, svc.State())

	secret, url, err := svc.TwoFactorEnrollment(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, secret)
	assert.Contains(t, url, "otpauth://totp/")

	code, err := totp.CurrentCode(secret)
	require.NoError(t, err)

	session, err := svc.CompleteTwoFactorSetup(ctx, code)
	require.NoError(t, err)
	assert.True(t, session.HasTwoFactor)
	assert.Equal(t, models.StateActive, svc.State())
}

func TestAuthSession_MasterPasswordSetup_BackendMandatesTwoFactor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockSessions := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	registered := signedSession(t, true, false)
	registered.RequiresTwoFactor = true
	afterMaster := signedSession(t, false, false)
	afterMaster.RequiresTwoFactor = true

	mockAdapter.EXPECT().CreateAccount(ctx, "a@b.com", "pw").Return(registered, nil)
	mockAdapter.EXPECT().SetupMasterPassword(ctx, "user-1", "master").Return(afterMaster, nil)
	mockSessions.EXPECT().Save(ctx, gomock.Any()).Return(nil).Times(2)

	_, err := svc.Register(ctx, "a@b.com", "pw")
	require.NoError(t, err)

	_, err = svc.CompleteMasterPasswordSetup(ctx, "master")
	require.NoError(t, err)
	assert.Equal(t, models.StateNeedsTwoFactor, svc.State())
}

func TestAuthSession_TwoFactorEnrollment_RejectedWhenAlreadyEnrolled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockSessions := newTestAuthSvc(t, ctrl)
	ctx := context.Background()
	session := signedSession(t, false, true)

	mockAdapter.EXPECT().Authenticate(ctx, "a@b.com", "pw").Return(session, nil)
	mockSessions.EXPECT().Save(ctx, gomock.Any()).Return(nil)

	_, err := svc.Login(ctx, "a@b.com", "pw")
	require.NoError(t, err)
	require.Equal(t, models.StateActive, svc.State())

	_, _, err = svc.TwoFactorEnrollment(ctx)
	assert.ErrorIs(t, err, ErrInvalidState)

	_, err = svc.CompleteTwoFactorSetup(ctx, "000000")
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestAuthSession_TwoFactorSetup_InvalidCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockSessions := newTestAuthSvc(t, ctrl)
	ctx := context.Background()
	session := signedSession(t, false, false)

	mockAdapter.EXPECT().Authenticate(ctx, "a@b.com", "pw").Return(session, nil)
	mockSessions.EXPECT().Save(ctx, gomock.Any()).Return(nil)

	_, err := svc.Login(ctx, "a@b.com", "pw")
	require.NoError(t, err)
	require.Equal(t, models.StateActive, svc.State())

	_, _, err = svc.TwoFactorEnrollment(ctx)
	require.NoError(t, err)

	_, err = svc.CompleteTwoFactorSetup(ctx, "000000")
	assert.ErrorIs(t, err, ErrInvalidTwoFactorCode)

	current, ok := svc.Current()
	require.True(t, ok)
	assert.False(t, current.HasTwoFactor)
}

// ── Logout ──────────────────────────────────────────────────────────────────

func TestAuthSession_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockSessions := newTestAuthSvc(t, ctrl)
	ctx := context.Background()
	session := signedSession(t, false, true)

	mockAdapter.EXPECT().Authenticate(ctx, "a@b.com", "pw").Return(session, nil)
	mockSessions.EXPECT().Save(ctx, gomock.Any()).Return(nil)
	mockSessions.EXPECT().Clear(ctx).Return(nil)

	_, err := svc.Login(ctx, "a@b.com", "pw")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx))

	assert.Equal(t, models.StateUnauthenticated, svc.State())
	_, ok := svc.Current()
	assert.False(t, ok)
}

func TestAuthSession_Logout_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockSessions := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockSessions.EXPECT().Clear(ctx).Return(nil).Times(2)

	require.NoError(t, svc.Logout(ctx))
	require.NoError(t, svc.Logout(ctx))
}

// ── RestoreSession ──────────────────────────────────────────────────────────

func TestAuthSession_Restore_RoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockSessions := newTestAuthSvc(t, ctrl)
	ctx := context.Background()
	session := signedSession(t, false, true)

	keychain := crypto.NewKeyChainService()
	blob, err := keychain.EncryptData(session, keychain.DeriveStorageKey(testAppCfg.StorageKey))
	require.NoError(t, err)

	mockSessions.EXPECT().Load(ctx).Return(blob, nil)

	got, err := svc.RestoreSession(ctx)
	require.NoError(t, err)

	assert.Equal(t, session.UserID, got.UserID)
	assert.Equal(t, models.StateActive, svc.State())
}

func TestAuthSession_Restore_NoSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockSessions := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockSessions.EXPECT().Load(ctx).Return("", errors.New("session snapshot not found"))

	_, err := svc.RestoreSession(ctx)
	require.ErrorIs(t, err, ErrSessionRestore)
	assert.Equal(t, models.StateUnauthenticated, svc.State())
}

func TestAuthSession_Restore_CorruptBlobFailsClosed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockSessions := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockSessions.EXPECT().Load(ctx).Return("not-a-valid-blob", nil)
	mockSessions.EXPECT().Clear(ctx).Return(nil)

	_, err := svc.RestoreSession(ctx)
	require.ErrorIs(t, err, ErrSessionRestore)
	require.ErrorIs(t, err, ErrCorruptSnapshot)
	assert.Equal(t, models.StateUnauthenticated, svc.State())
}

func TestAuthSession_Restore_ForgedTokenFailsClosed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockSessions := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	// Token signed with a different key must be rejected.
	forged, err := utils.GenerateJWTToken(testAppCfg.TokenIssuer, "user-1", time.Hour, "attacker-key")
	require.NoError(t, err)

	session := signedSession(t, false, true)
	session.Token = forged.String()

	keychain := crypto.NewKeyChainService()
	blob, err := keychain.EncryptData(session, keychain.DeriveStorageKey(testAppCfg.StorageKey))
	require.NoError(t, err)

	mockSessions.EXPECT().Load(ctx).Return(blob, nil)
	mockSessions.EXPECT().Clear(ctx).Return(nil)

	_, err = svc.RestoreSession(ctx)
	require.ErrorIs(t, err, ErrSessionRestore)
	assert.Equal(t, models.StateUnauthenticated, svc.State())
}
