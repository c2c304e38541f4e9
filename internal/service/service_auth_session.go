package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/securevault/securevault/internal/adapter"
	"github.com/securevault/securevault/internal/config"
	"github.com/securevault/securevault/internal/crypto"
	"github.com/securevault/securevault/internal/logger"
	"github.com/securevault/securevault/internal/store"
	"github.com/securevault/securevault/internal/totp"
	"github.com/securevault/securevault/internal/utils"
	"github.com/securevault/securevault/models"
)

type authSessionService struct {
	adapter  adapter.ServerAdapter
	sessions store.SessionRepository
	keychain crypto.KeyChainService
	cfg      config.App
	logger   *logger.Logger

	storageKey []byte

	mu              sync.RWMutex
	state           models.SessionState
	current         *models.Session
	pendingTOTPSecr string
}

func NewAuthSessionService(serverAdapter adapter.ServerAdapter, sessions store.SessionRepository, keychain crypto.KeyChainService, cfg config.App, log *logger.Logger) AuthSessionService {
	return &authSessionService{
		adapter:    serverAdapter,
		sessions:   sessions,
		keychain:   keychain,
		cfg:        cfg,
		logger:     log,
		storageKey: keychain.DeriveStorageKey(cfg.StorageKey),
		state:      models.StateUnauthenticated,
	}
}

func (a *authSessionService) Login(ctx context.Context, email, password string) (models.Session, error) {
	return a.authenticate(ctx, email, password, a.adapter.Authenticate)
}

func (a *authSessionService) Register(ctx context.Context, email, password string) (models.Session, error) {
	return a.authenticate(ctx, email, password, a.adapter.CreateAccount)
}

// authenticate runs the shared Unauthenticated -> Authenticating -> resolved
// transition for Login and Register. The machine stays in Authenticating for
// the entire backend call; failure of any kind returns it to Unauthenticated.
func (a *authSessionService) authenticate(ctx context.Context, email, password string, backendCall func(context.Context, string, string) (models.Session, error)) (models.Session, error) {
	log := logger.FromContext(ctx)

	a.mu.Lock()
	if a.state != models.StateUnauthenticated {
		state := a.state
		a.mu.Unlock()
		return models.Session{}, fmt.Errorf("%w: %s", ErrInvalidState, state)
	}
	a.state = models.StateAuthenticating
	a.mu.Unlock()

	session, err := backendCall(ctx, email, password)
	if err != nil {
		a.mu.Lock()
		a.state = models.StateUnauthenticated
		a.mu.Unlock()
		log.Warn().
			Str("func", "authSessionService.authenticate").
			Str("email", email).
			Err(err).
			Msg("authentication failed")
		return models.Session{}, err
	}

	a.mu.Lock()
	a.current = &session
	a.state = session.State()
	a.pendingTOTPSecr = ""
	a.mu.Unlock()

	if err = a.persistSnapshot(ctx, session); err != nil {
		log.Warn().
			Str("func", "authSessionService.authenticate").
			Err(err).
			Msg("failed to persist session snapshot")
	}

	log.Info().
		Str("func", "authSessionService.authenticate").
		Str("user_id", session.UserID).
		Str("state", session.State().String()).
		Msg("authenticated")

	return session, nil
}

func (a *authSessionService) CompleteMasterPasswordSetup(ctx context.Context, masterPassword string) (models.Session, error) {
	log := logger.FromContext(ctx)

	a.mu.RLock()
	if a.state != models.StateFirstLogin || a.current == nil {
		state := a.state
		a.mu.RUnlock()
		return models.Session{}, fmt.Errorf("%w: %s", ErrInvalidState, state)
	}
	userID := a.current.UserID
	a.mu.RUnlock()

	session, err := a.adapter.SetupMasterPassword(ctx, userID, masterPassword)
	if err != nil {
		log.Warn().
			Str("func", "authSessionService.CompleteMasterPasswordSetup").
			Str("user_id", userID).
			Err(err).
			Msg("master password setup failed")
		return models.Session{}, err
	}

	a.mu.Lock()
	a.current = &session
	a.state = session.State()
	a.mu.Unlock()

	if err = a.persistSnapshot(ctx, session); err != nil {
		log.Warn().
			Str("func", "authSessionService.CompleteMasterPasswordSetup").
			Err(err).
			Msg("failed to persist session snapshot")
	}

	return session, nil
}

func (a *authSessionService) TwoFactorEnrollment(ctx context.Context) (string, string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.enrollmentOpen() {
		return "", "", fmt.Errorf("%w: %s", ErrInvalidState, a.state)
	}

	if a.pendingTOTPSecr == "" {
		secret, err := totp.GenerateSecret()
		if err != nil {
			return "", "", fmt.Errorf("generate totp secret: %w", err)
		}
		a.pendingTOTPSecr = secret
	}

	url, err := totp.OtpAuthURL(a.pendingTOTPSecr, a.current.Email, a.cfg.TokenIssuer)
	if err != nil {
		return "", "", fmt.Errorf("build otpauth url: %w", err)
	}

	return a.pendingTOTPSecr, url, nil
}

func (a *authSessionService) CompleteTwoFactorSetup(ctx context.Context, code string) (models.Session, error) {
	log := logger.FromContext(ctx)

	a.mu.RLock()
	if !a.enrollmentOpen() {
		state := a.state
		a.mu.RUnlock()
		return models.Session{}, fmt.Errorf("%w: %s", ErrInvalidState, state)
	}
	userID := a.current.UserID
	secret := a.pendingTOTPSecr
	a.mu.RUnlock()

	if secret == "" || !totp.Validate(secret, code) {
		return models.Session{}, ErrInvalidTwoFactorCode
	}

	session, err := a.adapter.SetupTwoFactor(ctx, userID, secret)
	if err != nil {
		log.Warn().
			Str("func", "authSessionService.CompleteTwoFactorSetup").
			Str("user_id", userID).
			Err(err).
			Msg("two-factor setup failed")
		return models.Session{}, err
	}

	a.mu.Lock()
	a.current = &session
	a.state = session.State()
	a.pendingTOTPSecr = ""
	a.mu.Unlock()

	if err = a.persistSnapshot(ctx, session); err != nil {
		log.Warn().
			Str("func", "authSessionService.CompleteTwoFactorSetup").
			Err(err).
			Msg("failed to persist session snapshot")
	}

	return session, nil
}

// enrollmentOpen reports whether authenticator enrollment may start or
// complete right now: the account must be past master-password setup and not
// yet enrolled. Enrollment is mandatory in NeedsTwoFactor and optional in
// Active. Caller holds a.mu (read or write).
func (a *authSessionService) enrollmentOpen() bool {
	if a.current == nil || a.current.HasTwoFactor {
		return false
	}
	return a.state == models.StateNeedsTwoFactor || a.state == models.StateActive
}

func (a *authSessionService) Logout(ctx context.Context) error {
	log := logger.FromContext(ctx)

	a.mu.Lock()
	a.current = nil
	a.state = models.StateUnauthenticated
	a.pendingTOTPSecr = ""
	a.mu.Unlock()

	if err := a.sessions.Clear(ctx); err != nil {
		log.Warn().
			Str("func", "authSessionService.Logout").
			Err(err).
			Msg("failed to clear session snapshot")
		return err
	}

	return nil
}

func (a *authSessionService) RestoreSession(ctx context.Context) (models.Session, error) {
	log := logger.FromContext(ctx)

	a.mu.RLock()
	if a.state != models.StateUnauthenticated {
		state := a.state
		a.mu.RUnlock()
		return models.Session{}, fmt.Errorf("%w: %s", ErrInvalidState, state)
	}
	a.mu.RUnlock()

	blob, err := a.sessions.Load(ctx)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrSessionRestore, err)
	}

	var session models.Session
	if err = a.keychain.DecryptData(blob, a.storageKey, &session); err != nil {
		a.discardSnapshot(ctx)
		log.Warn().
			Str("func", "authSessionService.RestoreSession").
			Err(err).
			Msg("persisted session snapshot failed decryption")
		return models.Session{}, fmt.Errorf("%w: %w", ErrSessionRestore, ErrCorruptSnapshot)
	}

	if _, err = utils.ValidateAndParseJWTToken(session.Token, a.cfg.TokenSignKey, a.cfg.TokenIssuer); err != nil {
		a.discardSnapshot(ctx)
		log.Warn().
			Str("func", "authSessionService.RestoreSession").
			Err(err).
			Msg("persisted session token rejected")
		return models.Session{}, fmt.Errorf("%w: %w", ErrSessionRestore, err)
	}

	a.mu.Lock()
	a.current = &session
	a.state = session.State()
	a.mu.Unlock()

	log.Info().
		Str("func", "authSessionService.RestoreSession").
		Str("user_id", session.UserID).
		Str("state", session.State().String()).
		Msg("session restored")

	return session, nil
}

func (a *authSessionService) State() models.SessionState {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.state
}

func (a *authSessionService) Current() (models.Session, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.current == nil {
		return models.Session{}, false
	}
	return *a.current, true
}

func (a *authSessionService) persistSnapshot(ctx context.Context, session models.Session) error {
	blob, err := a.keychain.EncryptData(session, a.storageKey)
	if err != nil {
		return fmt.Errorf("encrypt session snapshot: %w", err)
	}
	return a.sessions.Save(ctx, blob)
}

// discardSnapshot removes an unusable persisted snapshot so the next start
// does not trip over it again.
func (a *authSessionService) discardSnapshot(ctx context.Context) {
	if err := a.sessions.Clear(ctx); err != nil {
		a.logger.Warn().
			Str("func", "authSessionService.discardSnapshot").
			Err(err).
			Msg("failed to clear unusable session snapshot")
	}
}
