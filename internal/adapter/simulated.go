package adapter

import (
	"context"
	"crypto/hmac"
	"fmt"
	"sync"
	"time"

	"github.com/securevault/securevault/internal/crypto"
	"github.com/securevault/securevault/internal/utils"
	"github.com/securevault/securevault/models"
)

// SimulatedConfig holds the knobs of the in-process backend.
type SimulatedConfig struct {
	// Latency is the fixed suspension applied to every call before it
	// resolves, mimicking a round trip to a real server.
	Latency time.Duration

	// TokenIssuer, TokenDuration and TokenSignKey parameterize the session
	// JWTs the backend mints.
	TokenIssuer   string
	TokenDuration time.Duration
	TokenSignKey  string

	// RequireTwoFactor makes the backend mandate authenticator enrollment
	// before full access. When false, enrollment stays optional.
	RequireTwoFactor bool
}

// simulatedAccount is the backend-side record of one registered user.
type simulatedAccount struct {
	userID          string
	email           string
	salt            []byte
	authHash        []byte
	isFirstLogin    bool
	hasTwoFactor    bool
	twoFactorSecret string
	masterSet       bool
	encryptedDEK    []byte
}

// simulatedServerAdapter is an in-memory [ServerAdapter]. It keeps accounts
// for the lifetime of the process and applies a fixed latency to every call,
// honoring ctx cancellation during the wait.
type simulatedServerAdapter struct {
	cfg      SimulatedConfig
	keychain crypto.KeyChainService
	ids      *utils.UUIDGenerator

	mu       sync.Mutex
	accounts map[string]*simulatedAccount // keyed by email
	byID     map[string]*simulatedAccount
}

// NewSimulatedServerAdapter constructs the in-process backend.
func NewSimulatedServerAdapter(cfg SimulatedConfig, keychain crypto.KeyChainService) ServerAdapter {
	if cfg.Latency <= 0 {
		cfg.Latency = time.Second
	}
	return &simulatedServerAdapter{
		cfg:      cfg,
		keychain: keychain,
		ids:      utils.NewUUIDGenerator(),
		accounts: make(map[string]*simulatedAccount),
		byID:     make(map[string]*simulatedAccount),
	}
}

func (s *simulatedServerAdapter) Authenticate(ctx context.Context, email, password string) (models.Session, error) {
	if err := s.wait(ctx); err != nil {
		return models.Session{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.accounts[email]
	if !ok {
		return models.Session{}, ErrInvalidCredentials
	}
	if !hmac.Equal(acc.authHash, s.passwordHash(password, acc.salt)) {
		return models.Session{}, ErrInvalidCredentials
	}

	return s.sessionFor(acc)
}

func (s *simulatedServerAdapter) CreateAccount(ctx context.Context, email, password string) (models.Session, error) {
	if err := s.wait(ctx); err != nil {
		return models.Session{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accounts[email]; ok {
		return models.Session{}, fmt.Errorf("%w: %s", ErrAccountExists, email)
	}

	salt, err := s.keychain.GenerateEncryptionSalt()
	if err != nil {
		return models.Session{}, fmt.Errorf("generate account salt: %w", err)
	}

	acc := &simulatedAccount{
		userID:       s.ids.Generate(),
		email:        email,
		salt:         salt,
		authHash:     s.passwordHash(password, salt),
		isFirstLogin: true,
	}
	s.accounts[email] = acc
	s.byID[acc.userID] = acc

	return s.sessionFor(acc)
}

func (s *simulatedServerAdapter) SetupMasterPassword(ctx context.Context, userID, masterPassword string) (models.Session, error) {
	if err := s.wait(ctx); err != nil {
		return models.Session{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.byID[userID]
	if !ok {
		return models.Session{}, fmt.Errorf("%w: %s", ErrAccountNotFound, userID)
	}

	kek := s.keychain.GenerateKEK(masterPassword, acc.salt)

	// A repeated setup call must never rotate the data key. The stored DEK
	// only unwraps under the KEK of the original master password, so a
	// mismatched retry is rejected instead of re-wrapped.
	if acc.masterSet {
		if _, err := s.keychain.DecryptDEK(acc.encryptedDEK, kek); err != nil {
			return models.Session{}, fmt.Errorf("%w: master password mismatch", ErrInvalidCredentials)
		}
		acc.isFirstLogin = false
		return s.sessionFor(acc)
	}

	// The backend only ever sees the DEK wrapped by the master-password KEK.
	dek, err := s.keychain.GenerateDEK()
	if err != nil {
		return models.Session{}, fmt.Errorf("generate data key: %w", err)
	}
	encryptedDEK, err := s.keychain.GetEncryptedDEK(dek, kek)
	if err != nil {
		return models.Session{}, fmt.Errorf("wrap data key: %w", err)
	}

	acc.encryptedDEK = encryptedDEK
	acc.masterSet = true
	acc.isFirstLogin = false

	return s.sessionFor(acc)
}

func (s *simulatedServerAdapter) SetupTwoFactor(ctx context.Context, userID, secret string) (models.Session, error) {
	if err := s.wait(ctx); err != nil {
		return models.Session{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.byID[userID]
	if !ok {
		return models.Session{}, fmt.Errorf("%w: %s", ErrAccountNotFound, userID)
	}

	acc.twoFactorSecret = secret
	acc.hasTwoFactor = true

	return s.sessionFor(acc)
}

// wait suspends for the configured latency or until ctx is cancelled.
// The caller must observe no state change before the wait completes.
func (s *simulatedServerAdapter) wait(ctx context.Context) error {
	timer := time.NewTimer(s.cfg.Latency)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (s *simulatedServerAdapter) passwordHash(password string, salt []byte) []byte {
	return s.keychain.GenerateAuthHash([]byte(password), string(salt))
}

// sessionFor mints a fresh token and snapshots the account flags into a
// session. Caller holds s.mu.
func (s *simulatedServerAdapter) sessionFor(acc *simulatedAccount) (models.Session, error) {
	token, err := utils.GenerateJWTToken(s.cfg.TokenIssuer, acc.userID, s.cfg.TokenDuration, s.cfg.TokenSignKey)
	if err != nil {
		return models.Session{}, fmt.Errorf("mint session token: %w", err)
	}

	return models.Session{
		UserID:            acc.userID,
		Email:             acc.email,
		IsFirstLogin:      acc.isFirstLogin,
		HasTwoFactor:      acc.hasTwoFactor,
		RequiresTwoFactor: s.cfg.RequireTwoFactor,
		TwoFactorSecret:   acc.twoFactorSecret,
		Token:             token.SignedString,
		CreatedAt:         time.Now().UTC(),
	}, nil
}
