package service

import (
	"github.com/securevault/securevault/internal/adapter"
	"github.com/securevault/securevault/internal/config"
	"github.com/securevault/securevault/internal/crypto"
	"github.com/securevault/securevault/internal/logger"
	"github.com/securevault/securevault/internal/store"
)

// Services groups the client service layer into a single value handed to the
// TUI and the workers. All state lives inside the services; nothing here is
// global.
type Services struct {
	Auth   AuthSessionService
	Vault  VaultService
	Breach BreachService
}

func NewServices(storages *store.Storages, serverAdapter adapter.ServerAdapter, breachChecker adapter.BreachChecker, keychain crypto.KeyChainService, cfg *config.ClientConfig, log *logger.Logger) *Services {
	vault := NewVaultService(storages.Vault, keychain, cfg.App, log)

	return &Services{
		Auth:   NewAuthSessionService(serverAdapter, storages.Session, keychain, cfg.App, log),
		Vault:  vault,
		Breach: NewBreachService(breachChecker, vault, log),
	}
}
