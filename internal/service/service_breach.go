package service

import (
	"context"
	"fmt"

	"github.com/securevault/securevault/internal/adapter"
	"github.com/securevault/securevault/internal/logger"
)

type breachService struct {
	checker adapter.BreachChecker
	vault   VaultService
	logger  *logger.Logger
}

func NewBreachService(checker adapter.BreachChecker, vault VaultService, log *logger.Logger) BreachService {
	return &breachService{
		checker: checker,
		vault:   vault,
		logger:  log,
	}
}

func (b *breachService) CheckVault(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)

	compromised := 0
	for _, credential := range b.vault.List("") {
		count, err := b.checker.CheckPassword(ctx, credential.Password)
		if err != nil {
			log.Warn().
				Str("func", "breachService.CheckVault").
				Str("credential_id", credential.ID).
				Err(err).
				Msg("breach lookup failed")
			return compromised, fmt.Errorf("breach check for %s: %w", credential.ID, err)
		}

		if count == 0 {
			continue
		}

		compromised++
		if err = b.vault.MarkCompromised(credential.ID, true); err != nil {
			// Record was removed between List and the lookup.
			continue
		}

		log.Info().
			Str("func", "breachService.CheckVault").
			Str("credential_id", credential.ID).
			Int("count", count).
			Msg("credential password found in breach corpus")
	}

	return compromised, nil
}
