package config

// validate checks that the final merged [ClientConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or one of the sentinel
// validation errors otherwise.
func (cfg *ClientConfig) validate() error {
	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 || cfg.App.StorageKey == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Backend.Latency <= 0 {
		return ErrInvalidBackendConfigs
	}

	if cfg.Breach.BaseURL == "" || cfg.Breach.RequestTimeout <= 0 {
		return ErrInvalidBreachConfigs
	}

	if cfg.Workers.BreachCheckInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
