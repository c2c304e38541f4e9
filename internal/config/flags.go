package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-d database DSN (SQLite file path)
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "24h", "30m")
//	-storage-key local snapshot encryption key
//	-backend-latency simulated backend latency (e.g., "1s")
//	-breach-url breach range API base URL
//	-breach-timeout breach lookup request timeout
//	-breach-offline use the built-in offline breach checker
//	-breach-interval breach worker scan interval
func ParseFlags() *ClientConfig {
	var databaseDSN string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var storageKey string
	var backendLatency time.Duration
	var breachURL string
	var breachTimeout time.Duration
	var breachOffline bool
	var breachInterval time.Duration

	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 24h, 30m)")
	flag.StringVar(&storageKey, "storage-key", "", "Local snapshot encryption key")
	flag.DurationVar(&backendLatency, "backend-latency", 0, "Simulated backend latency (e.g., 1s)")
	flag.StringVar(&breachURL, "breach-url", "", "Breach range API base URL")
	flag.DurationVar(&breachTimeout, "breach-timeout", 0, "Breach lookup request timeout")
	flag.BoolVar(&breachOffline, "breach-offline", false, "Use the built-in offline breach checker")
	flag.DurationVar(&breachInterval, "breach-interval", 0, "Breach worker scan interval")

	flag.Parse()

	return &ClientConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
			StorageKey:    storageKey,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Backend: Backend{
			Latency: backendLatency,
		},
		Breach: Breach{
			BaseURL:        breachURL,
			RequestTimeout: breachTimeout,
			Offline:        breachOffline,
		},
		Workers: Workers{
			BreachCheckInterval: breachInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
