package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs fails
// validation: a zero-value ClientConfig has no app secrets.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	require.ErrorIs(t, err, ErrInvalidAppConfigs)
}

// TestBuild_DefaultsAlone verifies that the built-in defaults form a valid
// standalone configuration.
func TestBuild_DefaultsAlone(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "securevault", cfg.App.TokenIssuer)
	assert.Equal(t, 24*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "securevault.db", cfg.Storage.DB.DSN)
	assert.Equal(t, time.Second, cfg.Backend.Latency)
	assert.Equal(t, "https://api.pwnedpasswords.com", cfg.Breach.BaseURL)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_MergesMultipleConfigs verifies that fields from multiple configs
// are merged into a single result, with earlier configs winning.
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	first := defaultConfig()
	first.Storage.DB.DSN = "override.db"
	b.configs = append(b.configs, first, defaultConfig())

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "override.db", cfg.Storage.DB.DSN)
	// Untouched groups fall through from the later config.
	assert.Equal(t, time.Second, cfg.Backend.Latency)
}

// TestBuild_EarlierSourceWins verifies mergo precedence: a non-zero field in
// an earlier config is not overwritten by a later one.
func TestBuild_EarlierSourceWins(t *testing.T) {
	b := newConfigBuilder()
	env := &ClientConfig{App: App{TokenIssuer: "from-env"}}
	b.configs = append(b.configs, env, defaultConfig())

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.App.TokenIssuer)
}

// ── withEnv / withJSON ────────────────────────────────────────────────────────

// TestWithEnv_AppendsConfig verifies that withEnv appends a parsed config.
func TestWithEnv_AppendsConfig(t *testing.T) {
	t.Setenv("APP_TOKEN_ISSUER", "issuer-from-env")

	b := newConfigBuilder().withEnv()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "issuer-from-env", b.configs[0].App.TokenIssuer)
}

// TestWithJSON_NoPathSpecified verifies that withJSON is a no-op when no
// earlier source provided a JSON path.
func TestWithJSON_NoPathSpecified(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &ClientConfig{})

	b.withJSON()
	require.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

// TestWithJSON_BadPathSetsError verifies that an unreadable JSON path is
// recorded as a builder error.
func TestWithJSON_BadPathSetsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &ClientConfig{JSONFilePath: "/definitely/not/here.json"})

	b.withJSON()
	require.Error(t, b.err)
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *ClientConfig)
		wantErr error
	}{
		{
			name:    "missing token sign key",
			mutate:  func(cfg *ClientConfig) { cfg.App.TokenSignKey = "" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "missing storage key",
			mutate:  func(cfg *ClientConfig) { cfg.App.StorageKey = "" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "empty DSN",
			mutate:  func(cfg *ClientConfig) { cfg.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "zero backend latency",
			mutate:  func(cfg *ClientConfig) { cfg.Backend.Latency = 0 },
			wantErr: ErrInvalidBackendConfigs,
		},
		{
			name:    "missing breach base URL",
			mutate:  func(cfg *ClientConfig) { cfg.Breach.BaseURL = "" },
			wantErr: ErrInvalidBreachConfigs,
		},
		{
			name:    "zero breach worker interval",
			mutate:  func(cfg *ClientConfig) { cfg.Workers.BreachCheckInterval = 0 },
			wantErr: ErrInvalidWorkerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.validate(), tt.wantErr)
		})
	}
}
