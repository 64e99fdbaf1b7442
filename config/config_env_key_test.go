package config

import (
	"runtime"
	"testing"
	"time"

	"github.com/slighter12/go-lib/database/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"auth": map[string]any{
			"tokenTTL": "24h",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "AUTH_TOKENTTL", want: "auth.tokenTTL"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.Env.ServiceName = "gatehouse"

	cfg.ApplyDefaults()

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, "/api", cfg.HTTP.BasePath)
	assert.Equal(t, StoreDriverPostgres, cfg.Store.Driver)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, defaultBcryptCost, cfg.Auth.BcryptCost)
	assert.Equal(t, runtime.NumCPU(), cfg.Auth.HashConcurrency)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, "gatehouse", cfg.Auth.Issuer)
}

func TestConfig_ApplyDefaultsKeepsExplicitValues(t *testing.T) {
	cfg := &Config{Auth: &AuthConfig{BcryptCost: 4, HashConcurrency: 2, TokenTTL: time.Minute, Issuer: "custom"}}
	cfg.HTTP.BasePath = "/v1"

	cfg.ApplyDefaults()

	assert.Equal(t, "/v1", cfg.HTTP.BasePath)
	assert.Equal(t, 4, cfg.Auth.BcryptCost)
	assert.Equal(t, 2, cfg.Auth.HashConcurrency)
	assert.Equal(t, time.Minute, cfg.Auth.TokenTTL)
	assert.Equal(t, "custom", cfg.Auth.Issuer)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr string
	}{
		{
			name:   "memory store with secret",
			mutate: func(cfg *Config) { cfg.Store.Driver = StoreDriverMemory },
		},
		{
			name: "postgres store with connection",
			mutate: func(cfg *Config) {
				cfg.Store.Driver = StoreDriverPostgres
				cfg.Postgres = &postgres.DBConn{}
			},
		},
		{
			name: "missing secret",
			mutate: func(cfg *Config) {
				cfg.Store.Driver = StoreDriverMemory
				cfg.SecretKey.Access = "  "
			},
			wantErr: "secretKey.access must be provided",
		},
		{
			name:    "postgres store without connection",
			mutate:  func(cfg *Config) { cfg.Store.Driver = StoreDriverPostgres },
			wantErr: "postgres configuration is required",
		},
		{
			name:    "unknown driver",
			mutate:  func(cfg *Config) { cfg.Store.Driver = "redis" },
			wantErr: "unknown store driver: redis",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
