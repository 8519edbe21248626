package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"PORT", "GIN_MODE", "CONTENT_SOURCE", "DATABASE_PATH", "DERIVE_CATEGORIES", "TRUSTED_PROXIES"} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, SourceStatic, cfg.ContentSource)
	assert.Equal(t, "data/portfolio.db", cfg.DatabasePath)
	assert.False(t, cfg.DeriveCategories)
	assert.Empty(t, cfg.TrustedProxies)
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("GIN_MODE", "release")
	t.Setenv("CONTENT_SOURCE", "SQLite")
	t.Setenv("DATABASE_PATH", "/tmp/site.db")
	t.Setenv("DERIVE_CATEGORIES", "true")
	t.Setenv("TRUSTED_PROXIES", "10.0.0.1, 10.0.0.2,")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "release", cfg.Mode)
	assert.Equal(t, SourceSQLite, cfg.ContentSource)
	assert.Equal(t, "/tmp/site.db", cfg.DatabasePath)
	assert.True(t, cfg.DeriveCategories)
	assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, cfg.TrustedProxies)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		key, value, wantErr string
	}{
		{"PORT", "eighty", "invalid PORT"},
		{"CONTENT_SOURCE", "postgres", "invalid CONTENT_SOURCE"},
		{"DERIVE_CATEGORIES", "maybe", "invalid DERIVE_CATEGORIES"},
		{"GIN_MODE", "production", "invalid GIN_MODE"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
