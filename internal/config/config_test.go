package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skarut/landing-api/internal/config"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_CONNECTION_STRING", "file:landing.db")
	t.Setenv("SECRET_KEY", "test-signing-key")
	t.Setenv("PORT", "")
	t.Setenv("TOKEN_TTL_HOURS", "")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "file:landing.db", cfg.DBConnectionString)
	assert.Equal(t, "test-signing-key", cfg.SigningKey)
	assert.Equal(t, config.DefaultPort, cfg.Port)
	assert.Equal(t, config.DefaultTokenExpiration, cfg.TokenExpiration)
	assert.Equal(t, config.DefaultIssuer, cfg.Issuer)
	assert.Equal(t, ":4444", cfg.Addr())
}

func TestLoadOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "8080")
	t.Setenv("TOKEN_TTL_HOURS", "24")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, 24, cfg.TokenExpiration)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Run("missing connection string", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("DB_CONNECTION_STRING", "")

		_, err := config.Load()
		assert.Error(t, err)
	})

	t.Run("missing signing key", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("SECRET_KEY", "")

		_, err := config.Load()
		assert.Error(t, err)
	})

	t.Run("non numeric port", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("PORT", "not-a-port")

		_, err := config.Load()
		assert.Error(t, err)
	})

	t.Run("non positive token ttl", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("TOKEN_TTL_HOURS", "-5")

		_, err := config.Load()
		assert.Error(t, err)
	})

	t.Run("port out of range", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("PORT", "70000")

		_, err := config.Load()
		assert.Error(t, err)
	})
}

func TestConfigSatisfiesAuthOptions(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, cfg.SigningKey, cfg.GetSigningKey())
	assert.Equal(t, cfg.TokenExpiration, cfg.GetTokenExpiration())
	assert.Equal(t, cfg.Issuer, cfg.GetIssuer())
	assert.Equal(t, "user", cfg.GetContextKey())
	assert.Equal(t, "Bearer", cfg.GetAuthScheme())
}
