package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
server:
  port: 9090
  readTimeout: 20
database:
  host: db.local
  username: bank
  password: from-file
  database: bank
  connMaxLifetime: 10
auth:
  jwtSecret: file-secret
  tokenTTL: 30
transaction:
  balanceCheckMode: read-then-write
`

func writeConfig(t *testing.T, env, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, env+".yaml"), []byte(content), 0o600))
	return dir
}

func TestLoadConfigFromPaths(t *testing.T) {
	t.Run("file values, defaults and durations", func(t *testing.T) {
		dir := writeConfig(t, Test, testYAML)

		config, err := LoadConfigFromPaths(Test, []string{dir})
		require.NoError(t, err)

		assert.Equal(t, Test, config.Environment)
		assert.Equal(t, 9090, config.Server.Port)
		assert.Equal(t, 20*time.Second, config.Server.ReadTimeout)
		assert.Equal(t, 15*time.Second, config.Server.WriteTimeout)
		assert.Equal(t, "db.local", config.Database.Host)
		assert.Equal(t, "5432", config.Database.Port)
		assert.Equal(t, 10*time.Minute, config.Database.ConnMaxLifetime)
		assert.Equal(t, 5*time.Second, config.Database.QueryTimeout)
		assert.Equal(t, 30*time.Minute, config.Auth.TokenTTL)
		assert.Equal(t, "bcrypt", config.Auth.PasswordHashing)
		assert.Equal(t, "read-then-write", config.Transaction.BalanceCheckMode)
		assert.Equal(t, 5, config.Transaction.MaxRetries)
		assert.False(t, config.Redis.Enabled)
		assert.Equal(t, 10, config.RateLimit.Burst)
	})

	t.Run("environment overrides win over the file", func(t *testing.T) {
		dir := writeConfig(t, Test, testYAML)
		t.Setenv("BANK_DB_PASSWORD", "from-env")
		t.Setenv("BANK_AUTH_JWT_SECRET", "env-secret")
		t.Setenv("BANK_SERVER_PORT", "7070")
		t.Setenv("BANK_TRANSACTION_BALANCE_CHECK_MODE", "atomic")

		config, err := LoadConfigFromPaths(Test, []string{dir})
		require.NoError(t, err)

		assert.Equal(t, "from-env", config.Database.Password)
		assert.Equal(t, "env-secret", config.Auth.JWTSecret)
		assert.Equal(t, 7070, config.Server.Port)
		assert.Equal(t, "atomic", config.Transaction.BalanceCheckMode)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfigFromPaths("staging", []string{t.TempDir()})
		assert.Error(t, err)
	})
}

func TestGetEnvironment(t *testing.T) {
	t.Setenv("BANK_ENV", "")
	assert.Equal(t, Development, getEnvironment())

	t.Setenv("BANK_ENV", "Production")
	assert.Equal(t, Production, getEnvironment())
}
