package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLoadDefaults(t *testing.T) {
	// No config file on the search path; defaults and env vars apply.
	wd, err := os.Getwd()
	require.NoError(t, err)
	tmp := t.TempDir()
	require.NoError(t, os.Chdir(tmp))
	defer os.Chdir(wd)

	cfg, err := Load("development")
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, 12, cfg.Auth.Password.BcryptCost)
	assert.Equal(t, 15, cfg.Auth.JWT.AccessExpMinutes)
	assert.Equal(t, 7, cfg.Auth.JWT.RefreshExpDays)
	assert.False(t, cfg.Email.Enabled)
	assert.False(t, cfg.Redis.Enabled)
	assert.False(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 60, cfg.RateLimit.RequestsPerMinute)
}

func TestExampleConfigIsWellFormed(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("..", "..", "..", "configs", "config.yaml.example"))
	if os.IsNotExist(err) {
		t.Skip("example config not present")
	}
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(data, &doc))

	for _, section := range []string{"server", "database", "logger", "auth", "email", "redis", "rate_limit"} {
		assert.Contains(t, doc, section)
	}
}
