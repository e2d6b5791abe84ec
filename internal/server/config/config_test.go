package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, ":8080", cfg.EndpointAddr)
	assert.Equal(t, 24*time.Hour, cfg.TokenValidityDuration)
	assert.Equal(t, 12, cfg.BcryptCost)
	assert.Equal(t, "auth", cfg.SessionCookieName)
	assert.Equal(t, "/", cfg.SessionCookiePath)
	assert.False(t, cfg.SessionCookieSecure)
}

func TestParseFlags(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"server", "-a", ":9090", "-s", "other-secret", "-t", "1", "-k", "4"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, ":9090", cfg.EndpointAddr)
	assert.Equal(t, "other-secret", cfg.SecretKey)
	assert.Equal(t, time.Hour, cfg.TokenValidityDuration)
	assert.Equal(t, 4, cfg.BcryptCost)
}

func TestParseJson(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	file := filepath.Join(t.TempDir(), "config.json")
	body := `{
		"endpoint_addr": ":7070",
		"database_dsn": "postgres://u:p@localhost:5432/test",
		"secret_key": "json-secret",
		"token_validity_duration": "12h",
		"bcrypt_cost": 10,
		"session_cookie_name": "sid",
		"session_cookie_path": "/",
		"session_cookie_domain": "example.com",
		"session_cookie_secure": true
	}`
	require.NoError(t, os.WriteFile(file, []byte(body), 0o600))

	os.Args = []string{"server", "-c", file}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, ":7070", cfg.EndpointAddr)
	assert.Equal(t, "json-secret", cfg.SecretKey)
	assert.Equal(t, 12*time.Hour, cfg.TokenValidityDuration)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Equal(t, "sid", cfg.SessionCookieName)
	assert.Equal(t, "example.com", cfg.SessionCookieDomain)
	assert.True(t, cfg.SessionCookieSecure)
}

func TestParseJson_NoFlagIsNoop(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"server"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, ":8080", cfg.EndpointAddr)
}
