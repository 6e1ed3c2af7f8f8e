package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, DefaultAPIBaseURL, c.APIBaseURL)
	assert.Equal(t, DefaultAuthBaseURL, c.AuthBaseURL)
	assert.Equal(t, DefaultSessionDB, c.SessionDB)
	assert.Equal(t, time.Duration(0), c.RequestTimeout)
	assert.Equal(t, 2*time.Second, c.ContactDelay)
	assert.Equal(t, "info", c.LogLevel)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}
	noDotEnv(t)

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, DefaultAPIBaseURL, cfg.APIBaseURL)
	assert.Equal(t, DefaultSessionDB, cfg.SessionDB)
}

func TestLoadConfig_Precedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	noDotEnv(t)

	path := writeTempJSON(t, "", "", map[string]any{
		"api_base_url": "http://from-json",
		"session_db":   "json.db",
		"log_level":    "warn",
	})
	t.Setenv("SITEADMIN_SESSION_DB", "env.db")
	t.Setenv("SITEADMIN_LOG_LEVEL", "error")

	os.Args = []string{"testbin", "-c", path, "-l", "debug"}
	cfg := LoadConfig()

	assert.Equal(t, "http://from-json", cfg.APIBaseURL, "json overrides default")
	assert.Equal(t, "env.db", cfg.SessionDB, "env overrides json")
	assert.Equal(t, "debug", cfg.LogLevel, "flag overrides env")
	assert.Equal(t, DefaultAuthBaseURL, cfg.AuthBaseURL, "untouched field keeps default")
}

func TestLoadConfig_SubSecondTimeoutSurvivesFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	noDotEnv(t)

	t.Run("from env", func(t *testing.T) {
		t.Setenv("SITEADMIN_REQUEST_TIMEOUT", "500ms")
		os.Args = []string{"testbin"}

		assert.Equal(t, 500*time.Millisecond, LoadConfig().RequestTimeout)
	})

	t.Run("from json", func(t *testing.T) {
		path := writeTempJSON(t, "", "", map[string]any{"request_timeout": "1500ms"})
		os.Args = []string{"testbin", "-c", path}

		assert.Equal(t, 1500*time.Millisecond, LoadConfig().RequestTimeout)
	})

	t.Run("explicit flag wins", func(t *testing.T) {
		t.Setenv("SITEADMIN_REQUEST_TIMEOUT", "500ms")
		os.Args = []string{"testbin", "-t", "3"}

		assert.Equal(t, 3*time.Second, LoadConfig().RequestTimeout)
	})
}
