package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_EnvOverrides(t *testing.T) {
	_ = os.Setenv("APP_HTTP_PORT", "9090")
	_ = os.Setenv("APP_DB_DRIVER", "sqlite")
	_ = os.Setenv("APP_SQLITE_PATH", "test.db")
	_ = os.Setenv("APP_AUTH_COOKIE", "poke_token")
	t.Cleanup(func() {
		_ = os.Unsetenv("APP_HTTP_PORT")
		_ = os.Unsetenv("APP_DB_DRIVER")
		_ = os.Unsetenv("APP_SQLITE_PATH")
		_ = os.Unsetenv("APP_AUTH_COOKIE")
	})

	cfg := Load()

	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "test.db", cfg.SQLitePath)
	assert.Equal(t, "poke_token", cfg.AuthCookie)
}

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "access_token", cfg.AuthCookie)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL())
}

func TestCookieSecure_ByEnv(t *testing.T) {
	assert.False(t, (&Config{Env: "dev"}).CookieSecure())
	assert.True(t, (&Config{Env: "staging"}).CookieSecure())
	assert.True(t, (&Config{Env: "prod"}).CookieSecure())
}
