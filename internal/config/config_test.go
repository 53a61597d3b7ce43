package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Setenv("APP_NAME", "pipeline-probe")
	t.Setenv("PORT", "8081")
	t.Setenv("DEBUG", "true")
	t.Setenv("SHUTDOWN_TIMEOUT_SEC", "3")

	cfg := Load()

	assert.Equal(t, "pipeline-probe", cfg.AppName)
	assert.Equal(t, "8081", cfg.Port)
	assert.True(t, cfg.Debug)
	assert.Equal(t, 3, cfg.ShutdownTimeoutSec)
}

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"APP_NAME", "HOST", "PORT", "DEBUG", "SHUTDOWN_TIMEOUT_SEC"} {
		orig := os.Getenv(key)
		os.Unsetenv(key)
		defer os.Setenv(key, orig)
	}

	cfg := Load()

	assert.Equal(t, "ping-pong", cfg.AppName)
	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, "5000", cfg.Port)
	assert.False(t, cfg.Debug)
	assert.Equal(t, 10, cfg.ShutdownTimeoutSec)
}

func TestGetEnv(t *testing.T) {
	key := "TEST_ENV_VAR"
	os.Setenv(key, "value")
	defer os.Unsetenv(key)

	assert.Equal(t, "value", getEnv(key, "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT", "default"))
}

func TestGetEnvBool(t *testing.T) {
	key := "TEST_BOOL_VAR"

	os.Setenv(key, "true")
	assert.True(t, getEnvBool(key, false))

	os.Setenv(key, "false")
	assert.False(t, getEnvBool(key, true))

	os.Setenv(key, "invalid")
	assert.True(t, getEnvBool(key, true))

	os.Unsetenv(key)
	assert.True(t, getEnvBool(key, true))
}

func TestGetEnvInt(t *testing.T) {
	key := "TEST_INT_VAR"

	os.Setenv(key, "123")
	assert.Equal(t, 123, getEnvInt(key, 0))

	os.Setenv(key, "invalid")
	assert.Equal(t, 10, getEnvInt(key, 10))

	os.Unsetenv(key)
	assert.Equal(t, 10, getEnvInt(key, 10))
}
