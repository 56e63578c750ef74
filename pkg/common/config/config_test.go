package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, "json", c.LogFormat)
	assert.Empty(t, c.LogFile)
	assert.Equal(t, ":8080", c.HTTPAddress)
	assert.Equal(t, 10*time.Second, c.ShutdownTimeout)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("INVENTORY_LOG_LEVEL", "debug")
	t.Setenv("INVENTORY_LOG_FORMAT", "text")
	t.Setenv("INVENTORY_LOG_FILE", "inventory.log")
	t.Setenv("INVENTORY_HTTP_ADDRESS", "127.0.0.1:9000")
	t.Setenv("INVENTORY_SHUTDOWN_TIMEOUT", "3s")

	c, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, "text", c.LogFormat)
	assert.Equal(t, "inventory.log", c.LogFile)
	assert.Equal(t, "127.0.0.1:9000", c.HTTPAddress)
	assert.Equal(t, 3*time.Second, c.ShutdownTimeout)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Run("Log format", func(t *testing.T) {
		t.Setenv("INVENTORY_LOG_FORMAT", "xml")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("Shutdown timeout", func(t *testing.T) {
		t.Setenv("INVENTORY_SHUTDOWN_TIMEOUT", "soon")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("Zero shutdown timeout", func(t *testing.T) {
		t.Setenv("INVENTORY_SHUTDOWN_TIMEOUT", "0s")
		_, err := Load()
		assert.Error(t, err)
	})
}
