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

	assert.Equal(t, "http://127.0.0.1:8000/verify-action", c.VerifyEndpointAddr)
	assert.Equal(t, "ecotrack.db", c.DatabaseDSN)
	assert.Equal(t, 3*time.Second, c.OnlineCheckInterval)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "http://127.0.0.1:8000/verify-action", cfg.VerifyEndpointAddr)
	assert.Equal(t, "ecotrack.db", cfg.DatabaseDSN)
	assert.Equal(t, 3*time.Second, cfg.OnlineCheckInterval)
}

func TestLoadConfig_FlagsOverrideDefaults(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin", "-a", "http://10.0.0.5:8000/verify-action", "-d", "test.db", "-i", "7"}

	cfg := LoadConfig()

	assert.Equal(t, "http://10.0.0.5:8000/verify-action", cfg.VerifyEndpointAddr)
	assert.Equal(t, "test.db", cfg.DatabaseDSN)
	assert.Equal(t, 7*time.Second, cfg.OnlineCheckInterval)
}
