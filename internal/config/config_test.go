package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://www.saucedemo.com", cfg.BaseURL)
	assert.Equal(t, "standard_user", cfg.Username)
	assert.Equal(t, "secret_sauce", cfg.Password)
	assert.Equal(t, 3, cfg.Items)
	assert.True(t, cfg.Headless)
	assert.Empty(t, cfg.ChromePath)
	assert.Equal(t, 10*time.Second, cfg.OpTimeout)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("CHECKOUTFLOW_BASE_URL", "http://localhost:8080")
	t.Setenv("CHECKOUTFLOW_USERNAME", "visual_user")
	t.Setenv("CHECKOUTFLOW_ITEMS", "5")
	t.Setenv("CHECKOUTFLOW_HEADLESS", "false")
	t.Setenv("CHECKOUTFLOW_OP_TIMEOUT", "2s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.BaseURL)
	assert.Equal(t, "visual_user", cfg.Username)
	assert.Equal(t, 5, cfg.Items)
	assert.False(t, cfg.Headless)
	assert.Equal(t, 2*time.Second, cfg.OpTimeout)
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Setenv("CHECKOUTFLOW_ITEMS", "plenty")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}
