package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("UPSTREAM_BASE_URL", "http://backend.local")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "http://backend.local", cfg.Upstream.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Upstream.Timeout)
	assert.Equal(t, 30*time.Second, cfg.Refresh.Interval)
	assert.Equal(t, 60*time.Second, cfg.Refresh.LiveInterval)
	assert.Empty(t, cfg.Scope.CentreIDs)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("UPSTREAM_BASE_URL", "http://backend.local")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("REFRESH_INTERVAL", "45s")
	t.Setenv("SCOPE_CENTRE_IDS", "c1,c2")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.App.Port)
	assert.Equal(t, 45*time.Second, cfg.Refresh.Interval)
	assert.Equal(t, []string{"c1", "c2"}, cfg.Scope.CentreIDs)
}

func TestLoad_RequiresBaseURL(t *testing.T) {
	t.Setenv("UPSTREAM_BASE_URL", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate_IntervalBounds(t *testing.T) {
	t.Parallel()

	cfg := &Config{
		Upstream: UpstreamConfig{BaseURL: "http://backend.local"},
		Refresh:  RefreshConfig{Interval: 500 * time.Millisecond, LiveInterval: time.Minute},
	}
	assert.Error(t, cfg.Validate())

	cfg.Refresh.Interval = time.Second
	cfg.Refresh.LiveInterval = 100 * time.Millisecond
	assert.Error(t, cfg.Validate())

	cfg.Refresh.LiveInterval = time.Second
	assert.NoError(t, cfg.Validate())
}
