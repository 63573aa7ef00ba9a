package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "proxy-api", cfg.ServiceName)
	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, 20, cfg.ValidationBatchSize)
	assert.Equal(t, 10, cfg.ValidationWorkers)
	assert.Equal(t, 5*time.Minute, cfg.RefreshInterval)
	assert.Equal(t, 3*time.Second, cfg.TestTimeout)
	assert.Equal(t, 10, cfg.RefreshRateLimit)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("VALIDATION_BATCH_SIZE", "50")
	t.Setenv("REFRESH_INTERVAL", "10m")
	t.Setenv("PROXY_TEST_URL", "https://example.com/ip")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTPPort)
	assert.Equal(t, 50, cfg.ValidationBatchSize)
	assert.Equal(t, 10*time.Minute, cfg.RefreshInterval)
	assert.Equal(t, "https://example.com/ip", cfg.TestURL)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"VALIDATION_BATCH_SIZE":  "0",
		"VALIDATION_CONCURRENCY": "0",
		"REFRESH_INTERVAL":       "10s",
		"PROXY_TEST_TIMEOUT":     "0s",
		"REFRESH_RATE_LIMIT":     "0",
	}

	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			_, err := Load()
			require.Errorf(t, err, "expected %s=%s to be rejected", key, value)
		})
	}
}

func TestLoadBurstFallsBackToLimit(t *testing.T) {
	t.Setenv("REFRESH_RATE_LIMIT", "25")
	t.Setenv("REFRESH_RATE_BURST", "0")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.RefreshRateBurst)
}
