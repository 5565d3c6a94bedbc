package internal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		Host:                "0.0.0.0",
		Port:                8090,
		LogLevel:            "INFO",
		BadgerFilepath:      "./data/gateway",
		LoginCodeTTL:        time.Hour,
		LoginSweepInterval:  time.Minute,
		LoginURLBase:        "https://login.example.com/scan",
		DispatcherWorkers:   8,
		DispatcherQueueSize: 256,
		SendBufferSize:      256,
		PresenceQueueSize:   1024,
		AuthSecret:          "0123456789abcdef0123456789abcdef",
		AuthTokenDuration:   24 * time.Hour,
		AuthRenewThreshold:  time.Hour,
		RestartInterval:     200 * time.Millisecond,
		MetricInterval:      30 * time.Second,
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Run("should accept a complete configuration", func(t *testing.T) {
		require.NoError(t, validConfig().Validate())
	})

	t.Run("should refuse a missing badger path", func(t *testing.T) {
		config := validConfig()
		config.BadgerFilepath = ""
		require.Error(t, config.Validate())
	})

	t.Run("should refuse a malformed login url base", func(t *testing.T) {
		config := validConfig()
		config.LoginURLBase = "not a url"
		require.Error(t, config.Validate())
	})

	t.Run("should refuse a short auth secret", func(t *testing.T) {
		config := validConfig()
		config.AuthSecret = "short"
		require.Error(t, config.Validate())
	})

	t.Run("should refuse a renew threshold at or above the token duration", func(t *testing.T) {
		config := validConfig()
		config.AuthRenewThreshold = config.AuthTokenDuration
		require.Error(t, config.Validate())
	})

	t.Run("should refuse an out-of-range port", func(t *testing.T) {
		config := validConfig()
		config.Port = 0
		require.Error(t, config.Validate())
	})
}

func TestConfig_Addr(t *testing.T) {
	config := validConfig()
	require.Equal(t, "0.0.0.0:8090", config.Addr())
}
