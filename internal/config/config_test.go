package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()
	require.Equal(t, ":8080", cfg.Addr)
	require.Equal(t, time.Second, cfg.TickInterval)
	require.Equal(t, 2*time.Second, cfg.StreamInterval)
	require.Equal(t, 15*time.Second, cfg.HeartbeatInterval)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("TICK_INTERVAL", "500ms")
	t.Setenv("STREAM_INTERVAL", "1s")
	t.Setenv("HEARTBEAT_INTERVAL", "30s")

	cfg := Load()
	require.Equal(t, ":9090", cfg.Addr)
	require.Equal(t, 500*time.Millisecond, cfg.TickInterval)
	require.Equal(t, time.Second, cfg.StreamInterval)
	require.Equal(t, 30*time.Second, cfg.HeartbeatInterval)
}

func TestLoad_MalformedDurationFallsBack(t *testing.T) {
	t.Setenv("TICK_INTERVAL", "soon")
	t.Setenv("STREAM_INTERVAL", "-2s")

	cfg := Load()
	require.Equal(t, time.Second, cfg.TickInterval)
	require.Equal(t, 2*time.Second, cfg.StreamInterval)
}
