package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"auction-house/utils"
)

// Config holds the runtime settings for the auction server.
type Config struct {
	Addr              string        // listen address, e.g. ":8080"
	TickInterval      time.Duration // auction countdown tick
	StreamInterval    time.Duration // SSE re-broadcast interval
	HeartbeatInterval time.Duration // SSE heartbeat interval
}

// Load reads configuration from the environment, with an optional .env file
// for local development. Missing or malformed values fall back to defaults.
func Load() Config {
	// Ignore a missing .env; real deployments set the environment directly.
	_ = godotenv.Load()

	return Config{
		Addr:              addrFromEnv(),
		TickInterval:      durationFromEnv("TICK_INTERVAL", time.Second),
		StreamInterval:    durationFromEnv("STREAM_INTERVAL", 2*time.Second),
		HeartbeatInterval: durationFromEnv("HEARTBEAT_INTERVAL", 15*time.Second),
	}
}

func addrFromEnv() string {
	if p := os.Getenv("PORT"); p != "" {
		return fmt.Sprintf(":%s", p)
	}
	return ":8080"
}

func durationFromEnv(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		utils.Warn("invalid duration in environment, using default", map[string]any{
			"key":     key,
			"value":   raw,
			"default": fallback.String(),
		})
		return fallback
	}
	return d
}
