package update

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type RuntimeConfig struct {
	DBPath    string
	LogPath   string
	TickMs    int
	AltScreen bool
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		TickMs:    1000,
		AltScreen: true,
	}
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v := strings.TrimSpace(os.Getenv("ACHIEVERS_DB")); v != "" {
		cfg.DBPath = v
	}
	if v := strings.TrimSpace(os.Getenv("ACHIEVERS_LOG")); v != "" {
		cfg.LogPath = v
	}
	if v, ok := getEnvInt("ACHIEVERS_TICK_MS"); ok && v > 0 {
		cfg.TickMs = v
	}
	if v, ok := getEnvBool("ACHIEVERS_DISABLE_ALT_SCREEN"); ok {
		cfg.AltScreen = !v
	}
	return cfg
}

func (c RuntimeConfig) TickInterval() time.Duration {
	if c.TickMs <= 0 {
		return time.Second
	}
	return time.Duration(c.TickMs) * time.Millisecond
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
