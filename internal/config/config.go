package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// EnvProduction is the value of LINKDEN_ENV that switches the service to
// production behavior (JSON logs by default, error detail suppressed in 500s).
const EnvProduction = "production"

type Config struct {
	ListenAddr      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s

	Env       string // "development" | "production"
	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	APIToken string // shared bearer token required on /bookmarks
	DBPath   string // path to the sqlite database file
}

// Load reads the configuration from the environment once at process start.
// Required variables panic when missing; there is no runtime reconfiguration.
func Load() *Config {
	cfg := &Config{
		// Server settings
		ListenAddr:      getenv("LINKDEN_LISTEN_ADDR", ":8080"),
		ShutdownTimeout: mustDuration("LINKDEN_SHUTDOWN_TIMEOUT", 5*time.Second),

		// Mode and logging
		Env:       getenv("LINKDEN_ENV", "development"),
		LogLevel:  getenv("LINKDEN_LOG_LEVEL", "info"),
		PrettyLog: mustBool("LINKDEN_PRETTY_LOG", true),

		// Access token and storage
		APIToken: requireEnv("LINKDEN_API_TOKEN"),
		DBPath:   getenv("LINKDEN_DB_PATH", "linkden.db"),
	}

	return cfg
}

// Production reports whether the service runs in production mode.
func (c *Config) Production() bool { return c.Env == EnvProduction }

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func requireEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		panic(fmt.Sprintf("❌ FATAL: Required environment variable %s is not set", key))
	}
	return v
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
