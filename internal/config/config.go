package config

import (
	"os"
	"strconv"
)

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables once at startup; nothing is
// re-read while the process is serving.
type AppConfig struct {
	// AppName labels the service in the health payload, home page and traces.
	AppName string
	// Host is the bind address. 0.0.0.0 is intentional: the process runs
	// inside a container behind the cluster's load balancer.
	Host string
	// Port is the listening port.
	Port string
	// Debug toggles verbose error output (error detail in 500 responses,
	// panic stack traces). Leave off outside local development.
	Debug bool
	// ShutdownTimeoutSec bounds how long in-flight requests may finish
	// after SIGTERM before the listener is torn down.
	ShutdownTimeoutSec int
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppName:            getEnv("APP_NAME", "ping-pong"),
		Host:               getEnv("HOST", "0.0.0.0"),
		Port:               getEnv("PORT", "5000"),
		Debug:              getEnvBool("DEBUG", false),
		ShutdownTimeoutSec: getEnvInt("SHUTDOWN_TIMEOUT_SEC", 10),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
