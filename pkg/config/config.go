package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerURL         string
	Username          string
	Locale            string
	LogFile           string
	LogLevel          string
	DialTimeout       time.Duration
	ReconnectMaxDelay time.Duration
}

func Load() *Config {
	loadEnvFile()

	return &Config{
		ServerURL:         getEnv("HAMGAP_SERVER_URL", "ws://127.0.0.1:8080"),
		Username:          getEnv("HAMGAP_USERNAME", ""),
		Locale:            getEnv("HAMGAP_LOCALE", "en"),
		LogFile:           getEnv("HAMGAP_LOG_FILE", "hamgap.log"),
		LogLevel:          getEnv("HAMGAP_LOG_LEVEL", "info"),
		DialTimeout:       parseSeconds(getEnv("HAMGAP_DIAL_TIMEOUT", "10"), 10*time.Second),
		ReconnectMaxDelay: parseSeconds(getEnv("HAMGAP_RECONNECT_MAX_DELAY", "30"), 30*time.Second),
	}
}

// loadEnvFile reads HAMGAP_ENV_FILE (or ./.env when unset) into the
// process environment. Variables that are already set win over file
// values.
func loadEnvFile() {
	if path := os.Getenv("HAMGAP_ENV_FILE"); path != "" {
		_ = godotenv.Load(path)
		return
	}
	_ = godotenv.Load()
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func parseSeconds(s string, defaultValue time.Duration) time.Duration {
	val, err := strconv.ParseInt(s, 10, 64)
	if err != nil || val <= 0 {
		return defaultValue
	}
	return time.Duration(val) * time.Second
}
