package envconfig

import (
	"os"

	"github.com/joho/godotenv"

	"smart-restaurant/pkg/logger"
)

// LoadEnvFile loads environment variables from the given .env file.
// A missing file is reported to the caller but is not fatal.
func LoadEnvFile(path string) error {
	return godotenv.Load(path)
}

// GetEnv returns the value of key, or defaultValue when unset.
func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// GetLogLevel maps the LOG_LEVEL variable onto a logger level.
func GetLogLevel() logger.LogLevel {
	switch GetEnv("LOG_LEVEL", "info") {
	case "debug":
		return logger.LevelDebug
	case "warn":
		return logger.LevelWarn
	case "error":
		return logger.LevelError
	default:
		return logger.LevelInfo
	}
}
