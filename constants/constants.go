package constants

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DefaultAddr      = ":8080"
	DefaultOutDir    = "./out"
	DefaultTable     = "harmonfunc-analyses"
	DefaultRegion    = "us-east-1"
	DefaultWorkers   = 4
	DefaultVerbosity = "concise"
	DefaultKey       = "C"
)

// LoadEnv reads a .env file into the environment if one exists. It reports whether
// one was found.
func LoadEnv(paths ...string) bool {
	return godotenv.Load(paths...) == nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return fallback
}

func GetAddr() string {
	return getEnv("HARMONFUNC_ADDR", DefaultAddr)
}

// GetMediaDir is where MIDI files are looked for when no path is given.
func GetMediaDir() string {
	return getEnv("MEDIA_PATH", ".")
}

func GetOutDir() string {
	return getEnv("OUT_PATH", DefaultOutDir)
}

// GetDynamoEndpoint is empty unless a local or custom endpoint is configured.
func GetDynamoEndpoint() string {
	return getEnv("DYNAMODB_ENDPOINT", "")
}

func GetDynamoTable() string {
	return getEnv("DYNAMODB_TABLE", DefaultTable)
}

func GetRegion() string {
	return getEnv("AWS_REGION", DefaultRegion)
}

func GetWorkers() int {
	n, err := strconv.Atoi(os.Getenv("ANALYSIS_WORKERS"))
	if err != nil || n < 1 {
		return DefaultWorkers
	}
	return n
}

func GetLogLevel() string {
	return getEnv("LOG_LEVEL", "info")
}

func GetSentryDSN() string {
	return getEnv("SENTRY_DSN", "")
}

func GetEnvironment() string {
	return getEnv("ENVIRONMENT", "development")
}

func GetDefaultVerbosity() string {
	return getEnv("DEFAULT_VERBOSITY", DefaultVerbosity)
}

func GetDefaultKey() string {
	return getEnv("DEFAULT_KEY", DefaultKey)
}
