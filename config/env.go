package config

import (
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv reads .env if present. Missing file is not an error; deployments
// set real environment variables instead.
func LoadEnv() {
	_ = godotenv.Load()
}

func GetPort() string {
	port := os.Getenv("PORT")
	if port == "" {
		return "8080"
	}
	return port
}

// GetSnapshotPath is where the store persists its full-state snapshot between
// runs. Empty means in-memory only (tests, admin tools operating on --file).
func GetSnapshotPath() string {
	return os.Getenv("SNAPSHOT_PATH")
}
