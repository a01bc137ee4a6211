package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Env holds settings read from the environment and an optional .env file.
type Env struct {
	DBPath     string // FLAMIN_DB
	ConfigPath string // FLAMIN_CONFIG
	LogLevel   string // FLAMIN_LOG_LEVEL
	LogFile    string // FLAMIN_LOG_FILE
	SSHAddr    string // FLAMIN_SSH_ADDR
	TickRate   int    // FLAMIN_TPS
}

// LoadEnv loads the given .env files (./.env when none are given) without
// overriding variables already set, then reads the FLAMIN_* settings.
// A missing .env file is not an error.
func LoadEnv(files ...string) (Env, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Env{}, err
	}

	tps, err := getEnvAsInt("FLAMIN_TPS", 60)
	if err != nil {
		return Env{}, err
	}
	return Env{
		DBPath:     getEnv("FLAMIN_DB", filepath.Join("~", ".flaminmaze", "scores.db")),
		ConfigPath: getEnv("FLAMIN_CONFIG", ""),
		LogLevel:   getEnv("FLAMIN_LOG_LEVEL", "info"),
		LogFile:    getEnv("FLAMIN_LOG_FILE", filepath.Join("~", ".flaminmaze", "flaminmaze.log")),
		SSHAddr:    getEnv("FLAMIN_SSH_ADDR", ":2323"),
		TickRate:   tps,
	}, nil
}

// getEnv retrieves the value of an environment variable or returns a default value if not set.
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an integer environment variable or returns a default value if not set.
func getEnvAsInt(key string, defaultValue int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, errors.Join(errors.New("config: "+key+" must be an integer"), err)
	}
	return n, nil
}
