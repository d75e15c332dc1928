package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variable names recognised by the command line.
const (
	EnvSeed     = "BULLETHELL_SEED"
	EnvConfig   = "BULLETHELL_CONFIG"
	EnvDB       = "BULLETHELL_DB"
	EnvLogLevel = "BULLETHELL_LOG_LEVEL"
)

// Env holds overrides read from the process environment.
// Empty strings and a nil Seed mean "not set".
type Env struct {
	Seed       *int64
	ConfigPath string
	DBPath     string
	LogLevel   string
}

// LoadEnv loads the given dotenv files (".env" when none are given) into the
// process environment and returns the recognised overrides. Variables that
// are already set win over dotenv values. A missing dotenv file is not an
// error.
func LoadEnv(files ...string) (Env, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Env{}, fmt.Errorf("config: failed to load %s: %w", f, err)
		}
	}

	env := Env{
		ConfigPath: os.Getenv(EnvConfig),
		DBPath:     os.Getenv(EnvDB),
		LogLevel:   os.Getenv(EnvLogLevel),
	}
	if raw := os.Getenv(EnvSeed); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Env{}, fmt.Errorf("config: invalid %s %q: %w", EnvSeed, raw, err)
		}
		env.Seed = &seed
	}
	return env, nil
}
