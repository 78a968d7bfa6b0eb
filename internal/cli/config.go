package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables read by the CLI
const (
	envDifficulty = "TICTACTOE_DIFFICULTY"
	envFirst      = "TICTACTOE_FIRST"
	envOutput     = "TICTACTOE_OUTPUT"
	envSeed       = "TICTACTOE_SEED"
	envEnvFile    = "TICTACTOE_ENV_FILE"
)

// Values accepted by --first
const (
	FirstYes = "yes"
	FirstNo  = "no"
	FirstAsk = "ask"
)

// Config holds CLI configuration
type Config struct {
	Difficulty string
	First      string
	Output     string
	Verbose    bool
	EnvFile    string
	Seed       uint64
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		Difficulty: getEnvOrDefault(envDifficulty, "perfect"),
		First:      getEnvOrDefault(envFirst, FirstAsk),
		Output:     getEnvOrDefault(envOutput, "text"),
		Verbose:    false,
		EnvFile:    getEnvOrDefault(envEnvFile, ".env"),
		Seed:       getEnvUint(envSeed, 0),
	}
}

// LoadEnvFile loads variables from the env file if it exists. Variables
// already present in the environment are left alone.
func (c *Config) LoadEnvFile() error {
	if c.EnvFile == "" {
		return nil
	}
	if err := godotenv.Load(c.EnvFile); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil // No env file is fine
		}
		return fmt.Errorf("loading %s: %w", c.EnvFile, err)
	}
	return nil
}

// applyEnv refreshes every setting whose flag was not given explicitly, so
// values from the env file take effect
func (c *Config) applyEnv(changed func(name string) bool) {
	if !changed("difficulty") {
		c.Difficulty = getEnvOrDefault(envDifficulty, c.Difficulty)
	}
	if !changed("first") {
		c.First = getEnvOrDefault(envFirst, c.First)
	}
	if !changed("output") {
		c.Output = getEnvOrDefault(envOutput, c.Output)
	}
	if !changed("seed") {
		c.Seed = getEnvUint(envSeed, c.Seed)
	}
}

// Validate checks the settings that have a fixed set of values
func (c *Config) Validate() error {
	switch c.Output {
	case "text", "json":
	default:
		return fmt.Errorf("invalid output format %q: must be text or json", c.Output)
	}
	switch strings.ToLower(c.First) {
	case FirstYes, FirstNo, FirstAsk:
	default:
		return fmt.Errorf("invalid --first %q: must be yes, no or ask", c.First)
	}
	return nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvUint(key string, defaultVal uint64) uint64 {
	val, err := strconv.ParseUint(os.Getenv(key), 10, 64)
	if err != nil {
		return defaultVal
	}
	return val
}
