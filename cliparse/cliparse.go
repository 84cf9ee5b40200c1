package cliparse

import (
	"errors"
	"flag"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	PublicOrigin string
	RosterPath   string
}

// LoadEnvFile loads variables from a .env file without overriding the
// process environment. A missing file is not an error.
func LoadEnvFile(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return err
	}
	slog.Info("loaded env file", "path", path)
	return nil
}

// ParseFlags validates flags and sets port number
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("pollroster", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (memory, sqlite, postgres or redis)")
	fs.StringVar(&cfg.PublicOrigin, "origin", "", "Origin used to build share links")

	// Roster dashboard
	fs.StringVar(&cfg.RosterPath, "roster", "", "Voter roster file (.json or .csv)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3318 // default
		}
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	switch cfg.DatabaseType {
	case "memory", "sqlite", "postgres", "redis":
	default:
		return Config{}, errors.New("database type must be one of: memory, sqlite, postgres, redis")
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" && cfg.DatabaseType != "memory" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.PublicOrigin == "" {
		cfg.PublicOrigin = os.Getenv("PUBLIC_ORIGIN")
		if cfg.PublicOrigin == "" {
			cfg.PublicOrigin = "http://localhost:" + strconv.Itoa(cfg.Port)
		}
	}
	cfg.PublicOrigin = strings.TrimRight(cfg.PublicOrigin, "/")

	if cfg.RosterPath == "" {
		cfg.RosterPath = os.Getenv("ROSTER_PATH")
	}

	return cfg, nil
}
