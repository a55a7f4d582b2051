package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Database types
const (
	TypeSQLite   = "sqlite"
	TypePostgres = "postgres"
	TypePgx      = "pgx"
	TypeRedis    = "redis"
	TypeMemory   = "memory"
)

// DefaultSQLiteURL matches the file name of the deployed service
const DefaultSQLiteURL = "file:wyr_persistent.db"

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	Timezone     string
	PromptsFile  string
	VoterIDSalt  string
	LogFormat    string
}

// Location resolves Timezone, defaulting to UTC
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// ParseFlags validates flags and sets port number.
// A .env file in the working directory is loaded first if present;
// it never overrides variables already set.
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}

	fs := flag.NewFlagSet("rtv", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite, postgres, pgx, redis or memory)")
	fs.StringVar(&cfg.Timezone, "tz", "", "IANA time zone that decides when a day ends")
	fs.StringVar(&cfg.PromptsFile, "prompts", "", "JSON prompt calendar (default: built-in)")
	fs.StringVar(&cfg.VoterIDSalt, "voter-salt", "", "Voter ID hashing salt (prefer env)")
	fs.StringVar(&cfg.LogFormat, "log", "", "Log format (auto, text or json)")

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
			cfg.Port = 8000 // default
		}
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("port %d out of range", cfg.Port)
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = TypeSQLite
		}
	}
	switch cfg.DatabaseType {
	case TypeSQLite, TypePostgres, TypePgx, TypeRedis, TypeMemory:
	default:
		return Config{}, fmt.Errorf("unknown database type %q", cfg.DatabaseType)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		switch cfg.DatabaseType {
		case TypeSQLite:
			cfg.DatabaseURL = DefaultSQLiteURL
		case TypeMemory:
		default:
			return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
		}
	}

	if cfg.Timezone == "" {
		cfg.Timezone = os.Getenv("RTV_TIMEZONE")
	}
	if cfg.Timezone == "" {
		cfg.Timezone = "UTC"
	}
	if _, err := cfg.Location(); err != nil {
		return Config{}, err
	}

	if cfg.PromptsFile == "" {
		cfg.PromptsFile = os.Getenv("RTV_PROMPTS_FILE")
	}

	if cfg.VoterIDSalt == "" {
		cfg.VoterIDSalt = os.Getenv("VOTER_ID_SALT")
	}

	if cfg.LogFormat == "" {
		cfg.LogFormat = os.Getenv("LOG_FORMAT")
		if cfg.LogFormat == "" {
			cfg.LogFormat = "auto"
		}
	}
	switch cfg.LogFormat {
	case "auto", "text", "json":
	default:
		return Config{}, fmt.Errorf("unknown log format %q", cfg.LogFormat)
	}

	return cfg, nil
}
