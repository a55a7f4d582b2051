// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 8000)
  - DatabaseType: sqlite, postgres, pgx, redis or memory (default: sqlite)
  - DatabaseURL: connection string; defaults to file:wyr_persistent.db for sqlite
  - Timezone: IANA zone deciding when a voting day ends (default: UTC)
  - PromptsFile: JSON prompt calendar replacing the built-in one
  - VoterIDSalt: HMAC key for stored voter IDs
  - LogFormat: auto, text or json (default: auto)

# CLI Flags

	-p           Server port
	-d           Database URL
	-t           Database type
	-tz          Time zone
	-prompts     Prompt calendar file
	-voter-salt  Voter ID salt
	-log         Log format

# Environment Variables

Flags fall back to environment variables:

	PORT             → -p
	DATABASE_URL     → -d
	DATABASE_TYPE    → -t
	RTV_TIMEZONE     → -tz
	RTV_PROMPTS_FILE → -prompts
	VOTER_ID_SALT    → -voter-salt
	LOG_FORMAT       → -log

CLI flags take precedence over environment variables. A .env file in the
working directory is loaded before either (github.com/joho/godotenv) and
never overrides variables already set.

# Validation

ParseFlags returns an error if:

  - PORT is not a number or out of range
  - the database type is unknown
  - postgres, pgx or redis is selected without a URL
  - the time zone cannot be loaded
  - the log format is unknown
*/
package cliparse
