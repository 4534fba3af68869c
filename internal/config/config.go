// Package config reads the service settings from the environment. A .env
// file in the working directory is loaded first when present.
package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	"github.com/nicholasjackson/env"
)

const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
	StoreSQLite   = "sqlite"
)

// Environment variables
var (
	bindAddress = env.String("BIND_ADDRESS", false,
		":9090", "Bind address for the server")
	logLevel = env.String("LOG_LEVEL", false,
		"debug", "Log output level for the server [trace, debug, info, warn, error]")
	store = env.String("STORE", false,
		StoreMemory, "Backing store for the catalog [memory, postgres, sqlite]")
	databaseURL = env.String("DATABASE_URL", false,
		"", "PostgreSQL connection string, required when STORE=postgres")
	sqlitePath = env.String("SQLITE_PATH", false,
		"toyshop.db", "SQLite database file, used when STORE=sqlite")
	corsOrigins = env.String("CORS_ORIGINS", false,
		"http://localhost:3000", "Comma separated list of origins allowed by CORS")
	imagePath = env.String("IMAGE_PATH", false,
		"./imagestore", "Directory uploaded toy images are stored in")
	seed = env.String("SEED", false,
		"true", "Load the demo catalog on start when the store is empty")
)

type Config struct {
	BindAddress string   `validate:"required"`
	LogLevel    string   `validate:"oneof=trace debug info warn error"`
	Store       string   `validate:"oneof=memory postgres sqlite"`
	DatabaseURL string   `validate:"required_if=Store postgres"`
	SQLitePath  string   `validate:"required_if=Store sqlite"`
	CORSOrigins []string `validate:"dive,required"`
	ImagePath   string   `validate:"required"`
	Seed        bool
}

// Load parses the environment into a validated Config
func Load() (*Config, error) {
	if err := env.Parse(); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}

	seedDemo, err := strconv.ParseBool(*seed)
	if err != nil {
		return nil, fmt.Errorf("parsing SEED: %w", err)
	}

	cfg := &Config{
		BindAddress: *bindAddress,
		LogLevel:    strings.ToLower(*logLevel),
		Store:       strings.ToLower(*store),
		DatabaseURL: *databaseURL,
		SQLitePath:  *sqlitePath,
		CORSOrigins: splitList(*corsOrigins),
		ImagePath:   *imagePath,
		Seed:        seedDemo,
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
