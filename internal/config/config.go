// Package config provides application configuration loaded from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

var (
	DefaultBuyers = []string{"Carlos", "William", "Débora", "Telma"}
	DefaultCards  = []string{"Marisa", "Nubank", "Digio"}
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Ledger   LedgerConfig
	Database DatabaseConfig
	Events   EventsConfig
	Form     FormConfig
	App      AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string
	ReadTimeout  int // seconds
	WriteTimeout int // seconds
	IdleTimeout  int // seconds
}

// LedgerConfig selects where submitted rows go.
type LedgerConfig struct {
	Backend         string // "sheets", "sql" or "memory"
	Mirror          bool   // also copy every row to the SQL table
	SpreadsheetName string
	WorksheetName   string
	CredentialsEnv  string // env var holding the service account JSON
	CredentialsFile string
	Timeout         int // seconds
}

// DatabaseConfig holds the local SQL ledger settings.
type DatabaseConfig struct {
	Driver  string // "sqlite" or "postgres"
	DSN     string
	Debug   bool
	Retries int
}

// EventsConfig enables the expense_recorded Kafka event when Brokers is set.
type EventsConfig struct {
	Brokers []string
	Topic   string
}

// FormConfig holds the selectable options.
type FormConfig struct {
	Buyers              []string `yaml:"buyers"`
	Cards               []string `yaml:"cards"`
	AllowUnsetSelectors bool     `yaml:"allow_unset_selectors"`
	OptionsFile         string   `yaml:"-"`
}

// AppConfig holds application-level settings.
type AppConfig struct {
	Dev           bool
	SessionSecret string
}

// LedgerTimeout returns the per-submission deadline.
func (c *Config) LedgerTimeout() time.Duration {
	return time.Duration(c.Ledger.Timeout) * time.Second
}

// Load reads configuration from environment variables, then the optional
// FORM_OPTIONS_FILE. It uses sensible defaults for local development.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			ReadTimeout:  getEnvInt("SERVER_READ_TIMEOUT", 15),
			WriteTimeout: getEnvInt("SERVER_WRITE_TIMEOUT", 45),
			IdleTimeout:  getEnvInt("SERVER_IDLE_TIMEOUT", 60),
		},
		Ledger: LedgerConfig{
			Backend:         getEnv("LEDGER_BACKEND", "sheets"),
			Mirror:          getEnvBool("LEDGER_MIRROR", false),
			SpreadsheetName: getEnv("SHEET_NAME", "Pessoal"),
			WorksheetName:   getEnv("WORKSHEET_NAME", "Pagina1"),
			CredentialsEnv:  getEnv("GCP_CREDENTIALS_ENV", "GCP_SERVICE_ACCOUNT"),
			CredentialsFile: getEnv("GCP_CREDENTIALS_FILE", "service-account.json"),
			Timeout:         getEnvInt("LEDGER_TIMEOUT", 30),
		},
		Database: DatabaseConfig{
			Driver:  getEnv("DB_DRIVER", "sqlite"),
			DSN:     getEnv("DATABASE_DSN", "cartoes.db"),
			Debug:   getEnvBool("DB_DEBUG", false),
			Retries: getEnvInt("DB_RETRIES", 5),
		},
		Events: EventsConfig{
			Brokers: getEnvList("KAFKA_BROKERS", nil),
			Topic:   getEnv("KAFKA_TOPIC", "expense_recorded"),
		},
		Form: FormConfig{
			Buyers:              getEnvList("FORM_BUYERS", DefaultBuyers),
			Cards:               getEnvList("FORM_CARDS", DefaultCards),
			AllowUnsetSelectors: getEnvBool("ALLOW_UNSET_SELECTORS", false),
			OptionsFile:         getEnv("FORM_OPTIONS_FILE", ""),
		},
		App: AppConfig{
			Dev:           getEnvBool("DEV", false),
			SessionSecret: getEnv("SESSION_SECRET", "devsessionsecret"),
		},
	}
	if cfg.Form.OptionsFile != "" {
		if err := cfg.Form.LoadOptionsFile(cfg.Form.OptionsFile); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// LoadOptionsFile overrides buyers and cards with the lists found in a YAML file.
// Lists missing from the file keep their current value.
func (f *FormConfig) LoadOptionsFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading form options: %w", err)
	}
	var opts FormConfig
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return fmt.Errorf("parsing form options: %w", err)
	}
	if len(opts.Buyers) > 0 {
		f.Buyers = opts.Buyers
	}
	if len(opts.Cards) > 0 {
		f.Cards = opts.Cards
	}
	if opts.AllowUnsetSelectors {
		f.AllowUnsetSelectors = true
	}
	return nil
}

// getEnv returns the value of an environment variable or a default.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt returns the integer value of an environment variable or a default.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

// getEnvBool returns the boolean value of an environment variable or a default.
// Accepts "1", "true", "yes" as true; everything else is false.
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "1" || value == "true" || value == "yes"
}

// getEnvList splits a comma separated variable, dropping blanks.
func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
