package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
	_ "time/tzdata"

	"gopkg.in/yaml.v3"
)

// Config holds all codebreaker configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Puzzle     PuzzleConfig     `yaml:"puzzle"`
	WordSource WordSourceConfig `yaml:"word_source"`
	Storage    StorageConfig    `yaml:"storage"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// PuzzleConfig decides which calendar day "today" is and how it reads.
type PuzzleConfig struct {
	Timezone string `yaml:"timezone"` // IANA name, e.g. Asia/Seoul
	Locale   string `yaml:"locale"`   // ko, en
}

// WordSourceConfig selects where the daily answer comes from.
type WordSourceConfig struct {
	Provider string `yaml:"provider"` // genai, static, none
	APIKey   string `yaml:"api_key"`
	Model    string `yaml:"model"`
	Word     string `yaml:"word"`    // static provider only
	Timeout  string `yaml:"timeout"` // e.g. 5s
}

// StorageConfig selects the progress store; a Redis URL wins over Dir.
type StorageConfig struct {
	Dir      string `yaml:"dir"`
	RedisURL string `yaml:"redis_url"`
}

// LoggingConfig configures slog.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{Addr: ":8080"},
		Puzzle: PuzzleConfig{Timezone: "Local", Locale: "ko"},
		WordSource: WordSourceConfig{
			Provider: "genai",
			Model:    "gemini-3-flash-preview",
			Timeout:  "5s",
		},
		Storage: StorageConfig{Dir: "./data"},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads path over the defaults, then applies environment overrides.
// A missing file is not an error; an empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist):
		default:
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}
	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	set := func(dst *string, keys ...string) {
		for _, k := range keys {
			if v := os.Getenv(k); v != "" {
				*dst = v
				return
			}
		}
	}
	set(&c.Server.Addr, "CODEBREAKER_ADDR")
	set(&c.Logging.Level, "CODEBREAKER_LOG_LEVEL")
	set(&c.Puzzle.Timezone, "CODEBREAKER_TIMEZONE")
	set(&c.Puzzle.Locale, "CODEBREAKER_LOCALE")
	set(&c.Storage.Dir, "CODEBREAKER_DATA_DIR")
	set(&c.Storage.RedisURL, "CODEBREAKER_REDIS_URL")
	set(&c.WordSource.Provider, "CODEBREAKER_WORD_SOURCE")
	set(&c.WordSource.APIKey, "GEMINI_API_KEY", "API_KEY")
	set(&c.WordSource.Model, "CODEBREAKER_GENAI_MODEL")
	set(&c.WordSource.Timeout, "CODEBREAKER_WORD_TIMEOUT")
}

// Validate rejects settings the service cannot start with.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Logging.Level)
	}
	switch c.WordSource.Provider {
	case "genai", "static", "none":
	default:
		return fmt.Errorf("unknown word source provider %q", c.WordSource.Provider)
	}
	if c.WordSource.Provider == "static" && c.WordSource.Word == "" {
		return errors.New("static word source needs word_source.word")
	}
	switch c.Puzzle.Locale {
	case "ko", "en":
	default:
		return fmt.Errorf("unsupported locale %q", c.Puzzle.Locale)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	if _, err := c.WordTimeout(); err != nil {
		return err
	}
	return nil
}

// Location resolves the puzzle time zone.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Puzzle.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Puzzle.Timezone, err)
	}
	return loc, nil
}

// WordTimeout parses the word-source timeout; empty means zero (the
// generator default).
func (c *Config) WordTimeout() (time.Duration, error) {
	if c.WordSource.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.WordSource.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid word source timeout %q: %w", c.WordSource.Timeout, err)
	}
	return d, nil
}
