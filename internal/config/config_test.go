package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{
		"CODEBREAKER_ADDR", "CODEBREAKER_LOG_LEVEL", "CODEBREAKER_TIMEZONE",
		"CODEBREAKER_LOCALE", "CODEBREAKER_DATA_DIR", "CODEBREAKER_REDIS_URL",
		"CODEBREAKER_WORD_SOURCE", "GEMINI_API_KEY", "API_KEY",
		"CODEBREAKER_GENAI_MODEL", "CODEBREAKER_WORD_TIMEOUT",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	require.NoError(t, cfg.Validate())
}

func TestLoadFileThenEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "codebreaker.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  addr: ":9090"
puzzle:
  timezone: Asia/Seoul
  locale: en
word_source:
  provider: static
  word: cipher
  timeout: 250ms
storage:
  dir: /var/lib/codebreaker
logging:
  level: debug
`), 0o644))

	t.Setenv("CODEBREAKER_ADDR", ":7070")
	t.Setenv("API_KEY", "from-env")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, ":7070", cfg.Server.Addr)
	assert.Equal(t, "en", cfg.Puzzle.Locale)
	assert.Equal(t, "static", cfg.WordSource.Provider)
	assert.Equal(t, "cipher", cfg.WordSource.Word)
	assert.Equal(t, "from-env", cfg.WordSource.APIKey)
	assert.Equal(t, "gemini-3-flash-preview", cfg.WordSource.Model, "unset keys keep defaults")
	assert.Equal(t, "/var/lib/codebreaker", cfg.Storage.Dir)

	d, err := cfg.WordTimeout()
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, d)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "Asia/Seoul", loc.String())
}

func TestGeminiKeyPrecedence(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMINI_API_KEY", "gemini")
	t.Setenv("API_KEY", "generic")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "gemini", cfg.WordSource.APIKey)
}

func TestLoadRejectsBadYAML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [unterminated"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"log level", func(c *Config) { c.Logging.Level = "verbose" }},
		{"provider", func(c *Config) { c.WordSource.Provider = "openai" }},
		{"static without word", func(c *Config) { c.WordSource.Provider = "static" }},
		{"locale", func(c *Config) { c.Puzzle.Locale = "fr" }},
		{"timezone", func(c *Config) { c.Puzzle.Timezone = "Mars/Olympus" }},
		{"timeout", func(c *Config) { c.WordSource.Timeout = "soon" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
