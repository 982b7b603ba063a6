package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/ilyakaznacheev/cleanenv"
)

type GeminiConfig struct {
	APIKey string `json:"api_key" env:"GEMINI_API_KEY"`
	Model  string `json:"model" env:"GEMINI_MODEL" env-default:"gemini-1.5-flash"`
}

type Config struct {
	Server struct {
		Host      string `json:"host" env:"SERVER_HOST" env-default:"0.0.0.0"`
		Port      int    `json:"port" env:"SERVER_PORT" env-default:"3000"`
		Subpath   string `json:"subpath" env:"SERVER_SUBPATH"`
		JWTSecret string `json:"jwtSecret" env:"JWT_SECRET"`
	} `json:"server"`
	Gemini     GeminiConfig `json:"gemini"`
	Definition struct {
		// Languages switches the free /:lang/:word route for one literal route per code.
		Languages []string `json:"languages" env:"DEFINITION_LANGUAGES" env-separator:","`
	} `json:"definition"`
	Database struct {
		Driver string `json:"driver" env:"DB_DRIVER" env-default:"postgres"`
		DSN    string `json:"dsn" env:"DB_DSN"`
	} `json:"database"`
	Redis struct {
		Addr     string `json:"addr" env:"REDIS_ADDR"`
		Password string `json:"password" env:"REDIS_PASSWORD"`
		DB       int    `json:"db" env:"REDIS_DB"`
	} `json:"redis"`
}

var (
	once   sync.Once
	cfg    *Config
	cfgErr error
)

// LoadConfig reads config.json from disk, then applies environment overrides (singleton)
func LoadConfig(path string) (*Config, error) {
	once.Do(func() {
		var c Config
		if err := cleanenv.ReadConfig(path, &c); err != nil {
			cfgErr = fmt.Errorf("failed to read config: %w", err)
			return
		}
		langs, err := NormalizeLanguages(c.Definition.Languages)
		if err != nil {
			cfgErr = fmt.Errorf("invalid definition.languages: %w", err)
			return
		}
		c.Definition.Languages = langs
		if c.Gemini.APIKey == "" {
			cfgErr = errors.New("gemini api_key must be set in config or GEMINI_API_KEY")
			return
		}
		cfg = &c
	})
	return cfg, cfgErr
}

// GetConfig returns the loaded config (must call LoadConfig first)
func GetConfig() *Config {
	return cfg
}

// HistoryEnabled reports whether lookups are recorded to the database.
func (c *Config) HistoryEnabled() bool {
	return c.Database.DSN != ""
}

// StatsEnabled reports whether lookup counters are kept in redis.
func (c *Config) StatsEnabled() bool {
	return c.Redis.Addr != ""
}

// NormalizeLanguages lower-cases, trims and de-duplicates route language codes,
// keeping first-seen order. Codes that cannot be a single path segment are
// dropped and reported in the returned error.
func NormalizeLanguages(codes []string) ([]string, error) {
	out := make([]string, 0, len(codes))
	seen := make(map[string]bool, len(codes))
	var bad []string
	for _, raw := range codes {
		code := strings.ToLower(strings.TrimSpace(raw))
		if code == "" || code == "." || code == ".." || strings.ContainsAny(code, ":*/?#%") {
			bad = append(bad, fmt.Sprintf("%q", raw))
			continue
		}
		if seen[code] {
			continue
		}
		seen[code] = true
		out = append(out, code)
	}
	if len(bad) > 0 {
		return out, fmt.Errorf("not a path segment: %s", strings.Join(bad, ", "))
	}
	return out, nil
}

// ResetConfigForTest resets the singleton state (for testing only)
func ResetConfigForTest() {
	once = sync.Once{}
	cfg = nil
	cfgErr = nil
}
