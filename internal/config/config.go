package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

const (
	DefaultPath = "ux/i18n_keys.json"

	envPath      = "I18NCHECK_FILE"
	envLanguages = "I18NCHECK_LANGUAGES"
)

// DefaultLanguages is the ordered pair of language codes compared when
// I18NCHECK_LANGUAGES is unset.
var DefaultLanguages = []string{"pt", "en"}

type Config struct {
	// Path is the localization document, or a directory of message files.
	Path string
	// Languages is the ordered list of required language codes.
	Languages []string
}

// Load builds the configuration from defaults, optionally overridden by
// environment variables (or a .env file), and validates it.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env is optional; the defaults need no environment at all.
	}

	cfg := &Config{
		Path:      strings.TrimSpace(os.Getenv(envPath)),
		Languages: splitList(os.Getenv(envLanguages)),
	}
	if cfg.Path == "" {
		cfg.Path = DefaultPath
	}
	if len(cfg.Languages) == 0 {
		cfg.Languages = append([]string(nil), DefaultLanguages...)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if len(c.Languages) != 2 {
		return fmt.Errorf("config: %s must list exactly two language codes, got %d", envLanguages, len(c.Languages))
	}

	seen := make(map[string]bool, len(c.Languages))
	for _, code := range c.Languages {
		tag, err := language.Parse(code)
		if err != nil {
			return fmt.Errorf("config: invalid language code %q: %w", code, err)
		}
		if tag.String() != code {
			return fmt.Errorf("config: language code %q is not canonical (want %q)", code, tag.String())
		}
		if seen[code] {
			return fmt.Errorf("config: duplicate language code %q", code)
		}
		seen[code] = true
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
