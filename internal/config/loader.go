package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if CONFTARGET_CONFIG is set
//  3. env (prefix CONFTARGET_)
func Load(_ context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("CONFTARGET_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
		}
	}

	// Environment variables: CONFTARGET_ADDR, CONFTARGET_DB_PATH, ...
	// Keys map like CONFTARGET_DB_PATH -> db_path (flat keys, underscores
	// preserved to match the koanf tags on the struct).
	envProvider := env.Provider("CONFTARGET_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "conftarget_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	if cfg.Addr == "" {
		return nil, fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	if cfg.AnalyzeResultCap < 1 {
		return nil, fmt.Errorf("%w: analyze_result_cap must be positive", ErrInvalidConfig)
	}
	if cfg.SuggestHighLimit < 1 || cfg.SuggestFallbackLimit < 1 {
		return nil, fmt.Errorf("%w: suggestion limits must be positive", ErrInvalidConfig)
	}
	return &cfg, nil
}
