// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Load() layers defaults, an optional YAML file, and env vars.
// - External errors must be wrapped via this package's error kinds.
package config

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// DBPath locates the SQLite database file. An empty value selects
	// the in-memory store.
	DBPath string `koanf:"db_path"`

	// GeminiAPIKey enables the conference research collaborator. When
	// empty the research endpoint degrades to a structured failure.
	GeminiAPIKey string `koanf:"gemini_api_key"`

	// GeminiModel selects the model used for research calls.
	GeminiModel string `koanf:"gemini_model"`

	// ResearchTimeoutMS bounds each LLM research call.
	ResearchTimeoutMS int `koanf:"research_timeout_ms"`

	// AnalyzeResultCap limits how many analyzed contacts a scoring run
	// returns to the caller. All analyzed contacts are persisted.
	AnalyzeResultCap int `koanf:"analyze_result_cap"`

	// SuggestHighLimit caps the high-priority selection of the meeting
	// composer; SuggestFallbackLimit caps the any-priority fallback.
	SuggestHighLimit     int `koanf:"suggest_high_limit"`
	SuggestFallbackLimit int `koanf:"suggest_fallback_limit"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:             "info",
		Addr:                 ":8080",
		DBPath:               "conftarget.db",
		GeminiModel:          "gemini-2.0-flash",
		ResearchTimeoutMS:    30_000,
		AnalyzeResultCap:     20,
		SuggestHighLimit:     10,
		SuggestFallbackLimit: 5,
	}
}
