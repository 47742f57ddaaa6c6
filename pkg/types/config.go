package types

import "time"

// HTTPConfig holds shared HTTP settings used by the scholarly clients.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "research-aggregator/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// WebSearchConfig holds settings for the grounded web search.
type WebSearchConfig struct {
	// Model is the Gemini model identifier (e.g. "gemini-2.0-flash").
	Model string `json:"model" yaml:"model"`

	// APIKey is the Gemini API key. Resolved from the environment when empty.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`
}

// ScholarConfig holds settings for the scholarly metadata client.
type ScholarConfig struct {
	HTTPConfig `yaml:",inline"`

	// Source selects the scholarly API: arxiv or cinii.
	Source Source `json:"source" yaml:"source"`

	// MaxResults is the number of records requested (default 5).
	MaxResults int `json:"max_results" yaml:"max_results"`

	// RequestDelay is the fixed pause before every request (default 1s).
	RequestDelay time.Duration `json:"request_delay" yaml:"request_delay"`

	// Endpoint overrides the API endpoint of the selected source.
	Endpoint string `json:"endpoint,omitempty" yaml:"endpoint,omitempty"`

	// CiniiAppID is the optional CiNii Research application ID.
	CiniiAppID string `json:"cinii_app_id,omitempty" yaml:"cinii_app_id,omitempty"`
}

// ReportConfig holds settings for the HTML report.
type ReportConfig struct {
	// OutputDir is the directory for report files. Empty means the working directory.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// EscapeHTML switches rendering to contextual HTML escaping.
	EscapeHTML bool `json:"escape_html" yaml:"escape_html"`

	// Language is the lang attribute of the document (default "ja").
	Language string `json:"language" yaml:"language"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	// Level is a logrus level name (default "info").
	Level string `json:"level" yaml:"level"`

	// File is an optional log file path, rotated when it grows.
	File string `json:"file,omitempty" yaml:"file,omitempty"`
}

// Config groups all settings for one run.
type Config struct {
	WebSearch WebSearchConfig `json:"web_search" yaml:"web_search"`
	Scholar   ScholarConfig   `json:"scholar" yaml:"scholar"`
	Report    ReportConfig    `json:"report" yaml:"report"`
	Log       LogConfig       `json:"log" yaml:"log"`
}
