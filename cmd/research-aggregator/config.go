package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/research-aggregator/internal/search"
	"github.com/pdiddy/research-aggregator/internal/secrets"
	"github.com/pdiddy/research-aggregator/pkg/types"
)

const (
	defaultTimeout    = 60 * time.Second
	defaultDelay      = 1 * time.Second
	defaultMaxResults = 5
	defaultUserAgent  = "research-aggregator/0.1"
)

// flagKeys maps persistent flags to their configuration keys.
var flagKeys = map[string]string{
	"source":      "scholar.source",
	"out-dir":     "report.output_dir",
	"model":       "web_search.model",
	"escape-html": "report.escape_html",
	"delay":       "scholar.request_delay",
	"timeout":     "scholar.timeout",
	"max-results": "scholar.max_results",
	"log-level":   "log.level",
	"log-file":    "log.file",
}

func bindFlags(flags *pflag.FlagSet) {
	for name, key := range flagKeys {
		if f := flags.Lookup(name); f != nil {
			_ = viper.BindPFlag(key, f)
		}
	}
}

func setDefaults() {
	viper.SetDefault("web_search.model", search.DefaultModel)
	viper.SetDefault("scholar.source", string(types.SourceArxiv))
	viper.SetDefault("scholar.max_results", defaultMaxResults)
	viper.SetDefault("scholar.request_delay", defaultDelay)
	viper.SetDefault("scholar.timeout", defaultTimeout)
	viper.SetDefault("scholar.user_agent", defaultUserAgent)
	viper.SetDefault("report.language", "ja")
	viper.SetDefault("log.level", "info")
}

// loadConfig assembles the run configuration from flags, environment,
// config file and defaults. Zero-valued flags fall back to the defaults.
func loadConfig() (types.Config, error) {
	source, err := types.ParseSource(viper.GetString("scholar.source"))
	if err != nil {
		return types.Config{}, err
	}
	if !source.Scholarly() {
		return types.Config{}, fmt.Errorf("scholar.source must be arxiv or cinii, got %q", source)
	}

	cfg := types.Config{
		WebSearch: types.WebSearchConfig{
			Model:  viper.GetString("web_search.model"),
			APIKey: viper.GetString("web_search.api_key"),
		},
		Scholar: types.ScholarConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   viper.GetDuration("scholar.timeout"),
				UserAgent: viper.GetString("scholar.user_agent"),
			},
			Source:       source,
			MaxResults:   viper.GetInt("scholar.max_results"),
			RequestDelay: viper.GetDuration("scholar.request_delay"),
			Endpoint:     viper.GetString("scholar.endpoint"),
			CiniiAppID:   viper.GetString("scholar.cinii_app_id"),
		},
		Report: types.ReportConfig{
			OutputDir:  viper.GetString("report.output_dir"),
			EscapeHTML: viper.GetBool("report.escape_html"),
			Language:   viper.GetString("report.language"),
		},
		Log: types.LogConfig{
			Level: viper.GetString("log.level"),
			File:  viper.GetString("log.file"),
		},
	}

	if cfg.WebSearch.Model == "" {
		cfg.WebSearch.Model = search.DefaultModel
	}
	if cfg.Scholar.Timeout <= 0 {
		cfg.Scholar.Timeout = defaultTimeout
	}
	if cfg.Scholar.RequestDelay <= 0 {
		cfg.Scholar.RequestDelay = defaultDelay
	}
	if cfg.Scholar.MaxResults <= 0 {
		cfg.Scholar.MaxResults = defaultMaxResults
	}
	if cfg.Scholar.UserAgent == "" {
		cfg.Scholar.UserAgent = defaultUserAgent
	}
	if cfg.Scholar.CiniiAppID == "" {
		cfg.Scholar.CiniiAppID = loadedSecrets[secrets.CiniiAppIDFile]
	}
	return cfg, nil
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Config resolves flags, RESEARCH_AGGREGATOR_* environment variables, the
config file and defaults, and prints the result. The API key is redacted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		cfg.WebSearch.APIKey = secrets.Redact(cfg.WebSearch.APIKey)

		out, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("encoding config: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
