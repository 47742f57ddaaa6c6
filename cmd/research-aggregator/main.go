// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the research-aggregator CLI.
// It collects grounded web results and scholarly records for one topic and
// writes them into a static HTML report.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/research-aggregator/internal/search"
	"github.com/pdiddy/research-aggregator/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the research-aggregator CLI. Without a
// subcommand it behaves like "report".
var rootCmd = &cobra.Command{
	Use:   "research-aggregator [topic]",
	Short: "Collect web and scholarly sources for a topic into an HTML report",
	Args:  cobra.ArbitraryArgs,
	Long: `research-aggregator asks Gemini (with Google Search grounding) for relevant
web pages, queries a scholarly metadata API (arXiv or CiNii Research), and
writes both result sets to report_<topic>.html.

The topic is taken from the arguments or, when none are given, read from
standard input.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
	RunE: runReport,
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default: ./research-aggregator.yaml or ~/.config/research-aggregator/research-aggregator.yaml)")
	flags.String("source", "", "scholarly source: arxiv or cinii (default arxiv)")
	flags.String("out-dir", "", "directory for the report file (default: working directory)")
	flags.String("model", "", "Gemini model for grounded web search (default "+search.DefaultModel+")")
	flags.Bool("escape-html", false, "HTML-escape record fields in the report")
	flags.Duration("delay", 0, "pause before each scholarly request (default 1s)")
	flags.Duration("timeout", 0, "HTTP request timeout (default 60s)")
	flags.Int("max-results", 0, "number of scholarly records to request (default 5)")
	flags.String("log-level", "", "log level: debug, info, warn, error (default info)")
	flags.String("log-file", "", "also write logs to this file")

	bindFlags(flags)
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("research-aggregator")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "research-aggregator"))
		}
	}

	setDefaults()

	viper.SetEnvPrefix("RESEARCH_AGGREGATOR")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
