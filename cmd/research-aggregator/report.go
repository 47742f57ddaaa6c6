package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/research-aggregator/internal/aggregate"
	"github.com/pdiddy/research-aggregator/internal/logging"
	"github.com/pdiddy/research-aggregator/internal/report"
	"github.com/pdiddy/research-aggregator/internal/search"
	"github.com/pdiddy/research-aggregator/internal/secrets"
)

var reportCmd = &cobra.Command{
	Use:   "report [topic]",
	Short: "Search web and scholarly sources for a topic and write an HTML report",
	Long: `Report runs the grounded web search and then the scholarly query (never in
parallel), and writes report_<topic>.html. Source failures are logged and
leave their section empty; the report is still written.`,
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)
}

// runReport prints diagnostics for every handled failure and returns nil, so
// a missing key, an empty topic or a failed write does not change the exit code.
func runReport(cmd *cobra.Command, args []string) error {
	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()
	fmt.Fprintln(stdout, "=== Research Aggregator ===")

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return nil
	}

	log, closer := logging.New(cfg.Log, stderr)
	defer closer.Close()

	key, origin, err := secrets.GeminiKey(os.Getenv, cfg.WebSearch.APIKey, loadedSecrets)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return nil
	}
	log.WithField("origin", origin).Debug("using Gemini API key")

	topic, err := readTopic(cmd.InOrStdin(), stdout, args)
	if err != nil {
		log.WithError(err).Error("reading topic")
		return nil
	}
	if topic == "" {
		fmt.Fprintln(stdout, "Query is empty. Exiting.")
		return nil
	}

	ctx := cmd.Context()
	web, err := search.NewWebSearcher(ctx, key, cfg.WebSearch.Model)
	if err != nil {
		log.Error(err)
		return nil
	}
	scholar, err := search.NewScholar(cfg.Scholar.Source, &http.Client{Timeout: cfg.Scholar.Timeout}, cfg.Scholar)
	if err != nil {
		log.Error(err)
		return nil
	}

	agg := &aggregate.Aggregator{
		Web:     web,
		Scholar: scholar,
		Report: report.Options{
			EscapeHTML: cfg.Report.EscapeHTML,
			Language:   cfg.Report.Language,
		},
		OutputDir: cfg.Report.OutputDir,
		Log:       log,
	}

	sum, err := agg.Run(ctx, topic)
	switch {
	case errors.Is(err, aggregate.ErrEmptyTopic):
		fmt.Fprintln(stdout, "Query is empty. Exiting.")
	case err != nil:
		fmt.Fprintf(stderr, "Error writing report file: %v\n", err)
	default:
		fmt.Fprintf(stdout, "\nReport generated successfully: %s\n", sum.Path)
	}
	return nil
}

// readTopic joins the positional arguments or, when there are none, prompts
// on out and reads one line from in. The result is trimmed.
func readTopic(in io.Reader, out io.Writer, args []string) (string, error) {
	if len(args) > 0 {
		return strings.TrimSpace(strings.Join(args, " ")), nil
	}

	fmt.Fprint(out, "Enter research topic: ")
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return strings.TrimSpace(line), nil
}
