// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report renders search records into a standalone HTML report and
// writes it to disk.
package report

import (
	"fmt"
	htmltemplate "html/template"
	"io"
	"os"
	"path/filepath"
	"strings"
	texttemplate "text/template"

	"github.com/pdiddy/research-aggregator/pkg/types"
)

// NoResults is shown in place of the cards of an empty section.
const NoResults = "No results found."

const defaultLanguage = "ja"

// Section is one source's block in the report.
type Section struct {
	Source  types.Source
	Records []types.SearchRecord
}

// Heading returns the section heading.
func (s Section) Heading() string { return s.Source.Heading() }

// Options controls rendering.
type Options struct {
	// EscapeHTML renders through html/template. When false every field is
	// written verbatim.
	EscapeHTML bool

	// Language is the lang attribute of the <html> element.
	Language string
}

type executor interface {
	Execute(w io.Writer, data any) error
}

type document struct {
	Topic     string
	Date      string
	Language  string
	NoResults string
	Sections  []Section
}

// Render produces the HTML report for topic on date.
func Render(topic, date string, sections []Section, opts Options) (string, error) {
	tmpl, err := parse(opts.EscapeHTML)
	if err != nil {
		return "", fmt.Errorf("parsing report template: %w", err)
	}

	lang := opts.Language
	if lang == "" {
		lang = defaultLanguage
	}

	var b strings.Builder
	err = tmpl.Execute(&b, document{
		Topic:     topic,
		Date:      date,
		Language:  lang,
		NoResults: NoResults,
		Sections:  sections,
	})
	if err != nil {
		return "", fmt.Errorf("rendering report: %w", err)
	}
	return b.String(), nil
}

// parse compiles the report template with or without contextual escaping.
// Both engines share the same source.
func parse(escape bool) (executor, error) {
	if escape {
		return htmltemplate.New("report").Parse(reportTemplate)
	}
	return texttemplate.New("report").Parse(reportTemplate)
}

// FileName derives the report file name from the topic: every space becomes
// an underscore and no other character changes.
func FileName(topic string) string {
	return "report_" + strings.ReplaceAll(topic, " ", "_") + ".html"
}

// WriteFile writes document to dir/FileName(topic), creating dir if needed.
// An existing file is overwritten. It returns the written path.
func WriteFile(dir, topic, document string) (string, error) {
	path := FileName(topic)
	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("creating %s: %w", dir, err)
		}
		path = filepath.Join(dir, path)
	}

	if err := os.WriteFile(path, []byte(document), 0o644); err != nil {
		return "", fmt.Errorf("writing report %s: %w", path, err)
	}
	return path, nil
}
