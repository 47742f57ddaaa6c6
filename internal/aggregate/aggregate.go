// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package aggregate runs one research report: web search, then the scholarly
// source, then rendering and writing the HTML file. Sources run one after
// the other and their failures never stop the run.
package aggregate

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/pdiddy/research-aggregator/internal/report"
	"github.com/pdiddy/research-aggregator/internal/search"
)

// ErrEmptyTopic is returned when the topic is blank. Nothing is searched or written.
var ErrEmptyTopic = errors.New("topic is empty")

// Aggregator wires the two sources to the report writer.
type Aggregator struct {
	Web     search.Searcher
	Scholar search.Searcher

	Report    report.Options
	OutputDir string

	// Now supplies the report date. Defaults to time.Now.
	Now func() time.Time

	Log logrus.FieldLogger
}

// Summary describes a finished run.
type Summary struct {
	// Path is the written report file; empty if writing failed.
	Path string

	Web     search.Result
	Scholar search.Result
}

// Run searches both sources for topic and writes the report. Source failures
// are logged and rendered as empty sections. The returned error is
// ErrEmptyTopic or a render/write failure.
func (a *Aggregator) Run(ctx context.Context, topic string) (Summary, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return Summary{}, ErrEmptyTopic
	}

	log := a.logger().WithField("topic", topic)

	var sum Summary
	sum.Web = a.query(ctx, log, a.Web, topic)
	sum.Scholar = a.query(ctx, log, a.Scholar, topic)

	html, err := report.Render(topic, a.now().Format("2006-01-02"), []report.Section{
		{Source: sum.Web.Source, Records: sum.Web.Records},
		{Source: sum.Scholar.Source, Records: sum.Scholar.Records},
	}, a.Report)
	if err != nil {
		log.WithError(err).Error("rendering report")
		return sum, err
	}

	path, err := report.WriteFile(a.OutputDir, topic, html)
	if err != nil {
		log.WithError(err).Error("writing report")
		return sum, err
	}
	sum.Path = path
	log.WithField("path", path).Info("report generated")
	return sum, nil
}

// query calls one searcher and logs the outcome. A nil searcher counts as a
// failed source.
func (a *Aggregator) query(ctx context.Context, log logrus.FieldLogger, s search.Searcher, topic string) search.Result {
	if s == nil {
		res := search.Result{Err: fmt.Errorf("source not configured")}
		log.WithError(res.Err).Warn("skipping source")
		return res
	}

	log = log.WithField("source", s.Name())
	log.Info("searching")

	res := s.Search(ctx, topic)
	switch {
	case res.Failed():
		log.WithError(res.Err).Warn("search failed")
	case len(res.Records) == 0:
		log.Info("search returned no results")
	default:
		log.WithField("results", len(res.Records)).Info("search finished")
	}
	return res
}

func (a *Aggregator) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *Aggregator) logger() logrus.FieldLogger {
	if a.Log != nil {
		return a.Log
	}
	return logrus.StandardLogger()
}
