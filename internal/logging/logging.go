// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logging builds the logrus logger used for console diagnostics.
package logging

import (
	"io"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/pdiddy/research-aggregator/pkg/types"
)

// New returns a logger writing to console and, when cfg.File is set, to a
// rotating log file. An unknown level falls back to info. The returned closer
// releases the log file and is never nil.
func New(cfg types.LogConfig, console io.Writer) (*logrus.Logger, io.Closer) {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if cfg.File == "" {
		log.SetOutput(console)
		return log, nopCloser{}
	}

	file := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
	}
	log.SetOutput(io.MultiWriter(console, file))
	return log, file
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
