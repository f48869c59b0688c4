// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logging builds the process-wide logger shared by the server
// and CLI modes.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/pdiddy/pdfbridge/pkg/types"
)

// New builds a logger from cfg. Messages always reach stderr; when a
// file is configured it is opened in append mode so server and CLI
// invocations interleave instead of truncating each other. The file
// handle stays open for the life of the process.
func New(cfg types.LoggingConfig) (*logrus.Logger, error) {
	level := logrus.InfoLevel
	if cfg.Level != "" {
		var err error
		level, err = logrus.ParseLevel(cfg.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		}
	}

	log := logrus.New()
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	out := io.Writer(os.Stderr)
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("opening log file %s: %w", cfg.File, err)
		}
		out = io.MultiWriter(os.Stderr, f)
	}
	log.SetOutput(out)

	return log, nil
}
