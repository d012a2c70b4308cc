package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// newLogger opens the log file. The terminal belongs to the game, so logs never go
// to stderr; when the default file cannot be opened they are dropped.
func newLogger(path, level string) (*log.Logger, func(), error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}

	explicit := path != ""
	if !explicit {
		path = defaultLogPath()
	}

	var out io.Writer = io.Discard
	closer := func() {}
	if path != "" {
		f, err := openLogFile(path)
		switch {
		case err == nil:
			out = f
			closer = func() { f.Close() }
		case explicit:
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "kickoff",
		Level:           lvl,
	})
	return logger, closer, nil
}

func defaultLogPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".kickoff", "kickoff.log")
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
}
