package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

const (
	logDir     = "logs"
	logFile    = "orrery.log"
	logMaxSize = 10 << 20
)

// setupLogging routes the standard logger to logs/orrery.log when debug is set,
// otherwise discards it so log lines never corrupt the terminal view
// An existing log over logMaxSize is moved to .old first
func setupLogging(dir string, debug bool) (io.Closer, error) {
	if !debug {
		log.SetOutput(io.Discard)
		return io.NopCloser(nil), nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating log dir: %w", err)
	}
	path := filepath.Join(dir, logFile)
	if info, err := os.Stat(path); err == nil && info.Size() > logMaxSize {
		if err := os.Rename(path, path+".old"); err != nil {
			return nil, fmt.Errorf("rotating log: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log: %w", err)
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f, nil
}
