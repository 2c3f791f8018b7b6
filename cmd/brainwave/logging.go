package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/lixenwraith/brainwave/config"
)

const (
	logFileName = "brainwave.log"
	maxLogSize  = 10 * 1024 * 1024 // 10 MiB
)

// setupLogging routes the standard logger to a file under cfg.Dir when debugging, discarding otherwise
// The screen owns the TTY, so the logger never writes to stdout or stderr
// Returns the open file for the caller to close, nil when logging is off or the file cannot be opened
func setupLogging(cfg config.Log, session string) *os.File {
	log.SetPrefix(fmt.Sprintf("[%s] ", shortSession(session)))
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	if !cfg.Debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(cfg.Dir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(cfg.Dir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(cfg.Dir, fmt.Sprintf("brainwave-%s.log", time.Now().Format("20060102-150405")))
		_ = os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	log.Printf("session %s started", session)
	return f
}

// shortSession keeps the first uuid group, enough to tell runs apart in one file
func shortSession(session string) string {
	if len(session) > 8 {
		return session[:8]
	}
	return session
}
