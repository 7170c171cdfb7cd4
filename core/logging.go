package core

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

// Rotate the log once it grows past this size
const maxLogSize = 10 * 1024 * 1024

// SetupLogging directs the standard logger to dir/name when debug is set, and discards it otherwise.
// The screen is owned by the renderer, so logs never go to stdout or stderr.
// Returns the open log file, or nil when logging is off or the file cannot be opened
func SetupLogging(dir, name string, debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	path := filepath.Join(dir, name)
	if info, err := os.Stat(path); err == nil && info.Size() > maxLogSize {
		ext := filepath.Ext(name)
		base := name[:len(name)-len(ext)]
		rotated := filepath.Join(dir, fmt.Sprintf("%s-%s%s", base, time.Now().Format("20060102-150405"), ext))
		_ = os.Rename(path, rotated)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds | log.Lshortfile)
	log.Printf("logging started, pid %d", os.Getpid())
	return f
}
