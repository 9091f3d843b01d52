package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"
)

// rotateAt is the file size at which the current log is moved aside.
const rotateAt = 10 * 1024 * 1024

var (
	logFile *os.File
	logPath string
)

// Init routes the standard logger to path, rotating any oversized file
// first. An empty path leaves logging on stderr, which is what container
// deployments want.
func Init(path string) error {
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds | log.Lshortfile)
	if path == "" {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	if info, err := os.Stat(path); err == nil && info.Size() > rotateAt {
		rotated := fmt.Sprintf("%s.%d", path, time.Now().Unix())
		_ = os.Rename(path, rotated)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	logFile = f
	logPath = path

	// Keep stderr in the loop so crashes stay visible on the console.
	log.SetOutput(io.MultiWriter(os.Stderr, logFile))
	log.Printf("[INFO] logging to %s", logPath)
	return nil
}

// Close releases the log file, if one was opened.
func Close() {
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
	logPath = ""
	log.SetOutput(os.Stderr)
}

func Info(format string, args ...any) {
	log.Printf("[INFO] "+format, args...)
}

func Error(format string, args ...any) {
	log.Printf("[ERROR] "+format, args...)
}

// Panic records a recovered panic together with its stack trace.
func Panic(r any) {
	log.Printf("[PANIC] %v\n%s", r, debug.Stack())
}

// Path reports where logs are being written, empty when on stderr only.
func Path() string {
	return logPath
}
