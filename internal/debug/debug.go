package debug

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// EnvVar names the environment variable holding the debug log path.
const EnvVar = "LAYOUTMETRICS_DEBUG"

var (
	logFile *os.File
	envRead bool
	mu      sync.Mutex
)

// Init opens path for appending and routes Log output to it.
// Any previously opened log file is closed first.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	envRead = true
	return openLocked(path)
}

// openLocked does the actual open work. Caller must hold mu.
func openLocked(path string) error {
	if path == "" {
		return fmt.Errorf("debug log path is empty")
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}

	if logFile != nil {
		logFile.Close()
	}
	logFile = f
	return nil
}

// enabledLocked lazily opens the file named by EnvVar. Caller must hold mu.
func enabledLocked() bool {
	if logFile == nil && !envRead {
		envRead = true
		if path := os.Getenv(EnvVar); path != "" {
			openLocked(path)
		}
	}
	return logFile != nil
}

// Enabled reports whether Log writes anywhere.
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return enabledLocked()
}

// Close closes the debug log file. Logging stays off until Init is called again.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}

// Log writes a message to the debug log with a timestamp.
func Log(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	if !enabledLocked() {
		return
	}

	timestamp := time.Now().Format("15:04:05.000")
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(logFile, "[%s] %s\n", timestamp, msg)
	logFile.Sync()
}
