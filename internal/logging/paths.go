package logging

import (
	"os"
	"path/filepath"
)

// LogDir returns the directory where patscan log files live
// (~/.patscan/logs, or the working directory if the home directory is
// unavailable).
func LogDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "logs"
	}
	return filepath.Join(home, ".patscan", "logs")
}

// DefaultLogPath returns the default log file path.
func DefaultLogPath() string {
	return filepath.Join(LogDir(), "patscan.log")
}

// EnsureLogDir creates the log directory if it does not exist.
func EnsureLogDir() error {
	return os.MkdirAll(LogDir(), 0o755)
}
