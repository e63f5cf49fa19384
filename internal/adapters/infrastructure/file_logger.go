package infrastructure

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"weatherblock.app/internal/ports"
)

// FileLoggerAdapter writes JSON lines to a file. It is used for the upstream
// request log when WEATHER_ENABLE_LOGGING is set.
type FileLoggerAdapter struct {
	SlogLoggerAdapter
	file *os.File
}

// NewFileLoggerAdapter opens logPath for appending, creating parent
// directories as needed.
func NewFileLoggerAdapter(logPath string) (*FileLoggerAdapter, error) {
	if logPath == "" {
		return nil, fmt.Errorf("log file path cannot be empty")
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	handler := slog.NewJSONHandler(file, &slog.HandlerOptions{Level: slog.LevelDebug})
	return &FileLoggerAdapter{
		SlogLoggerAdapter: SlogLoggerAdapter{logger: slog.New(handler)},
		file:              file,
	}, nil
}

// Close flushes and closes the log file
func (f *FileLoggerAdapter) Close() error {
	return f.file.Close()
}

var _ ports.Logger = (*FileLoggerAdapter)(nil)
