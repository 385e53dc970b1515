package logging

import (
	"io"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

const dirPerm = 0o755

// Config describes the optional log file.
type Config struct {
	File       string `yaml:"file,omitempty"`        // Log file path; empty logs to stderr only
	MaxSize    int    `yaml:"max_size,omitempty"`    // Max size in megabytes
	MaxBackups int    `yaml:"max_backups,omitempty"` // Max number of backups
	MaxAge     int    `yaml:"max_age,omitempty"`     // Max age in days
	Compress   bool   `yaml:"compress,omitempty"`    // Compress backups
}

// DefaultConfig returns rotation settings for file.
func DefaultConfig(file string) Config {
	return Config{
		File:       file,
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
		Compress:   true,
	}
}

// WithDefaults fills zero rotation settings from DefaultConfig.
func (c Config) WithDefaults() Config {
	d := DefaultConfig(c.File)

	if c.MaxSize == 0 {
		c.MaxSize = d.MaxSize
	}

	if c.MaxBackups == 0 {
		c.MaxBackups = d.MaxBackups
	}

	if c.MaxAge == 0 {
		c.MaxAge = d.MaxAge
	}

	return c
}

// Setup points the standard logger at stderr plus the configured file.
// The returned closer releases the log file; it is a no-op without one.
func Setup(config Config, stderr io.Writer) (io.Closer, error) {
	log.SetFlags(log.LstdFlags)

	if config.File == "" {
		log.SetOutput(stderr)
		return nopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(config.File), dirPerm); err != nil {
		return nil, err
	}

	config = config.WithDefaults()

	logger := &lumberjack.Logger{
		Filename:   config.File,
		MaxSize:    config.MaxSize,
		MaxBackups: config.MaxBackups,
		MaxAge:     config.MaxAge,
		Compress:   config.Compress,
	}

	multiWriter := io.MultiWriter(stderr, logger)
	log.SetOutput(multiWriter)

	return logger, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
