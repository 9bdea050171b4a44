package config

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
)

type Logging struct {
	Level      logrus.Level
	File       string
	MaxSize    int // megabytes
	MaxBackups int
	MaxAge     int // days
}

func NewLogging() (*Logging, error) {
	level := logrus.InfoLevel
	if Development() {
		level = logrus.DebugLevel
	}

	if levelStr, ok := os.LookupEnv("LOG_LEVEL"); ok {
		var err error
		level, err = logrus.ParseLevel(levelStr)
		if err != nil {
			return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
		}
	}

	maxSize, err := lookupInt("LOG_FILE_MAX_SIZE", 10)
	if err != nil {
		return nil, err
	}

	maxBackups, err := lookupInt("LOG_FILE_MAX_BACKUPS", 3)
	if err != nil {
		return nil, err
	}

	maxAge, err := lookupInt("LOG_FILE_MAX_AGE", 28)
	if err != nil {
		return nil, err
	}

	logging := &Logging{
		Level:      level,
		File:       os.Getenv("LOG_FILE"),
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		MaxAge:     maxAge,
	}

	return logging, nil
}

// Apply configures log. When a log file is set, entries are also written
// to it as JSON lines, rotated by size.
func (l *Logging) Apply(log *logrus.Logger) error {
	log.SetLevel(l.Level)
	log.SetFormatter(&logrus.TextFormatter{ForceColors: Development()})

	if l.File == "" {
		return nil
	}

	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   l.File,
		MaxSize:    l.MaxSize,
		MaxBackups: l.MaxBackups,
		MaxAge:     l.MaxAge,
		Level:      l.Level,
		Formatter:  &logrus.JSONFormatter{TimestampFormat: time.RFC3339},
	})
	if err != nil {
		return fmt.Errorf("unable to create log file hook: %w", err)
	}
	log.AddHook(hook)

	return nil
}

// SetupLogging applies the environment's logging settings to log.
func SetupLogging(log *logrus.Logger) error {
	logging, err := NewLogging()
	if err != nil {
		return err
	}
	return logging.Apply(log)
}
