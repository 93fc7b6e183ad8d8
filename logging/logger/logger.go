package logger

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/charcoles/charcole/logging/logger/config"

	"github.com/sirupsen/logrus"
)

// Logger represents logger instance
type Logger struct {
	*logrus.Logger
	logFile *os.File
}

var (
	// stdLogger is the global logger
	stdLogger *Logger
	// once ensures that the logger is initialized only once
	once sync.Once
)

// StdLogger returns the single logger instance
func StdLogger() *Logger {
	once.Do(func() {
		stdLogger = New()
	})
	return stdLogger
}

// New creates a standalone logger writing text to stderr at info level
func New() *Logger {
	l := &Logger{Logger: logrus.New()}
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return l
}

// Init applies c to the logger. The returned func releases the log file, if any.
func (l *Logger) Init(c *config.Config) (func(), error) {
	if c == nil {
		c = config.Default()
	}

	level, err := logrus.ParseLevel(c.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", c.Level, err)
	}
	l.SetLevel(level)

	switch c.Format {
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{})
	default:
		l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}

	switch c.Output {
	case "stdout":
		l.SetOutput(os.Stdout)
	case "file":
		if c.OutputFile == "" {
			return nil, fmt.Errorf("logger output is file but output_file is empty")
		}
		if err := os.MkdirAll(filepath.Dir(c.OutputFile), 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(c.OutputFile, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		l.logFile = f
		l.SetOutput(f)
	default:
		l.SetOutput(os.Stderr)
	}

	return func() {
		if l.logFile != nil {
			l.SetOutput(os.Stderr)
			_ = l.logFile.Close()
			l.logFile = nil
		}
	}, nil
}

// WithContext returns an entry carrying the fields stored in ctx
func (l *Logger) WithContext(ctx context.Context) *logrus.Entry {
	fields := logrus.Fields{}
	if id := RunID(ctx); id != "" {
		fields[runIDKey] = id
	}
	return l.WithFields(fields)
}
