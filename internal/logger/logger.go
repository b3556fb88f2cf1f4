// Package logger provides the process-wide logging facility used by every
// jacococtl component. It is a thin wrapper around logrus so that quiet mode
// can silence all output in one place.
package logger

import (
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	defaultLogger *logrus.Logger
	mu            sync.Mutex
	quiet         bool
	output        io.Writer = os.Stderr
)

// Init initializes the default logger with the specified level.
// Unknown levels fall back to info.
func Init(levelStr string) {
	mu.Lock()
	defer mu.Unlock()
	l := logrus.New()
	l.SetOutput(output)
	l.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)
	defaultLogger = l
	applyOutput()
}

// SetLevel sets the logging level for the default logger.
func SetLevel(levelStr string) {
	ensure()
	mu.Lock()
	defer mu.Unlock()
	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		level = logrus.InfoLevel
	}
	defaultLogger.SetLevel(level)
}

// SetOutput sets the output destination for the default logger.
func SetOutput(w io.Writer) {
	ensure()
	mu.Lock()
	defer mu.Unlock()
	output = w
	applyOutput()
}

// SetQuiet suppresses all log output when enabled. The configured output
// writer is restored when quiet mode is turned off again.
func SetQuiet(q bool) {
	ensure()
	mu.Lock()
	defer mu.Unlock()
	quiet = q
	applyOutput()
}

// Quiet reports whether quiet mode is enabled.
func Quiet() bool {
	mu.Lock()
	defer mu.Unlock()
	return quiet
}

func applyOutput() {
	if quiet {
		defaultLogger.SetOutput(io.Discard)
		return
	}
	defaultLogger.SetOutput(output)
}

func ensure() {
	mu.Lock()
	initialized := defaultLogger != nil
	mu.Unlock()
	if !initialized {
		Init("info")
	}
}

// Debugf logs a debug message.
func Debugf(format string, args ...interface{}) {
	ensure()
	defaultLogger.Debugf(format, args...)
}

// Infof logs an info message.
func Infof(format string, args ...interface{}) {
	ensure()
	defaultLogger.Infof(format, args...)
}

// Warnf logs a warning message.
func Warnf(format string, args ...interface{}) {
	ensure()
	defaultLogger.Warnf(format, args...)
}

// Errorf logs an error message.
func Errorf(format string, args ...interface{}) {
	ensure()
	defaultLogger.Errorf(format, args...)
}
