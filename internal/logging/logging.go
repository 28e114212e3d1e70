package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const defaultLogName = "dirnav.log"

var (
	mu           sync.Mutex
	traceEnabled bool
	logPath      = defaultLogPath()
	sessionID    = uuid.NewString()
)

// defaultLogPath keeps the log out of the directories being browsed.
func defaultLogPath() string {
	dir, err := os.UserCacheDir()
	if err != nil || strings.TrimSpace(dir) == "" {
		return defaultLogName
	}
	return filepath.Join(dir, "dirnav", defaultLogName)
}

// Error writes errors to the shared log file.
func Error(err error) {
	if err == nil {
		return
	}
	write(logrus.ErrorLevel, err.Error(), nil)
}

// SetTraceEnabled toggles emission of structured trace entries.
func SetTraceEnabled(enabled bool) {
	mu.Lock()
	traceEnabled = enabled
	mu.Unlock()
}

// TraceEnabled reports whether Trace currently writes anything.
func TraceEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return traceEnabled
}

// SessionID identifies this process in every log entry.
func SessionID() string {
	return sessionID
}

// Trace appends a structured JSON entry to the shared log when tracing is enabled.
func Trace(event string, payload interface{}) {
	if !TraceEnabled() {
		return
	}
	write(logrus.TraceLevel, event, fieldsFor(payload))
}

// Configure sets the log destination. Empty values fall back to the default
// path. Directories are created automatically when missing.
func Configure(path string) {
	mu.Lock()
	defer mu.Unlock()
	if strings.TrimSpace(path) == "" {
		logPath = defaultLogPath()
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "unable to create log directory: %v\n", err)
		logPath = defaultLogPath()
		return
	}
	logPath = path
}

// Path returns the current log destination.
func Path() string {
	mu.Lock()
	defer mu.Unlock()
	return logPath
}

func fieldsFor(payload interface{}) logrus.Fields {
	switch p := payload.(type) {
	case nil:
		return nil
	case map[string]interface{}:
		return logrus.Fields(p)
	case logrus.Fields:
		return p
	default:
		return logrus.Fields{"payload": p}
	}
}

func write(level logrus.Level, msg string, fields logrus.Fields) {
	mu.Lock()
	defer mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "logging failed: %v\n", err)
		return
	}
	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging failed: %v\n", err)
		return
	}
	defer f.Close()

	logger := logrus.New()
	logger.SetOutput(f)
	logger.SetLevel(logrus.TraceLevel)
	logger.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	logger.WithFields(fields).WithField("session", sessionID).Log(level, msg)
}
