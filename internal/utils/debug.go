package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const logFilePrefix = "debug-"

var (
	logger   *zap.Logger
	logFile  *os.File
	logOnce  sync.Once
	logsDir  string
	logLevel = zap.NewAtomicLevelAt(zap.InfoLevel)
	mu       sync.RWMutex
)

// ConfigureDebug sets the directory for debug logs
func ConfigureDebug(dir string) {
	mu.Lock()
	defer mu.Unlock()
	logsDir = dir
}

// SetDebug switches debug entries on or off.
func SetDebug(enabled bool) {
	if enabled {
		logLevel.SetLevel(zap.DebugLevel)
		return
	}
	logLevel.SetLevel(zap.InfoLevel)
}

// Logger returns the process logger. Before ConfigureDebug it discards
// everything; afterwards it writes to a per-run file in the logs directory.
func Logger() *zap.Logger {
	mu.RLock()
	dir := logsDir
	mu.RUnlock()

	// If no logs directory is configured, do nothing
	if dir == "" {
		return zap.NewNop()
	}

	logOnce.Do(func() {
		logger = newFileLogger(dir)
	})
	return logger
}

func newFileLogger(dir string) *zap.Logger {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return zap.NewNop()
	}
	name := fmt.Sprintf("%s%s.log", logFilePrefix, time.Now().Format("20060102-150405"))
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return zap.NewNop()
	}
	logFile = f

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05")
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(f), logLevel)
	return zap.New(core)
}

// Debug writes a formatted debug entry to the log file.
func Debug(format string, args ...any) {
	Logger().Sugar().Debugf(format, args...)
}

// CloseLog flushes and closes the log file, if one was opened.
func CloseLog() {
	if logger != nil {
		_ = logger.Sync()
	}
	if logFile != nil {
		_ = logFile.Close()
	}
}

// CleanupLogs keeps the newest retention log files and removes the rest.
func CleanupLogs(retention int) {
	mu.RLock()
	dir := logsDir
	mu.RUnlock()

	if dir == "" || retention < 1 {
		return
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	var logs []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasPrefix(e.Name(), logFilePrefix) || !strings.HasSuffix(e.Name(), ".log") {
			continue
		}
		logs = append(logs, e.Name())
	}
	if len(logs) <= retention {
		return
	}

	// Names embed the start time, so lexical order is chronological
	sort.Strings(logs)
	for _, name := range logs[:len(logs)-retention] {
		if err := os.Remove(filepath.Join(dir, name)); err != nil {
			Debug("Error removing old log %s: %v", name, err)
		}
	}
}
