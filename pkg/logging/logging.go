package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"chatentry/pkg/config"
	"chatentry/pkg/version"

	"github.com/google/uuid"
	"gopkg.in/natefinch/lumberjack.v2"
)

const defaultLogFile = "chatentry.log"
const (
	maxLogSizeMB  = 5
	maxLogBackups = 5
	maxLogAgeDays = 14
)

// Init configures slog to write structured logs to a rotating file. Every
// record carries the build version, a per-run session id and attrs, so
// lines from one viewer run can be grouped.
func Init(cfg config.Config, attrs ...slog.Attr) (*slog.Logger, error) {
	level := parseLogLevel(cfg.LogLevel)
	handlerOptions := &slog.HandlerOptions{Level: level}

	logPath := strings.TrimSpace(cfg.LogFile)
	if logPath == "" {
		logPath = defaultLogPath()
	}
	if err := os.MkdirAll(filepath.Dir(logPath), 0700); err != nil {
		logger := slog.New(withRunAttrs(newHandler(cfg.LogFormat, io.Discard, handlerOptions), attrs))
		slog.SetDefault(logger)
		return logger, err
	}

	writer := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    maxLogSizeMB,
		MaxBackups: maxLogBackups,
		MaxAge:     maxLogAgeDays,
		Compress:   true,
	}

	logger := slog.New(withRunAttrs(newHandler(cfg.LogFormat, writer, handlerOptions), attrs))
	slog.SetDefault(logger)
	return logger, nil
}

func withRunAttrs(h slog.Handler, attrs []slog.Attr) slog.Handler {
	run := []slog.Attr{
		slog.String("version", version.Summary()),
		slog.String("session", uuid.NewString()),
	}
	return h.WithAttrs(append(run, attrs...))
}

func defaultLogPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil || strings.TrimSpace(homeDir) == "" {
		return filepath.Join(".chatentry", "logs", defaultLogFile)
	}
	return filepath.Join(homeDir, ".chatentry", "logs", defaultLogFile)
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func newHandler(format string, out io.Writer, opts *slog.HandlerOptions) slog.Handler {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "text":
		return slog.NewTextHandler(out, opts)
	default:
		return slog.NewJSONHandler(out, opts)
	}
}
