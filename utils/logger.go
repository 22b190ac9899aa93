package utils

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
)

// Log output formats
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// logger is the process-wide structured logger. It writes JSON with ISO 8601
// timestamps to stdout at info level until Configure says otherwise.
var logger = newLogger()

func newLogger() *log.Logger {
	l := log.New()
	l.SetOutput(os.Stdout)
	l.SetFormatter(formatter(LogFormatJSON))
	l.SetLevel(log.InfoLevel)
	return l
}

func formatter(format string) log.Formatter {
	if format == LogFormatText {
		return &log.TextFormatter{FullTimestamp: true, TimestampFormat: "15:04:05.000"}
	}
	return &log.JSONFormatter{TimestampFormat: "2006-01-02T15:04:05Z07:00"}
}

// Configure applies the level and format settings. On error nothing changes.
func Configure(level, format string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return err
	}
	switch format {
	case "", LogFormatJSON, LogFormatText:
	default:
		return fmt.Errorf("unknown log format %q", format)
	}

	logger.SetLevel(lvl)
	logger.SetFormatter(formatter(format))
	return nil
}

func Debug(message string, fields map[string]any) {
	logger.WithFields(fields).Debug(message)
}

func Info(message string, fields map[string]any) {
	logger.WithFields(fields).Info(message)
}

func Warn(message string, fields map[string]any) {
	logger.WithFields(fields).Warn(message)
}

func Error(message string, fields map[string]any) {
	logger.WithFields(fields).Error(message)
}

// Fatal logs at fatal level and exits the process
func Fatal(message string, fields map[string]any) {
	logger.WithFields(fields).Fatal(message)
}
