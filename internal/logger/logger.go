// Package logger builds the process-wide diagnostic sink.
//
// The sink is a zerolog.Logger that callers receive explicitly. In production
// it stays inert unless LOG_LEVEL is set, so diagnostics never reach a log
// pipeline that has not been wired up yet.
package logger

import (
	"io"
	"log"
	"strings"
	"time"

	"github.com/rs/zerolog"
	gormlogger "gorm.io/gorm/logger"
)

// New returns the logger for the given environment and level.
func New(env, level string, w io.Writer) zerolog.Logger {
	production := strings.EqualFold(env, "production")
	if production && level == "" {
		return zerolog.Nop()
	}

	lvl := zerolog.DebugLevel
	if level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(level))
		if err == nil {
			lvl = parsed
		}
	}

	out := w
	if !production {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}

// ForGorm routes GORM's query logging through the diagnostic sink.
func ForGorm(l zerolog.Logger, level string) gormlogger.Interface {
	return gormlogger.New(
		log.New(l, "", 0),
		gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormLevel(level),
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
}

func gormLevel(level string) gormlogger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return gormlogger.Silent
	case "error":
		return gormlogger.Error
	case "info":
		return gormlogger.Info
	default:
		return gormlogger.Warn
	}
}
