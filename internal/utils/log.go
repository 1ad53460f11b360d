// Package utils
package utils

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	logger zerolog.Logger
	once   sync.Once
)

// InitLogger configures the process logger. Only the first call has any
// effect. The console writer goes to stderr; file, if set, additionally
// receives JSON lines.
func InitLogger(level, file string) error {
	var initErr error
	once.Do(func() {
		lvl, err := zerolog.ParseLevel(strings.ToLower(level))
		if err != nil || level == "" {
			lvl = zerolog.InfoLevel
		}

		var out io.Writer = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
		if file != "" {
			f, err := os.OpenFile(file, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
			if err != nil {
				initErr = err
			} else {
				out = zerolog.MultiLevelWriter(out, f)
			}
		}
		logger = zerolog.New(out).Level(lvl).With().Timestamp().Str("app", "ezpz-ti").Logger()
	})
	return initErr
}

// GetLogger returns the process logger, initialising it at info level if
// InitLogger was never called.
func GetLogger() *zerolog.Logger {
	_ = InitLogger("", "")
	return &logger
}
