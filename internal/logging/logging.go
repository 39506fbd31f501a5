// Package logging builds the zerolog logger shared by the commands.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/ankigreek/ankigreek/internal/config"
)

var levelMapping = map[string]zerolog.Level{
	"debug":   zerolog.DebugLevel,
	"info":    zerolog.InfoLevel,
	"warning": zerolog.WarnLevel,
	"warn":    zerolog.WarnLevel,
	"error":   zerolog.ErrorLevel,
}

// New returns a logger writing to conf.Path, or to stderr when the path is
// empty. The returned closer releases the log file and is never nil.
func New(conf config.LogConfig) (zerolog.Logger, io.Closer, error) {
	lev, ok := levelMapping[strings.ToLower(conf.Level)]
	if !ok {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("invalid logging level: %s", conf.Level)
	}

	var out io.Writer = os.Stderr
	var closer io.Closer = nopCloser{}
	if conf.Path != "" {
		f, err := os.OpenFile(conf.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return zerolog.Nop(), nopCloser{}, fmt.Errorf("open log %s: %w", conf.Path, err)
		}
		out, closer = f, f
	}
	if conf.Format != "json" {
		out = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
			NoColor:    conf.Path != "",
		}
	}
	return zerolog.New(out).Level(lev).With().Timestamp().Logger(), closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
