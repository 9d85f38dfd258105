package logging

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/vvka-141/contree/pkg/contree"
)

// ZerologLogger emits one JSON object per message using zerolog.
// Verbose messages are written at debug level.
type ZerologLogger struct {
	logger zerolog.Logger
}

// NewZerologLogger creates a JSON logger writing to out, tagged with component.
// If verbose is false, debug-level messages are dropped.
func NewZerologLogger(out io.Writer, component string, verbose bool) *ZerologLogger {
	zerolog.TimeFieldFormat = time.RFC3339

	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(out).Level(level).With().Timestamp().Str("component", component).Logger()
	return &ZerologLogger{logger: logger}
}

// Verbose logs at debug level.
func (l *ZerologLogger) Verbose(format string, args ...interface{}) {
	l.logger.Debug().Msg(fmt.Sprintf(format, args...))
}

// Info logs at info level.
func (l *ZerologLogger) Info(format string, args ...interface{}) {
	l.logger.Info().Msg(fmt.Sprintf(format, args...))
}

// Error logs at error level.
func (l *ZerologLogger) Error(format string, args ...interface{}) {
	l.logger.Error().Msg(fmt.Sprintf(format, args...))
}

// Verify ZerologLogger implements contree.Logger
var _ contree.Logger = (*ZerologLogger)(nil)
