package logging

import (
	"github.com/rs/zerolog"

	"github.com/arthur-debert/dotapt/pkg/types"
)

// DirectiveLogger adapts a zerolog logger to the four-level types.Logger.
// LowInfo maps to debug so it only shows with -v.
type DirectiveLogger struct {
	logger zerolog.Logger
}

// NewDirectiveLogger wraps logger
func NewDirectiveLogger(logger zerolog.Logger) *DirectiveLogger {
	return &DirectiveLogger{logger: logger}
}

// ForDirective returns a directive logger tagged with the directive name
func ForDirective(name string) *DirectiveLogger {
	return NewDirectiveLogger(GetLogger("directive").With().Str("directive", name).Logger())
}

func (l *DirectiveLogger) LowInfo(msg string) { l.logger.Debug().Msg(msg) }
func (l *DirectiveLogger) Info(msg string)    { l.logger.Info().Msg(msg) }
func (l *DirectiveLogger) Warn(msg string)    { l.logger.Warn().Msg(msg) }
func (l *DirectiveLogger) Error(msg string)   { l.logger.Error().Msg(msg) }

var _ types.Logger = (*DirectiveLogger)(nil)
