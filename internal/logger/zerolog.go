package logger

import (
	"context"
	"os"

	"github.com/rs/zerolog"
)

// zerologLogger implements Logger using rs/zerolog
type zerologLogger struct {
	logger zerolog.Logger
	level  Level
}

// NewZerologLogger creates a new Logger backed by zerolog
func NewZerologLogger(cfg Config) Logger {
	zl := zerolog.New(os.Stdout).Level(toZerologLevel(cfg.Level)).With().Timestamp()
	if cfg.AddSource {
		zl = zl.Caller()
	}

	logger := zl.Logger()
	if cfg.Format == "text" {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	}

	return &zerologLogger{
		logger: logger,
		level:  cfg.Level,
	}
}

// toZerologLevel converts our Level to zerolog.Level
func toZerologLevel(l Level) zerolog.Level {
	switch l {
	case LevelDebug:
		return zerolog.DebugLevel
	case LevelInfo:
		return zerolog.InfoLevel
	case LevelWarn:
		return zerolog.WarnLevel
	case LevelError:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func applyFields(e *zerolog.Event, fields []Field) *zerolog.Event {
	for _, f := range fields {
		e = e.Interface(f.Key, f.Value)
	}
	return e
}

func (l *zerologLogger) Debug(msg string, fields ...Field) {
	applyFields(l.logger.Debug(), fields).Msg(msg)
}

func (l *zerologLogger) Info(msg string, fields ...Field) {
	applyFields(l.logger.Info(), fields).Msg(msg)
}

func (l *zerologLogger) Warn(msg string, fields ...Field) {
	applyFields(l.logger.Warn(), fields).Msg(msg)
}

func (l *zerologLogger) Error(msg string, fields ...Field) {
	applyFields(l.logger.Error(), fields).Msg(msg)
}

func (l *zerologLogger) With(fields ...Field) Logger {
	ctx := l.logger.With()
	for _, f := range fields {
		ctx = ctx.Interface(f.Key, f.Value)
	}
	return &zerologLogger{
		logger: ctx.Logger(),
		level:  l.level,
	}
}

func (l *zerologLogger) WithContext(ctx context.Context) Logger {
	fields := extractContextFields(ctx)
	if len(fields) == 0 {
		return l
	}
	return l.With(fields...)
}

func (l *zerologLogger) Level() Level {
	return l.level
}
