package logger

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

type Interface interface {
	Debug(message interface{}, args ...interface{})
	Info(message string, args ...interface{})
	Warn(message string, args ...interface{})
	Error(message interface{}, args ...interface{})
	Fatal(message interface{}, args ...interface{})
}

type Logger struct {
	logger *zerolog.Logger
}

var _ Interface = (*Logger)(nil)

func New(level string) *Logger {
	var l zerolog.Level

	switch strings.ToLower(level) {
	case "error":
		l = zerolog.ErrorLevel
	case "warn":
		l = zerolog.WarnLevel
	case "info":
		l = zerolog.InfoLevel
	case "debug":
		l = zerolog.DebugLevel
	case "disabled":
		l = zerolog.Disabled
	default:
		l = zerolog.InfoLevel
	}

	logger := zerolog.New(os.Stdout).
		Level(l).
		With().
		Timestamp().
		Logger()

	return &Logger{logger: &logger}
}

func (l *Logger) Debug(message interface{}, args ...interface{}) {
	l.msg(l.logger.Debug(), message, args...)
}

func (l *Logger) Info(message string, args ...interface{}) {
	l.msg(l.logger.Info(), message, args...)
}

func (l *Logger) Warn(message string, args ...interface{}) {
	l.msg(l.logger.Warn(), message, args...)
}

func (l *Logger) Error(message interface{}, args ...interface{}) {
	l.msg(l.logger.Error(), message, args...)
}

func (l *Logger) Fatal(message interface{}, args ...interface{}) {
	l.msg(l.logger.Fatal(), message, args...)

	os.Exit(1)
}

// msg accepts either a format string with args, or an error followed by an
// optional "layer - func" context string and its args.
func (l *Logger) msg(e *zerolog.Event, message interface{}, args ...interface{}) {
	switch m := message.(type) {
	case error:
		e = e.Err(m)
		if len(args) == 0 {
			e.Send()
			return
		}
		if format, ok := args[0].(string); ok {
			e.Msgf(format, args[1:]...)
			return
		}
		e.Msg(fmt.Sprint(args...))
	case string:
		if len(args) == 0 {
			e.Msg(m)
			return
		}
		e.Msgf(m, args...)
	default:
		e.Msgf("message %v has unknown type %T", message, message)
	}
}
