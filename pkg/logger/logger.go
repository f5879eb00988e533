package logger

import (
	"io"

	"github.com/sirupsen/logrus"
)

const (
	DEBUG int = iota
	INFO
	WARNING
	ERROR
	SILENCE
)

type Logger interface {
	Debugf(msg string, a ...any)
	Infof(msg string, a ...any)
	Warnf(msg string, a ...any)
	Errorf(msg string, a ...any)
}

type defaultLogger struct {
	log *logrus.Logger
}

func NewLogger(level int) *defaultLogger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	switch level {
	case DEBUG:
		log.SetLevel(logrus.DebugLevel)
	case INFO:
		log.SetLevel(logrus.InfoLevel)
	case WARNING:
		log.SetLevel(logrus.WarnLevel)
	case ERROR:
		log.SetLevel(logrus.ErrorLevel)
	default:
		log.SetLevel(logrus.PanicLevel)
		log.SetOutput(io.Discard)
	}

	return &defaultLogger{log: log}
}

func (l *defaultLogger) Debugf(msg string, a ...any) {
	l.log.Debugf(msg, a...)
}

func (l *defaultLogger) Infof(msg string, a ...any) {
	l.log.Infof(msg, a...)
}

func (l *defaultLogger) Warnf(msg string, a ...any) {
	l.log.Warnf(msg, a...)
}

func (l *defaultLogger) Errorf(msg string, a ...any) {
	l.log.Errorf(msg, a...)
}

// NewNopLogger returns a Logger that discards everything.
func NewNopLogger() nopLogger {
	return nopLogger{}
}

type nopLogger struct{}

func (nopLogger) Debugf(msg string, a ...any) {}
func (nopLogger) Infof(msg string, a ...any)  {}
func (nopLogger) Warnf(msg string, a ...any)  {}
func (nopLogger) Errorf(msg string, a ...any) {}
