package logging

import (
	"context"

	"github.com/sirupsen/logrus"
)

// LogrusLogger adapts a logrus logger to the Logger interface so applications
// already standardized on logrus can plug the engine's logging into their own
// output pipeline.
type LogrusLogger struct {
	entry *logrus.Entry
}

// NewLogrusLogger wraps an existing logrus logger. A nil argument creates a
// fresh logrus instance with default settings.
func NewLogrusLogger(l *logrus.Logger) *LogrusLogger {
	if l == nil {
		l = logrus.New()
	}
	return &LogrusLogger{entry: logrus.NewEntry(l)}
}

func toLogrusFields(fields []Fields) logrus.Fields {
	merged := logrus.Fields{}
	for _, f := range fields {
		for k, v := range f {
			merged[k] = v
		}
	}
	return merged
}

func (l *LogrusLogger) Debug(msg string, fields ...Fields) {
	l.entry.WithFields(toLogrusFields(fields)).Debug(msg)
}

func (l *LogrusLogger) Info(msg string, fields ...Fields) {
	l.entry.WithFields(toLogrusFields(fields)).Info(msg)
}

func (l *LogrusLogger) Warn(msg string, fields ...Fields) {
	l.entry.WithFields(toLogrusFields(fields)).Warn(msg)
}

func (l *LogrusLogger) Error(err error, msg string, fields ...Fields) {
	l.entry.WithFields(toLogrusFields(fields)).WithError(err).Error(msg)
}

func (l *LogrusLogger) Fatal(err error, msg string, fields ...Fields) {
	l.entry.WithFields(toLogrusFields(fields)).WithError(err).Fatal(msg)
}

func (l *LogrusLogger) WithFields(fields Fields) Logger {
	return &LogrusLogger{entry: l.entry.WithFields(logrus.Fields(fields))}
}

func (l *LogrusLogger) WithContext(ctx context.Context) Logger {
	return &LogrusLogger{entry: l.entry.WithContext(ctx)}
}

func (l *LogrusLogger) SetLevel(level Level) {
	switch level {
	case DebugLevel:
		l.entry.Logger.SetLevel(logrus.DebugLevel)
	case InfoLevel:
		l.entry.Logger.SetLevel(logrus.InfoLevel)
	case WarnLevel:
		l.entry.Logger.SetLevel(logrus.WarnLevel)
	case ErrorLevel:
		l.entry.Logger.SetLevel(logrus.ErrorLevel)
	case FatalLevel:
		l.entry.Logger.SetLevel(logrus.FatalLevel)
	}
}
