// Package logger provides prefixed, coloured loggers backed by logrus.
package logger

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/beka-birhanu/room-maze/config"
	"github.com/sirupsen/logrus"
)

// Logger writes "[PREFIX] [LEVEL] message" lines.
type Logger struct {
	entry *logrus.Logger
}

// New creates a logger whose lines start with prefix painted in color.
func New(prefix, color string, w io.Writer) (*Logger, error) {
	if prefix == "" {
		return nil, errors.New("logger prefix is required")
	}
	if w == nil {
		return nil, errors.New("logger writer is required")
	}

	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&prefixFormatter{prefix: prefix, color: color})
	return &Logger{entry: l}, nil
}

// SetLevel sets the minimum level that is written. Unknown levels are rejected.
func (l *Logger) SetLevel(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	l.entry.SetLevel(lvl)
	return nil
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string) {
	l.entry.Debug(msg)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.entry.Info(msg)
}

// Warning logs a warning message.
func (l *Logger) Warning(msg string) {
	l.entry.Warn(msg)
}

// Error logs an error message.
func (l *Logger) Error(msg string) {
	l.entry.Error(msg)
}

type prefixFormatter struct {
	prefix string
	color  string
}

func (f *prefixFormatter) Format(e *logrus.Entry) ([]byte, error) {
	var b bytes.Buffer
	if f.color != "" {
		fmt.Fprintf(&b, "%s[%s]%s ", f.color, f.prefix, config.ColorReset)
	} else {
		fmt.Fprintf(&b, "[%s] ", f.prefix)
	}

	levelColor := config.LogInfoColor
	switch e.Level {
	case logrus.WarnLevel:
		levelColor = config.LogWarnColor
	case logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel:
		levelColor = config.LogErrorColor
	}
	if f.color != "" {
		fmt.Fprintf(&b, "%s[%s]%s %s\n", levelColor, levelName(e.Level), config.LogColorReset, e.Message)
	} else {
		fmt.Fprintf(&b, "[%s] %s\n", levelName(e.Level), e.Message)
	}

	return b.Bytes(), nil
}

func levelName(l logrus.Level) string {
	if l == logrus.WarnLevel {
		return "WARNING"
	}
	return strings.ToUpper(l.String())
}
