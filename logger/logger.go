package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

// Fields is an alias of logrus.Fields so callers don't import logrus directly
type Fields = logrus.Fields

// Options controls how the global logger is built
type Options struct {
	Level  string // debug, info, warn, error
	Format string // json or text
	File   string // optional path; output is rotated with lumberjack
}

var log = logrus.New()

// Init configures the global logger. It is safe to call more than once.
func Init(opts Options) *logrus.Logger {
	l := logrus.New()

	level, err := logrus.ParseLevel(strings.ToLower(opts.Level))
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	if strings.EqualFold(opts.Format, "json") {
		l.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339Nano,
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime: "timestamp",
				logrus.FieldKeyMsg:  "message",
			},
		})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: time.RFC3339})
	}

	var out io.Writer = os.Stdout
	if opts.File != "" {
		out = io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    50, // megabytes
			MaxBackups: 5,
			MaxAge:     28, // days
			Compress:   true,
		})
	}
	l.SetOutput(out)

	log = l
	return l
}

// Get returns the global logger
func Get() *logrus.Logger {
	return log
}

// WithComponent returns an entry tagged with the component name
func WithComponent(component string) *logrus.Entry {
	return log.WithField("component", component)
}

// WithFields returns an entry carrying the given fields
func WithFields(fields Fields) *logrus.Entry {
	return log.WithFields(fields)
}
