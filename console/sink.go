package console

import (
	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
)

// Level is the console method a line is written with.
type Level int

const (
	LevelLog Level = iota
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	}
	return "log"
}

// NewLogger returns a logger that formats every entry enabled at verbosity
// as one funcr key/value line and passes it to write. Info entries use
// LevelLog, errors use LevelError. Named loggers prefix the line with
// "name: ".
func NewLogger(write func(level Level, line string), verbosity int) logr.Logger {
	return logr.New(&sink{
		Formatter: funcr.NewFormatter(funcr.Options{Verbosity: verbosity}),
		write:     write,
	})
}

type sink struct {
	funcr.Formatter
	write func(Level, string)
}

var _ logr.LogSink = (*sink)(nil)

func (s *sink) Info(level int, msg string, keysAndValues ...any) {
	prefix, args := s.FormatInfo(level, msg, keysAndValues)
	s.emit(LevelLog, prefix, args)
}

func (s *sink) Error(err error, msg string, keysAndValues ...any) {
	prefix, args := s.FormatError(err, msg, keysAndValues)
	s.emit(LevelError, prefix, args)
}

func (s *sink) WithValues(keysAndValues ...any) logr.LogSink {
	c := *s
	c.AddValues(keysAndValues)
	return &c
}

func (s *sink) WithName(name string) logr.LogSink {
	c := *s
	c.AddName(name)
	return &c
}

func (s *sink) emit(level Level, prefix, args string) {
	if prefix != "" {
		args = prefix + ": " + args
	}
	s.write(level, args)
}
