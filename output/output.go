// Package output routes formatted lint reports to their destinations.
//
// A Sink receives whole formatted reports. Destinations are resolved from
// loosely typed references so callers can hand over a writer, a file
// path, a callback or a ready-made sink.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-multierror"
	"go.uber.org/zap"

	"github.com/gnolang/lintpipe/lint"
)

// Sink accepts formatted report text. Close flushes and releases any
// underlying resource; sinks that do not own their destination treat it
// as a no-op.
type Sink interface {
	WriteText(text string) error
	Close() error
}

// Resolve turns a destination reference into a Sink. Accepted values are
// nil for the process log, a Sink, an io.Writer, a callback taking the
// formatted text, or a string file path.
func Resolve(ref any) (Sink, error) {
	switch v := ref.(type) {
	case nil:
		return NewLogSink(nil), nil
	case Sink:
		return v, nil
	case io.Writer:
		return NewWriterSink(v), nil
	case func(string) error:
		return NewFuncSink(v), nil
	case string:
		return NewFileSink(v), nil
	default:
		return nil, &lint.ConfigError{Reason: fmt.Sprintf("cannot resolve an output from %T", ref)}
	}
}

type writerSink struct {
	w io.Writer
}

// NewWriterSink wraps an io.Writer. The sink does not own the writer and
// never closes it.
func NewWriterSink(w io.Writer) Sink {
	return &writerSink{w: w}
}

func (s *writerSink) WriteText(text string) error {
	_, err := io.WriteString(s.w, text)
	return err
}

func (s *writerSink) Close() error { return nil }

type funcSink struct {
	fn func(string) error
}

// NewFuncSink adapts a callback to the Sink interface.
func NewFuncSink(fn func(string) error) Sink {
	return &funcSink{fn: fn}
}

func (s *funcSink) WriteText(text string) error { return s.fn(text) }

func (s *funcSink) Close() error { return nil }

type fileSink struct {
	path string
	f    *os.File
}

// NewFileSink writes reports to the file at path. The file is created on
// the first write, so a run that produces no report leaves no file
// behind.
func NewFileSink(path string) Sink {
	return &fileSink{path: path}
}

func (s *fileSink) WriteText(text string) error {
	if s.f == nil {
		f, err := os.Create(s.path)
		if err != nil {
			return err
		}
		s.f = f
	}
	_, err := io.WriteString(s.f, text)
	return err
}

func (s *fileSink) Close() error {
	if s.f == nil {
		return nil
	}
	err := s.f.Close()
	s.f = nil
	return err
}

type logSink struct {
	logger *zap.Logger
}

// NewLogSink emits each report line through a zap logger at info level.
// Blank separator lines are dropped since log output is line oriented.
func NewLogSink(logger *zap.Logger) Sink {
	if logger == nil {
		logger = zap.L()
	}
	return &logSink{logger: logger}
}

func (s *logSink) WriteText(text string) error {
	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		if line == "" {
			continue
		}
		s.logger.Info(line)
	}
	return nil
}

func (s *logSink) Close() error { return nil }

type multiSink struct {
	sinks []Sink
}

// Multi fans report text out to every sink. Close closes all of them and
// aggregates their errors.
func Multi(sinks ...Sink) Sink {
	if len(sinks) == 1 {
		return sinks[0]
	}
	return &multiSink{sinks: sinks}
}

func (s *multiSink) WriteText(text string) error {
	for _, sink := range s.sinks {
		if err := sink.WriteText(text); err != nil {
			return err
		}
	}
	return nil
}

func (s *multiSink) Close() error {
	var errs *multierror.Error
	for _, sink := range s.sinks {
		errs = multierror.Append(errs, sink.Close())
	}
	return errs.ErrorOrNil()
}
