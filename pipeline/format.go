package pipeline

import (
	"context"

	"github.com/gnolang/lintpipe/formatter"
	"github.com/gnolang/lintpipe/lint"
	"github.com/gnolang/lintpipe/output"
)

// FormatEach renders each record's result as it passes through and
// writes the report to the destination. The formatter and destination
// references are resolved on the first record that carries a result; see
// formatter.Resolve and output.Resolve for the accepted forms.
func FormatEach(formatterRef, destRef any) (Stage, error) {
	return &formatEachStage{formatterRef: formatterRef, destRef: destRef}, nil
}

// Format accumulates every result and writes one combined report at end
// of stream. An empty batch produces no report: the references are never
// resolved and the destination is never touched.
func Format(formatterRef, destRef any) (Stage, error) {
	return OnResults(func(rs *lint.Results) error {
		if rs.Len() == 0 {
			return nil
		}
		f, sink, err := resolve(formatterRef, destRef)
		if err != nil {
			return err
		}
		text, err := f.Format(rs.List)
		if err != nil {
			sink.Close()
			return err
		}
		if text != "" {
			if err := sink.WriteText(text); err != nil {
				sink.Close()
				return err
			}
		}
		return sink.Close()
	})
}

func resolve(formatterRef, destRef any) (formatter.Formatter, output.Sink, error) {
	f, err := formatter.Resolve(formatterRef)
	if err != nil {
		return nil, nil, err
	}
	sink, err := output.Resolve(destRef)
	if err != nil {
		return nil, nil, err
	}
	return f, sink, nil
}

type formatEachStage struct {
	formatterRef any
	destRef      any

	formatter formatter.Formatter
	sink      output.Sink
}

func (s *formatEachStage) Transform(_ context.Context, f *File) (*File, error) {
	if f.Result == nil {
		return f, nil
	}
	if s.formatter == nil {
		fm, sink, err := resolve(s.formatterRef, s.destRef)
		if err != nil {
			return nil, err
		}
		s.formatter, s.sink = fm, sink
	}
	text, err := s.formatter.Format([]*lint.Result{f.Result})
	if err != nil {
		return nil, err
	}
	if text != "" {
		if err := s.sink.WriteText(text); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func (s *formatEachStage) Flush(context.Context) error {
	if s.sink == nil {
		return nil
	}
	return s.sink.Close()
}
