package pipeline

import (
	"context"

	"github.com/gnolang/lintpipe/lint"
)

// OnResult runs action for every record that carries a result. Records
// without one, such as metadata-only files, pass through untouched. An
// error from the action fails the run.
func OnResult(action func(*lint.Result) error) (Stage, error) {
	if action == nil {
		return nil, &lint.ConfigError{Reason: "on-result action must not be nil"}
	}
	return StageFunc(func(_ context.Context, f *File) (*File, error) {
		if f.Result != nil {
			if err := action(f.Result); err != nil {
				return nil, err
			}
		}
		return f, nil
	}), nil
}

// OnResults accumulates every result seen during the run and hands the
// accumulator to action exactly once, after the last record has passed
// through. The action never runs when the pipeline fails first.
func OnResults(action func(*lint.Results) error) (Stage, error) {
	if action == nil {
		return nil, &lint.ConfigError{Reason: "on-results action must not be nil"}
	}
	return &resultsStage{action: action}, nil
}

type resultsStage struct {
	action  func(*lint.Results) error
	results lint.Results
}

func (s *resultsStage) Transform(_ context.Context, f *File) (*File, error) {
	if f.Result != nil {
		s.results.Append(f.Result)
	}
	return f, nil
}

func (s *resultsStage) Flush(context.Context) error {
	return s.action(&s.results)
}
