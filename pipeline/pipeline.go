// Package pipeline streams file records through linting stages.
//
// A pipeline is a chain of stages connected by unbuffered channels, one
// goroutine per stage, so records keep their order while stages overlap
// in time. Stages that accumulate state across records finish their work
// in Flush, which runs exactly once per stage after its input is
// exhausted. Stage values carry per-run state and are good for a single
// Run.
package pipeline

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Stage transforms one record at a time. Transform may return (nil, nil)
// to drop a record from the stream. Flush runs after the stage has seen
// every record and before its output closes; it is skipped when the run
// already failed.
type Stage interface {
	Transform(ctx context.Context, f *File) (*File, error)
	Flush(ctx context.Context) error
}

// StageFunc adapts a function to a Stage with a no-op Flush.
type StageFunc func(ctx context.Context, f *File) (*File, error)

func (fn StageFunc) Transform(ctx context.Context, f *File) (*File, error) {
	return fn(ctx, f)
}

func (StageFunc) Flush(context.Context) error { return nil }

// Run drives every record from src through the stages in order and
// drains the final output. The caller must close src once all records
// are sent. Run returns the first stage error, or the context error when
// the caller's context is canceled.
func Run(ctx context.Context, src <-chan *File, stages ...Stage) error {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var g errgroup.Group

	// feed decouples the caller's channel from the stage chain so a
	// canceled run never blocks on a source nobody closes
	feed := make(chan *File)
	g.Go(func() error {
		defer close(feed)
		for {
			select {
			case f, ok := <-src:
				if !ok {
					return nil
				}
				select {
				case feed <- f:
				case <-runCtx.Done():
					return nil
				}
			case <-runCtx.Done():
				return nil
			}
		}
	})

	in := (<-chan *File)(feed)
	for _, st := range stages {
		st, in := st, in
		out := make(chan *File)
		g.Go(func() error {
			defer close(out)
			for f := range in {
				next, err := st.Transform(runCtx, f)
				if err != nil {
					// cancel before the deferred close so stages
					// downstream skip their Flush
					cancel()
					return err
				}
				if next == nil {
					continue
				}
				select {
				case out <- next:
				case <-runCtx.Done():
					return nil
				}
			}
			if runCtx.Err() != nil {
				return nil
			}
			if err := st.Flush(runCtx); err != nil {
				cancel()
				return err
			}
			return nil
		})
		in = out
	}

	last := in
	g.Go(func() error {
		for range last {
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// FromSlice builds a closed source channel from the given records.
func FromSlice(files ...*File) <-chan *File {
	ch := make(chan *File, len(files))
	for _, f := range files {
		ch <- f
	}
	close(ch)
	return ch
}

// RunFiles is a convenience wrapper over Run for a fixed record set.
func RunFiles(ctx context.Context, files []*File, stages ...Stage) error {
	return Run(ctx, FromSlice(files...), stages...)
}

// Collect appends every record it sees to dst and passes it on. It is a
// terminal helper for embedders that need the transformed records.
func Collect(dst *[]*File) Stage {
	return StageFunc(func(_ context.Context, f *File) (*File, error) {
		*dst = append(*dst, f)
		return f, nil
	})
}
