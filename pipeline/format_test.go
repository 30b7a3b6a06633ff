package pipeline

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnolang/lintpipe/lint"
)

func TestFormatWritesOneCombinedReport(t *testing.T) {
	t.Parallel()

	var batches [][]string
	custom := func(results []*lint.Result) (string, error) {
		paths := make([]string, 0, len(results))
		for _, r := range results {
			paths = append(paths, r.FilePath)
		}
		batches = append(batches, paths)
		return "report\n", nil
	}

	var buf bytes.Buffer
	stage, err := Format(custom, &buf)
	require.NoError(t, err)

	err = RunFiles(context.Background(), []*File{
		flaggedFile("a.go", 0, 1),
		NewFile("meta.go", nil),
		flaggedFile("b.go", 1, 0),
	}, stage)
	require.NoError(t, err)

	require.Len(t, batches, 1, "the formatter must run once per stream")
	assert.Equal(t, []string{"a.go", "b.go"}, batches[0])
	assert.Equal(t, "report\n", buf.String())
}

func TestFormatEmptyBatchSkipsFormatterAndWrite(t *testing.T) {
	t.Parallel()

	formatterCalls := 0
	custom := func([]*lint.Result) (string, error) {
		formatterCalls++
		return "unexpected", nil
	}

	var wrote []string
	dest := func(text string) error {
		wrote = append(wrote, text)
		return nil
	}

	stage, err := Format(custom, dest)
	require.NoError(t, err)

	err = RunFiles(context.Background(), []*File{NewFile("meta.go", nil)}, stage)
	require.NoError(t, err)

	assert.Zero(t, formatterCalls)
	assert.Empty(t, wrote)
}

func TestFormatEmptyReportNotWritten(t *testing.T) {
	t.Parallel()

	var wrote []string
	dest := func(text string) error {
		wrote = append(wrote, text)
		return nil
	}

	// stylish renders nothing for clean results
	stage, err := Format("stylish", dest)
	require.NoError(t, err)

	f := NewFile("clean.go", []byte("x"))
	f.Result = &lint.Result{FilePath: "clean.go"}

	require.NoError(t, RunFiles(context.Background(), []*File{f}, stage))
	assert.Empty(t, wrote)
}

func TestFormatEachWritesPerRecord(t *testing.T) {
	t.Parallel()

	var wrote []string
	dest := func(text string) error {
		wrote = append(wrote, text)
		return nil
	}

	custom := func(results []*lint.Result) (string, error) {
		require.Len(t, results, 1)
		return results[0].FilePath + "\n", nil
	}

	stage, err := FormatEach(custom, dest)
	require.NoError(t, err)

	err = RunFiles(context.Background(), []*File{
		flaggedFile("a.go", 0, 1),
		NewFile("meta.go", nil),
		flaggedFile("b.go", 0, 1),
	}, stage)
	require.NoError(t, err)

	assert.Equal(t, []string{"a.go\n", "b.go\n"}, wrote)
}

func TestFormatUnknownFormatterFailsRun(t *testing.T) {
	t.Parallel()

	stage, err := Format("sparkles", nil)
	require.NoError(t, err)

	err = RunFiles(context.Background(), []*File{flaggedFile("a.go", 1, 0)}, stage)
	var configErr *lint.ConfigError
	require.ErrorAs(t, err, &configErr)

	each, err := FormatEach("sparkles", nil)
	require.NoError(t, err)

	err = RunFiles(context.Background(), []*File{flaggedFile("a.go", 1, 0)}, each)
	require.ErrorAs(t, err, &configErr)
}

func TestFormatUnknownFormatterToleratedOnEmptyBatch(t *testing.T) {
	t.Parallel()

	stage, err := Format("sparkles", 7)
	require.NoError(t, err)

	// No record carries a result, so the bad references are never resolved.
	err = RunFiles(context.Background(), []*File{NewFile("meta.go", nil)}, stage)
	assert.NoError(t, err)
}

func TestFormatBadDestinationFailsRun(t *testing.T) {
	t.Parallel()

	stage, err := Format("compact", 7)
	require.NoError(t, err)

	err = RunFiles(context.Background(), []*File{flaggedFile("a.go", 1, 0)}, stage)
	var configErr *lint.ConfigError
	require.ErrorAs(t, err, &configErr)
}

func TestFormatFormatterErrorFailsRun(t *testing.T) {
	t.Parallel()

	boom := errors.New("render failed")
	custom := func([]*lint.Result) (string, error) { return "", boom }

	stage, err := Format(custom, &bytes.Buffer{})
	require.NoError(t, err)

	err = RunFiles(context.Background(), []*File{flaggedFile("a.go", 0, 1)}, stage)
	assert.ErrorIs(t, err, boom)
}

func TestFormatWriteErrorFailsRun(t *testing.T) {
	t.Parallel()

	boom := errors.New("sink full")
	dest := func(string) error { return boom }

	stage, err := FormatEach("compact", dest)
	require.NoError(t, err)

	err = RunFiles(context.Background(), []*File{flaggedFile("a.go", 1, 0)}, stage)
	assert.ErrorIs(t, err, boom)
}

func TestFormatWithRealFormatterAndBuffer(t *testing.T) {
	t.Parallel()

	f := NewFile("pkg/main.go", []byte("x"))
	f.Result = &lint.Result{
		FilePath: "pkg/main.go",
		Messages: []lint.Message{
			{Rule: "final-newline", Severity: lint.SeverityWarning, Message: "missing newline at end of file", Line: 3, Column: 1},
		},
	}
	f.Result.Recount()

	var buf bytes.Buffer
	stage, err := Format("compact", &buf)
	require.NoError(t, err)

	require.NoError(t, RunFiles(context.Background(), []*File{f}, stage))

	expected := "pkg/main.go: line 3, col 1, Warning - missing newline at end of file (final-newline)\n\n1 problem\n"
	assert.Equal(t, expected, buf.String())
}
