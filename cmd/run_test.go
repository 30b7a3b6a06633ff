package cmd

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/gnolang/lintpipe/lint"
)

func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func captureOutput(t *testing.T, f func()) string {
	t.Helper()
	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	f()

	w.Close()
	os.Stdout = oldStdout
	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String()
}

func TestLoadFilesKeepsDiscoveryOrder(t *testing.T) {
	t.Parallel()
	tempDir := t.TempDir()

	writeSource(t, tempDir, "a.go", "package a\n")
	writeSource(t, tempDir, "b.go", "package b\n")
	writeSource(t, tempDir, "sub/c.go", "package c\n")

	files, err := loadFiles(context.Background(), zap.NewNop(), []string{tempDir}, false)
	require.NoError(t, err)

	require.Len(t, files, 3)
	assert.Equal(t, filepath.Join(tempDir, "a.go"), files[0].Path)
	assert.Equal(t, filepath.Join(tempDir, "b.go"), files[1].Path)
	assert.Equal(t, filepath.Join(tempDir, "sub/c.go"), files[2].Path)
	assert.Equal(t, []byte("package a\n"), files[0].Contents)
}

func TestLoadFilesMissingPath(t *testing.T) {
	t.Parallel()

	_, err := loadFiles(context.Background(), zap.NewNop(), []string{filepath.Join(t.TempDir(), "nope")}, false)
	assert.Error(t, err)
}

func TestRunLintProcessReportsFindings(t *testing.T) {
	t.Parallel()
	tempDir := t.TempDir()

	writeSource(t, tempDir, "dirty.go", "package dirty \n\nvar x = 1\n")
	reportPath := filepath.Join(tempDir, "report.txt")

	summary, err := runLintProcess(context.Background(), zap.NewNop(), []string{tempDir}, runOptions{
		Format:     "compact",
		OutputPath: reportPath,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Files)
	assert.Equal(t, 0, summary.Errors)
	assert.Equal(t, 1, summary.Warnings)

	report, err := os.ReadFile(reportPath)
	require.NoError(t, err)
	assert.Contains(t, string(report), "trailing-whitespace")
	assert.Contains(t, string(report), "1 problem")
}

func TestRunLintProcessCleanTreeWritesNoReport(t *testing.T) {
	t.Parallel()
	tempDir := t.TempDir()

	writeSource(t, tempDir, "clean.go", "package clean\n")
	reportPath := filepath.Join(tempDir, "report.txt")

	summary, err := runLintProcess(context.Background(), zap.NewNop(), []string{tempDir}, runOptions{
		Format:     "compact",
		OutputPath: reportPath,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Files)
	assert.Zero(t, summary.Errors)
	assert.Zero(t, summary.Warnings)

	_, err = os.Stat(reportPath)
	assert.True(t, os.IsNotExist(err), "a clean run must not create the report file")
}

func TestRunLintProcessQuietDropsWarnings(t *testing.T) {
	t.Parallel()
	tempDir := t.TempDir()

	writeSource(t, tempDir, "dirty.go", "package dirty \n\nvar x = 1\n")

	summary, err := runLintProcess(context.Background(), zap.NewNop(), []string{tempDir}, runOptions{
		Format:     "compact",
		OutputPath: filepath.Join(tempDir, "report.txt"),
		Quiet:      true,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Files)
	assert.Zero(t, summary.Warnings)
}

func TestRunLintProcessNoMatchingFiles(t *testing.T) {
	t.Parallel()
	tempDir := t.TempDir()

	writeSource(t, tempDir, "notes.txt", "not source")

	summary, err := runLintProcess(context.Background(), zap.NewNop(), []string{tempDir}, runOptions{Format: "compact"})
	require.NoError(t, err)
	assert.Zero(t, summary.Files)
}

func TestRunLintProcessBadConfigPath(t *testing.T) {
	t.Parallel()
	tempDir := t.TempDir()

	writeSource(t, tempDir, "a.go", "package a\n")

	_, err := runLintProcess(context.Background(), zap.NewNop(), []string{tempDir}, runOptions{
		ConfigFile: filepath.Join(tempDir, "missing.yaml"),
		Format:     "compact",
	})
	var configErr *lint.ConfigError
	assert.ErrorAs(t, err, &configErr)
}

func TestRunLintProcessFixWritesBack(t *testing.T) {
	t.Parallel()
	tempDir := t.TempDir()

	target := writeSource(t, tempDir, "dirty.go", "package dirty \n\nvar x = 1")

	summary, err := runLintProcess(context.Background(), zap.NewNop(), []string{tempDir}, runOptions{
		Format:     "compact",
		OutputPath: filepath.Join(tempDir, "report.txt"),
		Fix:        true,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Fixed)
	assert.Zero(t, summary.Errors)
	assert.Zero(t, summary.Warnings)

	content, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "package dirty\n\nvar x = 1\n", string(content))
}

func TestRunLintProcessDryRunLeavesFilesAlone(t *testing.T) {
	tempDir := t.TempDir()

	source := "package dirty \n\nvar x = 1"
	target := writeSource(t, tempDir, "dirty.go", source)

	var summary runSummary
	output := captureOutput(t, func() {
		var err error
		summary, err = runLintProcess(context.Background(), zap.NewNop(), []string{tempDir}, runOptions{
			Format:     "compact",
			OutputPath: filepath.Join(tempDir, "report.txt"),
			Fix:        true,
			DryRun:     true,
		})
		require.NoError(t, err)
	})

	assert.Equal(t, 1, summary.Fixed)
	assert.Contains(t, output, "Would fix issues in")

	content, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, source, string(content), "dry run must not rewrite the file")
}

func TestResolveConfigFile(t *testing.T) {
	assert.Equal(t, "custom.yaml", resolveConfigFile("custom.yaml"))

	tempDir := t.TempDir()
	oldWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tempDir))
	defer os.Chdir(oldWd)

	assert.Empty(t, resolveConfigFile(""))

	require.NoError(t, os.WriteFile(defaultConfigFile, []byte("name: lintpipe\n"), 0o644))
	assert.Equal(t, defaultConfigFile, resolveConfigFile(""))
}
