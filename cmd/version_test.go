package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionCommandOutput(t *testing.T) {
	var buf bytes.Buffer
	versionCmd.SetOut(&buf)
	defer versionCmd.SetOut(nil)

	versionCmd.Run(versionCmd, nil)

	output := buf.String()
	assert.Contains(t, output, "lintpipe ")
	assert.Contains(t, output, "commit: ")
	assert.Contains(t, output, "built:  ")
}

func TestBuildInfoDefaults(t *testing.T) {
	version, commit, date := BuildInfo()
	assert.Equal(t, "dev", version)
	assert.Equal(t, "unknown", commit)
	assert.Equal(t, "unknown", date)
}
