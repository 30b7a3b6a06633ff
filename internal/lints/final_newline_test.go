package lints

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFinalNewline(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		src      string
		expected int
	}{
		{
			name:     "empty file",
			src:      "",
			expected: 0,
		},
		{
			name:     "ends with newline",
			src:      "package main\n",
			expected: 0,
		},
		{
			name:     "missing newline",
			src:      "package main",
			expected: 1,
		},
	}

	rule := &FinalNewlineRule{}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			issues, err := rule.Check("test.go", []byte(test.src), nil, nil)
			require.NoError(t, err)
			assert.Len(t, issues, test.expected)
		})
	}
}

func TestFinalNewlineEditInsertsAtEnd(t *testing.T) {
	t.Parallel()

	rule := &FinalNewlineRule{}
	issues, err := rule.Check("test.go", []byte("a\nbc"), nil, nil)
	require.NoError(t, err)
	require.Len(t, issues, 1)

	issue := issues[0]
	assert.Equal(t, 2, issue.Start.Line)
	assert.Equal(t, 3, issue.Start.Column)
	assert.Equal(t, 4, issue.Start.Offset)
	assert.Equal(t, issue.Start, issue.End)
	assert.Equal(t, "\n", issue.Suggestion)
	assert.True(t, issue.Fixable)
}
