package lints

import (
	"go/ast"
	"go/parser"
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseSource(t *testing.T, code string) (*ast.File, *token.FileSet) {
	t.Helper()
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "test.go", code, parser.ParseComments)
	require.NoError(t, err)
	return file, fset
}

func TestUnnecessaryElse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		code     string
		expected int
	}{
		{
			name: "else after return",
			code: `
package main

func f(x bool) int {
	if x {
		return 1
	} else {
		return 2
	}
}
`,
			expected: 1,
		},
		{
			name: "else without return in if body",
			code: `
package main

func f(x bool) int {
	y := 0
	if x {
		y = 1
	} else {
		y = 2
	}
	return y
}
`,
			expected: 0,
		},
		{
			name: "if without else",
			code: `
package main

func f(x bool) int {
	if x {
		return 1
	}
	return 2
}
`,
			expected: 0,
		},
		{
			name: "else if chain after return",
			code: `
package main

func f(x int) int {
	if x > 0 {
		return 1
	} else if x < 0 {
		return -1
	}
	return 0
}
`,
			expected: 1,
		},
		{
			name: "nested unnecessary else",
			code: `
package main

func f(x, y bool) int {
	if x {
		if y {
			return 1
		} else {
			return 2
		}
	}
	return 3
}
`,
			expected: 1,
		},
	}

	rule := &UnnecessaryElseRule{}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			file, fset := parseSource(t, test.code)
			issues, err := rule.Check("test.go", nil, file, fset)
			require.NoError(t, err)
			assert.Len(t, issues, test.expected)
			if test.expected > 0 {
				assert.Equal(t, "unnecessary else block", issues[0].Message)
			}
		})
	}
}

func TestUnnecessaryElseNilFile(t *testing.T) {
	t.Parallel()

	rule := &UnnecessaryElseRule{}
	issues, err := rule.Check("test.go", nil, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, issues)
}
