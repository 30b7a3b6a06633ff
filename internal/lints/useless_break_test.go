package lints

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUselessBreak(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		code     string
		expected int
	}{
		{
			name: "break at the end of case clause",
			code: `
package main

func f(x int) {
	switch x {
	case 1:
		println(x)
		break
	}
}
`,
			expected: 1,
		},
		{
			name: "case clause without break",
			code: `
package main

func f(x int) {
	switch x {
	case 1:
		println(x)
	}
}
`,
			expected: 0,
		},
		{
			name: "labeled break is meaningful",
			code: `
package main

func f(x int) {
loop:
	for {
		switch x {
		case 1:
			break loop
		}
	}
}
`,
			expected: 0,
		},
		{
			name: "break before the end of the clause",
			code: `
package main

func f(x int) {
	switch x {
	case 1:
		break
		println(x)
	}
}
`,
			expected: 0,
		},
		{
			name: "break in select comm clause",
			code: `
package main

func f(ch chan int) {
	select {
	case <-ch:
		println("got one")
		break
	}
}
`,
			expected: 1,
		},
		{
			name: "break in type switch",
			code: `
package main

func f(x any) {
	switch x.(type) {
	case int:
		println("int")
		break
	}
}
`,
			expected: 1,
		},
	}

	rule := &UselessBreakRule{}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			file, fset := parseSource(t, test.code)
			issues, err := rule.Check("test.go", nil, file, fset)
			require.NoError(t, err)
			assert.Len(t, issues, test.expected)
			if test.expected > 0 {
				assert.Equal(t, "useless break statement at the end of case clause", issues[0].Message)
				assert.Equal(t, "useless-break", issues[0].Rule)
			}
		})
	}
}

func TestDefaultRegistry(t *testing.T) {
	t.Parallel()

	rules := Default()
	require.Len(t, rules, 5)

	assert.NotNil(t, Lookup("line-length"))
	assert.NotNil(t, Lookup("useless-break"))
	assert.Nil(t, Lookup("no-such-rule"))

	names := Names()
	assert.Contains(t, names, "trailing-whitespace")
	assert.Contains(t, names, "final-newline")
	assert.Contains(t, names, "unnecessary-else")
}
