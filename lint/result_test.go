package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeverityParse(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		want Severity
		ok   bool
	}{
		{"off", SeverityOff, true},
		{"0", SeverityOff, true},
		{"warn", SeverityWarning, true},
		{"warning", SeverityWarning, true},
		{"1", SeverityWarning, true},
		{"error", SeverityError, true},
		{"2", SeverityError, true},
		{"fatal", SeverityOff, false},
		{"", SeverityOff, false},
	}
	for _, tt := range tests {
		got, err := ParseSeverity(tt.in)
		if tt.ok {
			assert.NoError(t, err, tt.in)
			assert.Equal(t, tt.want, got, tt.in)
		} else {
			assert.Error(t, err, tt.in)
		}
	}
}

func TestSeverityText(t *testing.T) {
	t.Parallel()
	b, err := SeverityError.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "error", string(b))

	var s Severity
	assert.NoError(t, s.UnmarshalText([]byte("warning")))
	assert.Equal(t, SeverityWarning, s)

	_, err = Severity(9).MarshalText()
	assert.Error(t, err)
}

func TestResultRecount(t *testing.T) {
	t.Parallel()
	r := &Result{
		FilePath: "a.go",
		Messages: []Message{
			{Severity: SeverityWarning, Message: "w1"},
			{Severity: SeverityError, Message: "e1"},
			{Severity: SeverityError, Message: "e2"},
		},
		// Deliberately wrong; Recount must not trust these.
		ErrorCount:   7,
		WarningCount: 7,
	}
	r.Recount()
	assert.Equal(t, 2, r.ErrorCount)
	assert.Equal(t, 1, r.WarningCount)
}

func TestResultFirstError(t *testing.T) {
	t.Parallel()
	r := &Result{
		Messages: []Message{
			{Severity: SeverityWarning, Message: "w", Line: 1},
			{Severity: SeverityError, Message: "first", Line: 3},
			{Severity: SeverityError, Message: "second", Line: 9},
		},
	}
	first := r.FirstError()
	if assert.NotNil(t, first) {
		assert.Equal(t, "first", first.Message)
		assert.Equal(t, 3, first.Line)
	}

	clean := &Result{Messages: []Message{{Severity: SeverityWarning}}}
	assert.Nil(t, clean.FirstError())
}

func TestResultsAppend(t *testing.T) {
	t.Parallel()
	var rs Results
	rs.Append(&Result{FilePath: "a.go", ErrorCount: 2, WarningCount: 1})
	rs.Append(&Result{FilePath: "b.go", ErrorCount: 0, WarningCount: 3})
	rs.Append(&Result{FilePath: "c.go"})

	assert.Equal(t, 3, rs.Len())
	assert.Equal(t, 2, rs.ErrorCount)
	assert.Equal(t, 4, rs.WarningCount)
	assert.Equal(t, "b.go", rs.List[1].FilePath)
}
