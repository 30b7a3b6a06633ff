// Package lint defines the data model shared by the pipeline stages and
// the linting engine: messages, per-file results, the cross-file results
// accumulator, the engine contract and the option set consumed by the
// linting transform.
package lint

// Message is one finding inside a Result.
type Message struct {
	// Rule names the rule that produced the finding, when known.
	Rule string `json:"rule,omitempty"`
	// Severity is SeverityWarning or SeverityError for real findings.
	Severity Severity `json:"severity"`
	// Message is the human-readable finding text.
	Message string `json:"message"`
	// Line is 1-based; 0 means the finding has no line attribution.
	Line int `json:"line,omitempty"`
	// Column is 1-based; 0 means unknown.
	Column int `json:"column,omitempty"`
	// Fatal marks findings that prevented linting altogether, such as a
	// parse failure. Fatal messages always carry SeverityError.
	Fatal bool `json:"fatal,omitempty"`
}

// Result holds the findings for exactly one file record.
type Result struct {
	FilePath string    `json:"filePath"`
	Messages []Message `json:"messages"`

	ErrorCount   int `json:"errorCount"`
	WarningCount int `json:"warningCount"`

	// Output is the fixed source text when the engine applied fixes;
	// nil when no fix output was produced. When Output is present the
	// transform replaces the record's contents with it and sets Fixed.
	Output []byte `json:"-"`
	Fixed  bool   `json:"fixed,omitempty"`

	// Ignored marks the synthetic result attached to a file that was
	// skipped because of an ignore pattern (only when the transform is
	// configured to warn about ignored files).
	Ignored bool `json:"ignored,omitempty"`
}

// Recount recomputes ErrorCount and WarningCount from Messages. Filtered
// results must never reuse the engine's original counters, since
// filtering can remove errors.
func (r *Result) Recount() {
	r.ErrorCount = 0
	r.WarningCount = 0
	for _, m := range r.Messages {
		switch m.Severity {
		case SeverityError:
			r.ErrorCount++
		case SeverityWarning:
			r.WarningCount++
		}
	}
}

// FirstError returns the first error-severity message in original order,
// or nil when the result has none.
func (r *Result) FirstError() *Message {
	for i := range r.Messages {
		if r.Messages[i].Severity == SeverityError {
			return &r.Messages[i]
		}
	}
	return nil
}

// Results accumulates the per-file results of one pipeline run along
// with running totals. It is mutated only by the end-of-stream
// combinator's per-record callback and handed to the finalize action
// exactly once, after the last record has been observed.
type Results struct {
	List []*Result

	ErrorCount   int
	WarningCount int
}

// Append records one result and bumps the running counters.
func (rs *Results) Append(r *Result) {
	rs.List = append(rs.List, r)
	rs.ErrorCount += r.ErrorCount
	rs.WarningCount += r.WarningCount
}

func (rs *Results) Len() int { return len(rs.List) }
