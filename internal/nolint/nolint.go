// Package nolint interprets //nolint directives so the engine can drop
// findings the source explicitly waives. The scanner is textual: it
// works on any file the engine lints, not only parseable Go source.
package nolint

import (
	"bufio"
	"bytes"
	"math"
	"strings"
)

const directivePrefix = "//nolint"

// Manager holds the suppression scopes parsed from one file.
type Manager struct {
	scopes []scope
}

// scope is an inclusive line range where a set of rules is waived.
// An empty rule set waives every rule.
type scope struct {
	startLine int
	endLine   int
	rules     map[string]struct{}
}

// Parse scans src for nolint directives.
//
// Scope rules, mirroring how statement-level directives behave in Go
// linters:
//   - a directive on a line that also carries code waives that line;
//   - a directive alone on its line waives the line and the next one;
//   - a directive before the first line of content waives the whole file.
//
// String literals are not distinguished from comments; the scanner is
// deliberately line-based.
func Parse(src []byte) *Manager {
	m := &Manager{}

	seenContent := false
	scanner := bufio.NewScanner(bytes.NewReader(src))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()

		idx := strings.Index(text, directivePrefix)
		before := text
		if idx >= 0 {
			before = text[:idx]
		}
		hasCode := strings.TrimSpace(stripLineComment(before)) != ""
		if hasCode {
			seenContent = true
		}

		if idx < 0 {
			continue
		}
		rules, ok := parseDirective(text[idx:])
		if !ok {
			continue
		}

		switch {
		case !seenContent:
			m.scopes = append(m.scopes, scope{startLine: 1, endLine: math.MaxInt32, rules: rules})
		case hasCode:
			m.scopes = append(m.scopes, scope{startLine: line, endLine: line, rules: rules})
		default:
			m.scopes = append(m.scopes, scope{startLine: line, endLine: line + 1, rules: rules})
		}
	}

	return m
}

// parseDirective validates text starting with //nolint and extracts the
// waived rule names. A bare //nolint waives all rules; //nolint:a,b
// waives only the named ones. Anything else is not a directive.
func parseDirective(text string) (map[string]struct{}, bool) {
	rest := text[len(directivePrefix):]

	if rest == "" {
		return map[string]struct{}{}, true
	}
	if rest[0] != ':' {
		return nil, false
	}
	rest = strings.TrimSpace(strings.TrimPrefix(rest, ":"))
	if rest == "" {
		return nil, false
	}

	rules := make(map[string]struct{})
	for _, rule := range strings.Split(rest, ",") {
		rule = strings.TrimSpace(rule)
		if rule != "" {
			rules[rule] = struct{}{}
		}
	}
	return rules, true
}

// stripLineComment removes a // comment from a line so that
// comment-only lines are not mistaken for content.
func stripLineComment(line string) string {
	if i := strings.Index(line, "//"); i >= 0 {
		return line[:i]
	}
	return line
}

// IsSuppressed reports whether rule is waived at the given 1-based line.
func (m *Manager) IsSuppressed(line int, rule string) bool {
	for _, ns := range m.scopes {
		if line < ns.startLine || line > ns.endLine {
			continue
		}
		if len(ns.rules) == 0 {
			return true
		}
		if _, ok := ns.rules[rule]; ok {
			return true
		}
	}
	return false
}
