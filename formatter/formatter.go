// Package formatter renders batches of lint results as text.
//
// Formatters are addressable by name from the pipeline and the command
// line. The default is the human-oriented stylish formatter; compact,
// json and unix cover scripting and editor integration.
package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gnolang/lintpipe/lint"
)

// DefaultName is the formatter used when none is requested.
const DefaultName = "stylish"

// Formatter renders a batch of results into a single string.
type Formatter interface {
	Format(results []*lint.Result) (string, error)
}

// Func adapts a plain function to the Formatter interface.
type Func func(results []*lint.Result) (string, error)

func (f Func) Format(results []*lint.Result) (string, error) { return f(results) }

var registry = map[string]Formatter{
	"stylish": Stylish{},
	"compact": Compact{},
	"json":    JSON{},
	"unix":    Unix{},
}

// Lookup returns the named formatter, or nil when unknown.
func Lookup(name string) Formatter { return registry[name] }

// Names lists the registered formatter names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve turns a formatter reference into a Formatter. Accepted values
// are nil for the default, a registered name, a Formatter, or a bare
// function with the Format signature.
func Resolve(ref any) (Formatter, error) {
	switch v := ref.(type) {
	case nil:
		return registry[DefaultName], nil
	case string:
		if f := Lookup(v); f != nil {
			return f, nil
		}
		return nil, &lint.ConfigError{Reason: fmt.Sprintf("unknown formatter %q", v)}
	case Formatter:
		return v, nil
	case func(results []*lint.Result) (string, error):
		return Func(v), nil
	default:
		return nil, &lint.ConfigError{Reason: fmt.Sprintf("cannot resolve a formatter from %T", ref)}
	}
}

func plural(word string, n int) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
