package engine

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/gnolang/lintpipe/lint"
)

// defaultIgnorePatterns are always active; configuration patterns layer
// on top and can re-include paths with a leading "!".
var defaultIgnorePatterns = []string{
	"**/.git/**",
	"**/node_modules/**",
	"**/vendor/**",
}

type ignoreMatcher struct {
	baseDir  string
	patterns []string
}

func newIgnoreMatcher(baseDir string, cfg lint.Config) (*ignoreMatcher, error) {
	patterns := append([]string(nil), defaultIgnorePatterns...)
	patterns = append(patterns, cfg.Ignore...)

	if cfg.IgnoreFile != "" {
		loaded, err := loadIgnoreFile(cfg.IgnoreFile)
		if err != nil {
			return nil, err
		}
		patterns = append(patterns, loaded...)
	}

	for _, p := range patterns {
		if !doublestar.ValidatePattern(normalizePattern(p)) {
			return nil, &lint.ConfigError{Reason: fmt.Sprintf("invalid ignore pattern %q", p)}
		}
	}

	return &ignoreMatcher{baseDir: baseDir, patterns: patterns}, nil
}

// loadIgnoreFile reads one pattern per line, skipping blanks and comment
// lines starting with "#".
func loadIgnoreFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load ignore file: %w", err)
	}
	defer f.Close()

	var patterns []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		patterns = append(patterns, text)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("load ignore file: %w", err)
	}
	return patterns, nil
}

// Match reports whether path is excluded. Patterns apply in order and the
// last match wins, so a negated pattern can re-include a path that an
// earlier pattern ignored.
func (m *ignoreMatcher) Match(path string) (bool, error) {
	rel := path
	if filepath.IsAbs(path) {
		r, err := filepath.Rel(m.baseDir, path)
		if err != nil {
			return false, err
		}
		rel = r
	}
	rel = filepath.ToSlash(rel)

	ignored := false
	for _, p := range m.patterns {
		pattern := p
		negate := strings.HasPrefix(pattern, "!")
		if negate {
			pattern = pattern[1:]
		}
		if matchPattern(pattern, rel) {
			ignored = !negate
		}
	}
	return ignored, nil
}

// matchPattern treats a bare directory pattern as covering everything
// under it, the way gitignore does.
func matchPattern(pattern, rel string) bool {
	pattern = filepath.ToSlash(pattern)
	if ok, _ := doublestar.Match(pattern, rel); ok {
		return true
	}
	if !strings.HasSuffix(pattern, "/**") {
		if ok, _ := doublestar.Match(pattern+"/**", rel); ok {
			return true
		}
	}
	return false
}

func normalizePattern(p string) string {
	return filepath.ToSlash(strings.TrimPrefix(p, "!"))
}
