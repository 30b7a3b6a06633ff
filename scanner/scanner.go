// Package scanner discovers the source files a lint run should read.
package scanner

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileInfo describes one discovered source file.
type FileInfo struct {
	Path string
	Size int64
}

// Scanner walks a set of roots and collects the files matching its
// extension filter. An empty filter matches everything.
type Scanner struct {
	extensions []string
}

func New(extensions ...string) *Scanner {
	return &Scanner{extensions: extensions}
}

// Scan resolves every root, walking directories recursively. Files come
// back in walk order per root with roots in argument order, so the same
// arguments always produce the same sequence. A root that overlaps an
// earlier one contributes each file only once. Explicit file roots that
// miss the extension filter are skipped, not reported as errors.
func (s *Scanner) Scan(roots ...string) ([]FileInfo, error) {
	seen := make(map[string]struct{})
	var files []FileInfo

	add := func(path string, size int64) {
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		files = append(files, FileInfo{Path: path, Size: size})
	}

	for _, root := range roots {
		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("access %s: %w", root, err)
		}

		if !info.IsDir() {
			if s.isTargetFile(root) {
				add(root, info.Size())
			}
			continue
		}

		err = filepath.Walk(root, func(path string, fi os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if fi.IsDir() || !s.isTargetFile(path) {
				return nil
			}
			add(path, fi.Size())
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", root, err)
		}
	}

	return files, nil
}

func (s *Scanner) isTargetFile(path string) bool {
	if len(s.extensions) == 0 {
		return true
	}

	ext := filepath.Ext(path)
	for _, targetExt := range s.extensions {
		if ext == targetExt {
			return true
		}
	}
	return false
}
