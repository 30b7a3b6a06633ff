package lints

import "go/token"

// line is one physical line of a file. text excludes the terminating
// newline but keeps a carriage return when one is present.
type line struct {
	num   int
	start int
	text  string
}

func forEachLine(src []byte, fn func(line)) {
	num := 1
	start := 0
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			fn(line{num: num, start: start, text: string(src[start:i])})
			num++
			start = i + 1
		}
	}
	if start < len(src) {
		fn(line{num: num, start: start, text: string(src[start:])})
	}
}

func position(filename string, ln, col, off int) token.Position {
	return token.Position{Filename: filename, Line: ln, Column: col, Offset: off}
}
