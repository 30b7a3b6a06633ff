package pipeline

import "github.com/gnolang/lintpipe/lint"

// File is one record flowing through a pipeline: a path plus its
// materialized contents and, once the linting stage has run, the result
// attached to it.
type File struct {
	// Path locates the record. It may be absolute or relative to Base.
	Path string

	// Base anchors relative display paths for this record. Empty means
	// the pipeline's base directory applies.
	Base string

	// Contents is the file text. A nil Contents marks a metadata-only
	// record, which the linting stage passes through untouched.
	Contents []byte

	// Stream marks records whose contents exist only as a live stream.
	// Those cannot be linted as text and fail the run.
	Stream bool

	// Result is attached by the linting stage.
	Result *lint.Result
}

// NewFile returns a record with materialized contents.
func NewFile(path string, contents []byte) *File {
	return &File{Path: path, Contents: contents}
}

// NewStreamFile returns a record that only carries a reference to
// streamed contents.
func NewStreamFile(path string) *File {
	return &File{Path: path, Stream: true}
}
