package oaikit

import (
	"io"
	"path/filepath"
)

// File is a named upload for multipart requests. A bare io.Reader in Params
// is also accepted; File lets the caller choose the part's file name.
type File struct {
	Name        string
	Reader      io.Reader
	ContentType string
}

// NewFile wraps r as an upload named name.
func NewFile(name string, r io.Reader) File {
	return File{Name: filepath.Base(name), Reader: r}
}
