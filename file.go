package clouddrop

import (
	"bytes"
	"io"
	"os"

	"github.com/google/renameio/v2"
)

// File is a downloaded remote file held in memory. It is immutable: the contents are copied in at
// construction and every accessor hands out copies.
type File struct {
	contents []byte
	metadata Metadata
}

// NewFile pairs contents with the metadata the provider returned for them.
func NewFile(contents []byte, metadata Metadata) *File {
	return &File{
		contents: bytes.Clone(contents),
		metadata: metadata.clone(),
	}
}

// Contents returns a copy of the raw file bytes.
func (f *File) Contents() []byte {
	return bytes.Clone(f.contents)
}

// Metadata returns the metadata record the file was downloaded with.
func (f *File) Metadata() Metadata {
	return f.metadata.clone()
}

// ID returns the provider's unique id for the file.
func (f *File) ID() string {
	return f.metadata.ID
}

// Name returns the remote file name.
func (f *File) Name() string {
	return f.metadata.Name
}

// Size returns the file size in bytes as reported by the provider.
func (f *File) Size() uint64 {
	return f.metadata.Size
}

// Reader returns a reader over the file contents.
func (f *File) Reader() io.Reader {
	return bytes.NewReader(f.contents)
}

// WriteTo implements io.WriterTo.
func (f *File) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(f.contents)
	return int64(n), err
}

// To writes the contents to path and returns the number of bytes written. The write goes to a
// temporary file in the same directory which is synced and renamed over path, so readers never see
// a partial file. Failures are reported as *WriteError.
func (f *File) To(path string) (int, error) {
	if err := renameio.WriteFile(path, f.contents, os.FileMode(0o644)); err != nil {
		return 0, &WriteError{Path: path, Err: err}
	}
	return len(f.contents), nil
}
