package clouddrop_test

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/phlak/clouddrop"
)

type fileTest struct {
	suite.Suite
}

func (s *fileTest) newFile(contents string) *clouddrop.File {
	md := clouddrop.Metadata{}
	s.Require().NoError(json.Unmarshal([]byte(`{"id":"id:a1","name":"report.txt","size":11,"rev":"015f"}`), &md))
	return clouddrop.NewFile([]byte(contents), md)
}

func (s *fileTest) TestAccessors() {
	f := s.newFile("hello world")

	s.Equal("id:a1", f.ID())
	s.Equal("report.txt", f.Name())
	s.Equal(uint64(11), f.Size())
	s.Equal([]byte("hello world"), f.Contents())
	s.Equal("015f", f.Metadata().Rev)

	var rev string
	ok, err := f.Metadata().Field("rev", &rev)
	s.Require().NoError(err)
	s.True(ok)
	s.Equal("015f", rev)
}

func (s *fileTest) TestImmutable() {
	src := []byte("abc")
	f := clouddrop.NewFile(src, clouddrop.Metadata{Name: "a"})
	src[0] = 'x'
	s.Equal([]byte("abc"), f.Contents())

	out := f.Contents()
	out[0] = 'y'
	s.Equal([]byte("abc"), f.Contents())

	md := f.Metadata()
	md.Name = "changed"
	s.Equal("a", f.Name())
}

func (s *fileTest) TestReaderAndWriteTo() {
	f := s.newFile("hello world")

	b, err := io.ReadAll(f.Reader())
	s.Require().NoError(err)
	s.Equal("hello world", string(b))

	var buf bytes.Buffer
	n, err := f.WriteTo(&buf)
	s.Require().NoError(err)
	s.Equal(int64(11), n)
	s.Equal("hello world", buf.String())
}

func (s *fileTest) TestTo() {
	f := s.newFile("hello world")
	path := filepath.Join(s.T().TempDir(), "out.txt")

	n, err := f.To(path)
	s.Require().NoError(err)
	s.Equal(11, n)

	got, err := os.ReadFile(path) //nolint:gosec // Test file path is controlled
	s.Require().NoError(err)
	s.Equal("hello world", string(got))

	// overwrite in place
	n, err = clouddrop.NewFile([]byte("bye"), clouddrop.Metadata{}).To(path)
	s.Require().NoError(err)
	s.Equal(3, n)
	got, err = os.ReadFile(path) //nolint:gosec // Test file path is controlled
	s.Require().NoError(err)
	s.Equal("bye", string(got))
}

func (s *fileTest) TestToEmpty() {
	path := filepath.Join(s.T().TempDir(), "empty.txt")
	n, err := clouddrop.NewFile(nil, clouddrop.Metadata{}).To(path)
	s.Require().NoError(err)
	s.Zero(n)

	stat, err := os.Stat(path)
	s.Require().NoError(err)
	s.Zero(stat.Size())
}

func (s *fileTest) TestToMissingDirectory() {
	path := filepath.Join(s.T().TempDir(), "missing", "out.txt")

	n, err := s.newFile("hello world").To(path)
	s.Zero(n)

	var writeErr *clouddrop.WriteError
	s.Require().ErrorAs(err, &writeErr)
	s.Equal(path, writeErr.Path)
	s.ErrorIs(err, os.ErrNotExist)

	_, statErr := os.Stat(path)
	s.ErrorIs(statErr, os.ErrNotExist)
}

func TestFile(t *testing.T) {
	suite.Run(t, new(fileTest))
}
