package clouddrop_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/phlak/clouddrop"
)

type errorsTest struct {
	suite.Suite
}

func (s *errorsTest) TestUnknownProvider() {
	err := error(&clouddrop.UnknownProviderError{Name: "box"})
	s.ErrorIs(err, clouddrop.ErrUnknownProvider)
	s.EqualError(err, `unknown provider: "box"`)
}

func (s *errorsTest) TestFileNotFound() {
	err := error(&clouddrop.FileNotFoundError{Path: "/a.txt", Summary: "path/not_found/.."})
	s.ErrorIs(err, clouddrop.ErrNotFound)
	s.EqualError(err, "file not found: /a.txt (path/not_found/..)")

	s.EqualError(&clouddrop.FileNotFoundError{Path: "/b"}, "file not found: /b")
}

func (s *errorsTest) TestRemoteAPIError() {
	err := &clouddrop.RemoteAPIError{Route: "files/upload", StatusCode: 400, Body: []byte(" bad request\n")}
	s.EqualError(err, "remote api error: files/upload returned status 400: bad request")
	s.NotErrorIs(err, clouddrop.ErrNotFound)

	err.Summary = "too_large/"
	s.EqualError(err, "remote api error: files/upload returned status 400: too_large/")
}

func (s *errorsTest) TestWrappedCauses() {
	cause := errors.New("connection reset")

	transport := &clouddrop.TransportError{Route: "files/download", Err: cause}
	s.ErrorIs(transport, cause)
	s.EqualError(transport, "transport error: files/download: connection reset")

	write := &clouddrop.WriteError{Path: "/tmp/x", Err: cause}
	s.ErrorIs(write, cause)

	cancelled := &clouddrop.CancelledError{Route: "files/download", Err: context.Canceled}
	s.ErrorIs(cancelled, clouddrop.ErrCancelled)
	s.ErrorIs(cancelled, context.Canceled)
	s.NotErrorIs(cancelled, clouddrop.ErrTimeout)

	timeout := &clouddrop.TimeoutError{Route: "files/download", Err: context.DeadlineExceeded}
	s.ErrorIs(timeout, clouddrop.ErrTimeout)
	s.ErrorIs(timeout, context.DeadlineExceeded)
	s.NotErrorIs(timeout, clouddrop.ErrCancelled)
}

func TestErrors(t *testing.T) {
	suite.Run(t, new(errorsTest))
}
