/*
Package dropbox is the Dropbox provider for clouddrop.

# Usage

Rely on github.com/phlak/clouddrop/backend/all:

	import (
		"github.com/phlak/clouddrop"
		"github.com/phlak/clouddrop/backend/all"
	)

	func UseProvider() error {
		p, err := all.NewRegistry().Init("dropbox", clouddrop.Config{AccessToken: token})
		...
	}

Or call directly:

	import "github.com/phlak/clouddrop/backend/dropbox"

	func DoSomething() {
		p := dropbox.NewProvider(
			dropbox.WithAccessToken(token),
			dropbox.WithLogger(logger),
			dropbox.WithRateLimiter(rate.NewLimiter(rate.Limit(10), 1)),
		)
		...
	}

# Authentication

The provider sends a pre-obtained OAuth2 access token as a bearer token. Obtaining and refreshing
tokens is left to the caller.

# Paths

Paths are normalized before they are sent: the root ("") and "id:" references pass through, and
anything else gets exactly one leading slash, so "docs/a.txt", "/docs/a.txt" and "//docs/a.txt" all
address "/docs/a.txt".

# Uploads

Files up to 150,000,000 bytes are sent in one files/upload request. Larger files go through an
upload session: start, then sequential appends of 150,000,000 byte windows, then finish. When the
file size is an exact multiple of the window, the session ends with a zero-length append at the final
offset. WithChunkSize lowers both limits together. Uploads never overwrite: name conflicts on a
simple upload are auto-renamed, and a session commit fails instead.

# Errors

A 409 response whose error_summary mentions not_found is returned as *clouddrop.FileNotFoundError.
Any other non-2xx response is a *clouddrop.RemoteAPIError. Requests that never got a response are a
*clouddrop.CancelledError, *clouddrop.TimeoutError or *clouddrop.TransportError depending on the
cause.

# Testing

WithClient accepts any Client. mocks.Client is a testify mock of it:

	client := mocks.NewClient(t)
	client.EXPECT().GetMetadata(mock.Anything, mock.Anything).Return(&clouddrop.Metadata{Name: "a"}, nil)
	p := dropbox.NewProvider(dropbox.WithClient(client))

See: https://www.dropbox.com/developers/documentation/http/documentation
*/
package dropbox
