package clouddrop

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/phlak/clouddrop/options"
)

// Provider is the capability set every storage backend implements. Implementations keep their own
// path conventions and upload limits; callers only see normalized Metadata and File values.
type Provider interface {
	// Name returns the registry name of the provider, ie: dropbox
	Name() string

	// Upload sends the local file at localPath to the provider. An empty destination defaults to the
	// base name of localPath. Returns the metadata of the stored remote file.
	Upload(ctx context.Context, localPath, destination string) (*Metadata, error)

	// Download retrieves the remote file at path into memory.
	Download(ctx context.Context, path string) (*File, error)

	// Info returns the metadata of the remote entry at path.
	Info(ctx context.Context, path string, opts ...options.InfoOption) (*Metadata, error)

	// Exists reports whether path exists remotely. Only a not-found result maps to false; every
	// other failure is returned.
	Exists(ctx context.Context, path string) (bool, error)

	// Delete removes the remote entry at path and returns its metadata.
	Delete(ctx context.Context, path string) (*Metadata, error)

	// List returns every entry under path, across all result pages, in the order the provider
	// delivered them. The result is never nil.
	List(ctx context.Context, path string, opts ...options.ListOption) ([]*Metadata, error)
}

// Config is the credential configuration handed to a provider factory. Registries pass it through
// unchanged.
type Config struct {
	// AccessToken is a pre-obtained OAuth2 bearer token.
	AccessToken string

	// HTTPClient replaces the default *http.Client used for transport.
	HTTPClient *http.Client

	// Logger receives provider logs. Defaults to a no-op logger.
	Logger *zap.Logger
}
