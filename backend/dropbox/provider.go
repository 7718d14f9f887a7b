package dropbox

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/dropbox/dropbox-sdk-go-unofficial/v6/dropbox/files"
	"go.uber.org/zap"

	"github.com/phlak/clouddrop"
	"github.com/phlak/clouddrop/options"
	"github.com/phlak/clouddrop/options/info"
	"github.com/phlak/clouddrop/options/list"
	"github.com/phlak/clouddrop/utils"
)

// Name is the registry name of the dropbox provider.
const Name = "dropbox"

const idPrefix = "id:"

var errAccessTokenRequired = errors.New("dropbox: an access token is required")

// Provider implements clouddrop.Provider for Dropbox.
type Provider struct {
	mu      sync.Mutex
	client  Client
	options Options
}

// NewProvider initializer returns a Provider configured by opts.
func NewProvider(opts ...options.NewProviderOption[Provider]) *Provider {
	p := &Provider{
		options: NewOptions(),
	}
	options.ApplyOptions(p, opts...)
	return p
}

// Factory builds a Provider from cfg. It is the registry factory for Name.
func Factory(cfg clouddrop.Config) (clouddrop.Provider, error) {
	if cfg.AccessToken == "" {
		return nil, errAccessTokenRequired
	}
	opts := []options.NewProviderOption[Provider]{WithAccessToken(cfg.AccessToken)}
	if cfg.HTTPClient != nil {
		opts = append(opts, WithHTTPClient(cfg.HTTPClient))
	}
	if cfg.Logger != nil {
		opts = append(opts, WithLogger(cfg.Logger))
	}
	return NewProvider(opts...), nil
}

// Name returns "dropbox"
func (p *Provider) Name() string {
	return Name
}

// Client returns the underlying Dropbox client, creating it if necessary.
func (p *Provider) Client() (Client, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.client == nil {
		if p.options.AccessToken == "" {
			return nil, errAccessTokenRequired
		}
		p.client = newHTTPClient(p.options)
	}
	return p.client, nil
}

// Download retrieves the file at path into memory.
func (p *Provider) Download(ctx context.Context, path string) (*clouddrop.File, error) {
	client, err := p.Client()
	if err != nil {
		return nil, utils.WrapDownloadError(err)
	}

	md, contents, err := client.Download(ctx, files.NewDownloadArg(normalizePath(path)))
	if err != nil {
		return nil, utils.WrapDownloadError(err)
	}
	if md == nil {
		md = &clouddrop.Metadata{}
	}
	p.options.Metrics.AddDownloaded(Name, int64(len(contents)))

	return clouddrop.NewFile(contents, *md), nil
}

// Info returns the metadata of the entry at path. Deleted entries are reported only with
// info.WithDeleted.
func (p *Provider) Info(ctx context.Context, path string, opts ...options.InfoOption) (*clouddrop.Metadata, error) {
	client, err := p.Client()
	if err != nil {
		return nil, utils.WrapInfoError(err)
	}

	arg := files.NewGetMetadataArg(normalizePath(path))
	arg.IncludeMediaInfo = false
	for _, o := range opts {
		if _, ok := o.(info.Deleted); ok {
			arg.IncludeDeleted = true
		}
	}

	md, err := client.GetMetadata(ctx, arg)
	if err != nil {
		return nil, utils.WrapInfoError(err)
	}
	return md, nil
}

// Exists reports whether path exists. A not-found response is false; any other failure is returned.
func (p *Provider) Exists(ctx context.Context, path string) (bool, error) {
	_, err := p.Info(ctx, path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, clouddrop.ErrNotFound):
		return false, nil
	default:
		return false, utils.WrapExistsError(err)
	}
}

// Delete removes the entry at path and returns its metadata.
func (p *Provider) Delete(ctx context.Context, path string) (*clouddrop.Metadata, error) {
	client, err := p.Client()
	if err != nil {
		return nil, utils.WrapDeleteError(err)
	}

	md, err := client.DeleteV2(ctx, files.NewDeleteArg(normalizePath(path)))
	if err != nil {
		return nil, utils.WrapDeleteError(err)
	}

	p.options.logger().Info("deleted dropbox entry", zap.String("path", md.PathDisplay))
	return md, nil
}

// List returns every entry under path, following list_folder/continue until the result set is
// exhausted. Entries keep the order of the pages they arrived in.
func (p *Provider) List(ctx context.Context, path string, opts ...options.ListOption) ([]*clouddrop.Metadata, error) {
	client, err := p.Client()
	if err != nil {
		return nil, utils.WrapListError(err)
	}

	arg := files.NewListFolderArg(normalizePath(path))
	arg.IncludeMediaInfo = false
	for _, o := range opts {
		switch o.(type) {
		case list.Recursive:
			arg.Recursive = true
		case list.Deleted:
			arg.IncludeDeleted = true
		}
	}

	entries, cursor, hasMore, err := client.ListFolder(ctx, arg)
	if err != nil {
		return nil, utils.WrapListError(err)
	}

	all := make([]*clouddrop.Metadata, 0, len(entries))
	all = append(all, entries...)

	for hasMore {
		var page []*clouddrop.Metadata
		page, cursor, hasMore, err = client.ListFolderContinue(ctx, files.NewListFolderContinueArg(cursor))
		if err != nil {
			return nil, utils.WrapListError(err)
		}
		all = append(all, page...)
	}

	return all, nil
}

// normalizePath converts a path to the form Dropbox expects. The root ("") and id references pass
// through; anything else gets exactly one leading slash.
func normalizePath(path string) string {
	if path == "" || strings.HasPrefix(path, idPrefix) {
		return path
	}
	return utils.EnsureLeadingSlash(path)
}
