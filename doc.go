/*
Package clouddrop provides a uniform client for remote file storage providers such as Dropbox.

# Philosophy

Applications that push files to a cloud drive tend to grow provider switches and ad hoc HTTP code. clouddrop
puts a small capability set behind one interface so code can upload, download, inspect and list remote files
without caring which provider holds them:

  - a Provider interface with Upload, Download, Info, Exists, Delete and List
  - a Metadata record that keeps the provider's full response alongside the common fields
  - an immutable, in-memory File value that can be written to disk atomically
  - a registry that maps provider names to factories so providers can be picked by configuration
  - context-aware operations and typed errors that work with errors.Is and errors.As

# Usage

Build a provider through the registry:

	registry := all.NewRegistry()
	provider, err := registry.Init("dropbox", clouddrop.Config{
		AccessToken: os.Getenv("DROPBOX_TOKEN"),
		Logger:      logger,
	})
	if err != nil {
		return err
	}

Or construct one directly with provider-specific options (see backend/dropbox).

With a provider you can then:

	md, err := provider.Upload(ctx, "/tmp/report.pdf", "reports/2024/report.pdf")

	exists, err := provider.Exists(ctx, "reports/2024/report.pdf") // true, nil

	entries, err := provider.List(ctx, "reports", list.WithRecursive())

	file, err := provider.Download(ctx, "reports/2024/report.pdf")
	n, err := file.To("/tmp/copy.pdf")

	md, err = provider.Delete(ctx, "reports/2024/report.pdf")

# Errors

Not-found responses are *FileNotFoundError and match ErrNotFound. Other provider failures are *RemoteAPIError.
Requests that never got a response are *CancelledError (ErrCancelled), *TimeoutError (ErrTimeout) or
*TransportError. Exists is the only operation that turns an error into a result: not-found means false.

# Third-party Providers

A provider implements Provider and registers a Factory:

	registry.Register("myprovider", func(cfg clouddrop.Config) (clouddrop.Provider, error) {
		return myprovider.New(cfg.AccessToken), nil
	})

mocks.Provider is a testify mock of Provider for code that consumes one.
*/
package clouddrop
