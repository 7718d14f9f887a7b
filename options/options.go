// Package options defines the option interfaces shared by every provider. Concrete operation
// options live in the sub-packages info and list.
package options

// NewProviderOption is an option applied to a provider of type T at construction time.
// Example:
// ```
//
//	type tempDirOpt struct{ dir string }
//	func (o *tempDirOpt) Apply(p *Provider) { p.options.TempDir = o.dir }
//	func (o *tempDirOpt) NewProviderOptionName() string { return "tempDir" }
//
// ```
type NewProviderOption[T any] interface {
	Apply(*T)
	NewProviderOptionName() string
}

// ApplyOptions applies opts to t in order. Nil options are skipped.
func ApplyOptions[T any](t *T, opts ...NewProviderOption[T]) {
	for _, o := range opts {
		if o != nil {
			o.Apply(t)
		}
	}
}

// InfoOption is implemented by options accepted by Provider.Info.
type InfoOption interface {
	InfoOptionName() string
}

// ListOption is implemented by options accepted by Provider.List.
type ListOption interface {
	ListOptionName() string
}
