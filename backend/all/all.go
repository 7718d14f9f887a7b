// Package all wires every clouddrop provider into a registry.
package all

import (
	"github.com/phlak/clouddrop/backend"
	"github.com/phlak/clouddrop/backend/dropbox"
)

// NewRegistry returns a registry with every built-in provider registered.
func NewRegistry() *backend.Registry {
	r := backend.NewRegistry()
	r.Register(dropbox.Name, dropbox.Factory)
	return r
}
