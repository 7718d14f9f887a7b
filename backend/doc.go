/*
Package backend provides Registry, an explicit name-to-factory mapping used to construct provider
clients by name. There is no package-level registry: build one at startup and pass it to whatever
needs to resolve provider names.

	package main

	import (
	    "github.com/phlak/clouddrop"
	    "github.com/phlak/clouddrop/backend/all"
	)

	func main() {
	    registry := all.NewRegistry()

	    provider, err := registry.Init("dropbox", clouddrop.Config{AccessToken: token})
	    if err != nil {
	        panic(err)
	    }

	    entries, err := provider.List(ctx, "/photos")
	    ...
	}

Development

To add a provider, implement clouddrop.Provider in its own package and expose a Factory:

	package myprovider

	func Factory(cfg clouddrop.Config) (clouddrop.Provider, error) {
	    return NewProvider(WithAccessToken(cfg.AccessToken)), nil
	}

then register it:

	registry.Register("myprovider", myprovider.Factory)

Tests can register fake providers (see the mocks package) on a private registry without touching
any shared state.
*/
package backend
