// Package list consists of options for Provider.List.
//
// Usage
//
//	entries, err := provider.List(ctx, "/photos", list.WithRecursive(), list.WithDeleted())
package list

import "github.com/phlak/clouddrop/options"

const (
	optionNameListRecursive = "listRecursive"
	optionNameListDeleted   = "listIncludeDeleted"
)

// WithRecursive returns Recursive implementation of ListOption
func WithRecursive() options.ListOption {
	return Recursive{}
}

// Recursive represents the ListOption that descends into every sub folder.
type Recursive struct{}

// ListOptionName returns the name of Recursive option
func (r Recursive) ListOptionName() string {
	return optionNameListRecursive
}

// WithDeleted returns Deleted implementation of ListOption
func WithDeleted() options.ListOption {
	return Deleted{}
}

// Deleted represents the ListOption that includes deleted entries in the result.
type Deleted struct{}

// ListOptionName returns the name of Deleted option
func (d Deleted) ListOptionName() string {
	return optionNameListDeleted
}
