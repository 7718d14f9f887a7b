// Package info consists of options for Provider.Info.
package info

import "github.com/phlak/clouddrop/options"

const optionNameInfoDeleted = "infoIncludeDeleted"

// WithDeleted returns Deleted implementation of InfoOption
func WithDeleted() options.InfoOption {
	return Deleted{}
}

// Deleted represents the InfoOption that makes Info return metadata for deleted entries instead of
// reporting them as not found.
type Deleted struct{}

// InfoOptionName returns the name of Deleted option
func (d Deleted) InfoOptionName() string {
	return optionNameInfoDeleted
}
