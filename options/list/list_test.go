package list_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phlak/clouddrop/options/list"
)

func TestWithRecursive(t *testing.T) {
	opt := list.WithRecursive()

	r, ok := opt.(list.Recursive)
	require.Truef(t, ok, "expected `list.Recursive`, got %T", opt)
	assert.Equal(t, "listRecursive", r.ListOptionName())
}

func TestWithDeleted(t *testing.T) {
	opt := list.WithDeleted()

	d, ok := opt.(list.Deleted)
	require.Truef(t, ok, "expected `list.Deleted`, got %T", opt)
	assert.Equal(t, "listIncludeDeleted", d.ListOptionName())
}
