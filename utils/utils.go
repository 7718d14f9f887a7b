package utils

import "strings"

// RemoveLeadingSlash removes every leading slash, if any
func RemoveLeadingSlash(path string) string {
	return strings.TrimLeft(path, "/")
}

// EnsureLeadingSlash returns path with exactly one leading slash. Runs of leading slashes collapse
// to one.
func EnsureLeadingSlash(path string) string {
	return "/" + RemoveLeadingSlash(path)
}
