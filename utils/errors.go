package utils

import "fmt"

func wrap(prefix string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", prefix, err)
}

// WrapUploadError returns a wrapped upload error
func WrapUploadError(err error) error {
	return wrap("upload error", err)
}

// WrapDownloadError returns a wrapped download error
func WrapDownloadError(err error) error {
	return wrap("download error", err)
}

// WrapInfoError returns a wrapped info error
func WrapInfoError(err error) error {
	return wrap("info error", err)
}

// WrapExistsError returns a wrapped exists error
func WrapExistsError(err error) error {
	return wrap("exists error", err)
}

// WrapDeleteError returns a wrapped delete error
func WrapDeleteError(err error) error {
	return wrap("delete error", err)
}

// WrapListError returns a wrapped list error
func WrapListError(err error) error {
	return wrap("list error", err)
}
