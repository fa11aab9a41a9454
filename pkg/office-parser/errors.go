package officeparser

import (
	"errors"
	"fmt"
)

// ErrImproperInput is returned when a byte buffer does not match any
// recognized document type.
var ErrImproperInput = errors.New("officeparser: buffer content type not recognized")

// CorruptedError reports a document that could not be read: the archive was
// unreadable, a required entry was missing, or its markup failed to parse.
type CorruptedError struct {
	Path string
	Err  error
}

func (e *CorruptedError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("officeparser: file %s seems to be corrupted: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("officeparser: file %s seems to be corrupted", e.Path)
}

func (e *CorruptedError) Unwrap() error { return e.Err }

// UnsupportedExtensionError reports an extension outside the supported set
// (docx, pptx, xlsx, odt, odp, ods, pdf).
type UnsupportedExtensionError struct {
	Extension string
}

func (e *UnsupportedExtensionError) Error() string {
	return fmt.Sprintf("officeparser: unsupported extension %q (supported: docx, pptx, xlsx, odt, odp, ods, pdf)", e.Extension)
}

// NotFoundError reports an input path that does not exist.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("officeparser: file %s could not be found", e.Path)
}

// corrupted wraps any internal selection or parsing failure so callers only
// ever see the document-level error.
func corrupted(path string, err error) error {
	var ce *CorruptedError
	if errors.As(err, &ce) {
		return err
	}
	return &CorruptedError{Path: path, Err: err}
}
