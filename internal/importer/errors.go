package importer

import "errors"

// Common errors returned by style imports.
var (
	// ErrUnsupportedFormat indicates a CSL/XML style source, which is
	// recognized but not yet implemented.
	ErrUnsupportedFormat = errors.New("CSL style definitions are not yet implemented")

	// ErrFetchFailed indicates the style could not be retrieved from its URL.
	ErrFetchFailed = errors.New("style fetch failed")
)

// IsUnsupportedFormat returns true if the error indicates an unsupported
// style definition format.
func IsUnsupportedFormat(err error) bool {
	return errors.Is(err, ErrUnsupportedFormat)
}

// IsFetchFailed returns true if the error indicates a transport or HTTP
// failure while fetching a style.
func IsFetchFailed(err error) bool {
	return errors.Is(err, ErrFetchFailed)
}
