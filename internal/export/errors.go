// Package export converts the rendered preview into downloadable files.
package export

import "fmt"

// ExportError represents a failed export in a given format
type ExportError struct {
	Format Format
	Cause  error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export %s failed: %v", e.Format, e.Cause)
}

func (e *ExportError) Unwrap() error {
	return e.Cause
}

// UnsupportedFormatError is returned for formats the exporter does not know
type UnsupportedFormatError struct {
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported export format: %q", e.Format)
}
