// Package document holds the in-memory resume document and the section editors that mutate it.
package document

import (
	"fmt"

	"github.com/jonathan/resume-builder/internal/types"
)

// UnknownSectionError is returned when an operation names a section that is not a list section.
type UnknownSectionError struct {
	Section types.Section
}

func (e *UnknownSectionError) Error() string {
	return fmt.Sprintf("unknown section: %q", string(e.Section))
}
