// Package rendering turns a resume document into preview markup.
package rendering

import "fmt"

// TemplateError reports a template name that is not in the catalog. The
// server maps it to 400.
type TemplateError struct {
	Message string
	Cause   error
}

func (e *TemplateError) Error() string {
	if e.Cause == nil {
		return "template error: " + e.Message
	}
	return fmt.Sprintf("template error: %s: %v", e.Message, e.Cause)
}

func (e *TemplateError) Unwrap() error { return e.Cause }

// RenderError wraps a failure while serializing the preview tree.
type RenderError struct {
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause == nil {
		return "render error: " + e.Message
	}
	return fmt.Sprintf("render error: %s: %v", e.Message, e.Cause)
}

func (e *RenderError) Unwrap() error { return e.Cause }
