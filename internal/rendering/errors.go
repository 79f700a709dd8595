// Package rendering converts HTML documents to PDF files through a headless
// Chrome backend.
package rendering

import "fmt"

// RenderError represents a failure in the PDF rendering backend
type RenderError struct {
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("render error: %s", e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}
