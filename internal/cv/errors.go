package cv

import (
	"errors"
	"fmt"
)

var (
	// ErrDocumentUnavailable means there was no document to parse at all.
	ErrDocumentUnavailable = errors.New("resume document unavailable")
	// ErrNoText means the document was read but produced no text.
	ErrNoText = errors.New("no text could be extracted from resume")
	// ErrUnsupportedType is returned for anything other than PDF or DOCX.
	ErrUnsupportedType = errors.New("unsupported resume file type")
)

// ExtractionError wraps a decoder failure for one document format.
type ExtractionError struct {
	Format  DocumentType
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s extraction: %s: %v", e.Format, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s extraction: %s", e.Format, e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

// OCRError reports a failure in the external OCR toolchain.
type OCRError struct {
	Step  string
	Cause error
}

func (e *OCRError) Error() string {
	return fmt.Sprintf("ocr %s: %v", e.Step, e.Cause)
}

func (e *OCRError) Unwrap() error {
	return e.Cause
}
