package extractor

import "fmt"

// NotFoundError indicates the input path does not exist.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("file not found: %s", e.Path)
}

// InvalidFormatError indicates the input path does not name a PDF file.
type InvalidFormatError struct {
	Path string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("not a PDF file: %s", e.Path)
}

// ParseError wraps any failure while reading or extracting a PDF.
// It covers corrupt files, unsupported structures, and library errors.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
