// Package extractor pulls embedded text out of PDF files, page by page.
package extractor

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	pdflib "github.com/ledongthuc/pdf"
)

// Result holds the outcome of a successful extraction.
type Result struct {
	Text  string // concatenated page text, trimmed of surrounding whitespace
	Pages int    // number of pages in the document
}

// ValidateInput checks that path exists and carries a .pdf extension
// (case-insensitive). The extension check never opens the file.
func ValidateInput(path string) error {
	if _, err := os.Stat(path); err != nil {
		return &NotFoundError{Path: path}
	}
	if !strings.EqualFold(filepath.Ext(path), ".pdf") {
		return &InvalidFormatError{Path: path}
	}
	return nil
}

// ExtractFile validates path and extracts the text of every page in
// document order, each page followed by a newline. Failures are reported
// as *NotFoundError, *InvalidFormatError, or *ParseError.
func ExtractFile(path string) (Result, error) {
	if err := ValidateInput(path); err != nil {
		return Result{}, err
	}
	return extract(path)
}

func extract(path string) (res Result, err error) {
	// ledongthuc/pdf panics on some malformed files, so treat a panic
	// like any other parse failure.
	defer func() {
		if r := recover(); r != nil {
			err = &ParseError{Path: path, Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	f, reader, err := pdflib.Open(path)
	if err != nil {
		return Result{}, &ParseError{Path: path, Err: err}
	}
	defer f.Close()

	var buf strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// No partial output: one bad page fails the document.
			return Result{}, &ParseError{Path: path, Err: fmt.Errorf("page %d: %w", i, err)}
		}
		buf.WriteString(text)
		buf.WriteString("\n")
	}

	return Result{
		Text:  strings.TrimSpace(buf.String()),
		Pages: numPages,
	}, nil
}
