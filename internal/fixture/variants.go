package fixture

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Variant names one of the fixture documents.
type Variant string

const (
	// Simple is a single-page document with a title and plain body lines.
	Simple Variant = "simple"
	// Valid is a two-page document for multi-page extraction runs.
	Valid Variant = "valid"
	// Comprehensive is a sectioned multi-page document with headings and
	// numbered paragraphs.
	Comprehensive Variant = "comprehensive"
)

// Variants lists every fixture in generation order.
var Variants = []Variant{Simple, Valid, Comprehensive}

// GeneratedFile describes one written fixture.
type GeneratedFile struct {
	Path  string
	Pages int
}

// Filename returns the fixed output filename for v.
func Filename(v Variant) string {
	switch v {
	case Simple:
		return "test-simple.pdf"
	case Valid:
		return "valid-test.pdf"
	case Comprehensive:
		return "comprehensive-test.pdf"
	}
	return ""
}

// Generate writes the fixture for v into dir, overwriting any previous
// file. With validate set, the written file must pass pdfcpu validation
// and report the expected page count.
func Generate(dir string, v Variant, validate bool) (GeneratedFile, error) {
	pages := pagesFor(v)
	if pages == nil {
		return GeneratedFile{}, fmt.Errorf("unknown fixture variant: %s", v)
	}

	path := filepath.Join(dir, Filename(v))
	if err := os.WriteFile(path, Build(pages), 0644); err != nil {
		return GeneratedFile{}, fmt.Errorf("write fixture: %w", err)
	}

	if validate {
		conf := model.NewDefaultConfiguration()
		if err := api.ValidateFile(path, conf); err != nil {
			return GeneratedFile{}, fmt.Errorf("validate %s: %w", path, err)
		}
		n, err := api.PageCountFile(path)
		if err != nil {
			return GeneratedFile{}, fmt.Errorf("page count %s: %w", path, err)
		}
		if n != len(pages) {
			return GeneratedFile{}, fmt.Errorf("%s: expected %d pages, pdfcpu reports %d", path, len(pages), n)
		}
	}

	return GeneratedFile{Path: path, Pages: len(pages)}, nil
}

func pagesFor(v Variant) []Page {
	switch v {
	case Simple:
		return simplePages()
	case Valid:
		return validPages()
	case Comprehensive:
		return comprehensivePages()
	}
	return nil
}

func simplePages() []Page {
	return []Page{{Lines: []TextLine{
		{Text: "Test Document", Size: 16},
		{Text: "This is a simple test PDF for processing."},
		{Text: "It contains basic text content that should be"},
		{Text: "easily extractable by the PDF processor."},
		{Text: "Line 1: This is test content for PDF processing."},
		{Text: "Line 2: The PDF processor should extract this text."},
		{Text: "Line 3: This helps verify the system is working correctly."},
		{Text: "Line 4: No encryption or special formatting here."},
		{Text: "Line 5: Just plain text for testing purposes."},
	}}}
}

func validPages() []Page {
	return []Page{
		{Lines: []TextLine{
			{Text: "Test Document - Page 1"},
			{Text: "This is a sample document with readable text."},
			{Text: "The processor should extract this content"},
			{Text: "and write it as clean plain-text output."},
		}},
		{Lines: []TextLine{
			{Text: "Test Document - Page 2"},
			{Text: "Additional content for testing multi-page processing."},
			{Text: "This content should be extracted and processed"},
			{Text: "through the document processing pipeline."},
		}},
	}
}

func comprehensivePages() []Page {
	return []Page{
		{Lines: []TextLine{
			{Text: "Comprehensive PDF Processing Test", Size: 18},
			{Text: "Introduction", Size: 14},
			{Text: "This document tests the PDF processing system including"},
			{Text: "text extraction and plain-text output."},
			{Text: "Sample Content", Size: 14},
			{Text: "This is paragraph 1 with substantial content that should be properly extracted."},
			{Text: "This is paragraph 2 demonstrating multiple paragraphs with consistent formatting."},
			{Text: "This is paragraph 3 showing how longer blocks of text are captured."},
		}},
		{Lines: []TextLine{
			{Text: "This is paragraph 4 continuing the sample content on a second page."},
			{Text: "This is paragraph 5 closing out the sample content section."},
			{Text: "Technical Processing Notes", Size: 14},
			{Text: "The extractor reads embedded text directly from each page's"},
			{Text: "content stream, in document order."},
		}},
	}
}
