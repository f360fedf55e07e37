package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/dgallion1/pdfextract/internal/config"
	"github.com/dgallion1/pdfextract/internal/extractor"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

// run drives one extraction. All diagnostics go to out (stdout by
// contract, there is no separate error stream).
func run(args []string, out io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(out, "Usage: extract <pdf_file>")
		fmt.Fprintln(out, "Example: extract document.pdf")
		return 1
	}

	cfg := config.Load()
	pdfPath := args[0]

	if err := extractor.ValidateInput(pdfPath); err != nil {
		var notFound *extractor.NotFoundError
		if errors.As(err, &notFound) {
			fmt.Fprintf(out, "Error: File '%s' not found.\n", pdfPath)
		} else {
			fmt.Fprintln(out, "Error: File must be a PDF.")
		}
		return 1
	}

	fmt.Fprintf(out, "Extracting text from: %s\n", pdfPath)

	res, err := extractor.ExtractFile(pdfPath)
	if err != nil {
		fmt.Fprintf(out, "Error extracting text from PDF: %v\n", err)
		fmt.Fprintln(out, "Failed to extract text from PDF.")
		return 1
	}
	if res.Text == "" {
		fmt.Fprintln(out, "Failed to extract text from PDF.")
		return 1
	}

	outputPath := extractor.OutputPath(pdfPath, cfg.OutputDir)
	if err := extractor.WriteOutput(outputPath, res.Text); err != nil {
		fmt.Fprintf(out, "Error writing output file: %v\n", err)
		return 1
	}

	fmt.Fprintln(out, "Text extracted successfully!")
	fmt.Fprintf(out, "Output saved to: %s\n", outputPath)
	fmt.Fprintf(out, "Extracted %d characters\n", utf8.RuneCountInString(res.Text))

	separator := strings.Repeat("-", 50)
	fmt.Fprintln(out, "\nPreview:")
	fmt.Fprintln(out, separator)
	fmt.Fprintln(out, extractor.Preview(res.Text, cfg.PreviewChars))
	fmt.Fprintln(out, separator)

	return 0
}
