package extractor

import (
	"os"
	"path/filepath"
	"strings"
)

// OutputPath derives the text file path for a given input PDF path:
// the .pdf suffix (case-insensitive) is replaced by _extracted.txt.
// If dir is non-empty the result is relocated into dir.
func OutputPath(inputPath, dir string) string {
	base := inputPath
	ext := filepath.Ext(base)
	if strings.EqualFold(ext, ".pdf") {
		base = base[:len(base)-len(ext)]
	}
	out := base + "_extracted.txt"
	if dir != "" {
		out = filepath.Join(dir, filepath.Base(out))
	}
	return out
}

// WriteOutput writes text to path as UTF-8, overwriting any existing file.
func WriteOutput(path, text string) error {
	return os.WriteFile(path, []byte(text), 0644)
}

// Preview returns the first limit runes of text followed by "..." when
// text is longer than limit runes, otherwise text unchanged.
func Preview(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}
