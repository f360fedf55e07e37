package config

import (
	"os"
	"strconv"
)

type Config struct {
	// OutputDir relocates output files. Empty means "next to the input"
	// for the extractor and the current directory for fixtures.
	OutputDir string

	// PreviewChars is the preview cutoff in runes.
	PreviewChars int

	// ValidateFixtures runs pdfcpu validation on generated fixtures.
	ValidateFixtures bool
}

func Load() Config {
	cfg := Config{
		OutputDir:        os.Getenv("PDFEXTRACT_OUTPUT_DIR"),
		PreviewChars:     envInt("PDFEXTRACT_PREVIEW_CHARS", 200),
		ValidateFixtures: envBool("PDFEXTRACT_VALIDATE_FIXTURES", true),
	}

	if cfg.PreviewChars <= 0 {
		cfg.PreviewChars = 200
	}

	return cfg
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
