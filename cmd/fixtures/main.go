package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/dgallion1/pdfextract/internal/config"
	"github.com/dgallion1/pdfextract/internal/fixture"
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg := config.Load()

	variants := fixture.Variants
	if len(os.Args) > 1 {
		if len(os.Args) > 2 {
			fmt.Println("Usage: fixtures [simple|valid|comprehensive]")
			os.Exit(1)
		}
		v := fixture.Variant(os.Args[1])
		if fixture.Filename(v) == "" {
			log.Error("unknown fixture variant", "variant", os.Args[1], "known", fixture.Variants)
			os.Exit(1)
		}
		variants = []fixture.Variant{v}
	}

	dir := cfg.OutputDir
	if dir == "" {
		dir = "."
	}

	for _, v := range variants {
		log.Info("generating fixture", "variant", v, "validate", cfg.ValidateFixtures)
		gf, err := fixture.Generate(dir, v, cfg.ValidateFixtures)
		if err != nil {
			log.Error("fixture generation failed", "variant", v, "error", err)
			os.Exit(1)
		}
		fmt.Printf("Created %s (%d pages)\n", gf.Path, gf.Pages)
	}
}
