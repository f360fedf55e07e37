package fixture

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestBuild_Structure(t *testing.T) {
	data := Build([]Page{
		{Lines: []TextLine{{Text: "page one"}}},
		{Lines: []TextLine{{Text: "page two"}}},
	})

	if !bytes.HasPrefix(data, []byte("%PDF-1.4\n")) {
		t.Errorf("expected PDF header, got %q", data[:16])
	}
	if !bytes.HasSuffix(data, []byte("%%EOF\n")) {
		t.Errorf("expected EOF marker at end of file")
	}
	if !bytes.Contains(data, []byte("/Count 2")) {
		t.Errorf("expected two-page page tree")
	}
	if !bytes.Contains(data, []byte("(page one) Tj")) {
		t.Errorf("expected first page text draw")
	}
	if !bytes.Contains(data, []byte("(page two) Tj")) {
		t.Errorf("expected second page text draw")
	}
}

func TestBuild_XrefOffsetsMatchObjects(t *testing.T) {
	data := Build([]Page{{Lines: []TextLine{{Text: "offsets"}}}})

	// Every xref entry must point at the "N 0 obj" line it claims.
	idx := bytes.LastIndex(data, []byte("\nxref\n"))
	if idx < 0 {
		t.Fatalf("no xref table found")
	}
	idx++ // skip the leading newline so the slice starts at "xref"
	lines := strings.Split(string(data[idx:]), "\n")
	objNum := 0
	for _, line := range lines[2:] { // skip "xref" and the subsection header
		if !strings.HasSuffix(line, " n ") && !strings.HasSuffix(line, " n") {
			if strings.HasSuffix(line, " f ") || strings.HasSuffix(line, " f") {
				objNum++
				continue
			}
			break
		}
		var off int
		if _, err := fmt.Sscanf(line, "%10d", &off); err != nil {
			t.Fatalf("bad xref entry %q: %v", line, err)
		}
		want := fmt.Sprintf("%d 0 obj", objNum)
		if !bytes.HasPrefix(data[off:], []byte(want)) {
			t.Errorf("xref entry for object %d points at %q", objNum, data[off:off+12])
		}
		objNum++
	}
	if objNum < 6 {
		t.Fatalf("expected at least 6 xref entries, got %d", objNum)
	}
}

func TestEscapeString(t *testing.T) {
	got := escapeString(`a (b) c\d`)
	want := `a \(b\) c\\d`
	if got != want {
		t.Errorf("escapeString = %q, want %q", got, want)
	}
}

func TestFilename(t *testing.T) {
	cases := map[Variant]string{
		Simple:        "test-simple.pdf",
		Valid:         "valid-test.pdf",
		Comprehensive: "comprehensive-test.pdf",
	}
	for v, want := range cases {
		if got := Filename(v); got != want {
			t.Errorf("Filename(%s) = %q, want %q", v, got, want)
		}
	}
	if got := Filename(Variant("bogus")); got != "" {
		t.Errorf("expected empty filename for unknown variant, got %q", got)
	}
}

func TestGenerate_UnknownVariant(t *testing.T) {
	_, err := Generate(t.TempDir(), Variant("bogus"), false)
	if err == nil {
		t.Fatalf("expected error for unknown variant")
	}
}

func TestGenerate_WritesAllVariants(t *testing.T) {
	dir := t.TempDir()

	wantPages := map[Variant]int{
		Simple:        1,
		Valid:         2,
		Comprehensive: 2,
	}

	for _, v := range Variants {
		gf, err := Generate(dir, v, false)
		if err != nil {
			t.Fatalf("generate %s: %v", v, err)
		}
		if gf.Path != filepath.Join(dir, Filename(v)) {
			t.Errorf("%s: unexpected path %q", v, gf.Path)
		}
		if gf.Pages != wantPages[v] {
			t.Errorf("%s: expected %d pages, got %d", v, wantPages[v], gf.Pages)
		}
		if _, err := os.Stat(gf.Path); err != nil {
			t.Errorf("%s: fixture file missing: %v", v, err)
		}
	}
}

func TestGenerate_ValidatedByPdfcpu(t *testing.T) {
	dir := t.TempDir()

	for _, v := range Variants {
		if _, err := Generate(dir, v, true); err != nil {
			t.Errorf("generate %s with validation: %v", v, err)
		}
	}
}

func TestGenerate_Overwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, Filename(Simple))
	if err := os.WriteFile(path, []byte("stale"), 0644); err != nil {
		t.Fatalf("seed stale file: %v", err)
	}

	if _, err := Generate(dir, Simple, false); err != nil {
		t.Fatalf("generate: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Errorf("expected fixture to overwrite stale file")
	}
}
