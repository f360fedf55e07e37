// Package fixture generates small text-only PDF files used to exercise
// the extractor by hand.
package fixture

import (
	"bytes"
	"fmt"
	"strings"
)

// TextLine is a single text draw on a fixture page.
type TextLine struct {
	Text string
	Size float64 // font size in points, 12 when zero
}

// Page holds the lines drawn on one page, top to bottom.
type Page struct {
	Lines []TextLine
}

const (
	pageWidth  = 612 // US letter, points
	pageHeight = 792

	marginX    = 72
	topY       = 720
	lineHeight = 24
)

// Build assembles a minimal PDF document: one Helvetica font, one content
// stream per page, uncompressed, with a computed xref table. Pages appear
// in the output in the order given.
func Build(pages []Page) []byte {
	var buf bytes.Buffer
	write := func(s string) { buf.WriteString(s) }

	write("%PDF-1.4\n")

	offsets := []int{0} // object 0 is the free head

	writeObj := func(body string) {
		offsets = append(offsets, buf.Len())
		write(fmt.Sprintf("%d 0 obj\n", len(offsets)-1))
		write(body)
		if !strings.HasSuffix(body, "\n") {
			write("\n")
		}
		write("endobj\n")
	}

	// Object numbering: 1 catalog, 2 page tree, then a page/content pair
	// per page, then the shared font object.
	fontNum := 3 + 2*len(pages)

	writeObj("<< /Type /Catalog /Pages 2 0 R >>")

	kids := make([]string, 0, len(pages))
	for i := range pages {
		kids = append(kids, fmt.Sprintf("%d 0 R", 3+2*i))
	}
	writeObj(fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>",
		strings.Join(kids, " "), len(pages)))

	for i, page := range pages {
		pageNum := 3 + 2*i
		contentNum := pageNum + 1
		writeObj(fmt.Sprintf(
			"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 %d %d] /Contents %d 0 R /Resources << /Font << /F1 %d 0 R >> >> >>",
			pageWidth, pageHeight, contentNum, fontNum))

		content := contentStream(page)
		writeObj(fmt.Sprintf("<< /Length %d >>\nstream\n%sendstream", len(content), content))
	}

	writeObj("<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>")

	xrefOffset := buf.Len()
	write("xref\n")
	write(fmt.Sprintf("0 %d\n", len(offsets)))
	write("0000000000 65535 f \n")
	for _, off := range offsets[1:] {
		write(fmt.Sprintf("%010d 00000 n \n", off))
	}

	write("trailer\n")
	write(fmt.Sprintf("<< /Size %d /Root 1 0 R >>\n", len(offsets)))
	write("startxref\n")
	write(fmt.Sprintf("%d\n", xrefOffset))
	write("%%EOF\n")

	return buf.Bytes()
}

func contentStream(page Page) string {
	var sb strings.Builder
	y := topY
	for _, line := range page.Lines {
		size := line.Size
		if size == 0 {
			size = 12
		}
		sb.WriteString(fmt.Sprintf("BT /F1 %g Tf %d %d Td (%s) Tj ET\n",
			size, marginX, y, escapeString(line.Text)))
		y -= lineHeight
	}
	return sb.String()
}

// escapeString escapes the characters with special meaning in PDF
// literal strings.
func escapeString(s string) string {
	r := strings.NewReplacer("\\", "\\\\", "(", "\\(", ")", "\\)")
	return r.Replace(s)
}
