package export

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// PDFExporter renders a titled text document into a printable A4 PDF.
type PDFExporter struct{}

// NewPDFExporter constructs a PDF exporter.
func NewPDFExporter() *PDFExporter {
	return &PDFExporter{}
}

var htmlTagPattern = regexp.MustCompile(`<[^>]+>`)

// RenderDocument creates a PDF with the given title and body. The body may
// contain editor HTML; tags are stripped and block elements become paragraph
// breaks.
func (e *PDFExporter) RenderDocument(title, body string) ([]byte, error) {
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("pdf requires a title")
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	translate := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Arial", "B", 16)
	pdf.MultiCell(0, 8, translate(title), "", "C", false)
	pdf.Ln(6)

	pdf.SetFont("Arial", "", 11)
	for _, paragraph := range splitParagraphs(body) {
		pdf.MultiCell(0, 6, translate(paragraph), "", "J", false)
		pdf.Ln(3)
	}

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func splitParagraphs(body string) []string {
	normalized := strings.NewReplacer(
		"</p>", "\n", "<br>", "\n", "<br/>", "\n", "<br />", "\n",
		"</div>", "\n", "</li>", "\n", "</h1>", "\n", "</h2>", "\n", "</h3>", "\n",
	).Replace(body)
	plain := htmlTagPattern.ReplaceAllString(normalized, "")

	var paragraphs []string
	for _, line := range strings.Split(plain, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" {
			paragraphs = append(paragraphs, trimmed)
		}
	}
	if len(paragraphs) == 0 {
		paragraphs = []string{""}
	}
	return paragraphs
}
