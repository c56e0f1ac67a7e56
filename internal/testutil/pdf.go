// Package testutil builds PDF fixtures and fakes shared by package tests.
package testutil

import (
	"bytes"
	"testing"

	"github.com/go-pdf/fpdf"
)

// PDFWithText builds a PDF with one page per entry in pages, each page
// carrying its entry as visible text.
func PDFWithText(t *testing.T, pages ...string) []byte {
	t.Helper()

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Helvetica", "", 14)
	for _, text := range pages {
		pdf.AddPage()
		pdf.Cell(40, 10, text)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		t.Fatalf("failed to build fixture PDF: %v", err)
	}
	return buf.Bytes()
}

// BlankPDF builds a single empty page with no text and no images.
func BlankPDF(t *testing.T) []byte {
	t.Helper()

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		t.Fatalf("failed to build blank fixture PDF: %v", err)
	}
	return buf.Bytes()
}

// WatermarkPDF builds a one-page PDF suitable as a watermark source.
func WatermarkPDF(t *testing.T) []byte {
	t.Helper()
	return PDFWithText(t, "CONFIDENTIAL")
}
