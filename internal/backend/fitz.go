// Package backend contains one adapter per PDF engine, all presenting the
// capability contract defined in internal/domain. Read-only capabilities
// contain engine failures and degrade to empty results plus a diagnostic
// line; watermarking never degrades silently.
package backend

import (
	"context"
	"strings"

	"github.com/gen2brain/go-fitz"

	"pdf-backend-bench/internal/domain"
	"pdf-backend-bench/internal/normalize"
)

// Fitz extracts text in-process through MuPDF.
type Fitz struct {
	logger domain.Logger
}

// Compile-time interface assertion
var _ domain.TextExtractor = (*Fitz)(nil)

// NewFitz creates the MuPDF-backed adapter.
func NewFitz(logger domain.Logger) *Fitz {
	return &Fitz{logger: logger}
}

func (f *Fitz) Descriptor() domain.Descriptor {
	return domain.Descriptor{
		Name:         "fitz",
		Kind:         domain.BackendKindInProcess,
		Capabilities: []domain.Capability{domain.CapabilityText},
	}
}

// ExtractText concatenates every page's text in document order with a
// newline separator. Empty pages still contribute their separator so no
// page is silently dropped. A document MuPDF cannot open degrades to an
// empty string with a diagnostic.
func (f *Fitz) ExtractText(ctx context.Context, payload []byte) (string, error) {
	doc, err := fitz.NewFromMemory(payload)
	if err != nil {
		f.logger.Warn("fitz could not open document", "error", err)
		return "", nil
	}
	defer doc.Close()

	var b strings.Builder
	numPages := doc.NumPage()
	for pageNum := 0; pageNum < numPages; pageNum++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		text, err := doc.Text(pageNum)
		if err != nil {
			f.logger.Warn("fitz failed to extract page text", "page", pageNum+1, "error", err)
			text = ""
		}
		b.WriteString(normalize.NewlineAfterContinuation(text))
		b.WriteString("\n")
	}
	return b.String(), nil
}
