package backend

import (
	"context"
	"strings"
	"testing"

	"pdf-backend-bench/internal/testutil"
)

func TestFitz_ExtractText(t *testing.T) {
	payload := testutil.PDFWithText(t, "Hello World")

	b := NewFitz(testutil.NewLogger())
	text, err := b.ExtractText(context.Background(), payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(text, "Hello World") {
		t.Fatalf("expected text to contain Hello World, got %q", text)
	}
}

func TestFitz_ExtractText_PageOrderAndSeparators(t *testing.T) {
	payload := testutil.PDFWithText(t, "alpha page", "beta page")

	b := NewFitz(testutil.NewLogger())
	text, err := b.ExtractText(context.Background(), payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	alpha := strings.Index(text, "alpha page")
	beta := strings.Index(text, "beta page")
	if alpha < 0 || beta < 0 {
		t.Fatalf("expected both pages in output, got %q", text)
	}
	if alpha > beta {
		t.Fatal("expected page one before page two")
	}
	if !strings.Contains(text[alpha:beta], "\n") {
		t.Fatal("expected a newline separator between pages")
	}
}

func TestFitz_ExtractText_MalformedContained(t *testing.T) {
	logger := testutil.NewLogger()
	b := NewFitz(logger)

	text, err := b.ExtractText(context.Background(), []byte("definitely not a pdf"))
	if err != nil {
		t.Fatalf("expected contained failure, got %v", err)
	}
	if text != "" {
		t.Fatalf("expected empty result, got %q", text)
	}
	if len(logger.Entries()) == 0 {
		t.Fatal("expected a diagnostic for the contained failure")
	}
}
