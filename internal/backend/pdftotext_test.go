package backend

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pdf-backend-bench/internal/domain"
	"pdf-backend-bench/internal/runner"
	"pdf-backend-bench/internal/testutil"
)

func writeScript(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	script := "#!/bin/sh\n" + body + "\n"
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("failed to write script: %v", err)
	}
	return path
}

func TestPdftotext_ExtractText(t *testing.T) {
	scriptDir := t.TempDir()
	tool := writeScript(t, scriptDir, "pdftotext",
		`[ "$1" = "-enc" ] || exit 9
[ "$2" = "UTF-8" ] || exit 9
printf 'Hello World\n'`)

	logger := testutil.NewLogger()
	b := NewPdftotext(runner.New(t.TempDir(), logger), tool, logger)

	text, err := b.ExtractText(context.Background(), []byte("%PDF-fake"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(text, "Hello World") {
		t.Fatalf("expected extracted text to contain Hello World, got %q", text)
	}
}

func TestPdftotext_NonZeroExitContained(t *testing.T) {
	scriptDir := t.TempDir()
	tool := writeScript(t, scriptDir, "pdftotext", `printf 'partial text' ; exit 1`)

	logger := testutil.NewLogger()
	b := NewPdftotext(runner.New(t.TempDir(), logger), tool, logger)

	text, err := b.ExtractText(context.Background(), []byte("%PDF-fake"))
	if err != nil {
		t.Fatalf("expected contained failure, got %v", err)
	}
	if text != "partial text" {
		t.Fatalf("expected best-effort stdout, got %q", text)
	}

	entries := logger.Entries()
	if len(entries) == 0 || !strings.Contains(entries[len(entries)-1], "WARN") {
		t.Fatalf("expected a warning diagnostic, got %v", entries)
	}
}

func TestPdftotext_MissingExecutable(t *testing.T) {
	tempDir := t.TempDir()
	logger := testutil.NewLogger()
	b := NewPdftotext(runner.New(tempDir, logger), "/nonexistent/pdftotext-missing", logger)

	_, err := b.ExtractText(context.Background(), []byte("%PDF-fake"))
	if !domain.IsBackendUnavailable(err) {
		t.Fatalf("expected BackendUnavailableError, got %v", err)
	}

	// No orphaned temp files after a fail-fast.
	entries, readErr := os.ReadDir(tempDir)
	if readErr != nil {
		t.Fatalf("failed to read temp dir: %v", readErr)
	}
	if len(entries) != 0 {
		t.Fatalf("expected clean temp dir, found %d entries", len(entries))
	}
}
