package backend

import (
	"context"

	"pdf-backend-bench/internal/domain"
	"pdf-backend-bench/internal/runner"
)

// Pdftotext wraps the poppler pdftotext command-line tool.
type Pdftotext struct {
	runner *runner.Runner
	path   string
	logger domain.Logger
}

// Compile-time interface assertion
var _ domain.TextExtractor = (*Pdftotext)(nil)

// NewPdftotext creates the pdftotext adapter. path is the configured
// executable location; the runner falls back to PATH resolution when the
// absolute location does not exist.
func NewPdftotext(r *runner.Runner, path string, logger domain.Logger) *Pdftotext {
	return &Pdftotext{
		runner: r,
		path:   path,
		logger: logger,
	}
}

func (p *Pdftotext) Descriptor() domain.Descriptor {
	return domain.Descriptor{
		Name:         "pdftotext",
		Kind:         domain.BackendKindExternal,
		Capabilities: []domain.Capability{domain.CapabilityText},
	}
}

// ExtractText runs pdftotext with stdout as the data channel. A non-zero
// exit is contained: whatever text the tool produced is returned
// best-effort with a diagnostic. An unlocatable executable is fatal.
func (p *Pdftotext) ExtractText(ctx context.Context, payload []byte) (string, error) {
	out, err := p.runner.Run(ctx, runner.Command{
		Path: p.path,
		Args: []string{"-enc", "UTF-8", runner.ArgInput, "-"},
	}, payload)
	if err != nil {
		if domain.IsBackendUnavailable(err) {
			return "", err
		}
		p.logger.Warn("pdftotext extraction failed", "error", err)
	}
	return string(out), nil
}
