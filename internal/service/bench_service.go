package service

import (
	"context"
	"time"

	"pdf-backend-bench/internal/domain"
)

// BenchService fans one payload out across every registered backend so the
// driver can compare engines side by side. Per-backend failures are
// contained into the result row; one broken engine never aborts the run.
type BenchService struct {
	catalog domain.Catalog
	logger  domain.Logger
}

// Compile-time interface assertion
var _ domain.BenchService = (*BenchService)(nil)

// NewBenchService creates a new bench service instance.
func NewBenchService(catalog domain.Catalog, logger domain.Logger) *BenchService {
	return &BenchService{
		catalog: catalog,
		logger:  logger,
	}
}

// CompareText runs extract_text on every text-capable backend and records
// wall-clock duration per call. Results come back in registry order.
func (s *BenchService) CompareText(ctx context.Context, payload []byte) []domain.TextRunResult {
	descriptors := s.catalog.List()
	results := make([]domain.TextRunResult, 0, len(descriptors))

	for _, d := range descriptors {
		if !d.Supports(domain.CapabilityText) {
			continue
		}

		start := time.Now()
		text, err := s.catalog.ExtractText(ctx, d.Name, payload)
		elapsed := time.Since(start)

		result := domain.TextRunResult{
			Backend:  d.Name,
			Duration: elapsed,
			Chars:    len(text),
			Text:     text,
		}
		if err != nil {
			s.logger.Warn("backend failed during comparison run", "backend", d.Name, "error", err)
			result.Error = err.Error()
			result.Text = ""
			result.Chars = 0
		}
		results = append(results, result)
	}
	return results
}
