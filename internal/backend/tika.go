package backend

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"pdf-backend-bench/internal/domain"
)

// TikaFailureSentinel marks a contained Tika extraction failure so the
// benchmark can tell it apart from a legitimately empty document.
const TikaFailureSentinel = "[[[Tika text extraction failed!]]]"

// Tika extracts text through a remote Apache Tika server.
type Tika struct {
	baseURL string
	client  *http.Client
	logger  domain.Logger
}

// Compile-time interface assertion
var _ domain.TextExtractor = (*Tika)(nil)

// NewTika creates the Tika adapter. The HTTP client timeout is the only
// timeout this layer carries; it belongs to the underlying networked call.
func NewTika(baseURL string, timeout time.Duration, logger domain.Logger) *Tika {
	return &Tika{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

func (t *Tika) Descriptor() domain.Descriptor {
	return domain.Descriptor{
		Name:         "tika",
		Kind:         domain.BackendKindRemote,
		Capabilities: []domain.Capability{domain.CapabilityText},
	}
}

// ExtractText PUTs the document to the Tika server and returns the plain
// text body. Timeouts and unusable responses are contained with the
// failure sentinel; a connection-level failure means the dependency is
// unreachable and surfaces as BackendUnavailable.
func (t *Tika) ExtractText(ctx context.Context, payload []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, t.baseURL+"/tika", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build tika request: %w", err)
	}
	req.Header.Set("Content-Type", "application/pdf")
	req.Header.Set("Accept", "text/plain")

	resp, err := t.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			t.logger.Warn("tika request timed out", "error", err)
			return TikaFailureSentinel, nil
		}
		return "", &domain.BackendUnavailableError{
			Backend: "tika",
			Reason:  "server unreachable",
			Cause:   err,
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.logger.Warn("tika returned non-OK status", "status", resp.StatusCode)
		return TikaFailureSentinel, nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.logger.Warn("tika response read failed", "error", err)
		return TikaFailureSentinel, nil
	}
	return string(body), nil
}

func isTimeout(err error) bool {
	type timeouter interface{ Timeout() bool }
	for err != nil {
		if te, ok := err.(timeouter); ok && te.Timeout() {
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			break
		}
		err = u.Unwrap()
	}
	return false
}
