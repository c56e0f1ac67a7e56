package domain

import (
	"context"
	"time"
)

// Backend is the minimal contract every engine adapter satisfies.
// Adapters additionally implement the capability interfaces matching
// their descriptor.
type Backend interface {
	Descriptor() Descriptor
}

// TextExtractor extracts the concatenation of all pages' text in document
// order, with a newline page separator. Empty pages are preserved. Engine
// failures are contained and degrade to an empty or sentinel string; only
// unrecoverable conditions (missing executable, unreachable service)
// surface as errors.
type TextExtractor interface {
	Backend
	ExtractText(ctx context.Context, payload []byte) (string, error)
}

// ImageExtractor extracts embedded images. Engine failures are contained
// and degrade to an empty list plus a diagnostic; an unavailable external
// tool still surfaces as an error.
type ImageExtractor interface {
	Backend
	ExtractImages(ctx context.Context, payload []byte) ([]Image, error)
}

// Watermarker merges page one of the watermark document onto every page of
// the target document and returns a new PDF. Inputs are never mutated.
// Failures are fatal, never contained.
type Watermarker interface {
	Backend
	ApplyWatermark(ctx context.Context, watermark, payload []byte) ([]byte, error)
}

// Catalog is the uniform contract the benchmark driver consumes. Calling a
// capability a backend does not advertise is rejected before the engine is
// invoked.
type Catalog interface {
	List() []Descriptor
	ExtractText(ctx context.Context, backend string, payload []byte) (string, error)
	ExtractImages(ctx context.Context, backend string, payload []byte) ([]Image, error)
	ApplyWatermark(ctx context.Context, backend string, watermark, payload []byte) ([]byte, error)
}

// TextRunResult is one backend's outcome in a comparison fan-out.
type TextRunResult struct {
	Backend  string        `json:"backend"`
	Duration time.Duration `json:"duration_ns"`
	Chars    int           `json:"chars"`
	Text     string        `json:"text,omitempty"`
	Error    string        `json:"error,omitempty"`
}

// BenchService fans one payload out across registered backends, containing
// per-backend failures so a comparison run always completes.
type BenchService interface {
	CompareText(ctx context.Context, payload []byte) []TextRunResult
}

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// Config defines the interface for configuration management
type Config interface {
	GetServerPort() string
	GetLogLevel() string
	GetMaxFileSize() int64
	GetTempDir() string
	GetPdftotextPath() string
	GetPdfaltoPath() string
	GetXsltprocPath() string
	GetAltoStylesheet() string
	GetTikaURL() string
	GetTikaTimeout() time.Duration
}
