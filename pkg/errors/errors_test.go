package errors

import (
	"fmt"
	"net/http"
	"testing"

	"pdf-backend-bench/internal/domain"
)

func TestFromDomain_Mapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantType   ErrorType
		wantStatus int
	}{
		{
			name:       "backend not found",
			err:        fmt.Errorf("%w: nope", domain.ErrBackendNotFound),
			wantType:   ErrorTypeNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "capability violation",
			err:        &domain.CapabilityError{Backend: "fitz", Capability: domain.CapabilityWatermark},
			wantType:   ErrorTypeCapability,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "backend unavailable",
			err:        &domain.BackendUnavailableError{Backend: "pdfalto", Reason: "not installed"},
			wantType:   ErrorTypeUnavailable,
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "pipeline stage failure",
			err:        &domain.PipelineStageError{Stage: 2, Cause: fmt.Errorf("boom")},
			wantType:   ErrorTypePipeline,
			wantStatus: http.StatusBadGateway,
		},
		{
			name:       "external tool failure",
			err:        &domain.ExternalToolError{Tool: "pdftotext", ExitCode: 1},
			wantType:   ErrorTypeTool,
			wantStatus: http.StatusBadGateway,
		},
		{
			name:       "malformed document",
			err:        &domain.MalformedDocumentError{Backend: "pdfcpu", Cause: fmt.Errorf("bad xref")},
			wantType:   ErrorTypeMalformed,
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "unknown error",
			err:        fmt.Errorf("something else"),
			wantType:   ErrorTypeInternal,
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appErr := FromDomain(tt.err)
			if appErr.Type != tt.wantType {
				t.Fatalf("expected type %s, got %s", tt.wantType, appErr.Type)
			}
			if appErr.StatusCode != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, appErr.StatusCode)
			}
			if !IsType(appErr, tt.wantType) {
				t.Fatal("IsType disagrees with mapped type")
			}
		})
	}
}

func TestGetStatusCode_Fallback(t *testing.T) {
	if code := GetStatusCode(fmt.Errorf("plain")); code != http.StatusInternalServerError {
		t.Fatalf("expected 500 fallback, got %d", code)
	}
}
