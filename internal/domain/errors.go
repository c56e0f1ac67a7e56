package domain

import (
	"errors"
	"fmt"
)

// Domain errors
var (
	ErrBackendNotFound = errors.New("backend not found")
	ErrEmptyPipeline   = errors.New("pipeline requires at least one stage")
)

// CapabilityError reports a capability call on a backend whose descriptor
// does not advertise it. This is a caller contract violation and is raised
// before the engine is invoked.
type CapabilityError struct {
	Backend    string
	Capability Capability
}

func (e *CapabilityError) Error() string {
	return fmt.Sprintf("backend %s does not support %s", e.Backend, e.Capability)
}

// BackendUnavailableError reports a required executable or remote dependency
// that cannot be found or reached. Never retried.
type BackendUnavailableError struct {
	Backend string
	Reason  string
	Cause   error
}

func (e *BackendUnavailableError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("backend %s unavailable: %s", e.Backend, e.Reason)
	}
	return fmt.Sprintf("backend %s unavailable", e.Backend)
}

func (e *BackendUnavailableError) Unwrap() error {
	return e.Cause
}

// ExternalToolError reports an external process that ran but exited non-zero
// or could not produce usable output.
type ExternalToolError struct {
	Tool     string
	ExitCode int
	Stderr   string
}

func (e *ExternalToolError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("%s exited with code %d: %s", e.Tool, e.ExitCode, e.Stderr)
	}
	return fmt.Sprintf("%s exited with code %d", e.Tool, e.ExitCode)
}

// PipelineStageError reports a multi-stage pipeline failing at a specific
// stage. Stages are 1-indexed. Always fatal.
type PipelineStageError struct {
	Stage int
	Cause error
}

func (e *PipelineStageError) Error() string {
	return fmt.Sprintf("pipeline stage %d failed: %v", e.Stage, e.Cause)
}

func (e *PipelineStageError) Unwrap() error {
	return e.Cause
}

// MalformedDocumentError reports an input payload the target engine rejects
// as not a valid document.
type MalformedDocumentError struct {
	Backend string
	Cause   error
}

func (e *MalformedDocumentError) Error() string {
	return fmt.Sprintf("backend %s: malformed document: %v", e.Backend, e.Cause)
}

func (e *MalformedDocumentError) Unwrap() error {
	return e.Cause
}

// IsBackendUnavailable reports whether err is, or wraps, a
// BackendUnavailableError.
func IsBackendUnavailable(err error) bool {
	var target *BackendUnavailableError
	return errors.As(err, &target)
}

// IsCapabilityError reports whether err is, or wraps, a CapabilityError.
func IsCapabilityError(err error) bool {
	var target *CapabilityError
	return errors.As(err, &target)
}
