package runner

import (
	"context"
	"errors"
	"testing"

	"pdf-backend-bench/internal/domain"
	"pdf-backend-bench/internal/testutil"
)

func TestRunPipeline_ChainsStages(t *testing.T) {
	tempDir := t.TempDir()
	scriptDir := t.TempDir()
	upper := writeScript(t, scriptDir, "upper", `tr 'a-z' 'A-Z' < "$1"`)
	wrap := writeScript(t, scriptDir, "wrap", `printf '[%s]' "$(cat "$1")"`)

	r := New(tempDir, testutil.NewLogger())
	out, err := r.RunPipeline(context.Background(), []Command{
		{Path: upper, Args: []string{ArgInput}},
		{Path: wrap, Args: []string{ArgInput}},
	}, []byte("hello"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(out) != "[HELLO]" {
		t.Fatalf("expected [HELLO], got %q", out)
	}
	assertTempDirEmpty(t, tempDir)
}

func TestRunPipeline_SecondStageFailure(t *testing.T) {
	tempDir := t.TempDir()
	scriptDir := t.TempDir()
	ok := writeScript(t, scriptDir, "stage-ok", `cat "$1"`)
	bad := writeScript(t, scriptDir, "stage-bad", `echo "stage two broke" >&2 ; exit 2`)

	r := New(tempDir, testutil.NewLogger())
	_, err := r.RunPipeline(context.Background(), []Command{
		{Path: ok, Args: []string{ArgInput}},
		{Path: bad, Args: []string{ArgInput}},
	}, []byte("hello"))

	var stageErr *domain.PipelineStageError
	if !errors.As(err, &stageErr) {
		t.Fatalf("expected PipelineStageError, got %v", err)
	}
	if stageErr.Stage != 2 {
		t.Fatalf("expected failing stage 2, got %d", stageErr.Stage)
	}

	var toolErr *domain.ExternalToolError
	if !errors.As(stageErr.Cause, &toolErr) {
		t.Fatalf("expected cause to be ExternalToolError, got %v", stageErr.Cause)
	}

	// Stage one's intermediate artifact must be gone after the failure.
	assertTempDirEmpty(t, tempDir)
}

func TestRunPipeline_EmptyStages(t *testing.T) {
	r := New(t.TempDir(), testutil.NewLogger())
	_, err := r.RunPipeline(context.Background(), nil, []byte("x"))
	if !errors.Is(err, domain.ErrEmptyPipeline) {
		t.Fatalf("expected ErrEmptyPipeline, got %v", err)
	}
}
