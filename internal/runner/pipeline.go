package runner

import (
	"context"

	"pdf-backend-bench/internal/domain"
)

// RunPipeline chains external invocations: each stage's stdout becomes the
// next stage's input file. A failing stage aborts the whole pipeline with a
// PipelineStageError identifying it (1-indexed); no partial recovery is
// attempted. Every intermediate artifact is released by the stage that
// created it.
func (r *Runner) RunPipeline(ctx context.Context, stages []Command, input []byte) ([]byte, error) {
	if len(stages) == 0 {
		return nil, domain.ErrEmptyPipeline
	}

	data := input
	for i, stage := range stages {
		out, err := r.Run(ctx, stage, data)
		if err != nil {
			return nil, &domain.PipelineStageError{Stage: i + 1, Cause: err}
		}
		data = out
	}
	return data, nil
}
