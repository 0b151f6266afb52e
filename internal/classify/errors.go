package classify

import (
	"errors"
	"fmt"
)

// ErrPipeline matches every *PipelineError via errors.Is.
var ErrPipeline = errors.New("pipeline failure")

// Pipeline stages, used in PipelineError.Stage.
const (
	StageClassify  = "classify"
	StageAggregate = "aggregate"
	StageTransform = "transform"
)

// PipelineError is the only failure kind of the pipeline. It is carried in
// Outcome.Err and Result.Cause; it is never returned from Process.
type PipelineError struct {
	// Stage is where the failure happened.
	Stage string

	// Index is the position of the offending token, or -1.
	Index int

	// Cause is the underlying error.
	Cause error
}

func (e *PipelineError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("pipeline failure in %s at token %d: %v", e.Stage, e.Index, e.Cause)
	}
	return fmt.Sprintf("pipeline failure in %s: %v", e.Stage, e.Cause)
}

// Unwrap returns the underlying error.
func (e *PipelineError) Unwrap() error {
	return e.Cause
}

// Is makes errors.Is(err, ErrPipeline) hold for any PipelineError.
func (e *PipelineError) Is(target error) bool {
	return target == ErrPipeline
}
