package generator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"git.home.luguber.info/inful/stackdocs/internal/logfields"
	"git.home.luguber.info/inful/stackdocs/internal/metrics"
)

// StageName is a strongly-typed identifier for a generation stage.
type StageName string

// Canonical stage names.
const (
	StageBuildConfig   StageName = "build_config"
	StagePrepareOutput StageName = "prepare_output"
	StageRenderEmit    StageName = "render_emit"
	StageVerifyLinks   StageName = "verify_links"
	StageWriteManifest StageName = "write_manifest"
)

// StageErrorKind classifies the outcome of a stage.
type StageErrorKind string

const (
	StageErrorFatal    StageErrorKind = "fatal"    // Run must abort.
	StageErrorWarning  StageErrorKind = "warning"  // Record and continue.
	StageErrorCanceled StageErrorKind = "canceled" // Context cancellation.
)

// StageError carries the stage and kind of a stage failure.
type StageError struct {
	Kind  StageErrorKind
	Stage StageName
	Err   error
}

func (e *StageError) Error() string { return fmt.Sprintf("%s stage %s: %v", e.Kind, e.Stage, e.Err) }
func (e *StageError) Unwrap() error { return e.Err }

func newFatalStageError(stage StageName, err error) *StageError {
	return &StageError{Kind: StageErrorFatal, Stage: stage, Err: err}
}

func newWarnStageError(stage StageName, err error) *StageError {
	return &StageError{Kind: StageErrorWarning, Stage: stage, Err: err}
}

func newCanceledStageError(stage StageName, err error) *StageError {
	return &StageError{Kind: StageErrorCanceled, Stage: stage, Err: err}
}

type stageFunc func(ctx context.Context, r *run) error

type stageDef struct {
	Name StageName
	Fn   stageFunc
}

// runStages executes stages in order, recording timing and stopping on the
// first fatal or canceled stage.
func runStages(ctx context.Context, r *run, stages []stageDef) error {
	for _, st := range stages {
		if err := ctx.Err(); err != nil {
			se := newCanceledStageError(st.Name, err)
			r.report.addError(se)
			r.report.recordStage(st.Name, 0, metrics.ResultCanceled, r.recorder)
			return se
		}

		t0 := time.Now()
		err := st.Fn(ctx, r)
		dur := time.Since(t0)

		result := metrics.ResultSuccess
		var se *StageError
		switch {
		case err == nil:
		case errors.As(err, &se):
		case ctx.Err() != nil:
			se = newCanceledStageError(st.Name, err)
		default:
			se = newFatalStageError(st.Name, err)
		}
		if se != nil {
			switch se.Kind {
			case StageErrorWarning:
				result = metrics.ResultWarning
				r.report.addWarning(se)
			case StageErrorCanceled:
				result = metrics.ResultCanceled
				r.report.addError(se)
			case StageErrorFatal:
				result = metrics.ResultFatal
				r.report.addError(se)
			}
		}
		r.report.recordStage(st.Name, dur, result, r.recorder)
		slog.Debug("Stage complete",
			logfields.RunID(r.report.RunID),
			logfields.Stage(string(st.Name)),
			logfields.DurationMS(float64(dur.Milliseconds())),
			logfields.Outcome(string(result)))

		if se != nil && se.Kind != StageErrorWarning {
			return se
		}
	}
	return nil
}
