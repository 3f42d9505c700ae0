package generator

import (
	"errors"
	"fmt"
	"strings"
	"time"

	ferrors "git.home.luguber.info/inful/stackdocs/internal/foundation/errors"
	"git.home.luguber.info/inful/stackdocs/internal/metrics"
	"git.home.luguber.info/inful/stackdocs/internal/render"
)

// RunOutcome is the overall result of a generation run.
type RunOutcome string

const (
	OutcomeSuccess  RunOutcome = "success"
	OutcomeWarning  RunOutcome = "warning"
	OutcomeFailed   RunOutcome = "failed"
	OutcomeCanceled RunOutcome = "canceled"
)

// DocumentStatus is the per-document result.
type DocumentStatus string

const (
	StatusWritten DocumentStatus = "written"
	StatusFailed  DocumentStatus = "failed"
	StatusSkipped DocumentStatus = "skipped" // not attempted because the run was canceled
)

// ErrDocumentsFailed is matched by errors.Is when at least one document
// could not be rendered or written.
var ErrDocumentsFailed = errors.New("documents failed")

// DocumentResult records one registry entry.
type DocumentResult struct {
	Kind   render.Kind
	Path   string
	Bytes  int
	Status DocumentStatus
	Err    error
}

// LinkWarning is a relative link whose target does not exist.
type LinkWarning struct {
	Document string
	Target   string
}

func (w LinkWarning) String() string {
	return fmt.Sprintf("%s: dangling link to %s", w.Document, w.Target)
}

// StageTiming records one executed stage in order.
type StageTiming struct {
	Name     StageName
	Duration time.Duration
	Result   metrics.ResultLabel
}

// Report enumerates every document attempted in a run.
type Report struct {
	RunID        string
	BaseDir      string
	Start        time.Time
	End          time.Time
	Documents    []DocumentResult // registry order
	LinkWarnings []LinkWarning
	Stages       []StageTiming
	Errors       []error
	Warnings     []error
	Outcome      RunOutcome
	ManifestPath string
}

func newReport(runID, baseDir string) *Report {
	return &Report{RunID: runID, BaseDir: baseDir, Start: time.Now()}
}

func (r *Report) addError(err error)   { r.Errors = append(r.Errors, err) }
func (r *Report) addWarning(err error) { r.Warnings = append(r.Warnings, err) }

func (r *Report) recordStage(stage StageName, d time.Duration, res metrics.ResultLabel, recorder metrics.Recorder) {
	r.Stages = append(r.Stages, StageTiming{Name: stage, Duration: d, Result: res})
	if recorder != nil {
		recorder.ObserveStageDuration(string(stage), d)
		recorder.IncStageResult(string(stage), res)
	}
}

// StageDuration returns the duration of stage, zero when it did not run.
func (r *Report) StageDuration(stage StageName) time.Duration {
	for _, st := range r.Stages {
		if st.Name == stage {
			return st.Duration
		}
	}
	return 0
}

// Written counts documents written in this run.
func (r *Report) Written() int { return r.count(StatusWritten) }

// Failed counts documents that could not be rendered or written.
func (r *Report) Failed() int { return r.count(StatusFailed) }

func (r *Report) count(status DocumentStatus) int {
	n := 0
	for _, d := range r.Documents {
		if d.Status == status {
			n++
		}
	}
	return n
}

// WrittenPaths returns the paths of written documents in registry order.
func (r *Report) WrittenPaths() []string {
	var out []string
	for _, d := range r.Documents {
		if d.Status == StatusWritten {
			out = append(out, d.Path)
		}
	}
	return out
}

// Finish stamps the end time.
func (r *Report) Finish() { r.End = time.Now() }

// Duration is the wall time of the run.
func (r *Report) Duration() time.Duration {
	if r.End.IsZero() {
		return time.Since(r.Start)
	}
	return r.End.Sub(r.Start)
}

// DeriveOutcome sets Outcome from recorded errors, failed documents and
// warnings.
func (r *Report) DeriveOutcome() {
	for _, e := range r.Errors {
		var se *StageError
		if errors.As(e, &se) && se.Kind == StageErrorCanceled {
			r.Outcome = OutcomeCanceled
			return
		}
	}
	if len(r.Errors) > 0 || r.Failed() > 0 {
		r.Outcome = OutcomeFailed
		return
	}
	if len(r.Warnings) > 0 || len(r.LinkWarnings) > 0 {
		r.Outcome = OutcomeWarning
		return
	}
	r.Outcome = OutcomeSuccess
}

// Summary returns a single-line description of the run.
func (r *Report) Summary() string {
	return fmt.Sprintf("documents=%d written=%d failed=%d link_warnings=%d duration=%s outcome=%s",
		len(r.Documents), r.Written(), r.Failed(), len(r.LinkWarnings),
		r.Duration().Truncate(time.Millisecond), string(r.Outcome))
}

// DocumentError aggregates per-document failures into one classified error,
// nil when every attempted document was written.
func (r *Report) DocumentError() error {
	var failed []string
	for _, d := range r.Documents {
		if d.Status == StatusFailed {
			failed = append(failed, d.Path)
		}
	}
	if len(failed) == 0 {
		return nil
	}
	return ferrors.WrapError(
		fmt.Errorf("%w: %d of %d", ErrDocumentsFailed, len(failed), len(r.Documents)),
		ferrors.CategoryFileSystem, "generate documents").
		WithContext("failed", strings.Join(failed, ", ")).
		Build()
}
