package metrics

import "time"

// ResultLabel enumerates stage result categories for counters.
type ResultLabel string

const (
	ResultSuccess  ResultLabel = "success"
	ResultWarning  ResultLabel = "warning"
	ResultFatal    ResultLabel = "fatal"
	ResultCanceled ResultLabel = "canceled"
)

// Recorder defines observability hooks for generation runs. Implementations
// must be safe for concurrent use; documents are rendered in parallel.
type Recorder interface {
	ObserveStageDuration(stage string, d time.Duration)
	IncStageResult(stage string, result ResultLabel)
	ObserveRunDuration(d time.Duration)
	IncRunOutcome(outcome string) // outcome: success|warning|failed|canceled
	ObserveDocumentDuration(kind string, d time.Duration, success bool)
	SetDocumentBytes(kind string, n int)
	SetRenderConcurrency(n int)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveStageDuration(string, time.Duration)          {}
func (NoopRecorder) IncStageResult(string, ResultLabel)                  {}
func (NoopRecorder) ObserveRunDuration(time.Duration)                    {}
func (NoopRecorder) IncRunOutcome(string)                                {}
func (NoopRecorder) ObserveDocumentDuration(string, time.Duration, bool) {}
func (NoopRecorder) SetDocumentBytes(string, int)                        {}
func (NoopRecorder) SetRenderConcurrency(int)                            {}
