package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

const namespace = "stackdocs"

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	reg               *prom.Registry
	stageDuration     *prom.HistogramVec
	stageResults      *prom.CounterVec
	runDuration       prom.Histogram
	runOutcome        *prom.CounterVec
	documentDuration  *prom.HistogramVec
	documentResults   *prom.CounterVec
	documentBytes     *prom.GaugeVec
	renderConcurrency prom.Gauge
}

// NewPrometheusRecorder constructs and registers the metrics on reg. A nil
// reg gets a fresh private registry.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{reg: reg}
	pr.stageDuration = prom.NewHistogramVec(prom.HistogramOpts{
		Namespace: namespace,
		Name:      "stage_duration_seconds",
		Help:      "Duration of individual generation stages",
		Buckets:   prom.DefBuckets,
	}, []string{"stage"})
	pr.stageResults = prom.NewCounterVec(prom.CounterOpts{
		Namespace: namespace,
		Name:      "stage_results_total",
		Help:      "Stage result counts by outcome",
	}, []string{"stage", "result"})
	pr.runDuration = prom.NewHistogram(prom.HistogramOpts{
		Namespace: namespace,
		Name:      "run_duration_seconds",
		Help:      "Total generation run duration",
		Buckets:   prom.DefBuckets,
	})
	pr.runOutcome = prom.NewCounterVec(prom.CounterOpts{
		Namespace: namespace,
		Name:      "run_outcomes_total",
		Help:      "Generation runs by final status",
	}, []string{"outcome"})
	pr.documentDuration = prom.NewHistogramVec(prom.HistogramOpts{
		Namespace: namespace,
		Name:      "document_duration_seconds",
		Help:      "Render and write duration per document",
		Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
	}, []string{"document", "result"})
	pr.documentResults = prom.NewCounterVec(prom.CounterOpts{
		Namespace: namespace,
		Name:      "document_results_total",
		Help:      "Documents processed by result",
	}, []string{"document", "result"})
	pr.documentBytes = prom.NewGaugeVec(prom.GaugeOpts{
		Namespace: namespace,
		Name:      "document_bytes",
		Help:      "Size of the last written version of each document",
	}, []string{"document"})
	pr.renderConcurrency = prom.NewGauge(prom.GaugeOpts{
		Namespace: namespace,
		Name:      "render_concurrency",
		Help:      "Render and write concurrency of the last run",
	})
	reg.MustRegister(pr.stageDuration, pr.stageResults, pr.runDuration, pr.runOutcome,
		pr.documentDuration, pr.documentResults, pr.documentBytes, pr.renderConcurrency)
	return pr
}

// Gatherer exposes the underlying registry.
func (p *PrometheusRecorder) Gatherer() prom.Gatherer { return p.reg }

// WriteTextfile writes every metric to path in the text exposition format,
// atomically, for the node_exporter textfile collector.
func (p *PrometheusRecorder) WriteTextfile(path string) error {
	return prom.WriteToTextfile(path, p.reg)
}

func (p *PrometheusRecorder) ObserveStageDuration(stage string, d time.Duration) {
	if p == nil || p.stageDuration == nil {
		return
	}
	p.stageDuration.WithLabelValues(stage).Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncStageResult(stage string, result ResultLabel) {
	if p == nil || p.stageResults == nil {
		return
	}
	p.stageResults.WithLabelValues(stage, string(result)).Inc()
}

func (p *PrometheusRecorder) ObserveRunDuration(d time.Duration) {
	if p == nil || p.runDuration == nil {
		return
	}
	p.runDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncRunOutcome(outcome string) {
	if p == nil || p.runOutcome == nil {
		return
	}
	p.runOutcome.WithLabelValues(outcome).Inc()
}

func (p *PrometheusRecorder) ObserveDocumentDuration(kind string, d time.Duration, success bool) {
	if p == nil || p.documentDuration == nil {
		return
	}
	res := "failed"
	if success {
		res = "success"
	}
	p.documentDuration.WithLabelValues(kind, res).Observe(d.Seconds())
	p.documentResults.WithLabelValues(kind, res).Inc()
}

func (p *PrometheusRecorder) SetDocumentBytes(kind string, n int) {
	if p == nil || p.documentBytes == nil {
		return
	}
	p.documentBytes.WithLabelValues(kind).Set(float64(n))
}

func (p *PrometheusRecorder) SetRenderConcurrency(n int) {
	if p == nil || p.renderConcurrency == nil {
		return
	}
	p.renderConcurrency.Set(float64(n))
}
