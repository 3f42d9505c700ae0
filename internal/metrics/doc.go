// Package metrics provides run and document metrics for stackdocs.
//
// Components receive a Recorder through dependency injection and default to
// NoopRecorder, so metrics never need nil checks at call sites:
//
//	gen := generator.New(opts) // uses metrics.NoopRecorder{}
//
// When a metrics file is requested, a PrometheusRecorder backed by its own
// registry is injected instead and written out once the run completes in the
// node_exporter textfile-collector format:
//
//	rec := metrics.NewPrometheusRecorder(nil)
//	opts.Recorder = rec
//	// ... run ...
//	err := rec.WriteTextfile("/var/lib/node_exporter/stackdocs.prom")
package metrics
