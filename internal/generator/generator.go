// Package generator runs the staged pipeline that turns a configuration into
// the documentation set: build_config, prepare_output, render_emit,
// verify_links and, when enabled, write_manifest.
package generator

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"git.home.luguber.info/inful/stackdocs/internal/config"
	"git.home.luguber.info/inful/stackdocs/internal/emit"
	"git.home.luguber.info/inful/stackdocs/internal/logfields"
	"git.home.luguber.info/inful/stackdocs/internal/manifest"
	"git.home.luguber.info/inful/stackdocs/internal/metrics"
	"git.home.luguber.info/inful/stackdocs/internal/render"
	"git.home.luguber.info/inful/stackdocs/internal/storage"
	"git.home.luguber.info/inful/stackdocs/internal/version"
	"git.home.luguber.info/inful/stackdocs/internal/workspace"
)

// Options configures a Generator. Only Store is required.
type Options struct {
	Store        storage.Store
	Override     *config.Override // nil renders the defaults
	ConfigSource string           // recorded in logs and the manifest
	Jobs         int              // render/emit concurrency, default 1
	Manifest     bool
	Recorder     metrics.Recorder
	Now          func() time.Time
	Documents    []render.Spec  // default render.Documents()
	Tree         workspace.Tree // default workspace.DefaultTree()
}

// Generator produces the documentation set into a store.
type Generator struct {
	store        storage.Store
	override     *config.Override
	configSource string
	jobs         int
	manifest     bool
	recorder     metrics.Recorder
	now          func() time.Time
	documents    []render.Spec
	materializer *workspace.Materializer
	emitter      *emit.Emitter
}

// New creates a Generator from opts.
func New(opts Options) *Generator {
	g := &Generator{
		store:        opts.Store,
		override:     opts.Override,
		configSource: opts.ConfigSource,
		jobs:         opts.Jobs,
		manifest:     opts.Manifest,
		recorder:     opts.Recorder,
		now:          opts.Now,
		documents:    opts.Documents,
	}
	if g.jobs < 1 {
		g.jobs = 1
	}
	if g.recorder == nil {
		g.recorder = metrics.NoopRecorder{}
	}
	if g.now == nil {
		g.now = time.Now
	}
	if g.documents == nil {
		g.documents = render.Documents()
	}
	g.materializer = workspace.NewMaterializer(opts.Store, opts.Tree)
	g.emitter = emit.New(opts.Store)
	return g
}

// run is the mutable state shared by the stages of one invocation.
type run struct {
	report   *Report
	recorder metrics.Recorder
	cfg      *config.Config
	written  []render.Document // registry order
}

// Run executes every stage. Fatal and canceled stages are returned as
// errors; per-document failures are only recorded in the report, see
// Report.DocumentError.
func (g *Generator) Run(ctx context.Context) (*Report, error) {
	r := &run{
		report:   newReport(uuid.NewString(), g.store.Root()),
		recorder: g.recorder,
	}
	slog.Info("Generation started",
		logfields.RunID(r.report.RunID),
		logfields.BaseDir(g.store.Root()),
		logfields.Config(g.configSource))

	stages := []stageDef{
		{StageBuildConfig, g.stageBuildConfig},
		{StagePrepareOutput, g.stagePrepareOutput},
		{StageRenderEmit, g.stageRenderEmit},
		{StageVerifyLinks, g.stageVerifyLinks},
	}
	if g.manifest {
		stages = append(stages, stageDef{StageWriteManifest, g.stageWriteManifest})
	}

	err := runStages(ctx, r, stages)
	r.report.Finish()
	r.report.DeriveOutcome()
	g.recorder.ObserveRunDuration(r.report.Duration())
	g.recorder.IncRunOutcome(string(r.report.Outcome))

	level := slog.LevelInfo
	if r.report.Outcome != OutcomeSuccess {
		level = slog.LevelWarn
	}
	slog.Log(ctx, level, "Generation finished",
		logfields.RunID(r.report.RunID),
		logfields.Outcome(string(r.report.Outcome)),
		logfields.Count(r.report.Written()),
		logfields.DurationMS(float64(r.report.Duration().Milliseconds())))
	return r.report, err
}

func (g *Generator) stageBuildConfig(_ context.Context, r *run) error {
	cfg, err := config.Build(g.override, g.now())
	if err != nil {
		return newFatalStageError(StageBuildConfig, err)
	}
	r.cfg = cfg
	return nil
}

func (g *Generator) stagePrepareOutput(ctx context.Context, r *run) error {
	if err := g.materializer.Materialize(ctx); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return newCanceledStageError(StagePrepareOutput, ctxErr)
		}
		return newFatalStageError(StagePrepareOutput, err)
	}
	return nil
}

func (g *Generator) stageRenderEmit(ctx context.Context, r *run) error {
	results := make([]DocumentResult, len(g.documents))
	docs := make([]*render.Document, len(g.documents))
	for i, spec := range g.documents {
		results[i] = DocumentResult{Kind: spec.Kind, Path: spec.Path, Status: StatusSkipped}
	}

	g.recorder.SetRenderConcurrency(g.jobs)
	// Not errgroup.WithContext: one failed document must not cancel the rest.
	var eg errgroup.Group
	eg.SetLimit(g.jobs)
	for i, spec := range g.documents {
		if ctx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			results[i], docs[i] = g.produce(ctx, spec, r.cfg)
			return nil
		})
	}
	_ = eg.Wait()

	r.report.Documents = results
	for _, d := range docs {
		if d != nil {
			r.written = append(r.written, *d)
		}
	}
	if err := ctx.Err(); err != nil {
		return newCanceledStageError(StageRenderEmit, err)
	}
	return nil
}

// produce renders and writes one document. The returned document is nil
// unless it was written.
func (g *Generator) produce(ctx context.Context, spec render.Spec, cfg *config.Config) (DocumentResult, *render.Document) {
	res := DocumentResult{Kind: spec.Kind, Path: spec.Path}
	t0 := time.Now()
	doc, err := spec.Build(cfg)
	if err == nil {
		var out emit.Result
		out, err = g.emitter.Emit(ctx, doc)
		res.Bytes = out.Bytes
	}
	g.recorder.ObserveDocumentDuration(string(spec.Kind), time.Since(t0), err == nil)

	switch {
	case err == nil:
		res.Status = StatusWritten
		g.recorder.SetDocumentBytes(string(spec.Kind), res.Bytes)
		return res, &doc
	case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
		res.Status = StatusSkipped
	default:
		res.Status = StatusFailed
		res.Err = err
		slog.Error("Document failed",
			logfields.Document(string(spec.Kind)),
			logfields.Path(spec.Path),
			logfields.Error(err))
	}
	return res, nil
}

func (g *Generator) stageVerifyLinks(ctx context.Context, r *run) error {
	warnings, err := verifyLinks(ctx, g.store, r.written)
	r.report.LinkWarnings = warnings
	if err != nil {
		return newCanceledStageError(StageVerifyLinks, err)
	}
	return nil
}

func (g *Generator) stageWriteManifest(ctx context.Context, r *run) error {
	m := manifest.New(g.now())
	m.ID = r.report.RunID
	m.GeneratedOn = r.cfg.Timestamp
	m.ToolVersion = version.Version
	m.Inputs.ConfigHash = r.cfg.Snapshot()
	m.Inputs.ConfigSource = g.configSource
	for _, d := range r.written {
		m.AddDocument(string(d.Kind), d.Path, d.Content)
	}
	for _, d := range r.report.Documents {
		if d.Status == StatusFailed {
			m.Outputs.Failed = append(m.Outputs.Failed, d.Path)
		}
	}
	r.report.DeriveOutcome()
	m.Status = string(r.report.Outcome)
	m.Duration = time.Since(r.report.Start).Milliseconds()

	if err := m.Write(ctx, g.store); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return newCanceledStageError(StageWriteManifest, ctxErr)
		}
		return newWarnStageError(StageWriteManifest, err)
	}
	r.report.ManifestPath = manifest.Path
	return nil
}
