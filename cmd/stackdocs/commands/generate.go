package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	ferrors "git.home.luguber.info/inful/stackdocs/internal/foundation/errors"
	"git.home.luguber.info/inful/stackdocs/internal/generator"
	"git.home.luguber.info/inful/stackdocs/internal/logfields"
	"git.home.luguber.info/inful/stackdocs/internal/metrics"
	"git.home.luguber.info/inful/stackdocs/internal/storage"
	"git.home.luguber.info/inful/stackdocs/internal/watch"
)

// GenerateCmd implements the 'generate' command.
type GenerateCmd struct {
	Jobs        int    `short:"j" help:"Documents rendered and written concurrently" default:"1"`
	Manifest    bool   `help:"Write docs/.stackdocs-manifest.json describing the run"`
	MetricsFile string `name:"metrics-file" help:"Write Prometheus metrics in textfile-collector format to this path" type:"path"`
	DryRun      bool   `name:"dry-run" help:"Render into memory and print the report without touching disk"`
	Watch       bool   `help:"Regenerate whenever the override file changes"`
	Tree        bool   `help:"Print the generated directory tree" default:"true" negatable:""`
}

func (g *GenerateCmd) Run(global *Global, root *CLI) error {
	if g.Jobs < 1 {
		return ferrors.ValidationError("--jobs must be at least 1").WithContext("jobs", g.Jobs).Build()
	}
	configPath := root.ConfigPath()
	if g.Watch && configPath == "" {
		return ferrors.ValidationError("--watch needs an override file (--config)").Build()
	}
	if g.Watch && g.DryRun {
		return ferrors.ValidationError("--watch and --dry-run cannot be combined").Build()
	}

	ctx := global.ctx()
	out := global.out()
	err := g.generateOnce(ctx, out, root.BaseDir, configPath)
	if !g.Watch {
		return err
	}
	if err != nil {
		slog.Error("Initial generation failed; waiting for config changes", logfields.Error(err))
	}

	w, werr := watch.New(configPath, func(ctx context.Context) error {
		return g.generateOnce(ctx, out, root.BaseDir, configPath)
	}, watch.DefaultDebounce)
	if werr != nil {
		return ferrors.WrapError(werr, ferrors.CategoryRuntime, "start config watcher").
			WithContext("path", configPath).
			Build()
	}
	return w.Run(ctx)
}

func (g *GenerateCmd) generateOnce(ctx context.Context, out io.Writer, baseDir, configPath string) error {
	ov, err := loadOverride(configPath)
	if err != nil {
		return err
	}

	var store storage.Store = storage.NewOSStore(baseDir)
	if g.DryRun {
		store = storage.NewMemStore()
	}

	var recorder metrics.Recorder = metrics.NoopRecorder{}
	var prom *metrics.PrometheusRecorder
	if g.MetricsFile != "" {
		prom = metrics.NewPrometheusRecorder(nil)
		recorder = prom
	}

	report, runErr := generator.New(generator.Options{
		Store:        store,
		Override:     ov,
		ConfigSource: configPath,
		Jobs:         g.Jobs,
		Manifest:     g.Manifest,
		Recorder:     recorder,
	}).Run(ctx)

	if prom != nil {
		if err := prom.WriteTextfile(g.MetricsFile); err != nil {
			slog.Warn("Failed to write metrics file", logfields.Path(g.MetricsFile), logfields.Error(err))
		}
	}

	if runErr != nil {
		if errors.Is(runErr, context.Canceled) {
			return ferrors.WrapError(runErr, ferrors.CategoryRuntime, "generation interrupted").Build()
		}
		return runErr
	}

	if g.DryRun {
		_, _ = fmt.Fprintln(out, "Dry run: nothing was written to disk.")
	}
	report.WriteSummary(out)
	if g.Tree {
		_, _ = fmt.Fprintln(out)
		report.WriteTree(out)
	}
	return report.DocumentError()
}
