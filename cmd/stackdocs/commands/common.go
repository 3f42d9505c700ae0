package commands

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/stackdocs/internal/config"
	"git.home.luguber.info/inful/stackdocs/internal/logfields"
)

// DefaultConfigName is picked up from the base directory when --config is not given.
const DefaultConfigName = "stackdocs.yaml"

// Global carries process-wide state shared by subcommands.
type Global struct {
	Context context.Context
	Out     io.Writer
}

func (g *Global) ctx() context.Context {
	if g == nil || g.Context == nil {
		return context.Background()
	}
	return g.Context
}

func (g *Global) out() io.Writer {
	if g == nil || g.Out == nil {
		return os.Stdout
	}
	return g.Out
}

// CLI definition & global flags.
type CLI struct {
	BaseDir string           `short:"d" name:"base-dir" help:"Directory the documentation tree is written under" default:"." type:"path"`
	Config  string           `short:"c" help:"Override file (YAML or JSON); defaults to <base-dir>/stackdocs.yaml when present"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Generate GenerateCmd `cmd:"" default:"withargs" help:"Generate the documentation set"`
	Validate ValidateCmd `cmd:"" help:"Validate the configuration without writing anything"`
	Init     InitCmd     `cmd:"" help:"Write an override file containing the defaults"`
	Paths    PathsCmd    `cmd:"" help:"List the paths the generator owns"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// ConfigPath resolves the override file: the --config flag, else
// stackdocs.yaml in the base directory when it exists, else none.
func (c *CLI) ConfigPath() string {
	if c.Config != "" {
		return c.Config
	}
	candidate := filepath.Join(c.BaseDir, DefaultConfigName)
	if _, err := os.Stat(candidate); err == nil {
		return candidate
	}
	return ""
}

// loadOverride reads the override file, nil when none is configured.
func loadOverride(path string) (*config.Override, error) {
	if path == "" {
		slog.Debug("No override file; using defaults")
		return nil, nil
	}
	slog.Debug("Loading override", logfields.Config(path))
	return config.LoadOverride(path)
}
