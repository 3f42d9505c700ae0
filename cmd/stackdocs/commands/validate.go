package commands

import (
	"fmt"
	"time"

	"git.home.luguber.info/inful/stackdocs/internal/config"
)

// ValidateCmd implements the 'validate' command.
type ValidateCmd struct{}

func (v *ValidateCmd) Run(global *Global, root *CLI) error {
	configPath := root.ConfigPath()
	ov, err := loadOverride(configPath)
	if err != nil {
		return err
	}
	cfg, err := config.Build(ov, time.Now())
	if err != nil {
		return err
	}

	out := global.out()
	source := configPath
	if source == "" {
		source = "built-in defaults"
	}
	_, _ = fmt.Fprintf(out, "Configuration valid (%s)\n", source)
	_, _ = fmt.Fprintf(out, "  project:    %s %s\n", cfg.Project.Name, cfg.Project.Version)
	_, _ = fmt.Fprintf(out, "  cluster:    %s\n", cfg.Kubernetes.ClusterType)
	_, _ = fmt.Fprintf(out, "  namespaces: %s\n", config.JoinList(cfg.Kubernetes.Namespaces))
	for _, key := range cfg.ServiceKeys() {
		s := cfg.Services[key]
		_, _ = fmt.Fprintf(out, "  service:    %s → %s\n", s.Label(key), s.HostPort())
	}
	_, _ = fmt.Fprintf(out, "  models:     %s\n", config.JoinList(cfg.AIModels))
	_, _ = fmt.Fprintf(out, "  snapshot:   %s\n", cfg.Snapshot())
	return nil
}
