package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/stackdocs/internal/config"
	ferrors "git.home.luguber.info/inful/stackdocs/internal/foundation/errors"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force bool `help:"Overwrite existing configuration file"`
}

func (i *InitCmd) Run(global *Global, root *CLI) error {
	path := root.Config
	if path == "" {
		path = filepath.Join(root.BaseDir, DefaultConfigName)
	}
	return RunInit(global, path, i.Force)
}

// RunInit writes the defaults as an override file at path.
func RunInit(global *Global, path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return ferrors.ValidationError("configuration file already exists (use --force to overwrite)").
			WithContext("path", path).
			Build()
	}
	data, err := config.MarshalOverrideYAML(config.Defaults())
	if err != nil {
		return ferrors.WrapError(err, ferrors.CategoryInternal, "encode default configuration").Build()
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return ferrors.WrapError(err, ferrors.CategoryFileSystem, "create configuration directory").
				WithContext("path", dir).
				Build()
		}
	}
	// #nosec G306 -- the override file is meant to be shared and committed
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "write configuration file").
			WithContext("path", path).
			Build()
	}
	_, _ = fmt.Fprintf(global.out(), "Wrote %s\n", path)
	return nil
}
