package config

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"git.home.luguber.info/inful/stackdocs/internal/logfields"
)

// LoadEnvFiles loads .env and .env.local from dir and then from the working
// directory. Existing process environment variables are never overwritten.
// It returns the files that were loaded.
func LoadEnvFiles(dir string) ([]string, error) {
	candidates := []string{".env", ".env.local"}
	if dir != "" && dir != "." {
		candidates = append([]string{filepath.Join(dir, ".env"), filepath.Join(dir, ".env.local")}, candidates...)
	}
	var loaded []string
	seen := map[string]bool{}
	for _, p := range candidates {
		abs, err := filepath.Abs(p)
		if err == nil {
			if seen[abs] {
				continue
			}
			seen[abs] = true
		}
		if _, err := os.Stat(p); err != nil {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return loaded, err
		}
		slog.Debug("Loaded environment file", logfields.Path(p))
		loaded = append(loaded, p)
	}
	return loaded, nil
}
