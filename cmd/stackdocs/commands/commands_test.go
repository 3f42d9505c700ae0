package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/stackdocs/internal/config"
	ferrors "git.home.luguber.info/inful/stackdocs/internal/foundation/errors"
	"git.home.luguber.info/inful/stackdocs/internal/manifest"
	"git.home.luguber.info/inful/stackdocs/internal/render"
)

var testTime = time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

// run parses args like the real binary and executes the selected command.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("stackdocs"),
		kong.Vars{"version": "test"},
		kong.Exit(func(int) { t.Fatalf("unexpected exit for %v", args) }),
	)
	require.NoError(t, err)
	kctx, err := parser.Parse(args)
	require.NoError(t, err)

	var out bytes.Buffer
	err = kctx.Run(&Global{Context: context.Background(), Out: &out}, cli)
	return out.String(), err
}

func exitCode(err error) int {
	return ferrors.NewCLIErrorAdapter(false, nil).ExitCodeFor(err)
}

func TestGenerate_WritesEveryDocument(t *testing.T) {
	dir := t.TempDir()
	out, err := run(t, "generate", "--base-dir", dir, "--jobs", "3")
	require.NoError(t, err)

	for _, p := range render.Paths() {
		assert.FileExists(t, filepath.Join(dir, filepath.FromSlash(p)))
	}
	assert.Contains(t, out, "14/14 documents written")
	assert.Contains(t, out, "└── README.md")
	assert.NoFileExists(t, filepath.Join(dir, filepath.FromSlash(manifest.Path)))
}

func TestGenerate_IsDefaultCommand(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, "--base-dir", dir)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "README.md"))
}

func TestGenerate_DryRunTouchesNothing(t *testing.T) {
	dir := t.TempDir()
	out, err := run(t, "generate", "-d", dir, "--dry-run")
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.Contains(t, out, "Dry run")
	assert.Contains(t, out, "docs/operations/troubleshooting.md")
}

func TestGenerate_InvalidOverrideAbortsBeforeWriting(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "override.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("ai_models: []\n"), 0o600))

	_, err := run(t, "generate", "-d", dir, "-c", cfgPath)
	require.ErrorIs(t, err, config.ErrConfigInvalid)
	assert.Equal(t, 7, exitCode(err))
	assert.NoDirExists(t, filepath.Join(dir, "docs"))
}

func TestGenerate_UnknownKeyRejected(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "override.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("servcies: {}\n"), 0o600))

	_, err := run(t, "generate", "-d", dir, "-c", cfgPath)
	require.Error(t, err)
	assert.Equal(t, 7, exitCode(err))
}

func TestGenerate_MissingConfigFile(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, "generate", "-d", dir, "-c", filepath.Join(dir, "absent.yaml"))
	require.Error(t, err)
	assert.Equal(t, 4, exitCode(err))
}

func TestGenerate_FlagValidation(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		args []string
	}{
		{"zero jobs", []string{"generate", "-d", dir, "--jobs", "0"}},
		{"watch without config", []string{"generate", "-d", dir, "--watch"}},
		{"watch with dry run", []string{"generate", "-d", dir, "-c", "x.yaml", "--watch", "--dry-run"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			require.Error(t, err)
			assert.Equal(t, 2, exitCode(err))
		})
	}
}

func TestGenerate_ManifestAndMetrics(t *testing.T) {
	dir := t.TempDir()
	metricsPath := filepath.Join(t.TempDir(), "stackdocs.prom")

	_, err := run(t, "generate", "-d", dir, "--manifest", "--metrics-file", metricsPath)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(manifest.Path)))
	require.NoError(t, err)
	m, err := manifest.FromJSON(data)
	require.NoError(t, err)
	assert.Len(t, m.Outputs.Documents, len(render.Documents()))

	prom, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	assert.Contains(t, string(prom), "stackdocs_")
}

func TestInit_ThenGeneratePicksUpOverride(t *testing.T) {
	dir := t.TempDir()
	out, err := run(t, "init", "-d", dir)
	require.NoError(t, err)
	cfgPath := filepath.Join(dir, DefaultConfigName)
	assert.Contains(t, out, cfgPath)

	_, err = run(t, "init", "-d", dir)
	require.Error(t, err)
	assert.Equal(t, 2, exitCode(err))

	_, err = run(t, "init", "-d", dir, "--force")
	require.NoError(t, err)

	ov, err := config.LoadOverride(cfgPath)
	require.NoError(t, err)
	cfg, err := config.Build(ov, testTime)
	require.NoError(t, err)
	assert.Equal(t, config.Defaults().Snapshot(), cfg.Snapshot())

	data, err := os.ReadFile(cfgPath)
	require.NoError(t, err)
	edited := strings.Replace(string(data), "192.168.1.101", "10.9.8.7", 1)
	require.NoError(t, os.WriteFile(cfgPath, []byte(edited), 0o600))

	_, err = run(t, "generate", "-d", dir)
	require.NoError(t, err)
	readme, err := os.ReadFile(filepath.Join(dir, "README.md"))
	require.NoError(t, err)
	assert.Contains(t, string(readme), "10.9.8.7:8080")
}

func TestValidate(t *testing.T) {
	out, err := run(t, "validate", "-d", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration valid (built-in defaults)")
	assert.Contains(t, out, "OpenWebUI → 192.168.1.101:8080")

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("services:\n  grafana:\n    namespace: nowhere\n"), 0o600))
	_, err = run(t, "validate", "-c", cfgPath)
	require.ErrorIs(t, err, config.ErrConfigInvalid)
	assert.NoDirExists(t, filepath.Join(dir, "docs"))
}

func TestPaths(t *testing.T) {
	out, err := run(t, "paths")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, len(render.Documents()))
	assert.True(t, strings.HasPrefix(lines[0], "README.md"))
	assert.Contains(t, out, "0755")

	out, err = run(t, "paths", "--dirs")
	require.NoError(t, err)
	assert.Contains(t, out, "scripts/documentation/")
}
