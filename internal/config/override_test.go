package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ferrors "git.home.luguber.info/inful/stackdocs/internal/foundation/errors"
)

var testNow = time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)

func TestApplyTo_ServiceMergesPerField(t *testing.T) {
	ov, _, err := DecodeOverride(map[string]any{
		"services": map[string]any{
			"grafana": map[string]any{"port": 3300},
		},
	})
	require.NoError(t, err)

	cfg, err := Build(ov, testNow)
	require.NoError(t, err)
	g := cfg.Services[ServiceGrafana]
	assert.Equal(t, 3300, g.Port)
	assert.Equal(t, "observability", g.Namespace)
	assert.Equal(t, "192.168.1.102", g.ExternalIP)
}

func TestApplyTo_AddsNewServiceAndReplacesLists(t *testing.T) {
	ov, _, err := DecodeOverride(map[string]any{
		"kubernetes": map[string]any{"namespaces": []any{"observability", "ollama-stack", "ingress"}},
		"services": map[string]any{
			"prometheus": map[string]any{"ip": "192.168.1.103", "port": 9090, "namespace": "observability"},
		},
		"ai_models": []any{"Gemma2:4b", "CodeLlama", "Llama3.2:3b"},
	})
	require.NoError(t, err)

	cfg, err := Build(ov, testNow)
	require.NoError(t, err)
	assert.Equal(t, []string{"observability", "ollama-stack", "ingress"}, cfg.Kubernetes.Namespaces)
	assert.Equal(t, []string{"Gemma2:4b", "CodeLlama", "Llama3.2:3b"}, cfg.AIModels)
	assert.Equal(t, "192.168.1.103:9090", cfg.Services["prometheus"].HostPort())
	assert.Len(t, cfg.Services, 4)
}

func TestApplyTo_ExternalIPWinsOverAlias(t *testing.T) {
	ip, ext := "10.0.0.1", "10.0.0.2"
	ov := &Override{Services: map[string]ServiceOverride{ServiceTailscale: {IP: &ip, ExternalIP: &ext}}}
	cfg := Defaults()
	ov.ApplyTo(cfg)
	assert.Equal(t, "10.0.0.2", cfg.Services[ServiceTailscale].ExternalIP)
}

func TestApplyTo_DoesNotAliasOverrideSlices(t *testing.T) {
	models := []string{"A", "B"}
	ov := &Override{AIModels: &models}
	cfg := Defaults()
	ov.ApplyTo(cfg)
	models[0] = "Z"
	assert.Equal(t, []string{"A", "B"}, cfg.AIModels)
}

func TestDecodeOverride_UnknownKeyRejected(t *testing.T) {
	_, _, err := DecodeOverride(map[string]any{
		"services": map[string]any{"grafana": map[string]any{"prot": 1}},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConfigInvalid))
	assert.Equal(t, ferrors.CategoryConfig, ferrors.GetCategory(err))
}

func TestDecodeOverride_LegacyFlatKeys(t *testing.T) {
	raw := map[string]any{
		"project_name": "Home Lab",
		"version":      "2.0.0",
		"project":      map[string]any{"version": "3.0.0"},
	}
	ov, res, err := DecodeOverride(raw)
	require.NoError(t, err)
	require.NotNil(t, ov.Project)
	assert.Equal(t, "Home Lab", *ov.Project.Name)
	assert.Equal(t, "3.0.0", *ov.Project.Version)
	assert.Len(t, res.Warnings, 2)
}

func TestDecodeOverride_Empty(t *testing.T) {
	ov, _, err := DecodeOverride(nil)
	require.NoError(t, err)
	cfg, err := Build(ov, testNow)
	require.NoError(t, err)
	assert.Equal(t, Defaults().Snapshot(), cfg.Snapshot())
}
