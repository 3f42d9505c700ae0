package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults_Valid(t *testing.T) {
	cfg, err := Build(nil, time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, "2026-03-04", cfg.Timestamp)
	assert.Equal(t, "MicroK8s", cfg.Kubernetes.ClusterType)
	assert.Equal(t, []string{"CodeLlama", "Llama3.2:3b", "Gemma2:4b"}, cfg.AIModels)
	assert.Equal(t, "192.168.1.101:8080", cfg.Services[ServiceOpenWebUI].HostPort())
	assert.Equal(t, "http://192.168.1.102:3000", cfg.Services[ServiceGrafana].URL())
	assert.Equal(t, "100.102.114.95:8080", cfg.Services[ServiceTailscale].HostPort())
}

func TestDefaults_ReturnsIndependentCopies(t *testing.T) {
	a := Defaults()
	a.AIModels[0] = "mutated"
	a.Kubernetes.Namespaces = append(a.Kubernetes.Namespaces, "extra")
	a.Services[ServiceGrafana] = Service{ExternalIP: "10.0.0.1", Port: 1}

	b := Defaults()
	assert.Equal(t, "CodeLlama", b.AIModels[0])
	assert.Equal(t, []string{"ollama-stack", "observability"}, b.Kubernetes.Namespaces)
	assert.Equal(t, 3000, b.Services[ServiceGrafana].Port)
}

func TestServiceLabel(t *testing.T) {
	assert.Equal(t, "Grafana", Service{DisplayName: "Grafana"}.Label("grafana"))
	assert.Equal(t, "Prometheus", Service{}.Label("prometheus"))
	assert.Equal(t, "Node Exporter", Service{}.Label("node_exporter"))
}

func TestJoinList_KeepsOrderAndDuplicates(t *testing.T) {
	assert.Equal(t, "b, a, b", JoinList([]string{"b", "a", "b"}))
	assert.Empty(t, JoinList(nil))
}

func TestServiceKeys_Sorted(t *testing.T) {
	cfg := Defaults()
	assert.Equal(t, []string{"grafana", "openwebui", "tailscale"}, cfg.ServiceKeys())
}
