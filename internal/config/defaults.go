package config

import (
	"fmt"

	"github.com/jinzhu/copier"
)

// defaultConfig is the built-in topology. It is only ever read through Defaults,
// which hands out deep copies.
var defaultConfig = Config{
	Project: Project{
		Name:        "Ollama Kubernetes Stack",
		Description: "Enterprise-ready Kubernetes deployment for Ollama AI stack",
		Version:     "1.0.0",
		Author:      "Enterprise DevOps Team",
		License:     "MIT",
	},
	Kubernetes: Kubernetes{
		ClusterType: "MicroK8s",
		Namespaces:  []string{"ollama-stack", "observability"},
	},
	Services: map[string]Service{
		ServiceOpenWebUI: {ExternalIP: "192.168.1.101", Port: 8080, Namespace: "ollama-stack", DisplayName: "OpenWebUI"},
		ServiceGrafana:   {ExternalIP: "192.168.1.102", Port: 3000, Namespace: "observability", DisplayName: "Grafana"},
		ServiceTailscale: {ExternalIP: "100.102.114.95", Port: 8080, DisplayName: "Tailscale"},
	},
	Hardware: Hardware{
		CPU:       "AMD Ryzen AI 9 HX 370",
		RAM:       "96GB",
		Storage:   "1TB NVMe SSD",
		MountPath: "/mnt/evo4t",
	},
	AIModels: []string{"CodeLlama", "Llama3.2:3b", "Gemma2:4b"},
}

// Defaults returns a fresh copy of the built-in configuration.
func Defaults() *Config {
	return defaultConfig.Clone()
}

// Clone returns a deep copy; mutating the copy never affects c.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}
	out := &Config{}
	if err := copier.CopyWithOption(out, c, copier.Option{DeepCopy: true}); err != nil {
		// Config holds only plain values, maps and slices.
		panic(fmt.Sprintf("config clone: %v", err))
	}
	return out
}
