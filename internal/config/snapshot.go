package config

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
)

// Snapshot computes a stable hash of every fact the documents render. The
// timestamp is excluded. Slices are hashed in order since order is rendered.
func (c *Config) Snapshot() string {
	if c == nil {
		return ""
	}
	h := sha256.New()
	w := func(parts ...string) { h.Write([]byte(strings.Join(parts, "="))); h.Write([]byte{0}) }
	w("project.name", c.Project.Name)
	w("project.description", c.Project.Description)
	w("project.version", c.Project.Version)
	w("project.author", c.Project.Author)
	w("project.license", c.Project.License)
	w("kubernetes.cluster_type", c.Kubernetes.ClusterType)
	w("kubernetes.namespaces", strings.Join(c.Kubernetes.Namespaces, "\x1f"))
	for _, key := range c.ServiceKeys() {
		s := c.Services[key]
		w("services."+key, s.ExternalIP, strconv.Itoa(s.Port), s.Namespace, s.DisplayName)
	}
	w("hardware", c.Hardware.CPU, c.Hardware.RAM, c.Hardware.Storage, c.Hardware.MountPath)
	w("ai_models", strings.Join(c.AIModels, "\x1f"))
	return hex.EncodeToString(h.Sum(nil))
}
