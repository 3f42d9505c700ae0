package config

// Well-known service keys. Every generated document references these three.
const (
	ServiceOpenWebUI = "openwebui"
	ServiceGrafana   = "grafana"
	ServiceTailscale = "tailscale"
)

// RequiredServices lists the service keys a valid configuration must carry.
var RequiredServices = []string{ServiceOpenWebUI, ServiceGrafana, ServiceTailscale}

// namespacedServices must reference a namespace; documents group them by it.
var namespacedServices = []string{ServiceOpenWebUI, ServiceGrafana}

// TimestampLayout is the layout of the generation timestamp stamped into every document.
const TimestampLayout = "2006-01-02"

// Config is the single source of truth for one generation run. It is built
// by Build and must be treated as read-only afterwards.
type Config struct {
	Project    Project            `yaml:"project"`
	Kubernetes Kubernetes         `yaml:"kubernetes"`
	Services   map[string]Service `yaml:"services"`
	Hardware   Hardware           `yaml:"hardware"`
	AIModels   []string           `yaml:"ai_models"`

	// Timestamp is set once per run from the generator clock.
	Timestamp string `yaml:"-"`
}

// Project holds repository metadata.
type Project struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Version     string `yaml:"version"`
	Author      string `yaml:"author"`
	License     string `yaml:"license"`
}

// Kubernetes describes the target cluster.
type Kubernetes struct {
	ClusterType string   `yaml:"cluster_type"`
	Namespaces  []string `yaml:"namespaces"` // ordered, unique
}

// Service is one externally reachable endpoint of the stack.
type Service struct {
	ExternalIP  string `yaml:"external_ip"`
	Port        int    `yaml:"port"`
	Namespace   string `yaml:"namespace,omitempty"` // optional; must exist in Kubernetes.Namespaces
	DisplayName string `yaml:"display_name,omitempty"`
}

// Hardware describes the physical host.
type Hardware struct {
	CPU       string `yaml:"cpu"`
	RAM       string `yaml:"ram"`
	Storage   string `yaml:"storage"`
	MountPath string `yaml:"mount_path"`
}
