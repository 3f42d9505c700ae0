package render

import (
	"fmt"
	"slices"

	"git.home.luguber.info/inful/stackdocs/internal/config"
)

type serviceView struct {
	Key       string
	Name      string
	IP        string
	Port      int
	HostPort  string
	URL       string
	Namespace string
}

// view is the only data templates see. Every value is already formatted.
type view struct {
	Project       config.Project
	ClusterType   string
	Namespaces    []string
	NamespaceList string

	OpenWebUI serviceView
	Grafana   serviceView
	Tailscale serviceView
	Services  []serviceView // every service, sorted by key
	Extra     []serviceView // services beyond the three well-known ones

	Models    []string
	ModelList string

	Hardware config.Hardware

	AppNamespace        string
	MonitoringNamespace string

	StatusHeader []string
	StatusRows   [][]string

	Timestamp string
}

func newServiceView(key string, s config.Service) serviceView {
	return serviceView{
		Key:       key,
		Name:      s.Label(key),
		IP:        s.ExternalIP,
		Port:      s.Port,
		HostPort:  s.HostPort(),
		URL:       s.URL(),
		Namespace: s.Namespace,
	}
}

func newView(cfg *config.Config) (*view, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration is nil")
	}
	v := &view{
		Project:       cfg.Project,
		ClusterType:   cfg.Kubernetes.ClusterType,
		Namespaces:    slices.Clone(cfg.Kubernetes.Namespaces),
		NamespaceList: config.JoinList(cfg.Kubernetes.Namespaces),
		Models:        slices.Clone(cfg.AIModels),
		ModelList:     config.JoinList(cfg.AIModels),
		Hardware:      cfg.Hardware,
		Timestamp:     cfg.Timestamp,
	}
	for _, key := range config.RequiredServices {
		if _, ok := cfg.Service(key); !ok {
			return nil, fmt.Errorf("service %q is not configured", key)
		}
	}
	for _, key := range cfg.ServiceKeys() {
		sv := newServiceView(key, cfg.Services[key])
		v.Services = append(v.Services, sv)
		switch key {
		case config.ServiceOpenWebUI:
			v.OpenWebUI = sv
		case config.ServiceGrafana:
			v.Grafana = sv
		case config.ServiceTailscale:
			v.Tailscale = sv
		default:
			v.Extra = append(v.Extra, sv)
		}
	}
	v.AppNamespace = v.OpenWebUI.Namespace
	v.MonitoringNamespace = v.Grafana.Namespace
	v.StatusHeader, v.StatusRows = statusTable(v)
	return v, nil
}

func statusTable(v *view) ([]string, [][]string) {
	header := []string{"Component", "External Access", "Namespace", "Status"}
	ns := func(s string) string {
		if s == "" {
			return "mesh"
		}
		return s
	}
	rows := [][]string{
		{v.OpenWebUI.Name, v.OpenWebUI.HostPort, ns(v.OpenWebUI.Namespace), "ready"},
		{"Ollama API", "internal only", v.AppNamespace, "ready"},
		{v.Grafana.Name, v.Grafana.HostPort, ns(v.Grafana.Namespace), "ready"},
		{"Prometheus", "internal only", v.MonitoringNamespace, "ready"},
		{v.Tailscale.Name, v.Tailscale.HostPort, ns(v.Tailscale.Namespace), "ready"},
	}
	for _, s := range v.Extra {
		rows = append(rows, []string{s.Name, s.HostPort, ns(s.Namespace), "ready"})
	}
	return header, rows
}
