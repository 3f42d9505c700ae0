package config

import (
	"errors"
	"fmt"
	"strings"

	ferrors "git.home.luguber.info/inful/stackdocs/internal/foundation/errors"
)

// ErrConfigInvalid is matched by errors.Is on every configuration rejection.
var ErrConfigInvalid = errors.New("configuration invalid")

// Validate checks the cross-field invariants the documents rely on. All
// problems are collected and reported in one error.
func Validate(cfg *Config) error {
	if cfg == nil {
		return ferrors.ConfigError("configuration is nil").WithCause(ErrConfigInvalid).Build()
	}
	v := &configurationValidator{config: cfg}
	v.validateProject()
	v.validateKubernetes()
	v.validateServices()
	v.validateHardware()
	v.validateModels()
	if len(v.problems) == 0 {
		return nil
	}
	return ferrors.WrapError(fmt.Errorf("%w: %s", ErrConfigInvalid, strings.Join(v.problems, "; ")), ferrors.CategoryConfig, "invalid configuration").
		Fatal().
		WithContext("problems", v.problems).
		Build()
}

type configurationValidator struct {
	config   *Config
	problems []string
}

func (cv *configurationValidator) addf(format string, args ...any) {
	cv.problems = append(cv.problems, fmt.Sprintf(format, args...))
}

func (cv *configurationValidator) required(field, value string) {
	if strings.TrimSpace(value) == "" {
		cv.addf("%s is required", field)
	}
}

func (cv *configurationValidator) validateProject() {
	p := cv.config.Project
	cv.required("project.name", p.Name)
	cv.required("project.version", p.Version)
}

func (cv *configurationValidator) validateKubernetes() {
	k := cv.config.Kubernetes
	cv.required("kubernetes.cluster_type", k.ClusterType)
	if len(k.Namespaces) == 0 {
		cv.addf("kubernetes.namespaces must not be empty")
		return
	}
	seen := make(map[string]bool, len(k.Namespaces))
	for i, ns := range k.Namespaces {
		if strings.TrimSpace(ns) == "" {
			cv.addf("kubernetes.namespaces[%d] is blank", i)
			continue
		}
		if seen[ns] {
			cv.addf("kubernetes.namespaces: duplicate namespace %q", ns)
		}
		seen[ns] = true
	}
}

func (cv *configurationValidator) validateServices() {
	cfg := cv.config
	for _, key := range RequiredServices {
		if _, ok := cfg.Services[key]; !ok {
			cv.addf("services.%s is required", key)
		}
	}
	for _, key := range namespacedServices {
		if svc, ok := cfg.Services[key]; ok && svc.Namespace == "" {
			cv.addf("services.%s.namespace is required", key)
		}
	}
	known := make(map[string]bool, len(cfg.Kubernetes.Namespaces))
	for _, ns := range cfg.Kubernetes.Namespaces {
		known[ns] = true
	}
	for _, key := range cfg.ServiceKeys() {
		svc := cfg.Services[key]
		if strings.TrimSpace(svc.ExternalIP) == "" {
			cv.addf("services.%s.external_ip is required", key)
		}
		if svc.Port < 1 || svc.Port > 65535 {
			cv.addf("services.%s.port %d out of range 1-65535", key, svc.Port)
		}
		if svc.Namespace != "" && !known[svc.Namespace] {
			cv.addf("services.%s.namespace %q is not declared in kubernetes.namespaces", key, svc.Namespace)
		}
	}
}

func (cv *configurationValidator) validateHardware() {
	h := cv.config.Hardware
	cv.required("hardware.cpu", h.CPU)
	cv.required("hardware.ram", h.RAM)
	cv.required("hardware.storage", h.Storage)
	cv.required("hardware.mount_path", h.MountPath)
}

func (cv *configurationValidator) validateModels() {
	if len(cv.config.AIModels) == 0 {
		cv.addf("ai_models must not be empty")
		return
	}
	for i, m := range cv.config.AIModels {
		if strings.TrimSpace(m) == "" {
			cv.addf("ai_models[%d] is blank", i)
		}
	}
}
