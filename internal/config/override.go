package config

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"

	ferrors "git.home.luguber.info/inful/stackdocs/internal/foundation/errors"
)

// Override is a partial configuration. Nil fields leave the defaults untouched.
type Override struct {
	Project    *ProjectOverride           `mapstructure:"project" yaml:"project,omitempty"`
	Kubernetes *KubernetesOverride        `mapstructure:"kubernetes" yaml:"kubernetes,omitempty"`
	Services   map[string]ServiceOverride `mapstructure:"services" yaml:"services,omitempty"`
	Hardware   *HardwareOverride          `mapstructure:"hardware" yaml:"hardware,omitempty"`
	AIModels   *[]string                  `mapstructure:"ai_models" yaml:"ai_models,omitempty"`
}

type ProjectOverride struct {
	Name        *string `mapstructure:"name" yaml:"name,omitempty"`
	Description *string `mapstructure:"description" yaml:"description,omitempty"`
	Version     *string `mapstructure:"version" yaml:"version,omitempty"`
	Author      *string `mapstructure:"author" yaml:"author,omitempty"`
	License     *string `mapstructure:"license" yaml:"license,omitempty"`
}

type KubernetesOverride struct {
	ClusterType *string   `mapstructure:"cluster_type" yaml:"cluster_type,omitempty"`
	Namespaces  *[]string `mapstructure:"namespaces" yaml:"namespaces,omitempty"`
}

// ServiceOverride merges per field into an existing service, or creates one.
// IP is accepted as a shorthand for ExternalIP; ExternalIP wins when both are set.
type ServiceOverride struct {
	ExternalIP  *string `mapstructure:"external_ip" yaml:"external_ip,omitempty"`
	IP          *string `mapstructure:"ip" yaml:"ip,omitempty"`
	Port        *int    `mapstructure:"port" yaml:"port,omitempty"`
	Namespace   *string `mapstructure:"namespace" yaml:"namespace,omitempty"`
	DisplayName *string `mapstructure:"display_name" yaml:"display_name,omitempty"`
}

type HardwareOverride struct {
	CPU       *string `mapstructure:"cpu" yaml:"cpu,omitempty"`
	RAM       *string `mapstructure:"ram" yaml:"ram,omitempty"`
	Storage   *string `mapstructure:"storage" yaml:"storage,omitempty"`
	MountPath *string `mapstructure:"mount_path" yaml:"mount_path,omitempty"`
}

// DecodeOverride converts a generic mapping (as produced by a YAML or JSON
// parser) into a typed Override. Unknown keys are rejected.
func DecodeOverride(raw map[string]any) (*Override, *NormalizationResult, error) {
	res := NormalizeRaw(raw)
	ov := &Override{}
	if len(raw) == 0 {
		return ov, res, nil
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           ov,
		TagName:          "mapstructure",
		ErrorUnused:      true,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, res, ferrors.InternalError("create override decoder").WithCause(err).Build()
	}
	if err := dec.Decode(raw); err != nil {
		return nil, res, ferrors.WrapError(fmt.Errorf("%w: %w", ErrConfigInvalid, err), ferrors.CategoryConfig, "invalid configuration override").
			Fatal().
			Build()
	}
	return ov, res, nil
}

// ApplyTo merges the override into cfg in place.
func (o *Override) ApplyTo(cfg *Config) {
	if o == nil || cfg == nil {
		return
	}
	if p := o.Project; p != nil {
		setString(&cfg.Project.Name, p.Name)
		setString(&cfg.Project.Description, p.Description)
		setString(&cfg.Project.Version, p.Version)
		setString(&cfg.Project.Author, p.Author)
		setString(&cfg.Project.License, p.License)
	}
	if k := o.Kubernetes; k != nil {
		setString(&cfg.Kubernetes.ClusterType, k.ClusterType)
		if k.Namespaces != nil {
			cfg.Kubernetes.Namespaces = append([]string(nil), (*k.Namespaces)...)
		}
	}
	if len(o.Services) > 0 && cfg.Services == nil {
		cfg.Services = make(map[string]Service, len(o.Services))
	}
	for key, so := range o.Services {
		svc := cfg.Services[key]
		setString(&svc.ExternalIP, so.IP)
		setString(&svc.ExternalIP, so.ExternalIP)
		if so.Port != nil {
			svc.Port = *so.Port
		}
		setString(&svc.Namespace, so.Namespace)
		setString(&svc.DisplayName, so.DisplayName)
		cfg.Services[key] = svc
	}
	if h := o.Hardware; h != nil {
		setString(&cfg.Hardware.CPU, h.CPU)
		setString(&cfg.Hardware.RAM, h.RAM)
		setString(&cfg.Hardware.Storage, h.Storage)
		setString(&cfg.Hardware.MountPath, h.MountPath)
	}
	if o.AIModels != nil {
		cfg.AIModels = append([]string(nil), (*o.AIModels)...)
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
