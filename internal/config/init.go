package config

import (
	"bytes"

	"gopkg.in/yaml.v3"
)

const initHeader = "# stackdocs configuration override.\n# Every key is optional; omitted keys keep the built-in defaults.\n# ${VAR} references are expanded from the environment and .env files.\n"

// MarshalOverrideYAML renders cfg in the full override shape accepted by
// LoadOverride. The timestamp is never written.
func MarshalOverrideYAML(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(initHeader)
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
