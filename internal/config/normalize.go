package config

import "fmt"

// NormalizationResult captures adjustments made to a raw override before decoding.
type NormalizationResult struct{ Warnings []string }

// legacyProjectKeys are flat top-level keys accepted from older override files
// and moved under "project".
var legacyProjectKeys = map[string]string{
	"project_name": "name",
	"description":  "description",
	"version":      "version",
	"author":       "author",
	"license":      "license",
}

// NormalizeRaw rewrites legacy flat project keys into the nested project
// mapping. An explicit nested value wins over the legacy one.
func NormalizeRaw(raw map[string]any) *NormalizationResult {
	res := &NormalizationResult{}
	if raw == nil {
		return res
	}
	for legacy, field := range legacyProjectKeys {
		v, ok := raw[legacy]
		if !ok {
			continue
		}
		delete(raw, legacy)
		project, _ := raw["project"].(map[string]any)
		if project == nil {
			if existing, present := raw["project"]; present && existing != nil {
				// Leave the malformed value for the decoder to reject.
				res.Warnings = append(res.Warnings, fmt.Sprintf("%s: ignored, project is not a mapping", legacy))
				continue
			}
			project = map[string]any{}
			raw["project"] = project
		}
		if _, set := project[field]; set {
			res.Warnings = append(res.Warnings, fmt.Sprintf("%s: ignored, project.%s is set", legacy, field))
			continue
		}
		project[field] = v
		res.Warnings = append(res.Warnings, fmt.Sprintf("%s: deprecated, use project.%s", legacy, field))
	}
	return res
}
