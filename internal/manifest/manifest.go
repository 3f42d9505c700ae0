// Package manifest records what a generation run consumed and produced.
package manifest

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/inful/mdfp"

	"git.home.luguber.info/inful/stackdocs/internal/storage"
)

// Path is where the manifest is written, relative to the base directory.
const Path = "docs/.stackdocs-manifest.json"

// RunManifest represents a complete record of one run's inputs and outputs.
type RunManifest struct {
	ID          string    `json:"id"`
	Timestamp   time.Time `json:"timestamp"`
	GeneratedOn string    `json:"generated_on"`
	ToolVersion string    `json:"tool_version"`
	Inputs      Inputs    `json:"inputs"`
	Outputs     Outputs   `json:"outputs"`
	Status      string    `json:"status"`
	Duration    int64     `json:"duration_ms"`
}

// Inputs captures everything the documents were derived from.
type Inputs struct {
	ConfigHash   string `json:"config_hash"`
	ConfigSource string `json:"config_source,omitempty"` // override file, empty for defaults
}

// Outputs captures the written documents.
type Outputs struct {
	Documents []DocumentEntry `json:"documents"`
	Failed    []string        `json:"failed,omitempty"`
}

// DocumentEntry describes one written document.
type DocumentEntry struct {
	Kind        string `json:"kind"`
	Path        string `json:"path"`
	Bytes       int    `json:"bytes"`
	Fingerprint string `json:"fingerprint"`
}

// New starts a manifest with a fresh run id.
func New(now time.Time) *RunManifest {
	return &RunManifest{ID: uuid.NewString(), Timestamp: now.UTC()}
}

// Fingerprint returns the content fingerprint recorded for a document.
func Fingerprint(content string) string {
	return mdfp.CalculateFingerprintFromParts("", content)
}

// AddDocument records a written document.
func (m *RunManifest) AddDocument(kind, path, content string) {
	m.Outputs.Documents = append(m.Outputs.Documents, DocumentEntry{
		Kind:        kind,
		Path:        path,
		Bytes:       len(content),
		Fingerprint: Fingerprint(content),
	})
}

// ToJSON serializes the manifest to JSON.
func (m *RunManifest) ToJSON() ([]byte, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal manifest: %w", err)
	}
	return append(data, '\n'), nil
}

// FromJSON deserializes a manifest from JSON.
func FromJSON(data []byte) (*RunManifest, error) {
	var m RunManifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("unmarshal manifest: %w", err)
	}
	return &m, nil
}

// Hash computes a deterministic hash of the inputs and document
// fingerprints. Two runs with equal hashes produced identical output.
func (m *RunManifest) Hash() (string, error) {
	hashInput := struct {
		ConfigHash string          `json:"config_hash"`
		Documents  []DocumentEntry `json:"documents"`
		Failed     []string        `json:"failed"`
	}{
		ConfigHash: m.Inputs.ConfigHash,
		Documents:  m.Outputs.Documents,
		Failed:     m.Outputs.Failed,
	}
	data, err := json.Marshal(hashInput)
	if err != nil {
		return "", fmt.Errorf("marshal for hash: %w", err)
	}
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%x", hash), nil
}

// Write stores the manifest at Path.
func (m *RunManifest) Write(ctx context.Context, store storage.Store) error {
	data, err := m.ToJSON()
	if err != nil {
		return err
	}
	if err := store.MkdirAll(ctx, "docs"); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	if err := store.WriteFile(ctx, Path, data, 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}

// Read loads a previously written manifest.
func Read(ctx context.Context, store storage.Store) (*RunManifest, error) {
	data, err := store.ReadFile(ctx, Path)
	if err != nil {
		return nil, err
	}
	return FromJSON(data)
}
