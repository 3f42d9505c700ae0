package render

import (
	"io/fs"

	"git.home.luguber.info/inful/stackdocs/internal/config"
)

// Kind identifies a generated document.
type Kind string

const (
	KindReadme            Kind = "readme"
	KindChangelog         Kind = "changelog"
	KindContributing      Kind = "contributing"
	KindArchitecture      Kind = "architecture"
	KindMermaid           Kind = "mermaid"
	KindInstallation      Kind = "installation"
	KindOperations        Kind = "operations"
	KindDiagramScript     Kind = "diagram-script"
	KindDocsIndex         Kind = "docs-index"
	KindTroubleshooting   Kind = "troubleshooting"
	KindDevelopment       Kind = "development"
	KindASCIIArchitecture Kind = "ascii-architecture"
	KindASCIINetworkFlow  Kind = "ascii-network-flow"
	KindSystemStatus      Kind = "system-status"
)

const (
	// ModeDocument is the file mode of markdown documents.
	ModeDocument fs.FileMode = 0o644
	// ModeScript is the file mode of executable scripts.
	ModeScript fs.FileMode = 0o755
)

// Func renders one document body.
type Func func(*config.Config) (string, error)

// Spec binds a document kind to its durable output path and renderer.
type Spec struct {
	Kind   Kind
	Path   string // slash-separated, relative to the base directory
	Mode   fs.FileMode
	Render Func
}

// Document is a rendered artifact ready for the emitter.
type Document struct {
	Kind    Kind
	Path    string
	Content string
	Mode    fs.FileMode
}

// Markdown reports whether the document is a markdown file.
func (d Document) Markdown() bool {
	return isMarkdown(d.Path)
}

// Documents returns the registry in generation order. The paths are part of
// the tool's output contract.
func Documents() []Spec {
	return []Spec{
		{Kind: KindReadme, Path: "README.md", Mode: ModeDocument, Render: Readme},
		{Kind: KindChangelog, Path: "CHANGELOG.md", Mode: ModeDocument, Render: Changelog},
		{Kind: KindContributing, Path: "CONTRIBUTING.md", Mode: ModeDocument, Render: Contributing},
		{Kind: KindArchitecture, Path: "docs/architecture/overview.md", Mode: ModeDocument, Render: Architecture},
		{Kind: KindMermaid, Path: "docs/architecture/diagrams/mermaid/system_diagrams.md", Mode: ModeDocument, Render: Mermaid},
		{Kind: KindInstallation, Path: "docs/deployment/installation.md", Mode: ModeDocument, Render: Installation},
		{Kind: KindOperations, Path: "docs/operations/maintenance.md", Mode: ModeDocument, Render: Operations},
		{Kind: KindDiagramScript, Path: "docs/architecture/diagrams/generate_python_diagrams.py", Mode: ModeScript, Render: DiagramScript},
		{Kind: KindDocsIndex, Path: "docs/README.md", Mode: ModeDocument, Render: DocsIndex},
		{Kind: KindTroubleshooting, Path: "docs/operations/troubleshooting.md", Mode: ModeDocument, Render: Troubleshooting},
		{Kind: KindDevelopment, Path: "docs/development/setup.md", Mode: ModeDocument, Render: Development},
		{Kind: KindASCIIArchitecture, Path: "docs/architecture/diagrams/ascii_architecture.md", Mode: ModeDocument, Render: ASCIIArchitecture},
		{Kind: KindASCIINetworkFlow, Path: "docs/architecture/diagrams/ascii_network_flow.md", Mode: ModeDocument, Render: ASCIINetworkFlow},
		{Kind: KindSystemStatus, Path: "docs/architecture/diagrams/system_status.md", Mode: ModeDocument, Render: SystemStatus},
	}
}

// Paths returns the output path of every registered document, in order.
func Paths() []string {
	specs := Documents()
	out := make([]string, len(specs))
	for i, s := range specs {
		out[i] = s.Path
	}
	return out
}

// Build renders the document described by s.
func (s Spec) Build(cfg *config.Config) (Document, error) {
	content, err := s.Render(cfg)
	if err != nil {
		return Document{}, err
	}
	return Document{Kind: s.Kind, Path: s.Path, Content: content, Mode: s.Mode}, nil
}

// Readme renders README.md.
func Readme(cfg *config.Config) (string, error) { return execute("readme.md.tmpl", cfg) }

// Changelog renders CHANGELOG.md.
func Changelog(cfg *config.Config) (string, error) { return execute("changelog.md.tmpl", cfg) }

// Contributing renders CONTRIBUTING.md.
func Contributing(cfg *config.Config) (string, error) { return execute("contributing.md.tmpl", cfg) }

// Architecture renders the architecture overview.
func Architecture(cfg *config.Config) (string, error) { return execute("architecture.md.tmpl", cfg) }

// Mermaid renders the bundle of four mermaid diagrams.
func Mermaid(cfg *config.Config) (string, error) { return execute("mermaid.md.tmpl", cfg) }

// Installation renders the installation guide.
func Installation(cfg *config.Config) (string, error) { return execute("installation.md.tmpl", cfg) }

// Operations renders the maintenance guide.
func Operations(cfg *config.Config) (string, error) { return execute("operations.md.tmpl", cfg) }

// DiagramScript renders the python source that draws the architecture
// diagrams. It is written, never executed.
func DiagramScript(cfg *config.Config) (string, error) { return execute("diagram_script.py.tmpl", cfg) }

// DocsIndex renders docs/README.md.
func DocsIndex(cfg *config.Config) (string, error) { return execute("docs_index.md.tmpl", cfg) }

func Troubleshooting(cfg *config.Config) (string, error) {
	return execute("troubleshooting.md.tmpl", cfg)
}

func Development(cfg *config.Config) (string, error) { return execute("development.md.tmpl", cfg) }

func ASCIIArchitecture(cfg *config.Config) (string, error) {
	return execute("ascii_architecture.md.tmpl", cfg)
}

func ASCIINetworkFlow(cfg *config.Config) (string, error) {
	return execute("ascii_network_flow.md.tmpl", cfg)
}

func SystemStatus(cfg *config.Config) (string, error) { return execute("system_status.md.tmpl", cfg) }
