package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractLinks_InlineLink(t *testing.T) {
	links := ExtractLinks([]byte("See [API](api.md) for details."))
	require.Len(t, links, 1)
	require.Equal(t, LinkKindInline, links[0].Kind)
	require.Equal(t, "api.md", links[0].Destination)
}

func TestExtractLinks_ImageLink(t *testing.T) {
	links := ExtractLinks([]byte("![Diagram](diagram.png)"))
	require.Len(t, links, 1)
	require.Equal(t, LinkKindImage, links[0].Kind)
}

func TestExtractLinks_AutoLink(t *testing.T) {
	links := ExtractLinks([]byte("<https://example.com/path>"))
	require.Len(t, links, 1)
	require.Equal(t, LinkKindAuto, links[0].Kind)
	require.Equal(t, "https://example.com/path", links[0].Destination)
}

func TestExtractLinks_ReferenceLinkUsageAndDefinition(t *testing.T) {
	links := ExtractLinks([]byte("See [API][ref].\n\n[ref]: api.md\n"))
	require.Len(t, links, 2)
	require.Equal(t, LinkKindInline, links[0].Kind)
	require.Equal(t, LinkKindReferenceDefinition, links[1].Kind)
	require.Equal(t, "api.md", links[1].Destination)
}

func TestExtractLinks_SkipsInlineCodeAndCodeBlocks(t *testing.T) {
	src := []byte("" +
		"Inline code: `[Link](./ignored-inline.md)`\n" +
		"\n" +
		"```\n" +
		"[Link](./ignored-fence.md)\n" +
		"```\n" +
		"\n" +
		"Real: [OK](./real.md)\n")

	links := ExtractLinks(src)
	require.Len(t, links, 1)
	require.Equal(t, "./real.md", links[0].Destination)
}

func TestLinkLocalTarget(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		dest string
		want string
		ok   bool
	}{
		{name: "sibling", doc: "docs/operations/maintenance.md", dest: "troubleshooting.md", want: "docs/operations/troubleshooting.md", ok: true},
		{name: "parent with fragment", doc: "docs/README.md", dest: "../README.md#-quick-start", want: "README.md", ok: true},
		{name: "directory", doc: "README.md", dest: "docs/operations/", want: "docs/operations", ok: true},
		{name: "escaping", doc: "README.md", dest: "../other.md", want: "../other.md", ok: true},
		{name: "external", doc: "README.md", dest: "https://helm.sh/docs.md", ok: false},
		{name: "anchor only", doc: "README.md", dest: "#features", ok: false},
		{name: "non markdown", doc: "README.md", dest: "LICENSE", ok: false},
		{name: "absolute", doc: "README.md", dest: "/etc/motd.md", ok: false},
		{name: "escaped space", doc: "docs/README.md", dest: "a%20b.md", want: "docs/a b.md", ok: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Link{Kind: LinkKindInline, Destination: tt.dest}.LocalTarget(tt.doc)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestLocalTargets_Dedup(t *testing.T) {
	body := []byte("[a](CHANGELOG.md) [b](./CHANGELOG.md) [c](https://x.io) ![i](docs/x.md) [d](docs/)")
	assert.Equal(t, []string{"CHANGELOG.md", "docs"}, LocalTargets("README.md", body))
}
