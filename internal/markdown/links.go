package markdown

import (
	"net/url"
	"path"
	"strings"
)

type LinkKind string

const (
	LinkKindInline              LinkKind = "inline"
	LinkKindImage               LinkKind = "image"
	LinkKindAuto                LinkKind = "auto"
	LinkKindReferenceDefinition LinkKind = "reference_definition"
)

type Link struct {
	Kind        LinkKind
	Destination string
}

// LocalTarget resolves a relative link to a document or directory against
// the slash-separated path of the document containing it. Only destinations
// ending in ".md" or "/" (after dropping any fragment or query) are local
// targets; external URLs, pure anchors and absolute paths are not. The
// returned path is relative to the base directory and may start with ".."
// when the link leaves it.
func (l Link) LocalTarget(docPath string) (string, bool) {
	if l.Kind == LinkKindAuto || l.Kind == LinkKindImage {
		return "", false
	}
	dest := strings.TrimSpace(l.Destination)
	if dest == "" || strings.HasPrefix(dest, "#") || strings.HasPrefix(dest, "/") {
		return "", false
	}
	if u, err := url.Parse(dest); err == nil && (u.Scheme != "" || u.Host != "") {
		return "", false
	}
	if i := strings.IndexAny(dest, "#?"); i >= 0 {
		dest = dest[:i]
	}
	if unescaped, err := url.PathUnescape(dest); err == nil {
		dest = unescaped
	}
	if !strings.HasSuffix(dest, ".md") && !strings.HasSuffix(dest, "/") {
		return "", false
	}
	return path.Clean(path.Join(path.Dir(docPath), dest)), true
}
