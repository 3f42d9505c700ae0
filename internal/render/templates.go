package render

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"text/template"

	"git.home.luguber.info/inful/stackdocs/internal/config"
	ferrors "git.home.luguber.info/inful/stackdocs/internal/foundation/errors"
)

// ErrRender is matched by errors.Is when a document cannot be rendered.
var ErrRender = errors.New("render failed")

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

// templates holds every document template plus the shared partials. Missing
// embedded templates are a programmer error.
var templates = template.Must(
	template.New("stackdocs").
		Funcs(templateFuncs).
		Option("missingkey=error").
		ParseFS(embeddedTemplates, "templates/*.tmpl"),
)

func execute(name string, cfg *config.Config) (string, error) {
	v, err := newView(cfg)
	if err != nil {
		return "", renderError(name, err)
	}
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, v); err != nil {
		return "", renderError(name, err)
	}
	return buf.String(), nil
}

func renderError(name string, err error) error {
	return ferrors.WrapError(fmt.Errorf("%w: %s: %w", ErrRender, name, err), ferrors.CategoryRender, "render document").
		WithContext("template", name).
		Build()
}
