// Package markdown renders the long-form product and content blocks
// (overview, specifications, care and warranty text) to HTML.
// Raw HTML in the source is not passed through.
package markdown

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// Renderer converts markdown to sanitised HTML.
type Renderer struct {
	md goldmark.Markdown
}

// New creates a new markdown renderer with GitHub-flavoured tables,
// strikethrough and autolinks. Single newlines become line breaks since
// sheet cells are typed without blank lines between paragraphs.
func New() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(html.WithHardWraps()),
		),
	}
}

// Render converts source to HTML. Blank input renders as empty.
func (r *Renderer) Render(source string) (template.HTML, error) {
	if strings.TrimSpace(source) == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(source), &buf); err != nil {
		return "", err
	}
	//nolint:gosec // G203: goldmark escapes raw HTML unless WithUnsafe is set.
	return template.HTML(buf.String()), nil
}

// MustRender renders source and falls back to escaped text on error.
// Used from templates, which cannot handle a second return value.
func (r *Renderer) MustRender(source string) template.HTML {
	out, err := r.Render(source)
	if err != nil {
		return template.HTML(template.HTMLEscapeString(source)) //nolint:gosec // escaped above
	}
	return out
}
