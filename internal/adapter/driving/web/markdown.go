package web

import (
	"bytes"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	mdRenderer    goldmark.Markdown
	htmlSanitizer *bluemonday.Policy
)

func init() {
	mdRenderer = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)

	// Card descriptions are one line of inline text: only inline formatting
	// and links survive.
	htmlSanitizer = bluemonday.NewPolicy()
	htmlSanitizer.AllowElements("strong", "em", "code", "del")
	htmlSanitizer.AllowAttrs("href").OnElements("a")
	htmlSanitizer.AllowStandardURLs()
	htmlSanitizer.RequireNoFollowOnLinks(true)
	htmlSanitizer.AddTargetBlankToFullyQualifiedLinks(true)
}

// RenderDescription converts a repository description to sanitized inline
// HTML. Block elements are stripped. Returns empty string for empty input.
func RenderDescription(src string) string {
	src = strings.TrimSpace(src)
	if src == "" {
		return ""
	}

	var buf bytes.Buffer
	if err := mdRenderer.Convert([]byte(src), &buf); err != nil {
		return htmlSanitizer.Sanitize(src)
	}

	return strings.TrimSpace(htmlSanitizer.Sanitize(buf.String()))
}
