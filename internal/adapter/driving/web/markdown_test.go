package web

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderDescription_EmptyInput(t *testing.T) {
	assert.Equal(t, "", RenderDescription(""))
	assert.Equal(t, "", RenderDescription("   \n"))
}

func TestRenderDescription_PlainText(t *testing.T) {
	assert.Equal(t, "My first repository on GitHub!", RenderDescription("My first repository on GitHub!"))
}

func TestRenderDescription_StripsParagraph(t *testing.T) {
	result := RenderDescription("hello world")
	assert.NotContains(t, result, "<p>")
}

func TestRenderDescription_Bold(t *testing.T) {
	result := RenderDescription("**bold text**")
	assert.Contains(t, result, "<strong>bold text</strong>")
}

func TestRenderDescription_InlineCode(t *testing.T) {
	result := RenderDescription("a wrapper around `net/http`")
	assert.Contains(t, result, "<code>net/http</code>")
}

func TestRenderDescription_Link(t *testing.T) {
	result := RenderDescription("[docs](https://example.com)")
	assert.Contains(t, result, `href="https://example.com"`)
	assert.Contains(t, result, "nofollow")
	assert.Contains(t, result, "docs</a>")
}

func TestRenderDescription_GFMStrikethrough(t *testing.T) {
	result := RenderDescription("~~deprecated~~")
	assert.Contains(t, result, "<del>deprecated</del>")
}

func TestRenderDescription_SanitizesScript(t *testing.T) {
	result := RenderDescription(`<script>alert("xss")</script>`)
	assert.NotContains(t, result, "<script>")
}

func TestRenderDescription_DropsBlockElements(t *testing.T) {
	result := RenderDescription("# Title\n\n- item")
	assert.NotContains(t, result, "<h1>")
	assert.NotContains(t, result, "<li>")
	assert.Contains(t, result, "Title")
	assert.Contains(t, result, "item")
}
