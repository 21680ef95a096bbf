package pages

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vm "github.com/ericfisherdev/repocanvas/internal/adapter/driving/web/viewmodel"
)

func TestCard_EscapesRepositoryFields(t *testing.T) {
	var buf bytes.Buffer
	card := vm.CardViewModel{
		ID:              7,
		Name:            `<img src=x onerror=alert(1)>`,
		DescriptionHTML: "<strong>kept</strong>",
		Stars:           3,
		Language:        "Go",
		URL:             "javascript:alert(1)",
		Style:           "left: 1px; top: 2px;",
	}

	require.NoError(t, Card(card).Render(context.Background(), &buf))

	html := buf.String()
	assert.NotContains(t, html, "<img")
	assert.Contains(t, html, "&lt;img")
	assert.NotContains(t, html, "javascript:")
	assert.Contains(t, html, "<strong>kept</strong>")
	assert.Contains(t, html, `data-card-id="7"`)
	assert.Contains(t, html, `style="left: 1px; top: 2px;"`)
	assert.Contains(t, html, "★ 3")
	assert.Contains(t, html, `<span class="card-language">Go</span>`)
}

func TestCard_OmitsEmptyOptionalFields(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, Card(vm.CardViewModel{ID: 1, Name: "bare"}).Render(context.Background(), &buf))

	html := buf.String()
	assert.NotContains(t, html, "card-description")
	assert.NotContains(t, html, "card-language")
}

func TestCanvas_ZoomButtonsAndError(t *testing.T) {
	var buf bytes.Buffer
	c := vm.CanvasViewModel{
		SessionID:  "s1",
		Error:      "Failed <to> fetch",
		Transform:  "translate(0px, 0px) scale(5)",
		ScaleLabel: "500%",
		CanZoomIn:  false,
		CanZoomOut: true,
	}

	require.NoError(t, Canvas(c).Render(context.Background(), &buf))

	html := buf.String()
	assert.Contains(t, html, `data-zoom="in" disabled>`)
	assert.Contains(t, html, `data-zoom="out">`)
	assert.Contains(t, html, "Failed &lt;to&gt; fetch")
	assert.Contains(t, html, `style="transform: translate(0px, 0px) scale(5);"`)
	assert.Contains(t, html, `data-session="s1"`)
}
