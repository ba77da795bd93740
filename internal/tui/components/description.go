package components

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

// Cache Glamour renderers by width to avoid expensive re-creation
var (
	rendererCache sync.Map // map[int]*glamour.TermRenderer
)

// getRenderer returns a cached renderer for the given width
func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

// RenderDescription renders a card description as markdown.
// The raw text is returned when rendering fails.
func RenderDescription(desc string, width int) string {
	if strings.TrimSpace(desc) == "" {
		return SubtleStyle.Render("No description")
	}

	renderer, err := getRenderer(width)
	if err != nil {
		return desc
	}
	rendered, err := renderer.Render(desc)
	if err != nil {
		return desc
	}
	return strings.Trim(rendered, "\n")
}
