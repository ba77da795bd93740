package components

import (
	"strings"

	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
)

// RenderCard renders a single card name as a fixed-height box
//
//	┌──────────────────────────┐
//	│ {name, wrapped}          │
//	│ {second line or …}       │
//	└──────────────────────────┘
func RenderCard(name string, selected bool) string {
	style := CardStyle.Background(CardBackground)
	if selected {
		style = CardStyle.
			Background(SelectedBg).
			BorderForeground(SelectedBorder).
			Bold(true)
	}

	return style.Render(cardLines(name, CardWidth-2))
}

// cardLines wraps name into the fixed number of title lines.
// Overflow is cut with an ellipsis on the last line.
func cardLines(name string, width int) string {
	wrapped := strings.Split(wordwrap.String(name, width), "\n")

	lines := make([]string, cardTitleLines)
	for i := range lines {
		if i < len(wrapped) {
			lines[i] = " " + truncate.StringWithTail(wrapped[i], uint(width), "…")
		}
	}

	if len(wrapped) > cardTitleLines {
		last := strings.TrimRight(lines[cardTitleLines-1], " ")
		lines[cardTitleLines-1] = truncate.StringWithTail(last+" …", uint(width+1), "…")
	}

	return strings.Join(lines, "\n")
}
