package components

import (
	"fmt"
	"strings"
)

// ListProps describes one list column on the board
type ListProps struct {
	Name      string
	CardNames []string
	// Selected is true for the active list
	Selected bool
	// SelectedCard is the index of the highlighted card, only used when Selected
	SelectedCard int
	// Height is the total box height including borders
	Height int
}

// RenderList renders a complete list with its title and cards
//
// Layout:
//
//	{List Name} ({count})
//	▲ (if scrolled down)
//	{Card 1}
//	{Card 2}
//	...
//	▼ (if more cards below)
//
// The list scrolls so the selected card stays visible.
func RenderList(props ListProps) string {
	header := TitleStyle.Render(fmt.Sprintf("%s (%d)", props.Name, len(props.CardNames)))

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n")

	style := ListStyle
	if props.Selected {
		style = SelectedListStyle
	}

	if len(props.CardNames) == 0 {
		b.WriteString("\n")
		b.WriteString(SubtleStyle.Render("No cards"))
		return style.Height(props.Height).Render(b.String())
	}

	// border(2) + header(1) + top indicator(1) + bottom indicator(1)
	const listOverhead = 5
	visible := VisibleCards(props.Height - listOverhead)

	offset := 0
	if props.Selected {
		offset = ScrollOffset(props.SelectedCard, visible, len(props.CardNames))
	}
	end := min(offset+visible, len(props.CardNames))

	if offset > 0 {
		b.WriteString(IndicatorStyle.Render("▲ more above"))
	}
	b.WriteString("\n")

	for i := offset; i < end; i++ {
		b.WriteString(RenderCard(props.CardNames[i], props.Selected && i == props.SelectedCard))
		b.WriteString("\n")
	}

	if end < len(props.CardNames) {
		b.WriteString(IndicatorStyle.Render(fmt.Sprintf("▼ %d more", len(props.CardNames)-end)))
	}

	return style.Height(props.Height).Render(strings.TrimRight(b.String(), "\n"))
}

// VisibleCards returns how many cards fit in the given number of lines.
// At least one card is always shown.
func VisibleCards(lines int) int {
	return max(lines/CardHeight, 1)
}

// ScrollOffset returns the first visible card index that keeps selected on screen.
func ScrollOffset(selected, visible, total int) int {
	if total <= visible || selected < visible {
		return 0
	}
	return min(selected-visible+1, total-visible)
}
