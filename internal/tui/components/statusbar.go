package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
)

// StatusBarProps holds everything shown in the bottom bar
type StatusBarProps struct {
	Width        int
	BoardName    string
	PendingMoves int
	Loading      bool
	HelpKey      string
	// Banner is an already rendered notification, empty when there is none
	Banner string
}

// RenderStatusBar renders a status bar with left and right aligned text
// Left side: board name, pending moves and any notification
// Right side: "press ? for help"
func RenderStatusBar(props StatusBarProps) string {
	left := []string{StatusBarStyle.Bold(true).Padding(0, 1).Render(props.BoardName)}

	switch {
	case props.Loading:
		left = append(left, StatusBarStyle.Render(" loading…"))
	case props.PendingMoves > 0:
		left = append(left, StatusBarStyle.Render(fmt.Sprintf(" %d pending", props.PendingMoves)))
	}

	if props.Banner != "" {
		left = append(left, " ", props.Banner)
	}

	leftRendered := lipgloss.JoinHorizontal(lipgloss.Top, left...)
	rightRendered := StatusBarStyle.Padding(0, 1).Render(fmt.Sprintf("press %s for help", props.HelpKey))

	gapWidth := max(props.Width-lipgloss.Width(leftRendered)-lipgloss.Width(rightRendered), 1)
	gap := StatusBarStyle.Render(strings.Repeat(" ", gapWidth))

	return lipgloss.JoinHorizontal(lipgloss.Top, leftRendered, gap, rightRendered)
}
