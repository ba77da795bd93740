package components

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/thenoetrevino/termllo/internal/models"
)

// RenderBoardPicker renders the board chooser content.
// The active board is marked and the cursor row is highlighted.
func RenderBoardPicker(boards []models.Board, cursor, active int) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Switch board"))
	b.WriteString("\n\n")

	if len(boards) == 0 {
		b.WriteString(SubtleStyle.Render("No starred boards"))
		return b.String()
	}

	for i, board := range boards {
		marker := "  "
		if i == active {
			marker = "• "
		}

		line := marker + board.Name
		if i == cursor {
			line = TitleStyle.Foreground(Accent).Render("> " + line)
		} else {
			line = "  " + line
		}

		b.WriteString(line)
		if !board.LastModified.IsZero() {
			b.WriteString(" ")
			b.WriteString(SubtleStyle.Render(fmt.Sprintf("active %s", humanize.Time(board.LastModified))))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(SubtleStyle.Render("enter: open  esc: close"))
	return b.String()
}
