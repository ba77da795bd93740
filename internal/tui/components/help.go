package components

import (
	"charm.land/bubbles/v2/help"
)

// RenderHelp renders the full key binding table of km
func RenderHelp(km help.KeyMap) string {
	h := help.New()
	h.ShowAll = true

	return TitleStyle.Render("Keyboard shortcuts") + "\n\n" + h.View(km)
}
