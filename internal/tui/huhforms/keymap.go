package huhforms

import (
	"charm.land/bubbles/v2/key"
	"charm.land/huh/v2"
)

// cardFormKeyMap lets the description take multi-line input while enter still
// moves between fields. esc is left to the board, which closes the form.
func cardFormKeyMap() *huh.KeyMap {
	km := huh.NewDefaultKeyMap()

	km.Quit = key.NewBinding(key.WithKeys("ctrl+c"))
	km.Text.NewLine = key.NewBinding(
		key.WithKeys("shift+enter", "alt+enter", "ctrl+j"),
		key.WithHelp("shift+enter", "new line"),
	)
	km.Confirm.Toggle = key.NewBinding(
		key.WithKeys("h", "l", "left", "right"),
		key.WithHelp("h/l", "save or cancel"),
	)

	return km
}
