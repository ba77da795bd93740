package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/termllo/internal/tui/state"
)

// updateBoardPicker moves the cursor over the starred boards and selects one
func (m Model) updateBoardPicker(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	km := m.Config.KeyMappings
	boards := m.App.Store.Boards()
	cursor := m.UiState.PickerCursor()

	switch msg.String() {
	case "esc", km.Quit, km.SwitchBoard:
		m.UiState.SetMode(state.NormalMode)
	case km.NextCard, "down":
		if cursor < len(boards)-1 {
			m.UiState.SetPickerCursor(cursor + 1)
		}
	case km.PrevCard, "up":
		if cursor > 0 {
			m.UiState.SetPickerCursor(cursor - 1)
		}
	case "enter":
		m.UiState.SetMode(state.NormalMode)
		if cursor >= len(boards) {
			return m, nil
		}
		m.UiState.SetLoading(true)
		return m, m.selectBoardCmd(cursor)
	}
	return m, nil
}
