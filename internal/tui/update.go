package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/termllo/internal/tui/state"
)

// Update handles all messages and updates the model accordingly
// This implements the "Update" part of the Model-View-Update pattern
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.UiState.SetWidth(msg.Width)
		m.UiState.SetHeight(msg.Height)
		m.UiState.EnsureSelectionVisible(m.App.Store.ActiveListIndex())
		m.resizeDetail()
		if m.FormState.Form != nil {
			m.FormState.Form = m.FormState.Form.WithWidth(m.formWidth())
		}
		return m, nil

	case boardLoadedMsg:
		return m.handleBoardLoaded(msg)

	case cardSavedMsg:
		return m.handleCardSaved(msg)

	case moveResultMsg:
		return m.handleMoveResult(msg)
	}

	switch m.UiState.Mode() {
	case state.CardFormMode:
		return m.updateCardForm(msg)
	}

	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	switch m.UiState.Mode() {
	case state.NormalMode:
		return m.handleNormalMode(keyMsg)
	case state.BoardPickerMode:
		return m.updateBoardPicker(keyMsg)
	case state.CardDetailMode:
		return m.updateCardDetail(keyMsg)
	case state.HelpMode:
		return m.updateHelp(keyMsg)
	}
	return m, nil
}

// handleBoardLoaded applies the outcome of a fill, switch or refresh.
// On failure the store still holds the previous board.
func (m Model) handleBoardLoaded(msg boardLoadedMsg) (tea.Model, tea.Cmd) {
	m.UiState.SetLoading(false)

	if msg.err != nil {
		m.Logger.Error("board load failed", "action", msg.action, "error", msg.err)
		m.NotificationState.Add(state.LevelError, loadErrorMessage(msg.action, msg.err))
		return m, nil
	}

	if msg.action != "refresh" {
		m.UiState.ResetSelection()
	}
	m.syncSelection()
	return m, nil
}

// handleCardSaved reports the outcome of a create or edit
func (m Model) handleCardSaved(msg cardSavedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.Logger.Error("card save failed", "card", msg.card.ID, "edit", msg.isEdit, "error", msg.err)
		if msg.isEdit {
			m.NotificationState.Add(state.LevelError, "Saved locally, but Trello rejected the edit")
		} else {
			m.NotificationState.Add(state.LevelError, "Could not create card: "+msg.err.Error())
		}
		return m, nil
	}

	if !msg.isEdit {
		// new cards go to the top of their list
		if list, ok := m.currentList(); ok && list.ID == msg.card.ListID {
			m.UiState.SetSelectedCard(0)
		}
	}
	m.syncSelection()
	return m, nil
}

// handleMoveResult surfaces failed remote moves and keeps listening
func (m Model) handleMoveResult(msg moveResultMsg) (tea.Model, tea.Cmd) {
	next := listenForMoveResults(m.App.CardService.Results())

	if msg.Err != nil {
		m.NotificationState.Add(state.LevelError,
			"Could not sync move of \""+msg.CardName+"\" to Trello; press "+m.Config.KeyMappings.RefreshBoard+" to reload")
	}
	return m, next
}

// updateHelp closes the help overlay on any key
func (m Model) updateHelp(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case m.Config.KeyMappings.Quit, m.Config.KeyMappings.ShowHelp, "esc", "enter":
		m.UiState.SetMode(state.NormalMode)
	}
	return m, nil
}
