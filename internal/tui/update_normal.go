package tui

import (
	"errors"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/termllo/internal/models"
	cardservice "github.com/thenoetrevino/termllo/internal/services/card"
	"github.com/thenoetrevino/termllo/internal/tui/state"
)

func (m Model) handleNormalMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	m.NotificationState.Clear()

	key := msg.String()
	km := m.Config.KeyMappings

	// the store is about to be replaced, so nothing may change it meanwhile
	if m.UiState.Loading() {
		switch key {
		case km.AddCard, km.EditCard, "enter",
			km.MoveCardLeft, km.MoveCardRight, km.MoveCardUp, km.MoveCardDown,
			km.SwitchBoard, km.RefreshBoard:
			m.NotificationState.Add(state.LevelInfo, "Board is loading")
			return m, nil
		}
	}

	switch key {
	case km.Quit, "ctrl+c":
		return m, tea.Quit
	case km.ShowHelp:
		m.UiState.SetMode(state.HelpMode)
		return m, nil
	case km.AddCard:
		return m.handleAddCard()
	case km.EditCard, "enter":
		return m.handleEditCard()
	case km.ViewCard:
		return m.handleViewCard()
	case km.PrevList, "left":
		return m.handleNavigateLeft()
	case km.NextList, "right":
		return m.handleNavigateRight()
	case km.NextCard, "down":
		return m.handleNavigateDown()
	case km.PrevCard, "up":
		return m.handleNavigateUp()
	case km.MoveCardLeft:
		return m.handleMove(m.App.CardService.MoveToPrevList)
	case km.MoveCardRight:
		return m.handleMove(m.App.CardService.MoveToNextList)
	case km.MoveCardUp:
		return m.handleMove(m.App.CardService.MoveUp)
	case km.MoveCardDown:
		return m.handleMove(m.App.CardService.MoveDown)
	case km.SwitchBoard:
		return m.handleOpenBoardPicker()
	case km.RefreshBoard:
		return m.handleRefresh()
	}
	return m, nil
}

// handleNavigateLeft moves the focus to the previous list
func (m Model) handleNavigateLeft() (tea.Model, tea.Cmd) {
	idx := m.App.Store.ActiveListIndex()
	if idx <= 0 {
		m.NotificationState.Add(state.LevelInfo, "Already at the first list")
		return m, nil
	}
	return m.focusList(idx - 1)
}

// handleNavigateRight moves the focus to the next list
func (m Model) handleNavigateRight() (tea.Model, tea.Cmd) {
	idx := m.App.Store.ActiveListIndex()
	if idx >= len(m.App.Store.Lists())-1 {
		m.NotificationState.Add(state.LevelInfo, "Already at the last list")
		return m, nil
	}
	return m.focusList(idx + 1)
}

func (m Model) focusList(idx int) (tea.Model, tea.Cmd) {
	if err := m.App.CardService.Focus(idx); err != nil {
		m.Logger.Error("focus list failed", "list", idx, "error", err)
		return m, nil
	}
	m.syncSelection()
	return m, nil
}

// handleNavigateDown selects the next card in the active list
func (m Model) handleNavigateDown() (tea.Model, tea.Cmd) {
	if m.UiState.SelectedCard() < len(m.currentCards())-1 {
		m.UiState.SetSelectedCard(m.UiState.SelectedCard() + 1)
	}
	return m, nil
}

// handleNavigateUp selects the previous card in the active list
func (m Model) handleNavigateUp() (tea.Model, tea.Cmd) {
	if m.UiState.SelectedCard() > 0 {
		m.UiState.SetSelectedCard(m.UiState.SelectedCard() - 1)
	}
	return m, nil
}

// handleMove runs one of the relative card moves on the selected card.
// The store is updated synchronously; the remote call is debounced by the
// card service and any failure arrives later as a moveResultMsg.
func (m Model) handleMove(move func(listIdx, cardIdx int) (cardservice.MoveOutcome, error)) (tea.Model, tea.Cmd) {
	if _, ok := m.currentCard(); !ok {
		m.NotificationState.Add(state.LevelInfo, "No card selected")
		return m, nil
	}

	outcome, err := move(m.App.Store.ActiveListIndex(), m.UiState.SelectedCard())
	if err != nil {
		m.NotificationState.Add(moveErrorNotification(err))
		return m, nil
	}

	m.UiState.SetSelectedCard(outcome.ToIndex)
	m.syncSelection()
	return m, nil
}

// moveErrorNotification maps edge-of-board errors to info banners
func moveErrorNotification(err error) (state.NotificationLevel, string) {
	switch {
	case errors.Is(err, models.ErrNoPrevList):
		return state.LevelInfo, "Already at the first list"
	case errors.Is(err, models.ErrNoNextList):
		return state.LevelInfo, "Already at the last list"
	case errors.Is(err, models.ErrAlreadyFirstCard):
		return state.LevelInfo, "Card is already at the top"
	case errors.Is(err, models.ErrAlreadyLastCard):
		return state.LevelInfo, "Card is already at the bottom"
	default:
		return state.LevelError, "Could not move card: " + err.Error()
	}
}

// handleViewCard opens the read-only card detail view
func (m Model) handleViewCard() (tea.Model, tea.Cmd) {
	card, ok := m.currentCard()
	if !ok {
		m.NotificationState.Add(state.LevelInfo, "No card selected")
		return m, nil
	}

	m.detailCard = card
	m.resizeDetail()
	m.detail.SetContent(m.renderDetailContent())
	m.detail.GotoTop()
	m.UiState.SetMode(state.CardDetailMode)
	return m, nil
}

// handleOpenBoardPicker shows the starred boards
func (m Model) handleOpenBoardPicker() (tea.Model, tea.Cmd) {
	if len(m.App.Store.Boards()) == 0 {
		m.NotificationState.Add(state.LevelInfo, "No boards loaded")
		return m, nil
	}
	m.UiState.SetPickerCursor(m.App.Store.ActiveBoardIndex())
	m.UiState.SetMode(state.BoardPickerMode)
	return m, nil
}

// handleRefresh reloads the active board from Trello
func (m Model) handleRefresh() (tea.Model, tea.Cmd) {
	if len(m.App.Store.Boards()) == 0 {
		m.UiState.SetLoading(true)
		return m, m.fillCmd()
	}
	m.UiState.SetLoading(true)
	return m, m.refreshCmd()
}
