package tui

import (
	"context"
	"log/slog"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/termllo/internal/app"
	"github.com/thenoetrevino/termllo/internal/config"
	"github.com/thenoetrevino/termllo/internal/models"
	"github.com/thenoetrevino/termllo/internal/tui/components"
	"github.com/thenoetrevino/termllo/internal/tui/state"
)

// Model represents the application state for the TUI.
// Board data lives in the store owned by App; the model only holds
// presentation state and reads the store through its projections.
type Model struct {
	ctx    context.Context
	App    *app.App
	Config *config.Config
	Logger *slog.Logger

	UiState           *state.UIState
	FormState         *state.FormState
	NotificationState *state.NotificationState

	// detail scrolls the card description in CardDetailMode
	detail viewport.Model
	// detailCard is the card shown in CardDetailMode
	detailCard models.Card

	keys keyMap
}

// InitialModel creates the TUI model around an initialized App.
// Board data is loaded by the command returned from Init.
func InitialModel(ctx context.Context, a *app.App) Model {
	components.InitStyles(a.Config.ColorScheme)

	ui := state.NewUIState()
	ui.SetLoading(true)

	return Model{
		ctx:               ctx,
		App:               a,
		Config:            a.Config,
		Logger:            a.Logger,
		UiState:           ui,
		FormState:         state.NewFormState(),
		NotificationState: state.NewNotificationState(),
		detail:            viewport.New(),
		keys:              newKeyMap(a.Config.KeyMappings),
	}
}

// Init starts the initial board load and the move result listener.
// Required by tea.Model interface
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.fillCmd(),
		listenForMoveResults(m.App.CardService.Results()),
	)
}

// currentCards returns the cards of the active list
func (m Model) currentCards() []models.Card {
	list, ok := m.currentList()
	if !ok {
		return nil
	}
	return m.App.Store.Cards(list.ID)
}

// currentList returns the active list
func (m Model) currentList() (models.List, bool) {
	lists := m.App.Store.Lists()
	idx := m.App.Store.ActiveListIndex()
	if idx < 0 || idx >= len(lists) {
		return models.List{}, false
	}
	return lists[idx], true
}

// currentCard returns the selected card of the active list
func (m Model) currentCard() (models.Card, bool) {
	cards := m.currentCards()
	idx := m.UiState.SelectedCard()
	if idx >= len(cards) {
		return models.Card{}, false
	}
	return cards[idx], true
}

// boardName returns the name of the active board, or an empty string
func (m Model) boardName() string {
	boards := m.App.Store.Boards()
	idx := m.App.Store.ActiveBoardIndex()
	if idx < 0 || idx >= len(boards) {
		return ""
	}
	return boards[idx].Name
}

// syncSelection keeps the card cursor and viewport consistent with the store
func (m *Model) syncSelection() {
	m.UiState.ClampSelectedCard(len(m.currentCards()))
	m.UiState.EnsureSelectionVisible(m.App.Store.ActiveListIndex())
}
