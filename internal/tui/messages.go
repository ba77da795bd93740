package tui

import (
	"errors"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/termllo/internal/loader"
	"github.com/thenoetrevino/termllo/internal/models"
	cardservice "github.com/thenoetrevino/termllo/internal/services/card"
)

// boardLoadedMsg reports the end of a board load
type boardLoadedMsg struct {
	// action names the load for notifications ("load", "switch", "refresh")
	action string
	err    error
}

// cardSavedMsg reports the end of a create or edit
type cardSavedMsg struct {
	card   models.Card
	isEdit bool
	err    error
}

// moveResultMsg carries one debounced move outcome from the card service
type moveResultMsg cardservice.MoveResult

// fillCmd performs the initial load of the first starred board
func (m Model) fillCmd() tea.Cmd {
	ld, ctx := m.App.Loader, m.ctx
	return func() tea.Msg {
		return boardLoadedMsg{action: "load", err: ld.Fill(ctx, 0)}
	}
}

// selectBoardCmd loads the board at idx fresh from the remote API
func (m Model) selectBoardCmd(idx int) tea.Cmd {
	ld, ctx := m.App.Loader, m.ctx
	return func() tea.Msg {
		return boardLoadedMsg{action: "switch", err: ld.SelectBoard(ctx, idx)}
	}
}

// refreshCmd reloads the active board
func (m Model) refreshCmd() tea.Cmd {
	ld, ctx := m.App.Loader, m.ctx
	return func() tea.Msg {
		return boardLoadedMsg{action: "refresh", err: ld.Refresh(ctx)}
	}
}

// createCardCmd creates a card at the top of listID
func (m Model) createCardCmd(req cardservice.CreateRequest) tea.Cmd {
	svc, ctx := m.App.CardService, m.ctx
	return func() tea.Msg {
		card, err := svc.CreateCard(ctx, req)
		return cardSavedMsg{card: card, err: err}
	}
}

// editCardCmd saves a card's new name and description
func (m Model) editCardCmd(req cardservice.EditRequest) tea.Cmd {
	svc, ctx := m.App.CardService, m.ctx
	return func() tea.Msg {
		card, err := svc.EditCard(ctx, req)
		return cardSavedMsg{card: card, isEdit: true, err: err}
	}
}

// listenForMoveResults waits for the next debounced move outcome.
// The handler re-arms it after every message.
func listenForMoveResults(results <-chan cardservice.MoveResult) tea.Cmd {
	return func() tea.Msg {
		result, ok := <-results
		if !ok {
			return nil
		}
		return moveResultMsg(result)
	}
}

// loadErrorMessage turns a board load error into a user facing message
func loadErrorMessage(action string, err error) string {
	switch {
	case errors.Is(err, loader.ErrNoBoards):
		return "No starred boards found. Star a board on Trello to see it here."
	case models.IsTransport(err):
		return fmt.Sprintf("Board %s failed: could not reach Trello", action)
	default:
		return fmt.Sprintf("Board %s failed: %v", action, err)
	}
}
