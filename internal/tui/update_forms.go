package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
	cardservice "github.com/thenoetrevino/termllo/internal/services/card"
	"github.com/thenoetrevino/termllo/internal/tui/huhforms"
	"github.com/thenoetrevino/termllo/internal/tui/state"
)

// handleAddCard opens the card form for a new card at the top of the active list
func (m Model) handleAddCard() (tea.Model, tea.Cmd) {
	list, ok := m.currentList()
	if !ok {
		m.NotificationState.Add(state.LevelInfo, "No list to add a card to")
		return m, nil
	}

	m.FormState.Start(list.ID, "", "", "")
	return m.openCardForm()
}

// handleEditCard opens the card form for the selected card
func (m Model) handleEditCard() (tea.Model, tea.Cmd) {
	card, ok := m.currentCard()
	if !ok {
		m.NotificationState.Add(state.LevelInfo, "No card selected")
		return m, nil
	}

	m.FormState.Start(card.ListID, card.ID, card.Name, card.Desc)
	return m.openCardForm()
}

func (m Model) openCardForm() (tea.Model, tea.Cmd) {
	m.FormState.Form = m.newCardForm()
	m.UiState.SetMode(state.CardFormMode)
	return m, m.FormState.Form.Init()
}

// newCardForm builds a huh form bound to the FormState values
func (m Model) newCardForm() *huh.Form {
	return huhforms.CreateCardForm(
		&m.FormState.Name,
		&m.FormState.Desc,
		&m.FormState.Confirm,
		m.FormState.IsEdit(),
	).
		WithTheme(huhforms.CreateTheme(m.Config.ColorScheme)).
		WithWidth(m.formWidth())
}

func (m Model) formWidth() int {
	return max(m.UiState.Width()/2, 40)
}

// updateCardForm forwards messages to the huh form.
// esc discards the form and the save key submits it from any field.
func (m Model) updateCardForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.FormState.Form == nil {
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m.closeCardForm(), nil
		case m.Config.KeyMappings.SaveForm:
			m.FormState.Confirm = true
			return m.submitCardForm()
		}
	}

	model, cmd := m.FormState.Form.Update(msg)
	if form, ok := model.(*huh.Form); ok {
		m.FormState.Form = form
	}

	switch m.FormState.Form.State {
	case huh.StateCompleted:
		if !m.FormState.Confirm {
			return m.closeCardForm(), nil
		}
		return m.submitCardForm()
	case huh.StateAborted:
		return m.closeCardForm(), nil
	}

	return m, cmd
}

// submitCardForm validates the form values and starts the save.
// An empty name keeps the form open. An edit without changes closes the
// form without calling Trello.
func (m Model) submitCardForm() (tea.Model, tea.Cmd) {
	name := strings.TrimSpace(m.FormState.Name)
	desc := strings.TrimSpace(m.FormState.Desc)

	if name == "" {
		m.NotificationState.Add(state.LevelError, "Card name cannot be empty")
		if m.FormState.Form.State != huh.StateNormal {
			// a completed huh form cannot take input again
			m.FormState.Form = m.newCardForm()
			return m, m.FormState.Form.Init()
		}
		return m, nil
	}

	if m.FormState.IsEdit() && !m.FormState.HasChanges() {
		return m.closeCardForm(), nil
	}

	var cmd tea.Cmd
	if m.FormState.IsEdit() {
		cmd = m.editCardCmd(cardservice.EditRequest{
			ID:     m.FormState.EditingCardID,
			ListID: m.FormState.ListID,
			Name:   name,
			Desc:   desc,
		})
	} else {
		cmd = m.createCardCmd(cardservice.CreateRequest{
			Name:   name,
			Desc:   desc,
			ListID: m.FormState.ListID,
		})
	}

	return m.closeCardForm(), cmd
}

func (m Model) closeCardForm() Model {
	m.FormState.Clear()
	m.UiState.SetMode(state.NormalMode)
	return m
}
