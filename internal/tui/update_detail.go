package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/termllo/internal/tui/components"
	"github.com/thenoetrevino/termllo/internal/tui/state"
)

// updateCardDetail scrolls the description or closes the detail view
func (m Model) updateCardDetail(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	km := m.Config.KeyMappings

	switch msg.String() {
	case "esc", km.Quit, km.ViewCard:
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	case km.EditCard:
		m.UiState.SetMode(state.NormalMode)
		return m.handleEditCard()
	case km.NextCard:
		m.detail.ScrollDown(1)
		return m, nil
	case km.PrevCard:
		m.detail.ScrollUp(1)
		return m, nil
	}

	var cmd tea.Cmd
	m.detail, cmd = m.detail.Update(msg)
	return m, cmd
}

// detailSize returns the inner width and height of the detail modal
func (m Model) detailSize() (int, int) {
	width := max(m.UiState.Width()*6/10, 30)
	height := max(m.UiState.Height()*7/10, 8)
	return width, height
}

func (m *Model) resizeDetail() {
	width, height := m.detailSize()
	// title and list name take three lines
	m.detail.SetWidth(width)
	m.detail.SetHeight(max(height-3, 1))
	if m.UiState.Mode() == state.CardDetailMode {
		m.detail.SetContent(m.renderDetailContent())
	}
}

// renderDetailContent renders the markdown description of the detail card
func (m Model) renderDetailContent() string {
	width, _ := m.detailSize()
	return strings.TrimRight(components.RenderDescription(m.detailCard.Desc, width), "\n")
}
