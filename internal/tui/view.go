package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/termllo/internal/tui/components"
	"github.com/thenoetrevino/termllo/internal/tui/state"
)

// View renders the current state of the application
// This implements the "View" part of the Model-View-Update pattern
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true
	view.BackgroundColor = components.Background

	// Wait for terminal size to be initialized
	if m.UiState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	layers := []*lipgloss.Layer{lipgloss.NewLayer(m.viewBoard())}

	var modal *lipgloss.Layer
	switch m.UiState.Mode() {
	case state.CardFormMode:
		modal = m.renderCardFormLayer()
	case state.BoardPickerMode:
		modal = m.renderModalLayer(components.RenderBoardPicker(
			m.App.Store.Boards(), m.UiState.PickerCursor(), m.App.Store.ActiveBoardIndex()))
	case state.CardDetailMode:
		modal = m.renderCardDetailLayer()
	case state.HelpMode:
		modal = m.renderModalLayer(components.RenderHelp(m.keys))
	}
	if modal != nil {
		layers = append(layers, modal)
	}

	view.Content = lipgloss.NewCanvas(layers...).Render()
	return view
}

// viewBoard renders the header, the visible lists and the status bar
func (m Model) viewBoard() string {
	header := components.TitleStyle.Render(m.boardName())

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		m.viewLists(),
		"",
		m.viewStatusBar(),
	)
}

// viewLists renders the lists inside the horizontal viewport
func (m Model) viewLists() string {
	lists := m.App.Store.Lists()
	height := m.UiState.ContentHeight()

	if len(lists) == 0 {
		msg := "No lists"
		if m.UiState.Loading() {
			msg = "Loading board..."
		}
		return lipgloss.Place(m.UiState.Width(), height, lipgloss.Center, lipgloss.Center,
			components.SubtleStyle.Render(msg))
	}

	active := m.App.Store.ActiveListIndex()
	start := min(m.UiState.ViewportOffset(), len(lists)-1)
	end := min(start+m.UiState.ViewportSize(), len(lists))

	columns := make([]string, 0, end-start+2)

	left := " "
	if start > 0 {
		left = "◀"
	}
	columns = append(columns, components.IndicatorStyle.Render(left))

	for i := start; i < end; i++ {
		columns = append(columns, components.RenderList(components.ListProps{
			Name:         lists[i].Name,
			CardNames:    m.App.Store.CardNames(lists[i].ID),
			Selected:     i == active,
			SelectedCard: m.UiState.SelectedCard(),
			Height:       height,
		}), " ")
	}

	if end < len(lists) {
		columns = append(columns, components.IndicatorStyle.Render("▶"))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, columns...)
}

func (m Model) viewStatusBar() string {
	var banner string
	if n, ok := m.NotificationState.Latest(); ok {
		style := components.InfoBannerStyle
		if n.Level == state.LevelError {
			style = components.ErrorBannerStyle
		}
		banner = style.Render(n.Message)
	}

	return components.RenderStatusBar(components.StatusBarProps{
		Width:        m.UiState.Width(),
		BoardName:    m.boardName(),
		PendingMoves: m.App.CardService.Pending(),
		Loading:      m.UiState.Loading(),
		HelpKey:      m.Config.KeyMappings.ShowHelp,
		Banner:       banner,
	})
}

// renderCardFormLayer renders the card form as a centered modal
func (m Model) renderCardFormLayer() *lipgloss.Layer {
	if m.FormState.Form == nil {
		return nil
	}

	box := components.CreateFormBoxStyle
	if m.FormState.IsEdit() {
		box = components.EditFormBoxStyle
	}

	hint := components.SubtleStyle.Render(
		fmt.Sprintf("%s: save  esc: cancel", m.Config.KeyMappings.SaveForm))

	content := box.Width(m.formWidth() + 6).Render(m.FormState.Form.View() + "\n" + hint)
	return createCenteredLayer(content, m.UiState.Width(), m.UiState.Height())
}

// renderCardDetailLayer renders the selected card with its description
func (m Model) renderCardDetailLayer() *lipgloss.Layer {
	width, _ := m.detailSize()

	listName := ""
	for _, l := range m.App.Store.Lists() {
		if l.ID == m.detailCard.ListID {
			listName = l.Name
			break
		}
	}

	var b strings.Builder
	b.WriteString(components.TitleStyle.Render(m.detailCard.Name))
	b.WriteString("\n")
	b.WriteString(components.SubtleStyle.Render("in " + listName))
	b.WriteString("\n\n")
	b.WriteString(m.detail.View())

	content := components.ModalBoxStyle.Width(width + 6).Render(b.String())
	return createCenteredLayer(content, m.UiState.Width(), m.UiState.Height())
}

func (m Model) renderModalLayer(content string) *lipgloss.Layer {
	return createCenteredLayer(components.ModalBoxStyle.Render(content), m.UiState.Width(), m.UiState.Height())
}

// createCenteredLayer creates a layer positioned at the center of the screen.
// Returns nil if content is empty.
func createCenteredLayer(content string, screenWidth, screenHeight int) *lipgloss.Layer {
	if content == "" {
		return nil
	}

	x := max((screenWidth-lipgloss.Width(content))/2, 0)
	y := max((screenHeight-lipgloss.Height(content))/2, 0)

	return lipgloss.NewLayer(content).X(x).Y(y)
}
