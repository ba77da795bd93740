// Package components provides reusable UI components and styles.
// Call InitStyles() before use to initialize all style variables.
package components

import (
	"image/color"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/termllo/internal/config/colors"
)

// Theme colors resolved from the configured scheme
var (
	Accent         color.Color
	Subtle         color.Color
	Normal         color.Color
	CardBackground color.Color
	SelectedBg     color.Color
	SelectedBorder color.Color
	Background     color.Color
)

// These are cached to avoid recomputing on every redraw.
var (
	// ListStyle defines the appearance of board lists
	ListStyle lipgloss.Style

	// SelectedListStyle is the list holding the cursor
	SelectedListStyle lipgloss.Style

	// CardStyle defines the appearance of individual cards
	CardStyle lipgloss.Style

	// TitleStyle defines the appearance of titles (list names, board header)
	TitleStyle lipgloss.Style

	// SubtleStyle is used for placeholders and hints
	SubtleStyle lipgloss.Style

	// CreateFormBoxStyle defines the new card dialog (create color border)
	CreateFormBoxStyle lipgloss.Style

	// EditFormBoxStyle defines the edit card dialog (edit color border)
	EditFormBoxStyle lipgloss.Style

	// ModalBoxStyle is used for the picker, help and detail overlays
	ModalBoxStyle lipgloss.Style

	// InfoBannerStyle defines the appearance of info notifications
	InfoBannerStyle lipgloss.Style

	// ErrorBannerStyle defines the appearance of error notifications
	ErrorBannerStyle lipgloss.Style

	// IndicatorStyle defines the appearance of scroll indicators
	IndicatorStyle lipgloss.Style

	// StatusBarStyle defines the base style for the status bar
	StatusBarStyle lipgloss.Style
)

// InitStyles initializes all styles with the given color scheme
func InitStyles(scheme colors.ColorScheme) {
	Accent = lipgloss.Color(scheme.Accent)
	Subtle = lipgloss.Color(scheme.Subtle)
	Normal = lipgloss.Color(scheme.Normal)
	CardBackground = lipgloss.Color(scheme.CardBackground)
	SelectedBg = lipgloss.Color(scheme.SelectedBg)
	SelectedBorder = lipgloss.Color(scheme.SelectedBorder)
	Background = lipgloss.Color(scheme.Background)

	ListStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(scheme.ListBorder)).
		Background(lipgloss.Color(scheme.ListBackground)).
		Padding(0, 1).
		Width(ListWidth)

	SelectedListStyle = ListStyle.
		BorderForeground(SelectedBorder)

	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(scheme.CardBorder)).
		Foreground(Normal).
		Width(CardWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Title))

	SubtleStyle = lipgloss.NewStyle().
		Foreground(Subtle).
		Italic(true)

	CreateFormBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(scheme.Create)).
		Padding(1, 2)

	EditFormBoxStyle = CreateFormBoxStyle.
		BorderForeground(lipgloss.Color(scheme.Edit))

	ModalBoxStyle = CreateFormBoxStyle.
		BorderForeground(Accent)

	InfoBannerStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.InfoFg)).
		Background(lipgloss.Color(scheme.InfoBg)).
		Padding(0, 1)

	ErrorBannerStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.ErrorFg)).
		Background(lipgloss.Color(scheme.ErrorBg)).
		Bold(true).
		Padding(0, 1)

	IndicatorStyle = lipgloss.NewStyle().
		Foreground(Subtle)

	StatusBarStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.StatusBarText)).
		Background(lipgloss.Color(scheme.StatusBarBg))
}
