package state

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode      Mode = iota // Default navigation mode
	CardFormMode                // Creating or editing a card with huh
	BoardPickerMode             // Choosing another starred board
	CardDetailMode              // Read-only card view with rendered description
	HelpMode                    // Displaying help screen
)

// UIState manages the user interface state.
// The focused list is owned by the store; UIState tracks the card selection,
// horizontal scrolling, terminal dimensions and the current mode.
type UIState struct {
	// selectedCard is the index of the selected card within the active list
	selectedCard int

	// width is the current terminal width in characters
	width int

	// height is the current terminal height in characters
	height int

	mode Mode

	// viewportOffset is the index of the leftmost visible list
	viewportOffset int

	// viewportSize is the number of lists that fit on the screen
	viewportSize int

	// pickerCursor is the highlighted board in the board picker
	pickerCursor int

	// loading is set while a board is being fetched
	loading bool
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{
		mode:         NormalMode,
		viewportSize: 1, // recalculated when width is set
	}
}

// SelectedCard returns the index of the selected card.
func (s *UIState) SelectedCard() int {
	return s.selectedCard
}

// SetSelectedCard updates the selected card index.
func (s *UIState) SetSelectedCard(index int) {
	s.selectedCard = max(index, 0)
}

// ClampSelectedCard keeps the selection inside a list of n cards.
func (s *UIState) ClampSelectedCard(n int) {
	if s.selectedCard >= n {
		s.selectedCard = max(n-1, 0)
	}
}

// Width returns the current terminal width.
func (s *UIState) Width() int {
	return s.width
}

// SetWidth updates the terminal width and recalculates viewport size.
func (s *UIState) SetWidth(width int) {
	s.width = width
	s.calculateViewportSize()
}

// Height returns the current terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetHeight updates the terminal height.
func (s *UIState) SetHeight(height int) {
	s.height = height
}

// ContentHeight returns the height available to the lists.
// This is terminal height minus header and status bar, with a minimum of 5.
func (s *UIState) ContentHeight() int {
	const headerHeight = 2    // board name + gap line
	const statusBarHeight = 2 // status bar + gap line
	return max(s.height-headerHeight-statusBarHeight, 5)
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode updates the current interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// ViewportOffset returns the index of the leftmost visible list.
func (s *UIState) ViewportOffset() int {
	return s.viewportOffset
}

// SetViewportOffset updates the viewport offset.
func (s *UIState) SetViewportOffset(offset int) {
	s.viewportOffset = max(offset, 0)
}

// ViewportSize returns the number of lists that fit on screen.
func (s *UIState) ViewportSize() int {
	return s.viewportSize
}

// calculateViewportSize calculates how many lists fit in the terminal width.
//
// List layout:
//   - Content width: 30 characters
//   - Padding: 2 characters (1 on each side)
//   - Border: 2 characters (1 on each side)
//   - Spacing: 1 character (between lists)
//   - Total per list: 35 characters
func (s *UIState) calculateViewportSize() {
	if s.width == 0 {
		s.viewportSize = 1
		return
	}

	const listWidth = 35
	const reservedWidth = 2 // scroll indicators

	s.viewportSize = max(1, (s.width-reservedWidth)/listWidth)
}

// EnsureSelectionVisible scrolls the viewport so list idx is on screen.
func (s *UIState) EnsureSelectionVisible(idx int) {
	if idx < s.viewportOffset {
		s.viewportOffset = idx
	}
	if idx >= s.viewportOffset+s.viewportSize {
		s.viewportOffset = idx - s.viewportSize + 1
	}
}

// PickerCursor returns the highlighted board index.
func (s *UIState) PickerCursor() int {
	return s.pickerCursor
}

// SetPickerCursor moves the board picker cursor.
func (s *UIState) SetPickerCursor(idx int) {
	s.pickerCursor = max(idx, 0)
}

// Loading reports whether a board fetch is in progress.
func (s *UIState) Loading() bool {
	return s.loading
}

// SetLoading marks a board fetch as started or finished.
func (s *UIState) SetLoading(loading bool) {
	s.loading = loading
}

// ResetSelection returns to the first card and the leftmost lists.
func (s *UIState) ResetSelection() {
	s.selectedCard = 0
	s.viewportOffset = 0
}
