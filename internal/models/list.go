package models

// List is an ordered column of cards within a board.
// Cards is only populated on projections handed out by the store.
type List struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Cards []Card `json:"cards,omitempty"`
}

// GetID returns the list ID
func (l List) GetID() string {
	return l.ID
}
