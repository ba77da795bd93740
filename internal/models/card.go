package models

// Card is a single item on a list.
// Pos is the remote ordering key; cards in a list are kept sorted by it.
type Card struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Desc   string  `json:"desc"`
	ListID string  `json:"idList"`
	Pos    float64 `json:"pos"`
}

// GetID returns the card ID
func (c Card) GetID() string {
	return c.ID
}

// CardNames projects a card sequence to the names used for rendering a column.
func CardNames(cards []Card) []string {
	names := make([]string, len(cards))
	for i, c := range cards {
		names[i] = c.Name
	}
	return names
}
