package models

import "time"

// Board is a top-level container of lists on the remote service.
// Only the active board has its Lists materialized.
type Board struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Starred      bool      `json:"starred"`
	LastViewed   time.Time `json:"lastViewed"`
	LastModified time.Time `json:"lastModified"`
	Lists        []List    `json:"lists,omitempty"`
}

// GetID returns the board ID, used by the quiet CLI output mode
func (b Board) GetID() string {
	return b.ID
}
