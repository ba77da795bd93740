package state

import (
	"strings"

	"charm.land/huh/v2"
)

// FormState holds the card form and the values it edits in place.
type FormState struct {
	Form *huh.Form

	// EditingCardID is empty when the form creates a new card
	EditingCardID string
	// ListID is the list the card is created in or belongs to
	ListID string

	Name    string
	Desc    string
	Confirm bool

	// initial values, used to detect an unchanged edit
	initialName string
	initialDesc string
}

// NewFormState creates an empty FormState.
func NewFormState() *FormState {
	return &FormState{}
}

// Start prepares the form values for a new or existing card.
func (s *FormState) Start(listID, cardID, name, desc string) {
	s.ListID = listID
	s.EditingCardID = cardID
	s.Name = name
	s.Desc = desc
	s.Confirm = true
	s.initialName = name
	s.initialDesc = desc
}

// IsEdit reports whether the form edits an existing card.
func (s *FormState) IsEdit() bool {
	return s.EditingCardID != ""
}

// HasChanges reports whether name or description differ from the start.
func (s *FormState) HasChanges() bool {
	return strings.TrimSpace(s.Name) != strings.TrimSpace(s.initialName) ||
		strings.TrimSpace(s.Desc) != strings.TrimSpace(s.initialDesc)
}

// Clear drops the form and its values.
func (s *FormState) Clear() {
	*s = FormState{}
}
