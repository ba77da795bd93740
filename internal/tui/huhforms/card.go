package huhforms

import (
	"charm.land/huh/v2"
	"github.com/thenoetrevino/termllo/internal/models"
)

// CreateCardForm creates a huh form for adding or editing a card.
// Values are bound to the given pointers and written as the user types.
// The confirm field decides whether completion saves or discards.
func CreateCardForm(
	name *string,
	desc *string,
	confirm *bool,
	isEdit bool,
) *huh.Form {
	nameTitle := "New Card"
	if isEdit {
		nameTitle = "Edit Card"
	}

	fields := []huh.Field{
		huh.NewInput().
			Key("name").
			Title(nameTitle).
			Placeholder("Card name...").
			CharLimit(models.MaxCardNameLength).
			Value(name),

		huh.NewText().
			Key("desc").
			Title("Description").
			Placeholder("Markdown supported").
			CharLimit(models.MaxCardDescLength).
			Lines(6).
			Value(desc),

		huh.NewConfirm().
			Key("confirm").
			Title("Save card?").
			Affirmative("Save").
			Negative("Cancel").
			Value(confirm),
	}

	form := huh.NewForm(huh.NewGroup(fields...))
	return form.WithKeyMap(cardFormKeyMap())
}
