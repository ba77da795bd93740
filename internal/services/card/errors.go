package card

import "github.com/thenoetrevino/termllo/internal/models"

// Card validation errors
var (
	ErrEmptyName   error = &models.ValidationError{Field: "name", Reason: "cannot be empty"}
	ErrNameTooLong error = &models.ValidationError{Field: "name", Reason: "too long"}
	ErrDescTooLong error = &models.ValidationError{Field: "desc", Reason: "too long"}
	ErrNegativePos error = &models.ValidationError{Field: "toPos", Reason: "must not be negative"}
	ErrMissingList error = &models.ValidationError{Field: "idList", Reason: "cannot be empty"}
	ErrMissingCard error = &models.ValidationError{Field: "id", Reason: "cannot be empty"}
)
