package cli

import (
	"fmt"
	"strconv"

	"github.com/thenoetrevino/termllo/internal/models"
)

// ListAt returns the list at idx of the active board
func ListAt(lists []models.List, idx int) (models.List, error) {
	if idx < 0 || idx >= len(lists) {
		return models.List{}, &models.NotFoundError{
			Kind:  "list",
			ID:    strconv.Itoa(idx),
			Scope: fmt.Sprintf("board with %d lists", len(lists)),
		}
	}
	return lists[idx], nil
}
