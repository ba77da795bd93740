// Package trello is the remote client for the Trello REST API.
package trello

import (
	"context"

	"github.com/thenoetrevino/termllo/internal/models"
)

// API is the set of remote calls the loader and the mutation engine rely on.
// Every call may fail with a *models.TransportError. Nothing is retried.
type API interface {
	GetBoards(ctx context.Context) ([]models.Board, error)
	GetLists(ctx context.Context, boardID string) ([]models.List, error)
	GetCards(ctx context.Context, boardID string) ([]models.Card, error)

	// UpdateCardPosition moves a card and returns the pos the service assigned
	UpdateCardPosition(ctx context.Context, cardID, listID string, pos models.Position) (float64, error)
	CreateCard(ctx context.Context, card NewCard) (models.Card, error)
	UpdateCardFields(ctx context.Context, cardID, name, desc string) error
}

// NewCard holds the fields sent when creating a card
type NewCard struct {
	Name   string
	Desc   string
	ListID string
	Pos    models.Position
}
