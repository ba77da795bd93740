package testutil

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/thenoetrevino/termllo/internal/models"
	"github.com/thenoetrevino/termllo/internal/trello"
)

// PositionUpdate records one UpdateCardPosition call
type PositionUpdate struct {
	CardID string
	ListID string
	Pos    models.Position
}

// FieldUpdate records one UpdateCardFields call
type FieldUpdate struct {
	CardID string
	Name   string
	Desc   string
}

// FakeRemote is an in-memory implementation of trello.API for testing.
type FakeRemote struct {
	mu     sync.Mutex
	boards []models.Board
	lists  map[string][]models.List // boardID -> lists
	cards  map[string][]models.Card // boardID -> flat cards
	nextID int

	// Error injection for testing
	GetBoardsErr          error
	GetListsErr           error
	GetCardsErr           error
	UpdateCardPositionErr error
	CreateCardErr         error
	UpdateCardFieldsErr   error

	// UpdateGate, when set, blocks UpdateCardPosition until it receives
	UpdateGate chan struct{}

	// Call recording
	getBoardsCalls  int
	getListsCalls   int
	getCardsCalls   int
	positionUpdates []PositionUpdate
	created         []trello.NewCard
	fieldUpdates    []FieldUpdate
}

var _ trello.API = (*FakeRemote)(nil)

// NewFakeRemote creates an empty FakeRemote.
func NewFakeRemote() *FakeRemote {
	return &FakeRemote{
		lists: make(map[string][]models.List),
		cards: make(map[string][]models.Card),
	}
}

// AddBoard adds a board.
func (f *FakeRemote) AddBoard(b models.Board) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.boards = append(f.boards, b)
}

// AddList appends a list to a board.
func (f *FakeRemote) AddList(boardID, listID, name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lists[boardID] = append(f.lists[boardID], models.List{ID: listID, Name: name})
}

// AddCard appends a card to a board.
func (f *FakeRemote) AddCard(boardID string, c models.Card) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cards[boardID] = append(f.cards[boardID], c)
}

// SetErr sets an injected error under the lock, for tests that change it
// while background calls are running.
func (f *FakeRemote) SetErr(target *error, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	*target = err
}

// GetBoards implements trello.API.
func (f *FakeRemote) GetBoards(ctx context.Context) ([]models.Board, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.getBoardsCalls++
	if f.GetBoardsErr != nil {
		return nil, f.GetBoardsErr
	}
	return slices.Clone(f.boards), nil
}

// GetLists implements trello.API.
func (f *FakeRemote) GetLists(ctx context.Context, boardID string) ([]models.List, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.getListsCalls++
	if f.GetListsErr != nil {
		return nil, f.GetListsErr
	}
	return slices.Clone(f.lists[boardID]), nil
}

// GetCards implements trello.API.
func (f *FakeRemote) GetCards(ctx context.Context, boardID string) ([]models.Card, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.getCardsCalls++
	if f.GetCardsErr != nil {
		return nil, f.GetCardsErr
	}
	return slices.Clone(f.cards[boardID]), nil
}

// AssignedPos is the pos the fake service assigns for a requested position.
func AssignedPos(p models.Position) float64 {
	switch p.Kind {
	case models.PositionTop:
		return 1
	case models.PositionBottom:
		return 1 << 20
	default:
		return p.Midpoint()
	}
}

// UpdateCardPosition implements trello.API.
func (f *FakeRemote) UpdateCardPosition(ctx context.Context, cardID, listID string, pos models.Position) (float64, error) {
	f.mu.Lock()
	gate := f.UpdateGate
	f.positionUpdates = append(f.positionUpdates, PositionUpdate{CardID: cardID, ListID: listID, Pos: pos})
	err := f.UpdateCardPositionErr
	f.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return 0, ctx.Err()
		}
	}
	if err != nil {
		return 0, err
	}

	assigned := AssignedPos(pos)
	f.mu.Lock()
	defer f.mu.Unlock()
	for boardID, cards := range f.cards {
		for i := range cards {
			if cards[i].ID == cardID {
				f.cards[boardID][i].ListID = listID
				f.cards[boardID][i].Pos = assigned
			}
		}
	}
	return assigned, nil
}

// CreateCard implements trello.API.
func (f *FakeRemote) CreateCard(ctx context.Context, card trello.NewCard) (models.Card, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, card)
	if f.CreateCardErr != nil {
		return models.Card{}, f.CreateCardErr
	}
	f.nextID++
	return models.Card{
		ID:     fmt.Sprintf("new-%d", f.nextID),
		Name:   card.Name,
		Desc:   card.Desc,
		ListID: card.ListID,
		Pos:    AssignedPos(card.Pos),
	}, nil
}

// UpdateCardFields implements trello.API.
func (f *FakeRemote) UpdateCardFields(ctx context.Context, cardID, name, desc string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fieldUpdates = append(f.fieldUpdates, FieldUpdate{CardID: cardID, Name: name, Desc: desc})
	return f.UpdateCardFieldsErr
}

// FetchCalls returns how many times boards, lists and cards were fetched.
func (f *FakeRemote) FetchCalls() (boards, lists, cards int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.getBoardsCalls, f.getListsCalls, f.getCardsCalls
}

// PositionUpdates returns the recorded UpdateCardPosition calls.
func (f *FakeRemote) PositionUpdates() []PositionUpdate {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.positionUpdates)
}

// Created returns the recorded CreateCard calls.
func (f *FakeRemote) Created() []trello.NewCard {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.created)
}

// FieldUpdates returns the recorded UpdateCardFields calls.
func (f *FakeRemote) FieldUpdates() []FieldUpdate {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.fieldUpdates)
}
