// Package store holds the in-memory board, list and card state of the active
// board. Only the loader and the mutation engine write to it; everything else
// receives copies.
package store

import (
	"slices"
	"strconv"
	"sync"

	"github.com/thenoetrevino/termllo/internal/models"
)

// Store is the single source of truth for rendering
type Store struct {
	mu sync.RWMutex

	boards      []models.Board
	activeBoard int

	// lists carries metadata only; cards live in cards keyed by list id
	lists      []models.List
	cards      map[string][]models.Card
	activeList int
}

// New returns an empty store
func New() *Store {
	return &Store{cards: make(map[string][]models.Card)}
}

// MoveResult is what a local move produced
type MoveResult struct {
	Card      models.Card     // the moved card with its estimated pos
	Placement models.Position // ordering value to send to the service
	Index     int             // where the card landed in the destination
	From      []string        // names in the source list after the move
	To        []string        // names in the destination list after the move
}

// SetBoards replaces the board sequence. The active board index is kept when
// still valid, otherwise reset to the first board.
func (s *Store) SetBoards(boards []models.Board) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.boards = cloneBoards(boards)
	if s.activeBoard >= len(s.boards) {
		s.activeBoard = 0
	}
}

// ReplaceBoard makes boardIdx active and installs its lists and cards in one
// step. The active list is reset to the first one. cards must already be
// grouped by list id; lists without an entry get an empty sequence.
func (s *Store) ReplaceBoard(boardIdx int, lists []models.List, cards map[string][]models.Card) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if boardIdx < 0 || boardIdx >= len(s.boards) {
		return &models.NotFoundError{Kind: "board", ID: strconv.Itoa(boardIdx)}
	}

	nextLists := make([]models.List, len(lists))
	nextCards := make(map[string][]models.Card, len(lists))
	for i, l := range lists {
		nextLists[i] = models.List{ID: l.ID, Name: l.Name}
		seq := slices.Clone(cards[l.ID])
		if seq == nil {
			seq = []models.Card{}
		}
		for j := range seq {
			seq[j].ListID = l.ID
		}
		nextCards[l.ID] = seq
	}

	s.activeBoard = boardIdx
	s.lists = nextLists
	s.cards = nextCards
	s.activeList = 0
	return nil
}

// Boards returns a copy of the board sequence
func (s *Store) Boards() []models.Board {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneBoards(s.boards)
}

// ActiveBoardIndex returns the index of the active board
func (s *Store) ActiveBoardIndex() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeBoard
}

// ActiveBoard returns the active board with its lists and cards materialized
func (s *Store) ActiveBoard() (models.Board, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.activeBoard >= len(s.boards) {
		return models.Board{}, false
	}
	b := s.boards[s.activeBoard]
	b.Lists = make([]models.List, len(s.lists))
	for i, l := range s.lists {
		b.Lists[i] = models.List{ID: l.ID, Name: l.Name, Cards: slices.Clone(s.cards[l.ID])}
	}
	return b, true
}

// Lists returns the list metadata of the active board
func (s *Store) Lists() []models.List {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.lists)
}

// ActiveListIndex returns the index of the focused list
func (s *Store) ActiveListIndex() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeList
}

// SetActiveList focuses the list at idx
func (s *Store) SetActiveList(idx int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if idx < 0 || idx >= len(s.lists) {
		return &models.NotFoundError{Kind: "list", ID: strconv.Itoa(idx)}
	}
	s.activeList = idx
	return nil
}

// HasList reports whether listID belongs to the active board
func (s *Store) HasList(listID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listIndex(listID) >= 0
}

// Cards returns a copy of the cards in listID, in display order
func (s *Store) Cards(listID string) []models.Card {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.cards[listID])
}

// CardNames returns the names of the cards in listID
func (s *Store) CardNames(listID string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.CardNames(s.cards[listID])
}

// Card looks up a card by id within listID
func (s *Store) Card(listID, cardID string) (models.Card, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, err := s.cardIndex(listID, cardID)
	if err != nil {
		return models.Card{}, err
	}
	return s.cards[listID][idx], nil
}

// MoveCard relocates the card at fromPos in fromList to toPos in toList.
// The ordering value is computed against the destination after removal and
// before insertion. A toPos past the end appends. The destination becomes the
// active list.
func (s *Store) MoveCard(fromList string, fromPos int, toList string, toPos int) (MoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if toPos < 0 {
		return MoveResult{}, &models.ValidationError{Field: "toPos", Reason: "must not be negative"}
	}
	if s.listIndex(fromList) < 0 {
		return MoveResult{}, &models.NotFoundError{Kind: "list", ID: fromList}
	}
	toIdx := s.listIndex(toList)
	if toIdx < 0 {
		return MoveResult{}, &models.NotFoundError{Kind: "list", ID: toList}
	}
	src := s.cards[fromList]
	if fromPos < 0 || fromPos >= len(src) {
		return MoveResult{}, &models.NotFoundError{Kind: "card", ID: "#" + strconv.Itoa(fromPos), Scope: "list " + fromList}
	}

	card := src[fromPos]
	s.cards[fromList] = slices.Delete(slices.Clone(src), fromPos, fromPos+1)

	dest := s.cards[toList]
	placement := models.PlacementFor(dest, toPos)
	card.Pos = placement.Estimate(dest)
	card.ListID = toList

	at := min(toPos, len(dest))
	s.cards[toList] = slices.Insert(slices.Clone(dest), at, card)
	s.activeList = toIdx

	return MoveResult{
		Card:      card,
		Placement: placement,
		Index:     at,
		From:      models.CardNames(s.cards[fromList]),
		To:        models.CardNames(s.cards[toList]),
	}, nil
}

// InsertFront puts card first in its list
func (s *Store) InsertFront(card models.Card) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listIndex(card.ListID) < 0 {
		return &models.NotFoundError{Kind: "list", ID: card.ListID}
	}
	s.cards[card.ListID] = append([]models.Card{card}, s.cards[card.ListID]...)
	return nil
}

// ApplyEdit replaces the name and description of a card. Pos and list are
// left alone.
func (s *Store) ApplyEdit(listID, cardID, name, desc string) (models.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, err := s.cardIndex(listID, cardID)
	if err != nil {
		return models.Card{}, err
	}
	seq := slices.Clone(s.cards[listID])
	seq[idx].Name = name
	seq[idx].Desc = desc
	s.cards[listID] = seq
	return seq[idx], nil
}

// SetCardPos records the service-assigned pos of a card wherever it currently
// is. It reports false when the card is no longer on the active board.
func (s *Store) SetCardPos(cardID string, pos float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for listID, seq := range s.cards {
		for i := range seq {
			if seq[i].ID == cardID {
				next := slices.Clone(seq)
				next[i].Pos = pos
				s.cards[listID] = next
				return true
			}
		}
	}
	return false
}

func (s *Store) listIndex(listID string) int {
	return slices.IndexFunc(s.lists, func(l models.List) bool { return l.ID == listID })
}

func (s *Store) cardIndex(listID, cardID string) (int, error) {
	if s.listIndex(listID) < 0 {
		return -1, &models.NotFoundError{Kind: "list", ID: listID}
	}
	idx := slices.IndexFunc(s.cards[listID], func(c models.Card) bool { return c.ID == cardID })
	if idx < 0 {
		return -1, &models.NotFoundError{Kind: "card", ID: cardID, Scope: "list " + listID}
	}
	return idx, nil
}

func cloneBoards(boards []models.Board) []models.Board {
	out := make([]models.Board, len(boards))
	for i, b := range boards {
		b.Lists = nil
		out[i] = b
	}
	return out
}
