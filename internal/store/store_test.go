package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/termllo/internal/models"
)

// ============================================================================
// Helpers
// ============================================================================

func card(id string, pos float64) models.Card {
	return models.Card{ID: id, Name: id, Pos: pos}
}

// newStore builds a store with one board holding lists A and B
func newStore(t *testing.T, a, b []models.Card) *Store {
	t.Helper()
	s := New()
	s.SetBoards([]models.Board{{ID: "board", Name: "Board", Starred: true}})
	err := s.ReplaceBoard(0,
		[]models.List{{ID: "A", Name: "A"}, {ID: "B", Name: "B"}},
		map[string][]models.Card{"A": a, "B": b})
	require.NoError(t, err)
	return s
}

// assertListIDs checks that every card sits in the list its ListID names
func assertListIDs(t *testing.T, s *Store) {
	t.Helper()
	for _, l := range s.Lists() {
		for _, c := range s.Cards(l.ID) {
			assert.Equal(t, l.ID, c.ListID, "card %s", c.ID)
		}
	}
}

// ============================================================================
// MoveCard
// ============================================================================

func TestMoveCardToEmptyListTop(t *testing.T) {
	s := newStore(t, []models.Card{card("x", 1), card("y", 3)}, nil)

	res, err := s.MoveCard("A", 0, "B", 0)
	require.NoError(t, err)

	assert.Equal(t, []string{"y"}, res.From)
	assert.Equal(t, []string{"x"}, res.To)
	assert.Equal(t, models.PositionTop, res.Placement.Kind)
	assert.Equal(t, 1, s.ActiveListIndex())
	assert.Equal(t, "B", res.Card.ListID)
	assertListIDs(t, s)
}

func TestMoveCardTopIgnoresDestinationContents(t *testing.T) {
	s := newStore(t, []models.Card{card("x", 1)}, []models.Card{card("p", 10), card("q", 20)})

	res, err := s.MoveCard("A", 0, "B", 0)
	require.NoError(t, err)
	assert.Equal(t, models.PositionTop, res.Placement.Kind)
	assert.Equal(t, []string{"x", "p", "q"}, res.To)
	assert.Less(t, res.Card.Pos, 10.0)
}

func TestMoveCardPastEndIsBottom(t *testing.T) {
	for _, toPos := range []int{2, 7} {
		s := newStore(t, []models.Card{card("x", 1)}, []models.Card{card("p", 10), card("q", 20)})
		res, err := s.MoveCard("A", 0, "B", toPos)
		require.NoError(t, err)
		assert.Equal(t, models.PositionBottom, res.Placement.Kind)
		assert.Equal(t, []string{"p", "q", "x"}, res.To)
		assert.Greater(t, res.Card.Pos, 20.0)
	}
}

func TestMoveCardBetweenUsesMidpoint(t *testing.T) {
	s := newStore(t, []models.Card{card("x", 1)}, []models.Card{card("p", 10), card("q", 20)})

	res, err := s.MoveCard("A", 0, "B", 1)
	require.NoError(t, err)
	assert.Equal(t, models.PositionBetween, res.Placement.Kind)
	assert.Equal(t, 15.0, res.Placement.Midpoint())
	assert.Equal(t, 15.0, res.Card.Pos)
	assert.Equal(t, []string{"p", "x", "q"}, res.To)
}

// Positions are measured after the card leaves the source, so a same-list
// move down by one compares against the card that slid into its place.
func TestMoveCardSameListMeasuresAfterRemoval(t *testing.T) {
	s := newStore(t, []models.Card{card("a", 1), card("b", 2), card("c", 3), card("d", 4)}, nil)

	res, err := s.MoveCard("A", 0, "A", 1)
	require.NoError(t, err)
	// after removal: b(2) c(3) d(4); inserting at 1 sits between b and c
	assert.Equal(t, models.Between(2, 3), res.Placement)
	assert.Equal(t, 2.5, res.Card.Pos)
	assert.Equal(t, []string{"b", "a", "c", "d"}, res.To)
	assert.Equal(t, res.From, res.To)
}

func TestMoveCardSameListToEnd(t *testing.T) {
	s := newStore(t, []models.Card{card("1", 1), card("2", 2), card("3", 3)}, nil)

	res, err := s.MoveCard("A", 0, "A", 2)
	require.NoError(t, err)

	// after removal the list holds two cards, so index 2 is the end
	assert.Equal(t, models.PositionBottom, res.Placement.Kind)
	assert.Equal(t, []string{"2", "3", "1"}, res.To)
	assert.Equal(t, 2, res.Index)
	assert.Len(t, s.Cards("A"), 3)
	assert.Greater(t, res.Card.Pos, 3.0)
}

func TestMoveCardSameListPreservesCount(t *testing.T) {
	cards := []models.Card{card("a", 1), card("b", 2), card("c", 3)}
	for from := range cards {
		for to := range cards {
			s := newStore(t, cards, nil)
			_, err := s.MoveCard("A", from, "A", to)
			require.NoError(t, err)

			got := s.Cards("A")
			require.Len(t, got, 3)
			seen := map[string]int{}
			for _, c := range got {
				seen[c.ID]++
			}
			assert.Equal(t, map[string]int{"a": 1, "b": 1, "c": 1}, seen)
			assertListIDs(t, s)
		}
	}
}

func TestMoveCardErrors(t *testing.T) {
	s := newStore(t, []models.Card{card("x", 1)}, nil)

	_, err := s.MoveCard("A", 0, "B", -1)
	assert.True(t, models.IsValidation(err))

	_, err = s.MoveCard("A", 5, "B", 0)
	assert.True(t, models.IsNotFound(err))

	_, err = s.MoveCard("nope", 0, "B", 0)
	assert.True(t, models.IsNotFound(err))

	_, err = s.MoveCard("A", 0, "nope", 0)
	assert.True(t, models.IsNotFound(err))

	// failed moves leave the store untouched
	assert.Equal(t, []string{"x"}, s.CardNames("A"))
	assert.Equal(t, 0, s.ActiveListIndex())
}

// ============================================================================
// Other mutations
// ============================================================================

func TestInsertFront(t *testing.T) {
	s := newStore(t, []models.Card{card("x", 1)}, nil)

	require.NoError(t, s.InsertFront(models.Card{ID: "n", Name: "n", ListID: "A", Pos: 0.5}))
	assert.Equal(t, []string{"n", "x"}, s.CardNames("A"))

	err := s.InsertFront(models.Card{ID: "z", ListID: "missing"})
	assert.True(t, models.IsNotFound(err))
}

func TestApplyEdit(t *testing.T) {
	s := newStore(t, []models.Card{card("x", 1)}, nil)

	updated, err := s.ApplyEdit("A", "x", "renamed", "notes")
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Name)
	assert.Equal(t, 1.0, updated.Pos)
	assert.Equal(t, "A", updated.ListID)

	_, err = s.ApplyEdit("B", "x", "n", "")
	assert.True(t, models.IsNotFound(err))
}

func TestSetCardPos(t *testing.T) {
	s := newStore(t, []models.Card{card("x", 1)}, nil)
	_, err := s.MoveCard("A", 0, "B", 0)
	require.NoError(t, err)

	assert.True(t, s.SetCardPos("x", 16384))
	c, err := s.Card("B", "x")
	require.NoError(t, err)
	assert.Equal(t, 16384.0, c.Pos)

	assert.False(t, s.SetCardPos("ghost", 1))
}

// ============================================================================
// Board state
// ============================================================================

func TestReplaceBoardResetsActiveList(t *testing.T) {
	s := newStore(t, []models.Card{card("x", 1)}, nil)
	require.NoError(t, s.SetActiveList(1))

	err := s.ReplaceBoard(0, []models.List{{ID: "C"}}, map[string][]models.Card{"C": {card("c", 1)}})
	require.NoError(t, err)
	assert.Equal(t, 0, s.ActiveListIndex())
	assert.Equal(t, "C", s.Cards("C")[0].ListID)

	assert.True(t, models.IsNotFound(s.ReplaceBoard(3, nil, nil)))
}

func TestActiveBoardMaterializesLists(t *testing.T) {
	s := newStore(t, []models.Card{card("x", 1)}, nil)

	b, ok := s.ActiveBoard()
	require.True(t, ok)
	require.Len(t, b.Lists, 2)
	assert.Equal(t, "x", b.Lists[0].Cards[0].ID)
	assert.Empty(t, b.Lists[1].Cards)
}

func TestReadsReturnCopies(t *testing.T) {
	s := newStore(t, []models.Card{card("x", 1)}, nil)

	cards := s.Cards("A")
	cards[0].Name = "mutated"
	assert.Equal(t, []string{"x"}, s.CardNames("A"))

	boards := s.Boards()
	boards[0].Name = "mutated"
	assert.Equal(t, "Board", s.Boards()[0].Name)
}

func TestSetActiveListBounds(t *testing.T) {
	s := newStore(t, nil, nil)
	assert.NoError(t, s.SetActiveList(1))
	assert.True(t, models.IsNotFound(s.SetActiveList(2)))
	assert.True(t, models.IsNotFound(s.SetActiveList(-1)))
	assert.Equal(t, 1, s.ActiveListIndex())
}
