package models

import (
	"fmt"
	"strconv"
)

// PositionKind tags the variant of a Position.
type PositionKind int

const (
	// PositionTop places a card first in its list
	PositionTop PositionKind = iota
	// PositionBottom places a card last in its list
	PositionBottom
	// PositionBetween places a card between two neighbours
	PositionBetween
)

// String returns the kind name
func (k PositionKind) String() string {
	switch k {
	case PositionTop:
		return "top"
	case PositionBottom:
		return "bottom"
	case PositionBetween:
		return "between"
	default:
		return fmt.Sprintf("PositionKind(%d)", int(k))
	}
}

// Position is the ordering value requested for a moved or created card.
// Top and Bottom stay symbolic until they reach the remote client, which
// sends them as the "top"/"bottom" keywords. Between carries the midpoint
// of its two neighbours.
type Position struct {
	Kind   PositionKind
	Before float64 // pos of the card that ends up above (Between only)
	After  float64 // pos of the card that ends up below (Between only)
}

// Top returns the Top variant
func Top() Position { return Position{Kind: PositionTop} }

// Bottom returns the Bottom variant
func Bottom() Position { return Position{Kind: PositionBottom} }

// Between returns the Between variant for the given neighbours
func Between(before, after float64) Position {
	return Position{Kind: PositionBetween, Before: before, After: after}
}

// Midpoint returns the arithmetic mean of the neighbours.
// Only meaningful for PositionBetween.
func (p Position) Midpoint() float64 {
	return (p.Before + p.After) / 2
}

// PlacementFor computes the ordering value for inserting at index toPos into
// dest. dest must already exclude the card being moved.
func PlacementFor(dest []Card, toPos int) Position {
	switch {
	case toPos <= 0:
		return Top()
	case toPos >= len(dest):
		return Bottom()
	default:
		return Between(dest[toPos-1].Pos, dest[toPos].Pos)
	}
}

// Estimate resolves the position to a local numeric pos against dest (the
// destination sequence before insertion). The service value replaces it once
// the remote update succeeds.
func (p Position) Estimate(dest []Card) float64 {
	switch p.Kind {
	case PositionTop:
		if len(dest) == 0 {
			return PosStep
		}
		return dest[0].Pos / 2
	case PositionBottom:
		if len(dest) == 0 {
			return PosStep
		}
		return dest[len(dest)-1].Pos + PosStep
	default:
		return p.Midpoint()
	}
}

// WireValue renders the position the way the remote API expects it.
func (p Position) WireValue() string {
	switch p.Kind {
	case PositionTop:
		return "top"
	case PositionBottom:
		return "bottom"
	default:
		return strconv.FormatFloat(p.Midpoint(), 'f', -1, 64)
	}
}

// String implements fmt.Stringer
func (p Position) String() string {
	if p.Kind == PositionBetween {
		return fmt.Sprintf("between(%g,%g)", p.Before, p.After)
	}
	return p.Kind.String()
}
