package model

import "fmt"

// Board maps occupied squares to their pieces. Empty squares have no entry.
type Board map[Coordinate]Piece

func NewBoard() Board {
	return make(Board)
}

// Place puts p on c, replacing whatever was there. Used to build placements.
func (b Board) Place(c Coordinate, p Piece) Board {
	b[c] = p
	return b
}

func (b Board) PieceAt(c Coordinate) (Piece, bool) {
	p, ok := b[c]
	return p, ok
}

func (b Board) IsOccupied(c Coordinate) bool {
	_, ok := b[c]
	return ok
}

func (b Board) Clone() Board {
	clone := make(Board, len(b))
	for c, p := range b {
		clone[c] = p
	}
	return clone
}

// Validate rejects placements carrying unknown piece types or teams.
func (b Board) Validate() error {
	for c, p := range b {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("square %s: %w", c, err)
		}
	}
	return nil
}

func (b Board) count(match func(Piece) bool) int {
	n := 0
	for _, p := range b {
		if match(p) {
			n++
		}
	}
	return n
}
