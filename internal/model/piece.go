package model

import "fmt"

type Team string

const (
	White Team = "white"
	Black Team = "black"
)

func (t Team) Valid() bool {
	return t == White || t == Black
}

func (t Team) Opposite() Team {
	if t == White {
		return Black
	}
	return White
}

// ParseTeam accepts "white" or "black".
func ParseTeam(s string) (Team, error) {
	t := Team(s)
	if !t.Valid() {
		return "", fmt.Errorf("team %q: %w", s, ErrInvalidPiece)
	}
	return t, nil
}

type PieceType string

const (
	King   PieceType = "king"
	Queen  PieceType = "queen"
	Rook   PieceType = "rook"
	Bishop PieceType = "bishop"
	Knight PieceType = "knight"
	Pawn   PieceType = "pawn"
)

func (p PieceType) getPieceNotation() string {
	switch p {
	case King:
		return "K"
	case Queen:
		return "Q"
	case Rook:
		return "R"
	case Bishop:
		return "B"
	case Knight:
		return "N"
	case Pawn:
		return ""
	}
	return ""
}

func (p PieceType) Valid() bool {
	switch p {
	case King, Queen, Rook, Bishop, Knight, Pawn:
		return true
	}
	return false
}

func (p PieceType) score() float64 {
	switch p {
	case Queen:
		return 9
	case Rook:
		return 5
	case Bishop:
		return 3
	case Knight:
		return 2.5
	case Pawn:
		return 1
	}
	return 0
}

var (
	knightOffsets = [][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	kingOffsets   = [][2]int{{0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}, {-1, 0}, {-1, 1}}
)

// Piece is immutable; two pieces of the same type and team are equal.
type Piece struct {
	Type PieceType `json:"type"`
	Team Team      `json:"team"`
}

func NewPiece(t PieceType, team Team) Piece {
	return Piece{Type: t, Team: team}
}

func (p Piece) Validate() error {
	if !p.Type.Valid() {
		return fmt.Errorf("piece type %q: %w", p.Type, ErrInvalidPiece)
	}
	if !p.Team.Valid() {
		return fmt.Errorf("team %q: %w", p.Team, ErrInvalidPiece)
	}
	return nil
}

func (p Piece) Score() float64 {
	return p.Type.score()
}

func (p Piece) IsSameTeam(team Team) bool {
	return p.Team == team
}

func (p Piece) IsSameTeamPiece(other Piece) bool {
	return p.Team == other.Team
}

func (p Piece) String() string {
	return fmt.Sprintf("%s %s", p.Team, p.Type)
}

// CandidatePoints lists the squares the piece passes over going from start to
// end, in travel order, excluding start and including end. An empty result
// means the piece cannot make that move.
func (p Piece) CandidatePoints(start, end Coordinate) []Coordinate {
	switch p.Type {
	case Bishop:
		return slide(start, end, diagonals)
	case Rook:
		return slide(start, end, orthogonals)
	case Queen:
		return slide(start, end, allDirs)
	case Knight:
		return leap(start, end, knightOffsets)
	case King:
		return leap(start, end, kingOffsets)
	case Pawn:
		return p.pawnPoints(start, end)
	}
	return nil
}

func slide(start, end Coordinate, candidates []Direction) []Coordinate {
	d := NewNavigator(start, end).Direction(candidates)
	if d == NotFound {
		return nil
	}
	var points []Coordinate
	for point := start; point != end; {
		point = point.Move(d)
		points = append(points, point)
	}
	return points
}

func leap(start, end Coordinate, offsets [][2]int) []Coordinate {
	for _, o := range offsets {
		if target, ok := start.offset(o[0], o[1]); ok && target == end {
			return []Coordinate{end}
		}
	}
	return nil
}

func (p Piece) forward() int {
	if p.Team == Black {
		return -1
	}
	return 1
}

func (p Piece) homeRank() int {
	if p.Team == Black {
		return 6
	}
	return 1
}

func (p Piece) pawnPoints(start, end Coordinate) []Coordinate {
	dx := end.file - start.file
	dy := end.rank - start.rank
	fwd := p.forward()

	switch {
	case dx == 0 && dy == fwd:
		return []Coordinate{end}
	case dx == 0 && dy == 2*fwd && start.rank == p.homeRank():
		return []Coordinate{{file: start.file, rank: start.rank + fwd}, end}
	case abs(dx) == 1 && dy == fwd:
		return []Coordinate{end}
	}
	return nil
}

// capturesDiagonally reports whether a pawn move from start to end is its
// diagonal step, which is only legal onto an opposing piece. Straight pawn
// steps are only legal onto empty squares.
func (p Piece) capturesDiagonally(start, end Coordinate) bool {
	return p.Type == Pawn && start.file != end.file
}
