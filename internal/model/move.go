package model

import "fmt"

// MoveRequest is a move as submitted by a client, squares in "e4" notation.
type MoveRequest struct {
	From Coordinate `json:"from"`
	To   Coordinate `json:"to"`
}

// Ply is one applied move.
type Ply struct {
	Piece         Piece      `json:"piece"`
	From          Coordinate `json:"from"`
	To            Coordinate `json:"to"`
	CapturedPiece *Piece     `json:"capturedPiece"`
	Notation      string     `json:"notation"`
}

type SimpleMove struct {
	From Coordinate `json:"from"`
	To   Coordinate `json:"to"`
}

type CapturedPieces struct {
	White []Piece `json:"white"`
	Black []Piece `json:"black"`
}

func newCapturedPieces() CapturedPieces {
	return CapturedPieces{
		White: make([]Piece, 0),
		Black: make([]Piece, 0),
	}
}

// add records victim as taken by team.
func (c *CapturedPieces) add(team Team, victim Piece) {
	switch team {
	case White:
		c.White = append(c.White, victim)
	case Black:
		c.Black = append(c.Black, victim)
	}
}

func (c CapturedPieces) clone() CapturedPieces {
	return CapturedPieces{
		White: append(make([]Piece, 0, len(c.White)), c.White...),
		Black: append(make([]Piece, 0, len(c.Black)), c.Black...),
	}
}

// notation renders a ply in short algebraic form without check markers,
// e.g. "Rxa5", "e4", "dxe5".
func notation(piece Piece, from, to Coordinate, capture bool) string {
	prefix := piece.Type.getPieceNotation()
	pawnFile := ""
	captureMark := ""
	if capture {
		captureMark = "x"
		if piece.Type == Pawn {
			pawnFile = from.fileNotation()
		}
	}
	return fmt.Sprintf("%s%s%s%s", prefix, pawnFile, captureMark, to)
}
