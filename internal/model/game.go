package model

import "fmt"

const (
	kingCount          = 2
	doubledPawnPenalty = 0.5
)

// Game owns a board and validates every mutation of it. A Game has no internal
// locking; callers that share one across goroutines serialize Move themselves.
type Game struct {
	board    Board
	history  []Ply
	captured CapturedPieces
}

// GameState is the snapshot handed to clients.
type GameState struct {
	Board          Board          `json:"board"`
	Scores         Scores         `json:"scores"`
	KingsAlive     bool           `json:"kingsAlive"`
	Winner         *Team          `json:"winner"`
	MoveHistory    []Ply          `json:"moveHistory"`
	CapturedPieces CapturedPieces `json:"capturedPieces"`
	LastMove       *SimpleMove    `json:"lastMove"`
	Players        Players        `json:"players"`
}

type Scores struct {
	White float64 `json:"white"`
	Black float64 `json:"black"`
}

// NewGame starts a game from placement. The placement is copied, so later
// changes to it do not reach the game.
func NewGame(placement Board) *Game {
	return &Game{
		board:    placement.Clone(),
		history:  make([]Ply, 0),
		captured: newCapturedPieces(),
	}
}

// Move moves the piece on start to end, capturing an opposing piece on end.
// On any error the board is left exactly as it was.
func (g *Game) Move(start, end Coordinate) error {
	piece, ok := g.board[start]
	if !ok {
		return fmt.Errorf("%s: %w", start, ErrNoPieceAtSource)
	}

	points := piece.CandidatePoints(start, end)
	if len(points) == 0 {
		return fmt.Errorf("%s from %s to %s: %w", piece, start, end, ErrNoLegalPath)
	}

	for _, point := range points {
		if err := g.checkRoute(end, point); err != nil {
			return err
		}
	}

	victim, err := g.checkDestination(piece, start, end)
	if err != nil {
		return err
	}

	g.movePiece(piece, start, end, victim)
	return nil
}

func (g *Game) checkRoute(end, point Coordinate) error {
	if point != end && g.board.IsOccupied(point) {
		return fmt.Errorf("%s: %w", point, ErrBlockedRoute)
	}
	return nil
}

// checkDestination returns the piece that the move would capture, if any.
func (g *Game) checkDestination(piece Piece, start, end Coordinate) (*Piece, error) {
	occupant, occupied := g.board[end]
	if occupied && piece.IsSameTeamPiece(occupant) {
		return nil, fmt.Errorf("%s holds %s: %w", end, occupant, ErrFriendlyCapture)
	}
	// Pawn capture rule: diagonal steps must capture, straight steps must not.
	if piece.Type == Pawn && piece.capturesDiagonally(start, end) != occupied {
		return nil, fmt.Errorf("pawn from %s to %s: %w", start, end, ErrNoLegalPath)
	}
	if !occupied {
		return nil, nil
	}
	return &occupant, nil
}

func (g *Game) movePiece(piece Piece, start, end Coordinate, victim *Piece) {
	g.history = append(g.history, Ply{
		Piece:         piece,
		From:          start,
		To:            end,
		CapturedPiece: victim,
		Notation:      notation(piece, start, end, victim != nil),
	})
	if victim != nil {
		g.captured.add(piece.Team, *victim)
	}

	delete(g.board, start)
	g.board[end] = piece
}

// Board returns a copy of the current placement.
func (g *Game) Board() Board {
	return g.board.Clone()
}

// CalculateScore sums the team's piece values and subtracts half a point per
// pawn on every file where the team has more than one pawn.
func (g *Game) CalculateScore(team Team) float64 {
	var pawnsOnFile [boardSize]int
	score := 0.0
	for c, p := range g.board {
		if !p.IsSameTeam(team) {
			continue
		}
		score += p.Score()
		if p.Type == Pawn {
			pawnsOnFile[c.file]++
		}
	}
	for _, n := range pawnsOnFile {
		if n > 1 {
			score -= doubledPawnPenalty * float64(n)
		}
	}
	return score
}

// IsKingAlive reports whether exactly two kings remain on the board.
func (g *Game) IsKingAlive() bool {
	return g.board.count(func(p Piece) bool { return p.Type == King }) == kingCount
}

// Winner returns the team whose king is the only one left.
func (g *Game) Winner() (Team, bool) {
	var kings []Piece
	for _, p := range g.board {
		if p.Type == King {
			kings = append(kings, p)
		}
	}
	if len(kings) != 1 {
		return "", false
	}
	return kings[0].Team, true
}

func (g *Game) History() []Ply {
	return append(make([]Ply, 0, len(g.history)), g.history...)
}

func (g *Game) Captured() CapturedPieces {
	return g.captured.clone()
}

func (g *Game) State() GameState {
	state := GameState{
		Board: g.Board(),
		Scores: Scores{
			White: g.CalculateScore(White),
			Black: g.CalculateScore(Black),
		},
		KingsAlive:     g.IsKingAlive(),
		MoveHistory:    g.History(),
		CapturedPieces: g.Captured(),
	}
	if team, ok := g.Winner(); ok {
		state.Winner = &team
	}
	if n := len(g.history); n > 0 {
		last := g.history[n-1]
		state.LastMove = &SimpleMove{From: last.From, To: last.To}
	}
	return state
}
