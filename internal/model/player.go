package model

import "errors"

var ErrGameFull = errors.New("game is full")

type Player struct {
	ID   string `json:"id"`
	Team Team   `json:"team"`
}

// Players are the two seats of a game. Seating decides which clients may move
// pieces; it does not impose a turn order.
type Players struct {
	White *Player `json:"white"`
	Black *Player `json:"black"`
}

// Seat gives playerID the first free seat, white before black. A player who
// is already seated gets their existing team back.
func (ps *Players) Seat(playerID string) (Team, error) {
	if team, ok := ps.TeamOf(playerID); ok {
		return team, nil
	}
	if ps.White == nil {
		ps.White = &Player{ID: playerID, Team: White}
		return White, nil
	}
	if ps.Black == nil {
		ps.Black = &Player{ID: playerID, Team: Black}
		return Black, nil
	}
	return "", ErrGameFull
}

func (ps Players) TeamOf(playerID string) (Team, bool) {
	if ps.White != nil && ps.White.ID == playerID {
		return White, true
	}
	if ps.Black != nil && ps.Black.ID == playerID {
		return Black, true
	}
	return "", false
}

// HasOpenSeat reports whether spectators may still attach before both seats fill.
func (ps Players) HasOpenSeat() bool {
	return ps.White == nil || ps.Black == nil
}
