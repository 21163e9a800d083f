package model

import "errors"

// Move and placement rejections. None of them leave the board modified.
var (
	ErrOutOfBounds     = errors.New("coordinate out of bounds")
	ErrNoPieceAtSource = errors.New("no piece at source square")
	ErrNoLegalPath     = errors.New("piece cannot reach destination")
	ErrBlockedRoute    = errors.New("route is blocked")
	ErrFriendlyCapture = errors.New("destination occupied by own piece")
	ErrInvalidPiece    = errors.New("invalid piece")
)

// ErrorKind names the rejection carried by err, or "" if err is not one of ours.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrOutOfBounds):
		return "OutOfBounds"
	case errors.Is(err, ErrNoPieceAtSource):
		return "NoPieceAtSource"
	case errors.Is(err, ErrNoLegalPath):
		return "NoLegalPath"
	case errors.Is(err, ErrBlockedRoute):
		return "BlockedRoute"
	case errors.Is(err, ErrFriendlyCapture):
		return "FriendlyCapture"
	case errors.Is(err, ErrInvalidPiece):
		return "InvalidPiece"
	}
	return ""
}
