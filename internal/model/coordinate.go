package model

import "fmt"

const (
	FileStart = 'a'
	FileEnd   = 'h'
	RankStart = '1'
	RankEnd   = '8'

	boardSize = 8
)

// Coordinate is a square on the board. File and rank are zero based, so a1 is
// {0, 0} and h8 is {7, 7}. The zero value is a1.
type Coordinate struct {
	file int
	rank int
}

// NewCoordinate builds a coordinate from its file letter and rank digit.
func NewCoordinate(file, rank rune) (Coordinate, error) {
	if file < FileStart || file > FileEnd {
		return Coordinate{}, fmt.Errorf("file %q outside %c..%c: %w", file, FileStart, FileEnd, ErrOutOfBounds)
	}
	if rank < RankStart || rank > RankEnd {
		return Coordinate{}, fmt.Errorf("rank %q outside %c..%c: %w", rank, RankStart, RankEnd, ErrOutOfBounds)
	}
	return Coordinate{file: int(file - FileStart), rank: int(rank - RankStart)}, nil
}

// ParseCoordinate reads square notation such as "e4".
func ParseCoordinate(s string) (Coordinate, error) {
	r := []rune(s)
	if len(r) != 2 {
		return Coordinate{}, fmt.Errorf("square %q: %w", s, ErrOutOfBounds)
	}
	return NewCoordinate(r[0], r[1])
}

// CoordinateAt builds a coordinate from zero based indices.
func CoordinateAt(file, rank int) (Coordinate, error) {
	if !inBounds(file, rank) {
		return Coordinate{}, fmt.Errorf("square (%d,%d): %w", file, rank, ErrOutOfBounds)
	}
	return Coordinate{file: file, rank: rank}, nil
}

// MustParseCoordinate is ParseCoordinate for literals known to be valid.
func MustParseCoordinate(s string) Coordinate {
	c, err := ParseCoordinate(s)
	if err != nil {
		panic(err)
	}
	return c
}

func inBounds(file, rank int) bool {
	return file >= 0 && file < boardSize && rank >= 0 && rank < boardSize
}

func (c Coordinate) File() int { return c.file }
func (c Coordinate) Rank() int { return c.rank }

// Move steps one square along d. The caller guarantees the result stays on the
// board; stepping with NotFound returns c unchanged.
func (c Coordinate) Move(d Direction) Coordinate {
	dx, dy := d.Delta()
	return Coordinate{file: c.file + dx, rank: c.rank + dy}
}

func (c Coordinate) offset(dx, dy int) (Coordinate, bool) {
	if !inBounds(c.file+dx, c.rank+dy) {
		return Coordinate{}, false
	}
	return Coordinate{file: c.file + dx, rank: c.rank + dy}, true
}

func (c Coordinate) String() string {
	return fmt.Sprintf("%c%c", FileStart+rune(c.file), RankStart+rune(c.rank))
}

func (c Coordinate) fileNotation() string {
	return fmt.Sprintf("%c", FileStart+rune(c.file))
}

// MarshalText lets coordinates serve as JSON object keys ("a1").
func (c Coordinate) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Coordinate) UnmarshalText(text []byte) error {
	parsed, err := ParseCoordinate(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
