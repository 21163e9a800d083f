package model

// Direction is one of the eight unit vectors a sliding piece travels along,
// or NotFound when two squares are not aligned on an allowed line.
type Direction int

const (
	NotFound Direction = iota
	North
	South
	East
	West
	NorthEast
	NorthWest
	SouthEast
	SouthWest
)

var (
	orthogonals = []Direction{North, East, South, West}
	diagonals   = []Direction{NorthEast, SouthEast, SouthWest, NorthWest}
	allDirs     = []Direction{North, East, South, West, NorthEast, SouthEast, SouthWest, NorthWest}
)

// Delta returns the (file, rank) step. NotFound has no vector and returns (0, 0).
func (d Direction) Delta() (int, int) {
	switch d {
	case North:
		return 0, 1
	case South:
		return 0, -1
	case East:
		return 1, 0
	case West:
		return -1, 0
	case NorthEast:
		return 1, 1
	case NorthWest:
		return -1, 1
	case SouthEast:
		return 1, -1
	case SouthWest:
		return -1, -1
	}
	return 0, 0
}

// Navigator classifies the line between two squares.
type Navigator struct {
	start Coordinate
	end   Coordinate
}

func NewNavigator(start, end Coordinate) Navigator {
	return Navigator{start: start, end: end}
}

// Direction returns the line from start to end if it is one of candidates,
// otherwise NotFound. Equal squares and knight-shaped displacements are NotFound.
func (n Navigator) Direction(candidates []Direction) Direction {
	d := n.classify()
	if d == NotFound {
		return NotFound
	}
	for _, c := range candidates {
		if c == d {
			return d
		}
	}
	return NotFound
}

func (n Navigator) classify() Direction {
	dx := n.end.file - n.start.file
	dy := n.end.rank - n.start.rank

	switch {
	case dx == 0 && dy > 0:
		return North
	case dx == 0 && dy < 0:
		return South
	case dy == 0 && dx > 0:
		return East
	case dy == 0 && dx < 0:
		return West
	case dx != 0 && abs(dx) == abs(dy):
		switch {
		case dx > 0 && dy > 0:
			return NorthEast
		case dx < 0 && dy > 0:
			return NorthWest
		case dx > 0:
			return SouthEast
		default:
			return SouthWest
		}
	}
	return NotFound
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
