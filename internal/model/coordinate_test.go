package model

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestNewCoordinateRoundTripsEverySquare(t *testing.T) {
	for f := 'a'; f <= 'h'; f++ {
		for r := '1'; r <= '8'; r++ {
			c, err := NewCoordinate(f, r)
			if err != nil {
				t.Fatalf("NewCoordinate(%c, %c): %v", f, r, err)
			}
			if c.File() != int(f-'a') || c.Rank() != int(r-'1') {
				t.Fatalf("%c%c: got (%d,%d)", f, r, c.File(), c.Rank())
			}
			if got, want := c.String(), string([]rune{f, r}); got != want {
				t.Fatalf("String() = %q, want %q", got, want)
			}
		}
	}
}

func TestNewCoordinateOutOfBounds(t *testing.T) {
	tests := []struct {
		file, rank rune
	}{
		{'i', '1'},
		{'`', '1'},
		{'A', '4'},
		{'a', '0'},
		{'a', '9'},
		{'h', ':'},
	}
	for _, tt := range tests {
		if _, err := NewCoordinate(tt.file, tt.rank); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("NewCoordinate(%c, %c): expected ErrOutOfBounds, got %v", tt.file, tt.rank, err)
		}
	}
}

func TestParseCoordinate(t *testing.T) {
	for _, s := range []string{"", "a", "a10", "z9", "11"} {
		if _, err := ParseCoordinate(s); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("ParseCoordinate(%q): expected ErrOutOfBounds, got %v", s, err)
		}
	}
	c, err := ParseCoordinate("e4")
	if err != nil {
		t.Fatalf("parse e4: %v", err)
	}
	if c.File() != 4 || c.Rank() != 3 {
		t.Fatalf("e4 parsed as (%d,%d)", c.File(), c.Rank())
	}
}

func TestCoordinateAt(t *testing.T) {
	if _, err := CoordinateAt(8, 0); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
	if _, err := CoordinateAt(0, -1); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
	c, err := CoordinateAt(7, 7)
	if err != nil || c != MustParseCoordinate("h8") {
		t.Fatalf("CoordinateAt(7,7) = %v, %v", c, err)
	}
}

func TestCoordinateMove(t *testing.T) {
	d4 := MustParseCoordinate("d4")
	tests := []struct {
		dir  Direction
		want string
	}{
		{North, "d5"},
		{South, "d3"},
		{East, "e4"},
		{West, "c4"},
		{NorthEast, "e5"},
		{NorthWest, "c5"},
		{SouthEast, "e3"},
		{SouthWest, "c3"},
		{NotFound, "d4"},
	}
	for _, tt := range tests {
		if got := d4.Move(tt.dir); got.String() != tt.want {
			t.Fatalf("d4.Move(%v) = %s, want %s", tt.dir, got, tt.want)
		}
	}
}

func TestCoordinateAsJSONKey(t *testing.T) {
	b := NewBoard().Place(MustParseCoordinate("a1"), NewPiece(Rook, White))
	raw, err := json.Marshal(b)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != `{"a1":{"type":"rook","team":"white"}}` {
		t.Fatalf("unexpected json %s", raw)
	}

	var bad Board
	if err := json.Unmarshal([]byte(`{"j9":{"type":"rook","team":"white"}}`), &bad); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds decoding j9, got %v", err)
	}
}
