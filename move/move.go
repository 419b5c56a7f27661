// Package move describes plays as data: a starting square, a direction, and
// the word to lay down. Whether a play is legal is someone else's problem.
package move

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/domino14/fichas/bitboard"
	"github.com/domino14/fichas/tiles"
)

// Direction is the orientation of a play.
type Direction uint8

const (
	Horizontal Direction = iota
	Vertical
)

func (d Direction) String() string {
	if d == Horizontal {
		return "(horizontal)"
	} else if d == Vertical {
		return "(vertical)"
	}
	return "none"
}

var reVertical, reHorizontal *regexp.Regexp

func init() {
	reVertical = regexp.MustCompile(`^(?P<col>[A-Z])(?P<row>[0-9]+)$`)
	reHorizontal = regexp.MustCompile(`^(?P<row>[0-9]+)(?P<col>[A-Z])$`)
}

// A Move is a play descriptor: where the word starts, which way it runs,
// and the tiles it lays down (0 for a played-through square).
type Move struct {
	loc  bitboard.Location
	dir  Direction
	word tiles.MachineWord
}

// NewMove creates a move from its parts.
func NewMove(loc bitboard.Location, dir Direction, word tiles.MachineWord) *Move {
	return &Move{loc: loc, dir: dir, word: word}
}

func (m *Move) Location() bitboard.Location {
	return m.loc
}

func (m *Move) Direction() Direction {
	return m.dir
}

func (m *Move) Word() tiles.MachineWord {
	return m.word
}

// BoardCoords renders the starting square in game notation, like 10J for a
// horizontal play or J10 for a vertical one.
func (m *Move) BoardCoords() string {
	return ToBoardGameCoords(m.loc.Row.Idx(), m.loc.Col.Idx(), m.dir == Vertical)
}

func (m *Move) String() string {
	return fmt.Sprintf("<%s %s>", m.BoardCoords(), m.dir)
}

// ToBoardGameCoords converts the row, col, and orientation of the play to
// a coordinate like 5F or G4. Row and col are zero-based.
func ToBoardGameCoords(row int, col int, vertical bool) string {
	colCoords := string(rune('A' + col))
	rowCoords := strconv.Itoa(row + 1)
	if vertical {
		return colCoords + rowCoords
	}
	return rowCoords + colCoords
}

// FromBoardGameCoords does the inverse operation of ToBoardGameCoords
// above. The last return is false if the string is not a coordinate.
func FromBoardGameCoords(c string) (int, int, bool, bool) {
	vMatches := reVertical.FindStringSubmatch(c)
	if len(vMatches) == 3 {
		row, _ := strconv.Atoi(vMatches[2])
		col := int(vMatches[1][0] - 'A')
		return row - 1, col, true, true
	}
	hMatches := reHorizontal.FindStringSubmatch(c)
	if len(hMatches) == 3 {
		row, _ := strconv.Atoi(hMatches[1])
		col := int(hMatches[2][0] - 'A')
		return row - 1, col, false, true
	}
	return 0, 0, false, false
}
