// Package bitboard tracks which squares of a 15x15 crossword game board are
// occupied, and provides the set algebra and shifts needed to reason about
// adjacency on that board.
//
// Storage convention, shared by both engines:
//
//   - Row-major. Lane 0 is row 1, lane 14 is row 15. Lane 15 is unused and
//     always zero; it is kept around so the lane count is a power of two and
//     row rotation has a scratch slot that never holds real data.
//   - Within a lane, bit 0 is column 1 and bit 14 is column 15. Bit 15 is
//     unused and always zero. If lane 0 == 0x0001, the bottom-left square
//     is set.
//
// Every exported operation preserves those two invariants; constructors mask
// away anything a caller passes in the padding positions.
//
// Two engines exist: Scalar keeps sixteen independent uint16 rows, Wide packs
// the same lanes into four 64-bit words and shifts them uniformly. Exactly one
// is compiled in as the canonical Board type, chosen at build time (see
// select_wide.go and select_scalar.go); both always compile so that tests can
// check them against each other.
package bitboard

import (
	"fmt"
	"strings"
)

// Dim is the board dimension. The board is square.
const Dim = 15

const (
	numLanes = 16
	// rowMax is a full row: columns 1 through 15 set, reserved bit clear.
	rowMax uint16 = 0x7FFF
)

// Interface is the capability set every engine provides. It is generic over
// the concrete engine type so that shift and boolean operations can return
// values rather than boxing them.
type Interface[B any] interface {
	// CountOnes returns the number of occupied squares, 0 through 225.
	CountOnes() int

	// Right and Left shift every row by n columns. Bits pushed past column
	// 15 or column 1 are discarded, never wrapped; a shift of 15 or more
	// empties the board.
	Right(n int) B
	Left(n int) B

	// Up and Down shift every column by n rows, with the same discard
	// semantics at rows 15 and 1.
	Up(n int) B
	Down(n int) B

	And(o B) B
	Or(o B) B
	Xor(o B) B
	// Not complements the real squares only; padding stays zero.
	Not() B

	Equal(o B) bool

	// Rows returns the raw lanes, for tests and for building boards from
	// literal bit patterns. Lane 15 and bit 15 of every lane read zero.
	Rows() [numLanes]uint16

	fmt.Stringer
}

var (
	_ Interface[Scalar] = Scalar{}
	_ Interface[Wide]   = Wide{}
)

// A Coordinate addresses one row or one column, 1-based as on a printed
// board.
type Coordinate uint8

// NewCoordinate returns the coordinate for v, or false if v is outside
// [1, 15].
func NewCoordinate(v int) (Coordinate, bool) {
	if v < 1 || v > Dim {
		return 0, false
	}
	return Coordinate(v), true
}

// CoordinateFromIdx converts a zero-based index back to a coordinate.
func CoordinateFromIdx(idx int) (Coordinate, bool) {
	return NewCoordinate(idx + 1)
}

// Idx returns the zero-based index for this coordinate.
func (c Coordinate) Idx() int {
	return int(c) - 1
}

// A Location addresses exactly one square.
type Location struct {
	Row Coordinate
	Col Coordinate
}

// NewLocation builds a Location from 1-based row and column, or returns
// false if either is out of range.
func NewLocation(row, col int) (Location, bool) {
	r, ok := NewCoordinate(row)
	if !ok {
		return Location{}, false
	}
	c, ok := NewCoordinate(col)
	if !ok {
		return Location{}, false
	}
	return Location{Row: r, Col: c}, true
}

// render draws the occupancy as a grid, row 15 first and column 1 leftmost.
// Strictly for diagnostics; nothing parses this.
func render(rows [numLanes]uint16) string {
	var sb strings.Builder
	for r := Dim - 1; r >= 0; r-- {
		for c := 0; c < Dim; c++ {
			if rows[r]&(1<<uint(c)) != 0 {
				sb.WriteByte('X')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
