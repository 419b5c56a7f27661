// Package board maintains tile occupancy for a 15x15 crossword game board
// as a set of bitboards: one per distinct letter, plus one for designated
// blanks. It knows where tiles are, not whether they form words.
package board

import (
	"errors"
	"fmt"
	"strings"

	"github.com/domino14/fichas/bitboard"
	"github.com/domino14/fichas/tiles"
)

// Board stores one bitboard per letter code. A designated blank is present
// in both its letter's board and the blanks board, so "occupied by letter X"
// and "is a blank" are each a single lookup.
type Board struct {
	letters []bitboard.Board
	blanks  bitboard.Board
	alph    *tiles.Alphabet

	tilesPlayed int
}

// NewBoard creates an empty board for the given alphabet.
func NewBoard(alph *tiles.Alphabet) *Board {
	return &Board{
		// index 0 is unused; letter codes start at 1
		letters: make([]bitboard.Board, alph.NumLetters()+1),
		alph:    alph,
	}
}

// PlaceLetter puts a tile on the given square. It errors if the square is
// already occupied or the letter is an undesignated blank.
func (b *Board) PlaceLetter(loc bitboard.Location, ml tiles.MachineLetter) error {
	if ml == 0 {
		return errors.New("cannot place an undesignated blank")
	}
	if b.HasLetter(loc) {
		return fmt.Errorf("square %d,%d is already occupied", loc.Row, loc.Col)
	}
	cell := bitboard.ForLocation(loc)
	idx := ml.Unblank()
	if int(idx) >= len(b.letters) {
		return fmt.Errorf("letter %v not in this board's alphabet", ml)
	}
	b.letters[idx].OrWith(cell)
	if ml.IsBlanked() {
		b.blanks.OrWith(cell)
	}
	b.tilesPlayed++
	return nil
}

// RemoveLetter takes a tile back off the board. It errors if that tile is
// not on the given square.
func (b *Board) RemoveLetter(loc bitboard.Location, ml tiles.MachineLetter) error {
	cell := bitboard.ForLocation(loc)
	idx := ml.Unblank()
	if ml == 0 || int(idx) >= len(b.letters) {
		return fmt.Errorf("letter %v not in this board's alphabet", ml)
	}
	if b.letters[idx].And(cell).CountOnes() == 0 {
		return fmt.Errorf("letter %v is not at square %d,%d", ml, loc.Row, loc.Col)
	}
	keep := cell.Not()
	b.letters[idx].AndWith(keep)
	b.blanks.AndWith(keep)
	b.tilesPlayed--
	return nil
}

// Occupied returns the set of squares holding any tile.
func (b *Board) Occupied() bitboard.Board {
	occ := bitboard.Empty()
	for _, l := range b.letters {
		occ.OrWith(l)
	}
	return occ
}

// LettersFor returns the set of squares holding the given letter,
// designated blanks included.
func (b *Board) LettersFor(ml tiles.MachineLetter) bitboard.Board {
	idx := ml.Unblank()
	if idx == 0 || int(idx) >= len(b.letters) {
		return bitboard.Empty()
	}
	return b.letters[idx]
}

// Blanks returns the set of squares holding a designated blank.
func (b *Board) Blanks() bitboard.Board {
	return b.blanks
}

// HasLetter returns whether the given square holds a tile.
func (b *Board) HasLetter(loc bitboard.Location) bool {
	return b.Occupied().And(bitboard.ForLocation(loc)).CountOnes() != 0
}

// Letter returns the tile on the given square, designated blanks with their
// blank bit set, or false for an empty square.
func (b *Board) Letter(loc bitboard.Location) (tiles.MachineLetter, bool) {
	cell := bitboard.ForLocation(loc)
	for i := 1; i < len(b.letters); i++ {
		if b.letters[i].And(cell).CountOnes() != 0 {
			ml := tiles.MachineLetter(i)
			if b.blanks.And(cell).CountOnes() != 0 {
				ml = ml.Blank()
			}
			return ml, true
		}
	}
	return 0, false
}

// Adjacent returns the empty squares orthogonally adjacent to at least one
// tile: the union of the four one-square shifts of the occupancy, minus the
// occupancy itself.
func (b *Board) Adjacent() bitboard.Board {
	occ := b.Occupied()
	adj := occ.Right(1).Or(occ.Left(1)).Or(occ.Up(1)).Or(occ.Down(1))
	return adj.And(occ.Not())
}

// TilesPlayed returns the number of tiles on the board.
func (b *Board) TilesPlayed() int {
	return b.tilesPlayed
}

// IsEmpty returns if the board is empty.
func (b *Board) IsEmpty() bool {
	return b.tilesPlayed == 0
}

// Clear clears the board.
func (b *Board) Clear() {
	for i := range b.letters {
		b.letters[i] = bitboard.Empty()
	}
	b.blanks = bitboard.Empty()
	b.tilesPlayed = 0
}

// Copy returns a deep copy of this board.
func (b *Board) Copy() *Board {
	n := &Board{
		letters:     make([]bitboard.Board, len(b.letters)),
		blanks:      b.blanks,
		alph:        b.alph,
		tilesPlayed: b.tilesPlayed,
	}
	copy(n.letters, b.letters)
	return n
}

// String draws the board with row 1 at the top and a column header,
// designated blanks lowercase. Diagnostics only.
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("   A B C D E F G H I J K L M N O\n")
	for row := 1; row <= bitboard.Dim; row++ {
		fmt.Fprintf(&sb, "%2d", row)
		for col := 1; col <= bitboard.Dim; col++ {
			loc, _ := bitboard.NewLocation(row, col)
			if ml, ok := b.Letter(loc); ok {
				fmt.Fprintf(&sb, " %c", ml.UserVisible(b.alph))
			} else {
				sb.WriteString(" .")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
