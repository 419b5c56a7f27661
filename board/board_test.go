package board

import (
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/fichas/bitboard"
	"github.com/domino14/fichas/tiles"
)

func loc(t *testing.T, row, col int) bitboard.Location {
	t.Helper()
	l, ok := bitboard.NewLocation(row, col)
	if !ok {
		t.Fatalf("bad location %d,%d", row, col)
	}
	return l
}

func TestPlaceAndRead(t *testing.T) {
	is := is.New(t)
	alph := tiles.EnglishLetterDistribution().Alphabet()
	b := NewBoard(alph)

	a, _ := alph.Val('A')
	center := loc(t, 8, 8)
	is.NoErr(b.PlaceLetter(center, a))
	is.Equal(b.TilesPlayed(), 1)
	is.True(b.HasLetter(center))
	is.True(!b.IsEmpty())

	got, ok := b.Letter(center)
	is.True(ok)
	is.Equal(got, a)

	is.Equal(b.LettersFor(a).CountOnes(), 1)
	is.Equal(b.Occupied().CountOnes(), 1)

	// same square again is an error
	z, _ := alph.Val('Z')
	is.True(b.PlaceLetter(center, z) != nil)

	// undesignated blanks cannot go on a board
	is.True(b.PlaceLetter(loc(t, 1, 1), tiles.MachineLetter(0)) != nil)
}

func TestBlanks(t *testing.T) {
	is := is.New(t)
	alph := tiles.EnglishLetterDistribution().Alphabet()
	b := NewBoard(alph)

	e, _ := alph.Val('E')
	sq := loc(t, 3, 11)
	is.NoErr(b.PlaceLetter(sq, e.Blank()))

	is.Equal(b.Blanks().CountOnes(), 1)
	// the designated blank counts as its letter too
	is.Equal(b.LettersFor(e).CountOnes(), 1)

	got, ok := b.Letter(sq)
	is.True(ok)
	is.True(got.IsBlanked())
	is.Equal(got.Unblank(), e)
}

func TestRemoveLetter(t *testing.T) {
	is := is.New(t)
	alph := tiles.EnglishLetterDistribution().Alphabet()
	b := NewBoard(alph)

	q, _ := alph.Val('Q')
	sq := loc(t, 5, 5)
	is.NoErr(b.PlaceLetter(sq, q.Blank()))
	is.NoErr(b.RemoveLetter(sq, q))
	is.Equal(b.TilesPlayed(), 0)
	is.Equal(b.Blanks().CountOnes(), 0)
	is.True(!b.HasLetter(sq))

	// removing again is an error
	is.True(b.RemoveLetter(sq, q) != nil)
}

func TestAdjacent(t *testing.T) {
	is := is.New(t)
	alph := tiles.EnglishLetterDistribution().Alphabet()
	b := NewBoard(alph)

	a, _ := alph.Val('A')
	is.NoErr(b.PlaceLetter(loc(t, 8, 8), a))
	// one interior tile has four orthogonal neighbors
	is.Equal(b.Adjacent().CountOnes(), 4)

	// a corner tile has two
	b2 := NewBoard(alph)
	is.NoErr(b2.PlaceLetter(loc(t, 1, 1), a))
	is.Equal(b2.Adjacent().CountOnes(), 2)

	// two adjacent tiles share no occupied squares in the result
	is.NoErr(b.PlaceLetter(loc(t, 8, 9), a))
	adj := b.Adjacent()
	is.Equal(adj.And(b.Occupied()).CountOnes(), 0)
	is.Equal(adj.CountOnes(), 6)
}

func TestCopyAndClear(t *testing.T) {
	is := is.New(t)
	alph := tiles.EnglishLetterDistribution().Alphabet()
	b := NewBoard(alph)

	w, _ := alph.Val('W')
	is.NoErr(b.PlaceLetter(loc(t, 2, 2), w))
	cp := b.Copy()

	b.Clear()
	is.True(b.IsEmpty())
	is.Equal(b.Occupied().CountOnes(), 0)
	is.Equal(cp.TilesPlayed(), 1)
	is.Equal(cp.Occupied().CountOnes(), 1)
}

func TestString(t *testing.T) {
	is := is.New(t)
	alph := tiles.EnglishLetterDistribution().Alphabet()
	b := NewBoard(alph)

	k, _ := alph.Val('K')
	is.NoErr(b.PlaceLetter(loc(t, 1, 1), k))
	e, _ := alph.Val('E')
	is.NoErr(b.PlaceLetter(loc(t, 1, 2), e.Blank()))

	out := b.String()
	lines := strings.Split(out, "\n")
	// header, then row 1 at the top with our letters; the blank lowercase
	is.True(strings.HasPrefix(lines[1], " 1 K e"))
}
