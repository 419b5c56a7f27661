package tiles

import (
	"testing"

	"github.com/matryer/is"
)

func TestVal(t *testing.T) {
	is := is.New(t)
	ld := EnglishLetterDistribution()
	alph := ld.Alphabet()

	a, err := alph.Val('A')
	is.NoErr(err)
	is.Equal(a, MachineLetter(1))

	z, err := alph.Val('Z')
	is.NoErr(err)
	is.Equal(z, MachineLetter(26))

	blank, err := alph.Val(BlankToken)
	is.NoErr(err)
	is.Equal(blank, MachineLetter(0))

	desig, err := alph.Val('q')
	is.NoErr(err)
	is.True(desig.IsBlanked())
	is.Equal(desig.Unblank(), MachineLetter(17))

	_, err = alph.Val('@')
	is.True(err != nil)
}

func TestLetter(t *testing.T) {
	is := is.New(t)
	alph := EnglishLetterDistribution().Alphabet()
	is.Equal(alph.Letter(MachineLetter(1)), 'A')
	is.Equal(alph.Letter(MachineLetter(0)), rune(BlankToken))
	is.Equal(alph.Letter(MachineLetter(5).Blank()), 'e')
}

func TestToMachineWord(t *testing.T) {
	is := is.New(t)
	alph := EnglishLetterDistribution().Alphabet()

	mw, err := ToMachineWord("HELLO", alph)
	is.NoErr(err)
	is.Equal(len(mw), 5)
	is.Equal(mw.UserVisible(alph), "HELLO")

	mw, err = ToMachineWord("HeL.O", alph)
	is.NoErr(err)
	is.True(mw[1].IsBlanked())
	is.Equal(mw[3], MachineLetter(0))

	_, err = ToMachineWord("HEL@O", alph)
	is.True(err != nil)
}

func TestScore(t *testing.T) {
	is := is.New(t)
	ld := EnglishLetterDistribution()
	alph := ld.Alphabet()

	q, _ := alph.Val('Q')
	is.Equal(ld.Score(q), 10)
	e, _ := alph.Val('E')
	is.Equal(ld.Score(e), 1)
	// a designated blank scores nothing
	is.Equal(ld.Score(q.Blank()), 0)
	is.Equal(ld.Score(MachineLetter(0)), 0)
}

func TestDistributionTotals(t *testing.T) {
	is := is.New(t)
	ld := EnglishLetterDistribution()
	is.Equal(ld.NumTotalTiles(), 100)
	is.Equal(ld.Alphabet().NumLetters(), 26)
}

func TestRack(t *testing.T) {
	is := is.New(t)
	alph := EnglishLetterDistribution().Alphabet()
	r := NewRack(alph)

	mw, err := ToMachineWord("QUIZ?", alph)
	is.NoErr(err)
	r.Set(mw)
	is.Equal(r.NumTiles(), uint8(5))
	is.Equal(r.String(), "?IQUZ")

	q, _ := alph.Val('Q')
	is.NoErr(r.Take(q))
	is.Equal(r.NumTiles(), uint8(4))
	is.True(r.Take(q) != nil)

	// a designated blank comes back as a plain blank
	z, _ := alph.Val('Z')
	is.NoErr(r.Take(z.Blank()))
	is.Equal(r.NumTiles(), uint8(3))

	cp := r.Copy()
	r.Clear()
	is.Equal(r.NumTiles(), uint8(0))
	is.Equal(cp.NumTiles(), uint8(3))
}
