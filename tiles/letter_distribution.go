package tiles

import (
	"fmt"
	"sort"

	"lukechampine.com/frand"
)

// LetterDistribution encodes the tile inventory for the relevant game: how
// many of each tile exist and what each one scores.
type LetterDistribution struct {
	Distribution map[rune]uint8
	PointValues  map[rune]uint8
	alphabet     *Alphabet
	numLetters   int
}

func newLetterDistribution(dist, ptValues map[rune]uint8,
	sortOrder string) *LetterDistribution {

	numLetters := 0
	for _, ct := range dist {
		numLetters += int(ct)
	}
	return &LetterDistribution{
		Distribution: dist,
		PointValues:  ptValues,
		alphabet:     makeAlphabet(sortOrder),
		numLetters:   numLetters,
	}
}

// EnglishLetterDistribution returns the standard 100-tile English
// distribution.
func EnglishLetterDistribution() *LetterDistribution {
	dist := map[rune]uint8{
		'A': 9, 'B': 2, 'C': 2, 'D': 4, 'E': 12, 'F': 2, 'G': 3, 'H': 2,
		'I': 9, 'J': 1, 'K': 1, 'L': 4, 'M': 2, 'N': 6, 'O': 8, 'P': 2,
		'Q': 1, 'R': 6, 'S': 4, 'T': 6, 'U': 4, 'V': 2, 'W': 2, 'X': 1,
		'Y': 2, 'Z': 1, '?': 2,
	}
	ptValues := map[rune]uint8{
		'A': 1, 'B': 3, 'C': 3, 'D': 2, 'E': 1, 'F': 4, 'G': 2, 'H': 4,
		'I': 1, 'J': 8, 'K': 5, 'L': 1, 'M': 3, 'N': 1, 'O': 1, 'P': 3,
		'Q': 10, 'R': 1, 'S': 1, 'T': 1, 'U': 1, 'V': 4, 'W': 4, 'X': 8,
		'Y': 4, 'Z': 10, '?': 0,
	}
	return newLetterDistribution(dist, ptValues, "ABCDEFGHIJKLMNOPQRSTUVWXYZ")
}

// NamedLetterDistribution looks up a distribution by its config name.
func NamedLetterDistribution(name string) (*LetterDistribution, error) {
	switch name {
	case "English", "english":
		return EnglishLetterDistribution(), nil
	}
	return nil, fmt.Errorf("letter distribution %v not found", name)
}

// Alphabet returns the alphabet for this distribution.
func (ld *LetterDistribution) Alphabet() *Alphabet {
	return ld.alphabet
}

// NumTotalTiles is the total tile count, 100 for English.
func (ld *LetterDistribution) NumTotalTiles() int {
	return ld.numLetters
}

// Score returns the point value of a tile. Designated blanks score zero.
func (ld *LetterDistribution) Score(ml MachineLetter) int {
	if ml == 0 || ml.IsBlanked() {
		return 0
	}
	return int(ld.PointValues[ld.alphabet.Letter(ml)])
}

// MakeBag returns a shuffled bag with this distribution's full complement
// of tiles.
func (ld *LetterDistribution) MakeBag(rng *frand.RNG) *Bag {
	// Collect and sort the letters first. Map iteration order is random,
	// and the pre-shuffle order must be fixed for a seed to reproduce the
	// same draw sequence.
	letters := make([]MachineLetter, 0, len(ld.Distribution))
	counts := make(map[MachineLetter]uint8, len(ld.Distribution))
	for rn, ct := range ld.Distribution {
		var ml MachineLetter
		if rn != BlankToken {
			var err error
			ml, err = ld.alphabet.Val(rn)
			if err != nil {
				// The distribution and its alphabet are built together;
				// a mismatch is a programming error.
				panic("wrongly initialized letter distribution")
			}
		}
		letters = append(letters, ml)
		counts[ml] = ct
	}
	sort.Slice(letters, func(a, b int) bool {
		return letters[a] < letters[b]
	})
	tiles := make([]MachineLetter, 0, ld.numLetters)
	for _, ml := range letters {
		for i := uint8(0); i < counts[ml]; i++ {
			tiles = append(tiles, ml)
		}
	}
	b := &Bag{
		tiles:        tiles,
		initialTiles: append([]MachineLetter(nil), tiles...),
		ld:           ld,
		rng:          rng,
	}
	b.Shuffle()
	return b
}
