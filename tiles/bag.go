package tiles

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"
)

// A Bag is the bag o'tiles! Tiles are drawn from the end of the slice; a
// shuffle after every operation that adds tiles keeps draws uniform.
type Bag struct {
	tiles        []MachineLetter
	initialTiles []MachineLetter
	ld           *LetterDistribution
	rng          *frand.RNG
}

// Shuffle reshuffles the remaining tiles.
func (b *Bag) Shuffle() {
	b.rng.Shuffle(len(b.tiles), func(i, j int) {
		b.tiles[i], b.tiles[j] = b.tiles[j], b.tiles[i]
	})
}

// Draw draws exactly n tiles, or errors if the bag has fewer.
func (b *Bag) Draw(n int) ([]MachineLetter, error) {
	if n > len(b.tiles) {
		return nil, fmt.Errorf("tried to draw %v tiles, tile bag has %v",
			n, len(b.tiles))
	}
	drawn := make([]MachineLetter, n)
	copy(drawn, b.tiles[len(b.tiles)-n:])
	b.tiles = b.tiles[:len(b.tiles)-n]
	return drawn, nil
}

// DrawAtMost draws at most n tiles. It can draw fewer if there are fewer
// tiles than n, and even draw no tiles at all :o
func (b *Bag) DrawAtMost(n int) []MachineLetter {
	if n > len(b.tiles) {
		n = len(b.tiles)
	}
	drawn, _ := b.Draw(n)
	return drawn
}

// PutBack returns tiles to the bag and reshuffles.
func (b *Bag) PutBack(letters []MachineLetter) {
	if len(letters) == 0 {
		return
	}
	log.Debug().Int("count", len(letters)).Msg("putting tiles back")
	b.tiles = append(b.tiles, letters...)
	b.Shuffle()
}

// TilesRemaining returns the number of tiles still in the bag.
func (b *Bag) TilesRemaining() int {
	return len(b.tiles)
}

// Refill restores the bag to its initial tile complement and shuffles.
func (b *Bag) Refill() {
	b.tiles = append(b.tiles[:0], b.initialTiles...)
	b.Shuffle()
}

// LetterDistribution returns the distribution this bag was built from.
func (b *Bag) LetterDistribution() *LetterDistribution {
	return b.ld
}
