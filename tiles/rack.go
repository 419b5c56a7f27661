package tiles

import "fmt"

// Rack is a machine-friendly representation of a player's rack: a count per
// letter code, with the undesignated blank at index 0.
type Rack struct {
	// LetArr is an array of counts indexed by letter code.
	LetArr     []int
	numLetters uint8
	alphabet   *Alphabet
}

// NewRack creates a brand new rack structure with an alphabet.
func NewRack(alph *Alphabet) *Rack {
	return &Rack{alphabet: alph, LetArr: make([]int, MaxAlphabetSize+1)}
}

// Set replaces the rack contents with the given tiles.
func (r *Rack) Set(tiles []MachineLetter) {
	r.Clear()
	for _, t := range tiles {
		r.Add(t)
	}
}

// Clear empties the rack.
func (r *Rack) Clear() {
	for i := range r.LetArr {
		r.LetArr[i] = 0
	}
	r.numLetters = 0
}

// Add adds a single tile. Designated blanks go back to being blanks.
func (r *Rack) Add(ml MachineLetter) {
	if ml.IsBlanked() {
		ml = 0
	}
	r.LetArr[ml]++
	r.numLetters++
}

// Take removes a single tile, or errors if it is not on the rack.
func (r *Rack) Take(ml MachineLetter) error {
	if ml.IsBlanked() {
		ml = 0
	}
	if r.LetArr[ml] == 0 {
		return fmt.Errorf("tile %v not on rack", ml)
	}
	r.LetArr[ml]--
	r.numLetters--
	return nil
}

// NumTiles returns the number of tiles on the rack.
func (r *Rack) NumTiles() uint8 {
	return r.numLetters
}

// TilesOn returns the tiles on the rack, in alphabet order with blanks
// first.
func (r *Rack) TilesOn() MachineWord {
	tiles := make(MachineWord, 0, r.numLetters)
	for ml, ct := range r.LetArr {
		for i := 0; i < ct; i++ {
			tiles = append(tiles, MachineLetter(ml))
		}
	}
	return tiles
}

// Copy returns a deep copy of this rack.
func (r *Rack) Copy() *Rack {
	n := &Rack{
		numLetters: r.numLetters,
		alphabet:   r.alphabet,
	}
	n.LetArr = make([]int, len(r.LetArr))
	copy(n.LetArr, r.LetArr)
	return n
}

// String returns a user-visible version of this rack.
func (r *Rack) String() string {
	return r.TilesOn().UserVisible(r.alphabet)
}
