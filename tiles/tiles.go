// Package tiles holds the tile inventory for the board layer: machine
// letters, the letter distribution, the bag, and player racks.
//
// A tile is internally represented by a byte. The 0 value is an undesignated
// blank (or an empty square, depending on context); the letter A is 1, B is
// 2, and so on. A blank that has been designated as a letter is that letter
// with the high bit set.
package tiles

import (
	"fmt"
	"strings"
	"unicode"
)

const (
	// MaxAlphabetSize stays below 64 so a letter set can be a 64-bit mask.
	MaxAlphabetSize = 62
	// BlankToken is the user-friendly representation of a blank.
	BlankToken = '?'
	// ASCIIPlayedThrough marks a letter already on the board in the
	// description of a play.
	ASCIIPlayedThrough = '.'
)

const (
	BlankMask   = 0x80
	UnblankMask = BlankMask - 1
)

// MachineLetter is a machine-only representation of a letter.
type MachineLetter byte

// MachineWord is a slice of MachineLetters.
type MachineWord []MachineLetter

// Blank turns the machine letter into its blank version.
func (ml MachineLetter) Blank() MachineLetter {
	return ml | BlankMask
}

// Unblank restores the letter the blank was designated as.
func (ml MachineLetter) Unblank() MachineLetter {
	return ml & UnblankMask
}

// IsBlanked returns true if the machine letter is a designated blank.
func (ml MachineLetter) IsBlanked() bool {
	return ml&BlankMask > 0
}

// An Alphabet maps a user-visible rune, like the letter B, to its
// MachineLetter counterpart and back.
type Alphabet struct {
	vals    map[rune]MachineLetter
	letters map[MachineLetter]rune
}

func makeAlphabet(sortOrder string) *Alphabet {
	a := &Alphabet{
		vals:    make(map[rune]MachineLetter),
		letters: make(map[MachineLetter]rune),
	}
	ml := MachineLetter(1)
	for _, r := range sortOrder {
		a.vals[r] = ml
		a.letters[ml] = r
		ml++
	}
	return a
}

// NumLetters returns the number of distinct non-blank letters.
func (a *Alphabet) NumLetters() int {
	return len(a.letters)
}

// Val returns the machine letter for a rune. Lowercase runes map to the
// designated-blank version of their letter.
func (a *Alphabet) Val(r rune) (MachineLetter, error) {
	if r == BlankToken {
		return 0, nil
	}
	if val, ok := a.vals[r]; ok {
		return val, nil
	}
	if r == unicode.ToLower(r) {
		if val, ok := a.vals[unicode.ToUpper(r)]; ok {
			return val.Blank(), nil
		}
	}
	if r == ASCIIPlayedThrough {
		return 0, nil
	}
	return 0, fmt.Errorf("letter `%c` not found in alphabet", r)
}

// Letter returns the rune for a machine letter. Designated blanks come back
// lowercase.
func (a *Alphabet) Letter(ml MachineLetter) rune {
	if ml == 0 {
		return BlankToken
	}
	if ml.IsBlanked() {
		return unicode.ToLower(a.letters[ml.Unblank()])
	}
	return a.letters[ml]
}

// UserVisible turns the machine letter into a user-visible rune.
func (ml MachineLetter) UserVisible(a *Alphabet) rune {
	return a.Letter(ml)
}

// UserVisible renders the whole word.
func (mw MachineWord) UserVisible(a *Alphabet) string {
	var sb strings.Builder
	for _, ml := range mw {
		sb.WriteRune(ml.UserVisible(a))
	}
	return sb.String()
}

// ToMachineWord converts a string into a machine word.
func ToMachineWord(word string, a *Alphabet) (MachineWord, error) {
	mw := make(MachineWord, 0, len(word))
	for _, r := range word {
		ml, err := a.Val(r)
		if err != nil {
			return nil, err
		}
		mw = append(mw, ml)
	}
	return mw, nil
}
