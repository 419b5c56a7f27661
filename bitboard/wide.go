package bitboard

import "math/bits"

// Wide treats the sixteen lanes as one 256-bit value held in four 64-bit
// words, so every operation touches four words instead of sixteen rows.
// Word w holds lanes 4w through 4w+3; lane k sits at bits 16(k%4) through
// 16(k%4)+15 of its word, matching the little-endian memory layout of a
// [16]uint16.
type Wide struct {
	w [4]uint64
}

const (
	lanesPerWord = 4
	laneBits     = 16

	// fullWordLow is four full rows; fullWordHigh leaves the reserved
	// sixteenth lane clear.
	fullWordLow  uint64 = 0x7FFF7FFF7FFF7FFF
	fullWordHigh uint64 = 0x00007FFF7FFF7FFF
)

// EmptyWide returns the board with no square set.
func EmptyWide() Wide {
	return Wide{}
}

// FullWide returns the board with all 225 squares set.
func FullWide() Wide {
	return Wide{w: [4]uint64{fullWordLow, fullWordLow, fullWordLow, fullWordHigh}}
}

// WideForLocation returns the board with exactly the square at l set.
func WideForLocation(l Location) Wide {
	var b Wide
	lane := l.Row.Idx()
	b.w[lane/lanesPerWord] = 1 << uint(l.Col.Idx()+(lane%lanesPerWord)*laneBits)
	return b
}

// NewWideRaw builds a board from raw lanes, clearing the reserved lane and
// the reserved bit of every lane no matter what was passed in.
func NewWideRaw(rows [numLanes]uint16) Wide {
	var b Wide
	for lane, r := range rows {
		b.w[lane/lanesPerWord] |= uint64(r) << uint((lane%lanesPerWord)*laneBits)
	}
	b.w[0] &= fullWordLow
	b.w[1] &= fullWordLow
	b.w[2] &= fullWordLow
	b.w[3] &= fullWordHigh
	return b
}

func (b Wide) Rows() [numLanes]uint16 {
	var rows [numLanes]uint16
	for lane := range rows {
		rows[lane] = uint16(b.w[lane/lanesPerWord] >> uint((lane%lanesPerWord)*laneBits))
	}
	return rows
}

func (b Wide) CountOnes() int {
	// The lanes partition the words exactly, so a per-word popcount is the
	// same sum as a per-lane one.
	return bits.OnesCount64(b.w[0]) + bits.OnesCount64(b.w[1]) +
		bits.OnesCount64(b.w[2]) + bits.OnesCount64(b.w[3])
}

// laneSplat replicates a 16-bit mask into all four lanes of a word.
func laneSplat(v uint16) uint64 {
	x := uint64(v)
	x |= x << 16
	return x | x<<32
}

// Right shifts every row toward higher columns. A packed shift lets bits
// cross lane boundaries, so each lane is first masked down to the bits that
// survive the shift, the way a chess engine masks off the H file before
// shifting east. The pre-mask also keeps the reserved bit of every lane
// clear.
func (b Wide) Right(n int) Wide {
	if n >= Dim {
		return Wide{}
	}
	keep := laneSplat(rowMax >> uint(n))
	var out Wide
	for i, w := range b.w {
		out.w[i] = (w & keep) << uint(n)
	}
	return out
}

// Left mirrors Right: mask off the low n columns of every lane, then shift
// all four words down uniformly.
func (b Wide) Left(n int) Wide {
	if n >= Dim {
		return Wide{}
	}
	keep := laneSplat(rowMax &^ (1<<uint(n) - 1))
	var out Wide
	for i, w := range b.w {
		out.w[i] = (w & keep) >> uint(n)
	}
	return out
}

// Up moves every row toward row 15: a 256-bit zero-fill shift by whole
// lanes, after which the reserved lane (which received row 15-n) is cleared.
// The vacated low rows are zero-filled by the shift itself.
func (b Wide) Up(n int) Wide {
	if n >= Dim {
		return Wide{}
	}
	out := shl256(b.w, uint(n)*laneBits)
	out[3] &= fullWordHigh
	return Wide{w: out}
}

// Down is the opposite whole-lane shift. The reserved lane is already zero,
// so only zeros flow into the surviving rows and no post-mask is needed.
func (b Wide) Down(n int) Wide {
	if n >= Dim {
		return Wide{}
	}
	return Wide{w: shr256(b.w, uint(n)*laneBits)}
}

// shl256 shifts a 256-bit little-endian word array left by s bits,
// zero-filling from the bottom. s must be below 256.
func shl256(w [4]uint64, s uint) [4]uint64 {
	ws := int(s / 64)
	bs := s % 64
	var out [4]uint64
	for i := 3; i >= ws; i-- {
		out[i] = w[i-ws] << bs
		if bs != 0 && i-ws > 0 {
			out[i] |= w[i-ws-1] >> (64 - bs)
		}
	}
	return out
}

// shr256 is the zero-filling right shift counterpart of shl256.
func shr256(w [4]uint64, s uint) [4]uint64 {
	ws := int(s / 64)
	bs := s % 64
	var out [4]uint64
	for i := 0; i+ws <= 3; i++ {
		out[i] = w[i+ws] >> bs
		if bs != 0 && i+ws < 3 {
			out[i] |= w[i+ws+1] << (64 - bs)
		}
	}
	return out
}

func (b Wide) And(o Wide) Wide {
	return Wide{w: [4]uint64{b.w[0] & o.w[0], b.w[1] & o.w[1], b.w[2] & o.w[2], b.w[3] & o.w[3]}}
}

func (b Wide) Or(o Wide) Wide {
	return Wide{w: [4]uint64{b.w[0] | o.w[0], b.w[1] | o.w[1], b.w[2] | o.w[2], b.w[3] | o.w[3]}}
}

func (b Wide) Xor(o Wide) Wide {
	return Wide{w: [4]uint64{b.w[0] ^ o.w[0], b.w[1] ^ o.w[1], b.w[2] ^ o.w[2], b.w[3] ^ o.w[3]}}
}

// Not complements the real squares only, as XOR with the full board.
func (b Wide) Not() Wide {
	return b.Xor(FullWide())
}

// Equal XORs the two boards and tests the result against zero. The XOR of
// two invariant-respecting values has no padding bits set, so this is the
// same comparison the scalar engine makes lane by lane.
func (b Wide) Equal(o Wide) bool {
	d := b.Xor(o)
	return d.w == [4]uint64{}
}

// AndWith, OrWith and XorWith are the in-place forms of the boolean
// operators. They mutate the receiver and have no other effect.
func (b *Wide) AndWith(o Wide) { *b = b.And(o) }
func (b *Wide) OrWith(o Wide)  { *b = b.Or(o) }
func (b *Wide) XorWith(o Wide) { *b = b.Xor(o) }

func (b Wide) String() string {
	return render(b.Rows())
}
