package bitboard

import "math/bits"

// Scalar is the portable engine: sixteen independent row lanes, shifted and
// combined one at a time. It needs nothing beyond 16-bit integer ops.
type Scalar struct {
	rows [numLanes]uint16
}

// EmptyScalar returns the board with no square set.
func EmptyScalar() Scalar {
	return Scalar{}
}

// FullScalar returns the board with all 225 squares set.
func FullScalar() Scalar {
	var b Scalar
	for i := 0; i < Dim; i++ {
		b.rows[i] = rowMax
	}
	return b
}

// ScalarForLocation returns the board with exactly the square at l set.
func ScalarForLocation(l Location) Scalar {
	var b Scalar
	b.rows[l.Row.Idx()] = 1 << uint(l.Col.Idx())
	return b
}

// NewScalarRaw builds a board from raw lanes. The reserved lane and the
// reserved bit of every lane are cleared no matter what was passed in.
func NewScalarRaw(rows [numLanes]uint16) Scalar {
	var b Scalar
	for i := 0; i < Dim; i++ {
		b.rows[i] = rows[i] & rowMax
	}
	return b
}

func (b Scalar) Rows() [numLanes]uint16 {
	return b.rows
}

func (b Scalar) CountOnes() int {
	n := 0
	for _, r := range b.rows {
		n += bits.OnesCount16(r)
	}
	return n
}

func (b Scalar) Right(n int) Scalar {
	if n >= Dim {
		return Scalar{}
	}
	var out Scalar
	for i := 0; i < Dim; i++ {
		// A left bit shift can push a 1 into the reserved 16th bit of the
		// row; mask it back off.
		out.rows[i] = (b.rows[i] << uint(n)) & rowMax
	}
	return out
}

func (b Scalar) Left(n int) Scalar {
	if n >= Dim {
		return Scalar{}
	}
	var out Scalar
	for i := 0; i < Dim; i++ {
		// A right shift cannot inject into the low end, so no mask here.
		out.rows[i] = b.rows[i] >> uint(n)
	}
	return out
}

func (b Scalar) Up(n int) Scalar {
	if n >= Dim {
		return Scalar{}
	}
	var out Scalar
	for i := Dim - 1; i >= n; i-- {
		out.rows[i] = b.rows[i-n]
	}
	// Rows below n and the reserved lane stay zero.
	return out
}

func (b Scalar) Down(n int) Scalar {
	if n >= Dim {
		return Scalar{}
	}
	var out Scalar
	for i := 0; i+n < Dim; i++ {
		out.rows[i] = b.rows[i+n]
	}
	return out
}

func (b Scalar) And(o Scalar) Scalar {
	var out Scalar
	for i := range b.rows {
		out.rows[i] = b.rows[i] & o.rows[i]
	}
	return out
}

func (b Scalar) Or(o Scalar) Scalar {
	var out Scalar
	for i := range b.rows {
		out.rows[i] = b.rows[i] | o.rows[i]
	}
	return out
}

func (b Scalar) Xor(o Scalar) Scalar {
	var out Scalar
	for i := range b.rows {
		out.rows[i] = b.rows[i] ^ o.rows[i]
	}
	return out
}

// Not complements the real squares only. A plain bit-complement would set
// every padding position, so it is defined as XOR with the full board.
func (b Scalar) Not() Scalar {
	return b.Xor(FullScalar())
}

// Equal compares the real squares of two boards. Padding is masked out of
// the comparison even though a well-formed value never has any set.
func (b Scalar) Equal(o Scalar) bool {
	for i := 0; i < Dim; i++ {
		if (b.rows[i]^o.rows[i])&rowMax != 0 {
			return false
		}
	}
	return true
}

// AndWith, OrWith and XorWith are the in-place forms of the boolean
// operators. They mutate the receiver and have no other effect.
func (b *Scalar) AndWith(o Scalar) { *b = b.And(o) }
func (b *Scalar) OrWith(o Scalar)  { *b = b.Or(o) }
func (b *Scalar) XorWith(o Scalar) { *b = b.Xor(o) }

func (b Scalar) String() string {
	return render(b.rows)
}
