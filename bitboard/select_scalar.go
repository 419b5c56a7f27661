//go:build scalarboard

package bitboard

// Board is the engine compiled into this build: the portable row-at-a-time
// engine, selected by the scalarboard build tag.
type Board = Scalar

func Empty() Board { return EmptyScalar() }

func Full() Board { return FullScalar() }

func ForLocation(l Location) Board { return ScalarForLocation(l) }

func NewRaw(rows [numLanes]uint16) Board { return NewScalarRaw(rows) }
