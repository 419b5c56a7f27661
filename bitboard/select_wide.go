//go:build !scalarboard

package bitboard

// Board is the engine compiled into this build. The wide engine is the
// default; build with -tags scalarboard to ship the row-at-a-time one
// instead. There is no runtime dispatch between the two.
type Board = Wide

func Empty() Board { return EmptyWide() }

func Full() Board { return FullWide() }

func ForLocation(l Location) Board { return WideForLocation(l) }

func NewRaw(rows [numLanes]uint16) Board { return NewWideRaw(rows) }
