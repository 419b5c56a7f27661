package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domino14/fichas/bitboard"
	"github.com/domino14/fichas/config"
	"github.com/domino14/fichas/move"
	"github.com/domino14/fichas/tiles"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.RandomSeed = 42
	g, err := NewGame(&cfg, [2]string{"cesar", "jeremiah"})
	require.NoError(t, err)
	return g
}

func TestNewGame(t *testing.T) {
	g := newTestGame(t)
	assert.Equal(t, uint8(7), g.RackFor(First).NumTiles())
	assert.Equal(t, uint8(7), g.RackFor(Second).NumTiles())
	assert.Equal(t, 86, g.Bag().TilesRemaining())
	assert.Equal(t, First, g.Onturn())
	assert.True(t, g.Board().IsEmpty())
	assert.Equal(t, "cesar", g.NicknameFor(First))
}

func TestNewGameBadDistribution(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.LetterDistributionName = "Klingon"
	_, err := NewGame(&cfg, [2]string{"a", "b"})
	assert.Error(t, err)
}

func TestPlaceWord(t *testing.T) {
	g := newTestGame(t)
	alph := g.LetterDistribution().Alphabet()

	word, err := tiles.ToMachineWord("HELLO", alph)
	require.NoError(t, err)
	// stack the rack so the play is always available
	g.RackFor(First).Set(word)

	l, ok := bitboard.NewLocation(8, 8)
	require.True(t, ok)
	require.NoError(t, g.PlaceWord(move.NewMove(l, move.Horizontal, word)))

	assert.Equal(t, 5, g.Board().TilesPlayed())
	assert.Equal(t, uint8(0), g.RackFor(First).NumTiles())
	// HELLO runs from H8 through L8 on row 8
	for col := 8; col <= 12; col++ {
		sq, _ := bitboard.NewLocation(8, col)
		assert.True(t, g.Board().HasLetter(sq))
	}

	g.ReplenishRack(First)
	assert.Equal(t, uint8(7), g.RackFor(First).NumTiles())
	assert.Equal(t, 79, g.Bag().TilesRemaining())
}

func TestPlaceWordVertical(t *testing.T) {
	g := newTestGame(t)
	alph := g.LetterDistribution().Alphabet()

	word, err := tiles.ToMachineWord("QI", alph)
	require.NoError(t, err)
	g.RackFor(First).Set(word)

	l, _ := bitboard.NewLocation(8, 8)
	require.NoError(t, g.PlaceWord(move.NewMove(l, move.Vertical, word)))

	q, _ := bitboard.NewLocation(8, 8)
	i, _ := bitboard.NewLocation(9, 8)
	assert.True(t, g.Board().HasLetter(q))
	assert.True(t, g.Board().HasLetter(i))
}

func TestPlaceWordThrough(t *testing.T) {
	g := newTestGame(t)
	alph := g.LetterDistribution().Alphabet()

	first, _ := tiles.ToMachineWord("AT", alph)
	g.RackFor(First).Set(first)
	l, _ := bitboard.NewLocation(8, 8)
	require.NoError(t, g.PlaceWord(move.NewMove(l, move.Horizontal, first)))
	g.SwitchTurn()

	// C.B through the A: only C and B come off the rack
	through, _ := tiles.ToMachineWord("C.B", alph)
	g.RackFor(Second).Set(through)
	start, _ := bitboard.NewLocation(7, 8)
	require.NoError(t, g.PlaceWord(move.NewMove(start, move.Vertical, through)))
	assert.Equal(t, 4, g.Board().TilesPlayed())
}

func TestPlaceWordOffBoard(t *testing.T) {
	g := newTestGame(t)
	alph := g.LetterDistribution().Alphabet()

	word, _ := tiles.ToMachineWord("HELLO", alph)
	g.RackFor(First).Set(word)
	l, _ := bitboard.NewLocation(8, 13)
	assert.Error(t, g.PlaceWord(move.NewMove(l, move.Horizontal, word)))
	// a rejected play leaves no trace
	assert.Equal(t, 0, g.Board().TilesPlayed())
	assert.Equal(t, uint8(5), g.RackFor(First).NumTiles())
}

func TestPlaceWordRejectedMidWord(t *testing.T) {
	g := newTestGame(t)
	alph := g.LetterDistribution().Alphabet()

	// the rack is one L short of HELLO, so the rack check fails on the
	// fourth tile; nothing may stick to the board
	rack, _ := tiles.ToMachineWord("HELO", alph)
	g.RackFor(First).Set(rack)
	word, _ := tiles.ToMachineWord("HELLO", alph)
	l, _ := bitboard.NewLocation(8, 8)
	assert.Error(t, g.PlaceWord(move.NewMove(l, move.Horizontal, word)))
	assert.Equal(t, 0, g.Board().TilesPlayed())
	assert.Equal(t, uint8(4), g.RackFor(First).NumTiles())
	assert.Equal(t, "EHLO", g.RackFor(First).String())
}

func TestPlaceWordCollisionMidWord(t *testing.T) {
	g := newTestGame(t)
	alph := g.LetterDistribution().Alphabet()

	first, _ := tiles.ToMachineWord("AT", alph)
	g.RackFor(First).Set(first)
	l, _ := bitboard.NewLocation(8, 9)
	require.NoError(t, g.PlaceWord(move.NewMove(l, move.Horizontal, first)))
	g.SwitchTurn()

	// ONE across the A without marking it played-through collides on its
	// second square; the O must not stick to the board
	word, _ := tiles.ToMachineWord("ONE", alph)
	g.RackFor(Second).Set(word)
	start, _ := bitboard.NewLocation(8, 8)
	assert.Error(t, g.PlaceWord(move.NewMove(start, move.Horizontal, word)))
	assert.Equal(t, 2, g.Board().TilesPlayed())
	assert.Equal(t, uint8(3), g.RackFor(Second).NumTiles())
}

func TestPlaceWordNotOnRack(t *testing.T) {
	g := newTestGame(t)
	alph := g.LetterDistribution().Alphabet()

	word, _ := tiles.ToMachineWord("ZZZZZ", alph)
	// only one Z exists in the distribution; the rack cannot hold five,
	// so empty it entirely
	g.RackFor(First).Clear()
	l, _ := bitboard.NewLocation(8, 8)
	assert.Error(t, g.PlaceWord(move.NewMove(l, move.Horizontal, word)))
	assert.Equal(t, 0, g.Board().TilesPlayed())
}

func TestPlaceBlank(t *testing.T) {
	g := newTestGame(t)
	alph := g.LetterDistribution().Alphabet()

	// lowercase z designates a blank as Z
	word, err := tiles.ToMachineWord("zA", alph)
	require.NoError(t, err)
	g.RackFor(First).Set(word)

	l, _ := bitboard.NewLocation(8, 8)
	require.NoError(t, g.PlaceWord(move.NewMove(l, move.Horizontal, word)))
	assert.Equal(t, 1, g.Board().Blanks().CountOnes())

	got, ok := g.Board().Letter(l)
	require.True(t, ok)
	assert.True(t, got.IsBlanked())
}

func TestScoresAndTurns(t *testing.T) {
	g := newTestGame(t)
	assert.Equal(t, 24, g.AddScore(First, 24))
	assert.Equal(t, 57, g.AddScore(First, 33))
	assert.Equal(t, 18, g.AddScore(Second, 18))

	s := g.Scores()
	assert.Equal(t, 57, s.Of(First))
	assert.Equal(t, 18, s.Of(Second))

	assert.Equal(t, First, g.Onturn())
	g.SwitchTurn()
	assert.Equal(t, Second, g.Onturn())
	g.SwitchTurn()
	assert.Equal(t, First, g.Onturn())
}
