// Package game is the thin aggregate around the board: two players with
// racks and scores, the tile bag, and whose turn it is. It places tiles and
// keeps the books; it has no opinion on whether a play is any good, or even
// a word.
package game

import (
	"encoding/binary"
	"fmt"

	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/domino14/fichas/bitboard"
	"github.com/domino14/fichas/board"
	"github.com/domino14/fichas/config"
	"github.com/domino14/fichas/move"
	"github.com/domino14/fichas/tiles"
)

// Player identifies one of the two seats.
type Player uint8

const (
	First Player = iota
	Second
)

func (p Player) String() string {
	if p == First {
		return "first"
	}
	return "second"
}

// Scores holds both players' point totals.
type Scores [2]int

// Of returns the score for one player.
func (s Scores) Of(p Player) int {
	return s[p]
}

type playerState struct {
	nickname string
	rack     *tiles.Rack
	turns    int
}

// Game ties the board, the bag and the players together.
type Game struct {
	board    *board.Board
	bag      *tiles.Bag
	ld       *tiles.LetterDistribution
	players  [2]playerState
	scores   Scores
	onturn   Player
	rackSize int
}

// rngFromSeed builds the bag's random source. Seed 0 means "surprise me".
func rngFromSeed(seed uint64) *frand.RNG {
	if seed == 0 {
		return frand.New()
	}
	var b [32]byte
	binary.LittleEndian.PutUint64(b[:8], seed)
	return frand.NewCustom(b[:], 1024, 12)
}

// NewGame sets up a fresh game: shuffled bag, full racks, first player to
// move.
func NewGame(cfg *config.Config, nicknames [2]string) (*Game, error) {
	ld, err := tiles.NamedLetterDistribution(cfg.LetterDistributionName)
	if err != nil {
		return nil, err
	}
	g := &Game{
		board:    board.NewBoard(ld.Alphabet()),
		bag:      ld.MakeBag(rngFromSeed(cfg.RandomSeed)),
		ld:       ld,
		rackSize: cfg.RackSize,
	}
	for i := range g.players {
		g.players[i].nickname = nicknames[i]
		g.players[i].rack = tiles.NewRack(ld.Alphabet())
	}
	g.ReplenishRack(First)
	g.ReplenishRack(Second)
	log.Debug().Str("p1", nicknames[0]).Str("p2", nicknames[1]).
		Int("bag", g.bag.TilesRemaining()).Msg("new game")
	return g, nil
}

// ReplenishRack draws tiles for a player until their rack is full or the
// bag runs out.
func (g *Game) ReplenishRack(p Player) {
	rack := g.players[p].rack
	need := g.rackSize - int(rack.NumTiles())
	if need <= 0 {
		return
	}
	for _, t := range g.bag.DrawAtMost(need) {
		rack.Add(t)
	}
}

// PlaceWord lays a move's tiles onto the board and takes them off the
// on-turn player's rack. A 0 in the word marks a played-through square and
// is skipped. No legality checking beyond physical fit.
func (g *Game) PlaceWord(m *move.Move) error {
	loc := m.Location()
	row, col := loc.Row.Idx(), loc.Col.Idx()
	ri, ci := 0, 1
	if m.Direction() == move.Vertical {
		ri, ci = ci, ri
	}
	rack := g.players[g.onturn].rack
	// Walk the whole word before mutating anything. A play rejected
	// partway through must not strand tiles on the board or off the rack.
	scratch := rack.Copy()
	for idx, ml := range m.Word() {
		if ml == 0 {
			continue
		}
		sq, ok := bitboard.NewLocation(row+ri*idx+1, col+ci*idx+1)
		if !ok {
			return fmt.Errorf("play %s extends off of the board", m.BoardCoords())
		}
		if g.board.HasLetter(sq) {
			return fmt.Errorf("square %d,%d is already occupied", sq.Row, sq.Col)
		}
		if int(ml.Unblank()) > g.ld.Alphabet().NumLetters() {
			return fmt.Errorf("letter %v not in this game's alphabet", ml)
		}
		fromRack := ml
		if ml.IsBlanked() {
			fromRack = 0
		}
		if err := scratch.Take(fromRack); err != nil {
			return err
		}
	}
	for idx, ml := range m.Word() {
		if ml == 0 {
			continue
		}
		// every square and tile was checked above
		sq, _ := bitboard.NewLocation(row+ri*idx+1, col+ci*idx+1)
		fromRack := ml
		if ml.IsBlanked() {
			fromRack = 0
		}
		_ = rack.Take(fromRack)
		_ = g.board.PlaceLetter(sq, ml)
	}
	g.players[g.onturn].turns++
	return nil
}

// AddScore adds points for a player and returns their new total.
func (g *Game) AddScore(p Player, points int) int {
	g.scores[p] += points
	return g.scores[p]
}

// SwitchTurn passes the turn to the other player.
func (g *Game) SwitchTurn() {
	g.onturn = (g.onturn + 1) % 2
}

// Onturn returns whose turn it is.
func (g *Game) Onturn() Player {
	return g.onturn
}

// Scores returns both point totals.
func (g *Game) Scores() Scores {
	return g.scores
}

// Board returns the game board.
func (g *Game) Board() *board.Board {
	return g.board
}

// Bag returns the tile bag.
func (g *Game) Bag() *tiles.Bag {
	return g.bag
}

// LetterDistribution returns the distribution in play.
func (g *Game) LetterDistribution() *tiles.LetterDistribution {
	return g.ld
}

// RackFor returns a player's rack.
func (g *Game) RackFor(p Player) *tiles.Rack {
	return g.players[p].rack
}

// NicknameFor returns a player's nickname.
func (g *Game) NicknameFor(p Player) string {
	return g.players[p].nickname
}
