package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/fichas/bitboard"
	"github.com/domino14/fichas/config"
	"github.com/domino14/fichas/game"
	"github.com/domino14/fichas/move"
	"github.com/domino14/fichas/tiles"
)

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func usage(w io.Writer) {
	io.WriteString(w, "commands:\n")
	io.WriteString(w, "show - draw the board\n")
	io.WriteString(w, "rack - show the on-turn player's rack\n")
	io.WriteString(w, "place <coords> <word> - lay tiles, e.g. place 8H HELLO or place H8 vertical\n")
	io.WriteString(w, "    use lowercase for a designated blank, . for playing through\n")
	io.WriteString(w, "occupied - show the occupancy bitboard\n")
	io.WriteString(w, "letter <X> - show the bitboard for letter X\n")
	io.WriteString(w, "blanks - show the designated-blank bitboard\n")
	io.WriteString(w, "adjacent - show empty squares bordering a tile\n")
	io.WriteString(w, "shift <dir> <n> - show the occupancy shifted right/left/up/down by n\n")
	io.WriteString(w, "count - number of tiles on the board\n")
	io.WriteString(w, "award <n> - add n points for the on-turn player\n")
	io.WriteString(w, "score - show the score\n")
	io.WriteString(w, "pass - switch turns\n")
}

func place(g *game.Game, fields []string) error {
	if len(fields) != 3 {
		return fmt.Errorf("place needs coordinates and a word")
	}
	coords := strings.ToUpper(fields[1])
	row, col, vertical, ok := move.FromBoardGameCoords(coords)
	if !ok {
		return fmt.Errorf("bad coordinates %v", coords)
	}
	loc, ok := bitboard.NewLocation(row+1, col+1)
	if !ok {
		return fmt.Errorf("coordinates %v are off the board", coords)
	}
	word, err := tiles.ToMachineWord(fields[2],
		g.LetterDistribution().Alphabet())
	if err != nil {
		return err
	}
	dir := move.Horizontal
	if vertical {
		dir = move.Vertical
	}
	if err := g.PlaceWord(move.NewMove(loc, dir, word)); err != nil {
		return err
	}
	g.ReplenishRack(g.Onturn())
	g.SwitchTurn()
	return nil
}

func shifted(g *game.Game, fields []string) (bitboard.Board, error) {
	if len(fields) != 3 {
		return bitboard.Empty(), fmt.Errorf("shift needs a direction and an amount")
	}
	n, err := strconv.Atoi(fields[2])
	if err != nil || n < 0 {
		return bitboard.Empty(), fmt.Errorf("bad shift amount %v", fields[2])
	}
	occ := g.Board().Occupied()
	switch fields[1] {
	case "right":
		return occ.Right(n), nil
	case "left":
		return occ.Left(n), nil
	case "up":
		return occ.Up(n), nil
	case "down":
		return occ.Down(n), nil
	}
	return bitboard.Empty(), fmt.Errorf("bad direction %v", fields[1])
}

func main() {
	cfg := config.DefaultConfig()
	if err := cfg.Load(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("")
	}
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	g, err := game.NewGame(&cfg, [2]string{"player1", "player2"})
	if err != nil {
		log.Fatal().Err(err).Msg("could not create game")
	}

	l, err := readline.NewEx(&readline.Config{
		Prompt:      "\033[31mfichas>\033[0m ",
		HistoryFile: "/tmp/readline.tmp",
		EOFPrompt:   "exit",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	defer l.Close()

readlineLoop:
	for {
		line, err := l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		}
		fields := strings.Fields(strings.TrimSpace(line))
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "bye", "exit":
			break readlineLoop
		case "help":
			usage(l.Stderr())
		case "show":
			fmt.Println(g.Board())
		case "rack":
			fmt.Println(g.RackFor(g.Onturn()))
		case "place":
			if err := place(g, fields); err != nil {
				log.Error().Err(err).Msg("")
			}
		case "occupied":
			fmt.Println(g.Board().Occupied())
		case "letter":
			if len(fields) != 2 || len(fields[1]) != 1 {
				log.Error().Msg("letter needs a single letter")
				continue
			}
			ml, err := g.LetterDistribution().Alphabet().Val(rune(fields[1][0]))
			if err != nil {
				log.Error().Err(err).Msg("")
				continue
			}
			fmt.Println(g.Board().LettersFor(ml))
		case "blanks":
			fmt.Println(g.Board().Blanks())
		case "adjacent":
			fmt.Println(g.Board().Adjacent())
		case "shift":
			b, err := shifted(g, fields)
			if err != nil {
				log.Error().Err(err).Msg("")
				continue
			}
			fmt.Println(b)
		case "count":
			fmt.Println(g.Board().Occupied().CountOnes())
		case "award":
			if len(fields) != 2 {
				log.Error().Msg("award needs a point count")
				continue
			}
			pts, err := strconv.Atoi(fields[1])
			if err != nil {
				log.Error().Err(err).Msg("")
				continue
			}
			fmt.Println(g.AddScore(g.Onturn(), pts))
		case "score":
			s := g.Scores()
			fmt.Printf("%v %d - %v %d\n", g.NicknameFor(game.First), s.Of(game.First),
				g.NicknameFor(game.Second), s.Of(game.Second))
		case "pass":
			g.SwitchTurn()
		default:
			log.Debug().Msgf("you said: %v", strconv.Quote(line))
		}
	}
}
