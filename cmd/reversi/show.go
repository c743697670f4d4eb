package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-reversi/internal/games/reversi"
	"github.com/vovakirdan/tui-reversi/internal/games/reversi/rules"
)

var flagMoves string

var showCmd = &cobra.Command{
	Use:   "show [variant]",
	Short: "Print the position after a list of moves",
	Long: `Replay moves from the opening position and print the board as text.
Squares use algebraic names counted inside the wall, so a1 is the
top-left playable cell. Without a variant the standard board is used.

Board legend:
  #  wall    .  empty    X  black    O  white

Examples:
  reversi show
  reversi show --moves e3,f5,f6
  reversi show reversi-6 --moves "d2 b3"`,
	Args: cobra.MaximumNArgs(1),
	Run:  runShow,
}

func init() {
	showCmd.Flags().StringVar(&flagMoves, "moves", "", "Comma or space separated moves, e.g. e3,f5")
}

func runShow(_ *cobra.Command, args []string) {
	gameID := "reversi"
	if len(args) == 1 {
		gameID = args[0]
	}

	if _, err := loadConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	engine, err := reversi.NewEngine(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'reversi list' to see available variants.")
		os.Exit(1)
	}

	moves, err := rules.ParseMoves(engine.Board(), flagMoves)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	replayErr := engine.Replay(moves)

	fmt.Println(engine.Board().String())
	fmt.Println()
	for i, rec := range engine.History() {
		fmt.Printf("%3d. %-5s %-3s flips %d\n", i+1, rec.Piece, rules.FormatSquare(rec.Position), len(rec.Flipped))
	}
	fmt.Println(reversi.TurnLine(engine.Snapshot()))

	legal := engine.LegalMoves()
	names := make([]string, len(legal))
	for i, pos := range legal {
		names[i] = rules.FormatSquare(pos)
	}
	if len(names) == 0 {
		fmt.Printf("%s has no legal move\n", engine.Turn())
	} else {
		fmt.Printf("Legal: %s\n", strings.Join(names, " "))
	}

	if replayErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", replayErr)
		os.Exit(1)
	}
}
