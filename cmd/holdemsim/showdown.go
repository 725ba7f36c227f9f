package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/lox/holdemsim/internal/report"
	"github.com/lox/holdemsim/poker"
)

// ShowdownCmd resolves one showdown between explicit hands.
type ShowdownCmd struct {
	Board   string   `short:"b" required:"" help:"Community cards, e.g. Kh7d2c9s4h"`
	Hands   []string `arg:"" help:"Two hole cards per player, e.g. AsAd QcJc"`
	NoColor bool     `help:"Disable coloured output"`
}

func (c *ShowdownCmd) Run() error {
	board, err := poker.ParseCards(c.Board)
	if err != nil {
		return fmt.Errorf("board: %w", err)
	}

	players := make([]poker.Player, len(c.Hands))
	for i, h := range c.Hands {
		hole, err := poker.ParseCards(h)
		if err != nil {
			return fmt.Errorf("player %d: %w", i, err)
		}
		if len(hole) != 2 {
			return fmt.Errorf("player %d: %w: want 2 hole cards, got %d", i, poker.ErrInvalidInput, len(hole))
		}
		players[i] = poker.Player{Hole: [2]poker.Card{hole[0], hole[1]}}
	}
	if err := checkDistinct(board, players); err != nil {
		return err
	}

	table := poker.Table{Community: board}
	winners, err := poker.DetermineWinners(table, players)
	if err != nil {
		return err
	}
	return report.NewRenderer(os.Stdout, c.NoColor).Showdown(table, players, winners)
}

// checkDistinct rejects a card dealt twice across the board and hands.
func checkDistinct(board []poker.Card, players []poker.Player) error {
	seen := make(map[poker.Card]bool)
	check := func(c poker.Card) error {
		if seen[c] {
			return fmt.Errorf("%w: %s dealt twice", poker.ErrInvalidInput, c)
		}
		seen[c] = true
		return nil
	}
	var errs []error
	for _, c := range board {
		errs = append(errs, check(c))
	}
	for _, p := range players {
		errs = append(errs, check(p.Hole[0]), check(p.Hole[1]))
	}
	return errors.Join(errs...)
}
