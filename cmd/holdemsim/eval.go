package main

import (
	"os"
	"strings"

	"github.com/lox/holdemsim/internal/report"
	"github.com/lox/holdemsim/poker"
)

// EvalCmd classifies a single card set.
type EvalCmd struct {
	Cards   []string `arg:"" help:"5 to 7 cards, e.g. 'Ah Kh Qh Jh Th 2d 3d' or AhKhQhJhTh"`
	NoColor bool     `help:"Disable coloured output"`
}

func (c *EvalCmd) Run() error {
	cards, err := poker.ParseCards(strings.Join(c.Cards, " "))
	if err != nil {
		return err
	}
	ranking, err := poker.Evaluate(cards)
	if err != nil {
		return err
	}
	report.NewRenderer(os.Stdout, c.NoColor).Ranking(cards, ranking)
	return nil
}
