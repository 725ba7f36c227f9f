// Package report turns simulation results into text: showdown descriptions,
// ranked starting-hand tables, terminal rendering and TOML export.
package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lox/holdemsim/poker"
)

// describers maps each category to the phrase used after "Wins with".
// Each receives a tiebreak of exactly the category's arity.
var describers = map[poker.Category]func(tb []poker.Rank) string{
	poker.RoyalFlush: func([]poker.Rank) string {
		return "a Royal Flush!"
	},
	poker.StraightFlush: func(tb []poker.Rank) string {
		return fmt.Sprintf("a Straight Flush, %s High", tb[0].Name())
	},
	poker.FourOfAKind: func(tb []poker.Rank) string {
		return fmt.Sprintf("Quad %s, %s Kicker", tb[0].Plural(), tb[1].Name())
	},
	poker.FullHouse: func(tb []poker.Rank) string {
		return fmt.Sprintf("a Full House, %s over %s", tb[0].Plural(), tb[1].Plural())
	},
	poker.Flush: func(tb []poker.Rank) string {
		return fmt.Sprintf("a Flush, %s High", tb[0].Name())
	},
	poker.Straight: func(tb []poker.Rank) string {
		return fmt.Sprintf("a Straight, %s High", tb[0].Name())
	},
	poker.ThreeOfAKind: func(tb []poker.Rank) string {
		return fmt.Sprintf("Trip %s, %s Kicker", tb[0].Plural(), kickers(tb[1:]))
	},
	poker.TwoPair: func(tb []poker.Rank) string {
		return fmt.Sprintf("a Two Pair, %s over %s with %s Kicker", tb[0].Plural(), tb[1].Plural(), tb[2].Name())
	},
	poker.OnePair: func(tb []poker.Rank) string {
		return fmt.Sprintf("a Pair of %s, with %s Kicker", tb[0].Plural(), kickers(tb[1:]))
	},
	poker.HighCard: func(tb []poker.Rank) string {
		return fmt.Sprintf("a High Card of %s, with %s Kicker", tb[0].Name(), kickers(tb[1:]))
	},
}

func kickers(ranks []poker.Rank) string {
	names := make([]string, len(ranks))
	for i, r := range ranks {
		names[i] = r.Name()
	}
	return strings.Join(names, "-")
}

// Describe phrases a ranking in plain English, e.g. "a Full House, Kings over
// Fours". Malformed rankings fall back to their raw form.
func Describe(r poker.HandRanking) string {
	describe, ok := describers[r.Category]
	if !ok || len(r.Tiebreak) != r.Category.Arity() {
		return r.String()
	}
	for _, rank := range r.Tiebreak {
		if !rank.Valid() {
			return r.String()
		}
	}
	return describe(r.Tiebreak)
}

// Headline announces a showdown: "Player 2 Wins with ..." for a single
// winner or "Players 0, 1 and 3 Tie with ..." for a split pot.
func Headline(winners []int, r poker.HandRanking) string {
	switch len(winners) {
	case 0:
		return "No Winner"
	case 1:
		return fmt.Sprintf("Player %d Wins with %s", winners[0], Describe(r))
	}

	ids := make([]string, len(winners)-1)
	for i, w := range winners[:len(winners)-1] {
		ids[i] = strconv.Itoa(w)
	}
	return fmt.Sprintf("Players %s and %d Tie with %s",
		strings.Join(ids, ", "), winners[len(winners)-1], Describe(r))
}
