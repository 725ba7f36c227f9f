package poker

import "fmt"

// Table holds the community cards shared by every player in one trial.
type Table struct {
	Community []Card
}

// Player holds two hole cards and, once evaluated, the ranking of the best
// hand they make with the table.
type Player struct {
	Hole    [2]Card
	Ranking *HandRanking
}

// Evaluated reports whether the player has a ranking.
func (p *Player) Evaluated() bool {
	return p.Ranking != nil
}

// Evaluate ranks the player's hole cards against the table and stores the result.
func (p *Player) Evaluate(table Table) error {
	ranking, err := EvaluateHand(p.Hole, table.Community)
	if err != nil {
		return fmt.Errorf("evaluate %s: %w", FormatCards(p.Hole[:]), err)
	}
	p.Ranking = &ranking
	return nil
}

// StartingHand returns the shape of the player's hole cards.
func (p *Player) StartingHand() StartingHand {
	return StartingHandOf(p.Hole[0], p.Hole[1])
}

// ResolveWinners returns the indices, ascending, of every player whose
// ranking is maximal. More than one index means a split pot. The result does
// not depend on the order players are supplied in beyond their indices.
func ResolveWinners(players []Player) ([]int, error) {
	if len(players) == 0 {
		return nil, ErrNoPlayers
	}

	for i := range players {
		if !players[i].Evaluated() {
			return nil, fmt.Errorf("%w: player %d", ErrUnevaluatedPlayer, i)
		}
	}

	best := *players[0].Ranking
	winners := []int{0}
	for i := 1; i < len(players); i++ {
		switch c := Compare(*players[i].Ranking, best); {
		case c > 0:
			best = *players[i].Ranking
			winners = append(winners[:0], i)
		case c == 0:
			winners = append(winners, i)
		}
	}
	return winners, nil
}

// DetermineWinners evaluates every player against the table and resolves
// the winners of the showdown.
func DetermineWinners(table Table, players []Player) ([]int, error) {
	for i := range players {
		if err := players[i].Evaluate(table); err != nil {
			return nil, fmt.Errorf("player %d: %w", i, err)
		}
	}
	return ResolveWinners(players)
}
