package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func player(t *testing.T, hole string) Player {
	t.Helper()
	cards, err := ParseCards(hole)
	require.NoError(t, err)
	require.Len(t, cards, 2)
	return Player{Hole: [2]Card{cards[0], cards[1]}}
}

func TestDetermineWinners(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		board   string
		holes   []string
		winners []int
	}{
		{
			name:    "single winner",
			board:   "Kh7d2c9s4h",
			holes:   []string{"AhAd", "KsKd", "QcJc"},
			winners: []int{1},
		},
		{
			name:    "split pot on board straight",
			board:   "5h6d7c8s9h",
			holes:   []string{"2c3d", "2d4c", "AhKh"},
			winners: []int{0, 1, 2},
		},
		{
			name:    "split pot same hole ranks",
			board:   "Kh7d2c9s4h",
			holes:   []string{"AcQd", "AsQh", "JcTc"},
			winners: []int{0, 1},
		},
		{
			name:    "kicker decides",
			board:   "AhAd9c7s2h",
			holes:   []string{"KcQd", "KsJh"},
			winners: []int{0},
		},
		{
			name:    "category beats kicker",
			board:   "Th9h2h5c5d",
			holes:   []string{"AhKc", "5s6s"},
			winners: []int{1},
		},
		{
			name:    "counterfeited two pair",
			board:   "KhKd9c9s3h",
			holes:   []string{"4c4d", "AcQd"},
			winners: []int{1},
		},
		{
			name:    "pocket pair hits board for full house",
			board:   "KhKd9c9s4h",
			holes:   []string{"4c4d", "AcQd"},
			winners: []int{0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			table := Table{Community: MustParseCards(tt.board)}
			players := make([]Player, len(tt.holes))
			for i, h := range tt.holes {
				players[i] = player(t, h)
			}
			winners, err := DetermineWinners(table, players)
			require.NoError(t, err)
			assert.Equal(t, tt.winners, winners)
			for i := range players {
				assert.True(t, players[i].Evaluated(), "player %d not evaluated", i)
			}
		})
	}
}

func TestResolveWinnersOrderIndependent(t *testing.T) {
	t.Parallel()
	table := Table{Community: MustParseCards("Kh7d2c9s4h")}
	holes := []string{"AcQd", "JcTc", "AsQh", "3c5d"}

	players := make([]Player, len(holes))
	for i, h := range holes {
		players[i] = player(t, h)
	}
	winners, err := DetermineWinners(table, players)
	require.NoError(t, err)
	require.Equal(t, []int{0, 2}, winners)

	// Reverse the seating; the same hands must win under their new indices.
	reversed := make([]Player, len(players))
	for i := range players {
		reversed[len(players)-1-i] = players[i]
	}
	winners, err = ResolveWinners(reversed)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, winners)
}

func TestResolveWinnersErrors(t *testing.T) {
	t.Parallel()

	_, err := ResolveWinners(nil)
	require.ErrorIs(t, err, ErrNoPlayers)

	table := Table{Community: MustParseCards("Kh7d2c9s4h")}
	evaluated := player(t, "AcAd")
	require.NoError(t, evaluated.Evaluate(table))

	_, err = ResolveWinners([]Player{evaluated, player(t, "QsQh")})
	require.ErrorIs(t, err, ErrUnevaluatedPlayer)
	assert.Contains(t, err.Error(), "player 1")
}

func TestPlayerEvaluateInvalidTable(t *testing.T) {
	t.Parallel()
	p := player(t, "AcAd")
	err := p.Evaluate(Table{Community: MustParseCards("Ac7d2c")})
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.False(t, p.Evaluated())

	_, err = DetermineWinners(Table{Community: MustParseCards("Kh7d")}, []Player{p})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestPlayerStartingHand(t *testing.T) {
	t.Parallel()
	p := player(t, "9hAh")
	assert.Equal(t, StartingHand{High: Ace, Low: Nine, Suited: true}, p.StartingHand())
}
