package poker

import (
	"math/rand/v2"
	"testing"

	ph "github.com/paulhankin/poker"
	"github.com/stretchr/testify/require"
)

// toOracle converts a card to the reference evaluator's encoding, where aces
// are rank 1.
func toOracle(t testing.TB, c Card) ph.Card {
	t.Helper()
	rank := ph.Rank(c.Rank)
	if c.Rank == Ace {
		rank = 1
	}
	var suit ph.Suit
	switch c.Suit {
	case Hearts:
		suit = ph.Heart
	case Diamonds:
		suit = ph.Diamond
	case Clubs:
		suit = ph.Club
	case Spades:
		suit = ph.Spade
	}
	card, err := ph.MakeCard(suit, rank)
	require.NoError(t, err)
	return card
}

func oracleScore(t testing.TB, cards []Card) int16 {
	t.Helper()
	var hand [7]ph.Card
	for i, c := range cards {
		hand[i] = toOracle(t, c)
	}
	return ph.Eval7(&hand)
}

func sign[T int | int16](v T) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// TestCompareAgreesWithReferenceEvaluator deals random heads-up showdowns and
// checks that our ordering matches an independent seven-card evaluator, and
// that resolving the pair picks the same winners.
func TestCompareAgreesWithReferenceEvaluator(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewPCG(0xC0FFEE, 52))
	deck := NewDeck(rng)

	const rounds = 5000
	for i := 0; i < rounds; i++ {
		cards := deck.Reset()
		board := cards[4:9]
		a := append([]Card{cards[0], cards[1]}, board...)
		b := append([]Card{cards[2], cards[3]}, board...)

		ra, err := Evaluate(a)
		require.NoError(t, err)
		rb, err := Evaluate(b)
		require.NoError(t, err)

		want := sign(oracleScore(t, a) - oracleScore(t, b))
		got := Compare(ra, rb)
		require.Equal(t, want, got, "board %s: %s (%s) vs %s (%s)",
			FormatCards(board), FormatCards(a[:2]), ra, FormatCards(b[:2]), rb)

		winners, err := ResolveWinners([]Player{{Ranking: &ra}, {Ranking: &rb}})
		require.NoError(t, err)
		switch got {
		case 1:
			require.Equal(t, []int{0}, winners)
		case -1:
			require.Equal(t, []int{1}, winners)
		default:
			require.Equal(t, []int{0, 1}, winners)
		}
	}
}
