package report

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdemsim/internal/simulator"
	"github.com/lox/holdemsim/internal/statistics"
	"github.com/lox/holdemsim/poker"
)

func record(t *testing.T, m *statistics.Matrices, board string, holes ...string) ([]poker.Player, []int) {
	t.Helper()
	players := make([]poker.Player, len(holes))
	for i, h := range holes {
		cards := poker.MustParseCards(h)
		players[i] = poker.Player{Hole: [2]poker.Card{cards[0], cards[1]}}
	}
	winners, err := poker.DetermineWinners(poker.Table{Community: poker.MustParseCards(board)}, players)
	require.NoError(t, err)
	require.NoError(t, m.Update(players, winners))
	return players, winners
}

// sampleMatrices records three trials: AA wins twice, QJs once.
func sampleMatrices(t *testing.T) *statistics.Matrices {
	t.Helper()
	m := statistics.New()
	record(t, m, "Kh7d2c9s4h", "AsAd", "QcJc")
	record(t, m, "Kh7d2c9s3h", "AsAh", "QdJd")
	record(t, m, "Qh7d2cJs4h", "AsAd", "QcJc")
	return m
}

func TestRankStartingHands(t *testing.T) {
	t.Parallel()
	rows, err := RankStartingHands(sampleMatrices(t))
	require.NoError(t, err)
	require.Len(t, rows, poker.NumStartingHands)

	assert.Equal(t, "AA", rows[0].Key)
	assert.Equal(t, uint64(3), rows[0].Appearances)
	assert.Equal(t, uint64(2), rows[0].Wins)
	assert.InDelta(t, 2.0/3.0, rows[0].WinRate, 1e-9)
	assert.True(t, rows[0].HasData)
	assert.Equal(t, "66.67%", rows[0].Rate())
	assert.Equal(t, poker.TierPremium, rows[0].Tier)

	assert.Equal(t, "QJs", rows[1].Key)
	assert.Equal(t, "33.33%", rows[1].Rate())

	for _, row := range rows[2:] {
		assert.False(t, row.HasData, row.Key)
		assert.Equal(t, "no data", row.Rate())
		assert.Zero(t, row.WinRate)
	}
}

func TestRankStartingHandsZeroRateIsNotNoData(t *testing.T) {
	t.Parallel()
	m := statistics.New()
	record(t, m, "Kh7d2c9s4h", "AsAd", "3c2d")

	rows, err := RankStartingHands(m)
	require.NoError(t, err)
	assert.Equal(t, "AA", rows[0].Key)
	assert.Equal(t, "32o", rows[1].Key)
	assert.True(t, rows[1].HasData)
	assert.Equal(t, "0.00%", rows[1].Rate())
	assert.False(t, rows[2].HasData)
}

func TestWinTypes(t *testing.T) {
	t.Parallel()

	empty := WinTypes(statistics.New())
	require.Len(t, empty, poker.NumCategories)
	assert.Equal(t, poker.RoyalFlush, empty[0].Category)
	assert.Equal(t, poker.HighCard, empty[len(empty)-1].Category)
	assert.Equal(t, "no data", empty[0].Rate())

	rows := WinTypes(sampleMatrices(t))
	byCategory := make(map[poker.Category]WinTypeRow)
	for _, r := range rows {
		byCategory[r.Category] = r
	}
	assert.Equal(t, uint64(2), byCategory[poker.OnePair].Count)
	assert.Equal(t, "66.67%", byCategory[poker.OnePair].Rate())
	assert.Equal(t, uint64(1), byCategory[poker.TwoPair].Count)
	assert.Equal(t, "0.00%", byCategory[poker.Flush].Rate())
}

func TestTiers(t *testing.T) {
	t.Parallel()
	rows := Tiers(sampleMatrices(t))
	require.Len(t, rows, len(poker.Tiers()))

	total := 0
	for _, r := range rows {
		total += r.Hands
	}
	assert.Equal(t, poker.NumStartingHands, total)

	premium := rows[0]
	assert.Equal(t, poker.TierPremium, premium.Tier)
	assert.Equal(t, uint64(3), premium.Appearances)
	assert.Equal(t, uint64(2), premium.Wins)

	medium := rows[2]
	assert.Equal(t, poker.TierMedium, medium.Tier)
	assert.Equal(t, uint64(3), medium.Appearances, "QJs is suited broadway")
	assert.Equal(t, uint64(1), medium.Wins)

	assert.Equal(t, "no data", rows[4].Rate())
}

func testResult(t *testing.T) *simulator.Result {
	t.Helper()
	return &simulator.Result{
		RunID:    "0f8fad5b-d9cb-469f-a165-70867728950e",
		Seed:     42,
		Trials:   3,
		Players:  2,
		Workers:  1,
		Elapsed:  1500 * time.Millisecond,
		Matrices: sampleMatrices(t),
	}
}

func TestExportRoundTrip(t *testing.T) {
	t.Parallel()
	generated := time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC)
	summary, err := NewSummary(testResult(t), generated)
	require.NoError(t, err)
	assert.Equal(t, "1.5s", summary.Elapsed)

	path := filepath.Join(t.TempDir(), "results.toml")
	require.NoError(t, Export(path, summary))

	loaded, err := LoadSummary(path)
	require.NoError(t, err)
	assert.True(t, generated.Equal(loaded.Generated), "generated %s", loaded.Generated)
	loaded.Generated = summary.Generated
	assert.Equal(t, summary, loaded)
}

func TestExportMissingDirectory(t *testing.T) {
	t.Parallel()
	summary, err := NewSummary(testResult(t), time.Now())
	require.NoError(t, err)
	err = Export(filepath.Join(t.TempDir(), "missing", "results.toml"), summary)
	assert.ErrorContains(t, err, "export")
}

func TestRendererSummary(t *testing.T) {
	t.Parallel()
	summary, err := NewSummary(testResult(t), time.Now())
	require.NoError(t, err)
	summary.Trials = 1234567

	var buf bytes.Buffer
	r := NewRenderer(&buf, true)
	require.NoError(t, r.Summary(summary, 3))

	out := buf.String()
	assert.Contains(t, out, "1,234,567 trials")
	assert.Contains(t, out, "Royal Flush")
	assert.Contains(t, out, "66.67%")
	assert.Contains(t, out, "no data")
	assert.Contains(t, out, "... 166 more")
	assert.NotContains(t, out, "\x1b[", "no colour requested")
}

func TestRendererShowdown(t *testing.T) {
	t.Parallel()
	m := statistics.New()
	players, winners := record(t, m, "AdKh7c2s4h", "AcKs", "AsKc", "QdJd")

	var buf bytes.Buffer
	r := NewRenderer(&buf, true)
	require.NoError(t, r.Showdown(poker.Table{Community: poker.MustParseCards("AdKh7c2s4h")}, players, winners))

	out := buf.String()
	assert.Contains(t, out, "Ad Kh 7c 2s 4h")
	assert.Contains(t, out, "split")
	assert.Contains(t, out, "Players 0 and 1 Tie with a Two Pair, Aces over Kings with 7 Kicker")

	err := r.Showdown(poker.Table{}, []poker.Player{{}}, nil)
	require.ErrorIs(t, err, poker.ErrUnevaluatedPlayer)
}

func TestRendererOutcomeAndRanking(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	r := NewRenderer(&buf, true)

	cards := poker.MustParseCards("7h7d7c2s2d9h4c")
	ranking, err := poker.Evaluate(cards)
	require.NoError(t, err)
	r.Ranking(cards, ranking)
	assert.Contains(t, buf.String(), "Full House  a Full House, Sevens over Twos")

	buf.Reset()
	r.Outcome(simulator.TrialOutcome{
		Trial:   250,
		Total:   1000,
		Table:   poker.Table{Community: cards[2:]},
		Winners: []int{3},
		Ranking: ranking,
	})
	assert.Equal(t, "[ 25.00%] 7c 2s 2d 9h 4c Player 3 Wins with a Full House, Sevens over Twos\n", buf.String())
}
