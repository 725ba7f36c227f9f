package report

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/lox/holdemsim/internal/statistics"
	"github.com/lox/holdemsim/poker"
)

// StartingHandRow is one starting hand's record over a run.
type StartingHandRow struct {
	Key         string     `toml:"key"`
	Tier        poker.Tier `toml:"tier"`
	Appearances uint64     `toml:"appearances"`
	Wins        uint64     `toml:"wins"`
	// WinRate and the interval are zero when HasData is false.
	WinRate float64 `toml:"win_rate"`
	Low     float64 `toml:"ci95_low"`
	High    float64 `toml:"ci95_high"`
	HasData bool    `toml:"has_data"`
}

// Rate formats the win rate, or "no data" for a hand that never appeared.
func (r StartingHandRow) Rate() string {
	return formatRate(r.WinRate, r.HasData)
}

// WinTypeRow is how often one category won a trial.
type WinTypeRow struct {
	Category poker.Category `toml:"-"`
	Name     string         `toml:"category"`
	Count    uint64         `toml:"count"`
	Share    float64        `toml:"share"`
	HasData  bool           `toml:"has_data"`
}

// Rate formats the share of trials.
func (r WinTypeRow) Rate() string {
	return formatRate(r.Share, r.HasData)
}

// TierRow aggregates the starting hands of one preflop tier.
type TierRow struct {
	Tier        poker.Tier `toml:"tier"`
	Hands       int        `toml:"hands"`
	Appearances uint64     `toml:"appearances"`
	Wins        uint64     `toml:"wins"`
	WinRate     float64    `toml:"win_rate"`
	HasData     bool       `toml:"has_data"`
}

// Rate formats the tier win rate.
func (r TierRow) Rate() string {
	return formatRate(r.WinRate, r.HasData)
}

func formatRate(rate float64, ok bool) string {
	if !ok {
		return "no data"
	}
	return fmt.Sprintf("%.2f%%", 100*rate)
}

// RankStartingHands lists all 169 starting hands by win rate, best first.
// Hands that never appeared sort last and are marked as having no data.
func RankStartingHands(m *statistics.Matrices) ([]StartingHandRow, error) {
	hands := poker.AllStartingHands()
	rows := make([]StartingHandRow, 0, len(hands))
	for _, h := range hands {
		appearances, wins := m.Counts(h)
		row := StartingHandRow{
			Key:         h.Key(),
			Tier:        h.Tier(),
			Appearances: appearances,
			Wins:        wins,
		}
		rate, err := m.WinRate(h)
		switch {
		case errors.Is(err, statistics.ErrNoData):
		case err != nil:
			return nil, err
		default:
			low, high, err := m.ConfidenceInterval95(h)
			if err != nil {
				return nil, err
			}
			row.WinRate, row.Low, row.High, row.HasData = rate, low, high, true
		}
		rows = append(rows, row)
	}

	slices.SortStableFunc(rows, func(a, b StartingHandRow) int {
		if a.HasData != b.HasData {
			if a.HasData {
				return -1
			}
			return 1
		}
		return cmp.Compare(b.WinRate, a.WinRate)
	})
	return rows, nil
}

// WinTypes lists every category, strongest first, with its share of trials.
func WinTypes(m *statistics.Matrices) []WinTypeRow {
	categories := poker.Categories()
	slices.Reverse(categories)

	rows := make([]WinTypeRow, 0, len(categories))
	for _, c := range categories {
		row := WinTypeRow{Category: c, Name: c.String(), Count: m.WinTypes[c-1]}
		if share, err := m.WinTypeShare(c); err == nil {
			row.Share, row.HasData = share, true
		}
		rows = append(rows, row)
	}
	return rows
}

// Tiers aggregates appearances and wins per preflop tier.
func Tiers(m *statistics.Matrices) []TierRow {
	index := make(map[poker.Tier]*TierRow)
	var rows []TierRow
	for _, t := range poker.Tiers() {
		rows = append(rows, TierRow{Tier: t})
	}
	for i := range rows {
		index[rows[i].Tier] = &rows[i]
	}

	for _, h := range poker.AllStartingHands() {
		row := index[h.Tier()]
		appearances, wins := m.Counts(h)
		row.Hands++
		row.Appearances += appearances
		row.Wins += wins
	}
	for i := range rows {
		if rows[i].Appearances > 0 {
			rows[i].WinRate = float64(rows[i].Wins) / float64(rows[i].Appearances)
			rows[i].HasData = true
		}
	}
	return rows
}
