// Package statistics accumulates showdown results by starting hand and by
// winning hand category.
package statistics

import (
	"errors"
	"fmt"
	"math"

	"github.com/lox/holdemsim/poker"
)

var (
	// ErrNoData is returned when a rate is requested for a starting hand that
	// never appeared.
	ErrNoData = errors.New("no data")
	// ErrNoWinners is returned when a trial is recorded without winners.
	ErrNoWinners = errors.New("no winners")
	// ErrWinnerOutOfRange is returned when a winner index names no player.
	ErrWinnerOutOfRange = errors.New("winner index out of range")
)

// Size is the number of ranks along each matrix axis.
const Size = 13

// Matrix counts starting hands indexed by (high rank-2, low rank-2). Only the
// lower triangle (row >= column) is ever written.
type Matrix [Size][Size]uint64

// Sum returns the total of all cells.
func (m *Matrix) Sum() uint64 {
	var total uint64
	for i := range m {
		for j := range m[i] {
			total += m[i][j]
		}
	}
	return total
}

func (m *Matrix) add(other *Matrix) {
	for i := range m {
		for j := range m[i] {
			m[i][j] += other[i][j]
		}
	}
}

// Matrices is the accumulated outcome of a run: appearance and win counts
// for unsuited and suited starting hands, plus how often each category won.
// Pairs are counted in the unsuited matrices.
type Matrices struct {
	UnsuitedAppearances Matrix
	UnsuitedWins        Matrix
	SuitedAppearances   Matrix
	SuitedWins          Matrix

	// WinTypes[c-1] counts trials won with category c.
	WinTypes [poker.NumCategories]uint64
	Trials   uint64
}

// New returns zeroed matrices.
func New() *Matrices {
	return &Matrices{}
}

// Update records one trial. Every player's starting hand gains an appearance
// and each winner's a win; the winning category is counted once however many
// players split the pot. Nothing is recorded if an error is returned.
func (m *Matrices) Update(players []poker.Player, winners []int) error {
	if len(players) == 0 {
		return poker.ErrNoPlayers
	}
	if len(winners) == 0 {
		return ErrNoWinners
	}

	// Winners are marked once so the per-player pass stays linear.
	var buf [16]bool
	won := buf[:]
	if len(players) > len(buf) {
		won = make([]bool, len(players))
	}
	for _, w := range winners {
		if w < 0 || w >= len(players) {
			return fmt.Errorf("%w: %d of %d players", ErrWinnerOutOfRange, w, len(players))
		}
		if !players[w].Evaluated() {
			return fmt.Errorf("%w: winner %d", poker.ErrUnevaluatedPlayer, w)
		}
		won[w] = true
	}
	category := players[winners[0]].Ranking.Category
	if !category.Valid() {
		return fmt.Errorf("%w: winning category %d", poker.ErrInvalidInput, category)
	}

	for i := range players {
		appearances, wins := m.cells(players[i].StartingHand())
		*appearances++
		if won[i] {
			*wins++
		}
	}
	m.WinTypes[category-1]++
	m.Trials++
	return nil
}

func (m *Matrices) cells(h poker.StartingHand) (appearances, wins *uint64) {
	row, col := h.Index()
	if h.Suited {
		return &m.SuitedAppearances[row][col], &m.SuitedWins[row][col]
	}
	return &m.UnsuitedAppearances[row][col], &m.UnsuitedWins[row][col]
}

// Merge adds other into m. Merging is commutative, so per-worker matrices can
// be combined in any order.
func (m *Matrices) Merge(other *Matrices) {
	m.UnsuitedAppearances.add(&other.UnsuitedAppearances)
	m.UnsuitedWins.add(&other.UnsuitedWins)
	m.SuitedAppearances.add(&other.SuitedAppearances)
	m.SuitedWins.add(&other.SuitedWins)
	for i := range m.WinTypes {
		m.WinTypes[i] += other.WinTypes[i]
	}
	m.Trials += other.Trials
}

// Counts returns the appearances and wins recorded for h.
func (m *Matrices) Counts(h poker.StartingHand) (appearances, wins uint64) {
	a, w := m.cells(h)
	return *a, *w
}

// WinRate returns wins/appearances for h, or ErrNoData if h never appeared.
func (m *Matrices) WinRate(h poker.StartingHand) (float64, error) {
	appearances, wins := m.Counts(h)
	if appearances == 0 {
		return 0, fmt.Errorf("%s: %w", h.Key(), ErrNoData)
	}
	return float64(wins) / float64(appearances), nil
}

// ConfidenceInterval95 returns the normal-approximation 95% interval around
// the win rate of h, clamped to [0, 1].
func (m *Matrices) ConfidenceInterval95(h poker.StartingHand) (float64, float64, error) {
	p, err := m.WinRate(h)
	if err != nil {
		return 0, 0, err
	}
	appearances, _ := m.Counts(h)
	margin := 1.96 * math.Sqrt(p*(1-p)/float64(appearances))
	return math.Max(0, p-margin), math.Min(1, p+margin), nil
}

// WinTypeShare returns the fraction of trials won with category c, or
// ErrNoData before any trial is recorded.
func (m *Matrices) WinTypeShare(c poker.Category) (float64, error) {
	if !c.Valid() {
		return 0, fmt.Errorf("%w: category %d", poker.ErrInvalidInput, c)
	}
	if m.Trials == 0 {
		return 0, ErrNoData
	}
	return float64(m.WinTypes[c-1]) / float64(m.Trials), nil
}

// Validate checks the accumulator invariants: no cell has more wins than
// appearances, only reachable cells are populated, and the win-type
// counters sum to the number of trials.
func (m *Matrices) Validate() error {
	for row := range Size {
		for col := range Size {
			if w, a := m.UnsuitedWins[row][col], m.UnsuitedAppearances[row][col]; w > a {
				return fmt.Errorf("unsuited [%d][%d]: wins %d exceed appearances %d", row, col, w, a)
			}
			if w, a := m.SuitedWins[row][col], m.SuitedAppearances[row][col]; w > a {
				return fmt.Errorf("suited [%d][%d]: wins %d exceed appearances %d", row, col, w, a)
			}
			if col > row && m.UnsuitedAppearances[row][col] != 0 {
				return fmt.Errorf("unsuited [%d][%d]: upper triangle populated", row, col)
			}
			if col >= row && m.SuitedAppearances[row][col] != 0 {
				return fmt.Errorf("suited [%d][%d]: pair or upper triangle populated", row, col)
			}
		}
	}

	var winTypes uint64
	for _, n := range m.WinTypes {
		winTypes += n
	}
	if winTypes != m.Trials {
		return fmt.Errorf("win types total %d does not match trials %d", winTypes, m.Trials)
	}
	return nil
}
