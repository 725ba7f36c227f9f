package report

import (
	"fmt"
	"io"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lox/holdemsim/internal/fileutil"
	"github.com/lox/holdemsim/internal/simulator"
	"github.com/lox/holdemsim/poker"
)

// Summary is the complete report of a run, as rendered and exported.
type Summary struct {
	RunID     string    `toml:"run_id"`
	Seed      int64     `toml:"seed"`
	Trials    uint64    `toml:"trials"`
	Players   int       `toml:"players"`
	Workers   int       `toml:"workers"`
	Elapsed   string    `toml:"elapsed"`
	Generated time.Time `toml:"generated"`

	WinTypes      []WinTypeRow      `toml:"win_type"`
	Tiers         []TierRow         `toml:"tier"`
	StartingHands []StartingHandRow `toml:"starting_hand"`
}

// NewSummary builds the report for a finished run.
func NewSummary(result *simulator.Result, generated time.Time) (Summary, error) {
	hands, err := RankStartingHands(result.Matrices)
	if err != nil {
		return Summary{}, fmt.Errorf("rank starting hands: %w", err)
	}
	return Summary{
		RunID:         result.RunID,
		Seed:          result.Seed,
		Trials:        result.Matrices.Trials,
		Players:       result.Players,
		Workers:       result.Workers,
		Elapsed:       result.Elapsed.Round(time.Millisecond).String(),
		Generated:     generated.UTC().Truncate(time.Second),
		WinTypes:      WinTypes(result.Matrices),
		Tiers:         Tiers(result.Matrices),
		StartingHands: hands,
	}, nil
}

// Export writes the summary to path as TOML. The file is replaced atomically.
func Export(path string, s Summary) error {
	err := fileutil.WriteAtomic(path, 0o644, func(w io.Writer) error {
		return toml.NewEncoder(w).Encode(s)
	})
	if err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}
	return nil
}

// LoadSummary reads a summary written by Export.
func LoadSummary(path string) (Summary, error) {
	var s Summary
	if _, err := toml.DecodeFile(path, &s); err != nil {
		return Summary{}, fmt.Errorf("load %s: %w", path, err)
	}
	for i := range s.WinTypes {
		s.WinTypes[i].Category = categoryByName(s.WinTypes[i].Name)
	}
	return s, nil
}

func categoryByName(name string) poker.Category {
	for _, c := range poker.Categories() {
		if c.String() == name {
			return c
		}
	}
	return 0
}
