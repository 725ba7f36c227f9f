package simulator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/lox/holdemsim/internal/randutil"
	"github.com/lox/holdemsim/internal/statistics"
	"github.com/lox/holdemsim/poker"
)

const (
	MinPlayers = 2
	MaxPlayers = 10

	// CommunityCards is the number of board cards dealt each trial.
	CommunityCards = 5
)

var (
	// ErrInvalidConfig is returned by New for unusable configurations.
	ErrInvalidConfig = errors.New("invalid simulator config")
	// ErrAlreadyRunning is returned by Run while another run is in progress.
	ErrAlreadyRunning = errors.New("simulation already running")
)

// Config holds configuration for running simulations
type Config struct {
	Trials  int
	Players int
	// Workers defaults to the number of CPUs when zero.
	Workers int
	// Seed selects a reproducible run; zero picks a time-based seed.
	Seed int64
	// SampleEvery passes every Nth trial to Observer; zero disables sampling.
	SampleEvery int
	// ProgressInterval between progress reports; zero disables them.
	ProgressInterval time.Duration

	Logger     *log.Logger
	Clock      quartz.Clock
	Observer   Observer
	OnProgress func(Progress)
}

// TrialOutcome is a sampled trial as seen at showdown.
type TrialOutcome struct {
	Trial   int
	Total   int
	Table   poker.Table
	Players []poker.Player
	Winners []int
	Ranking poker.HandRanking
}

// Observer receives sampled trials. Calls are serialized.
type Observer func(TrialOutcome)

// Progress is a point-in-time view of a running simulation.
type Progress struct {
	Completed int
	Total     int
	Elapsed   time.Duration
	Rate      float64 // trials per second
}

// Result holds the merged statistics of a completed run.
type Result struct {
	RunID    string
	Seed     int64
	Trials   int
	Players  int
	Workers  int
	Elapsed  time.Duration
	Matrices *statistics.Matrices
}

// Simulator deals and scores showdown trials across a pool of workers. One
// run may be in progress at a time.
type Simulator struct {
	config    Config
	running   atomic.Bool
	completed atomic.Int64
	observeMu sync.Mutex
}

// New validates config, fills in defaults and returns a simulator.
func New(config Config) (*Simulator, error) {
	switch {
	case config.Trials < 1:
		return nil, fmt.Errorf("%w: trials must be at least 1, got %d", ErrInvalidConfig, config.Trials)
	case config.Players < MinPlayers || config.Players > MaxPlayers:
		return nil, fmt.Errorf("%w: players must be %d-%d, got %d", ErrInvalidConfig, MinPlayers, MaxPlayers, config.Players)
	case config.Workers < 0:
		return nil, fmt.Errorf("%w: workers must not be negative, got %d", ErrInvalidConfig, config.Workers)
	case config.SampleEvery < 0:
		return nil, fmt.Errorf("%w: sample_every must not be negative, got %d", ErrInvalidConfig, config.SampleEvery)
	case config.ProgressInterval < 0:
		return nil, fmt.Errorf("%w: progress interval must not be negative, got %s", ErrInvalidConfig, config.ProgressInterval)
	}

	if config.Workers == 0 {
		config.Workers = runtime.NumCPU()
	}
	if config.Logger == nil {
		config.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	return &Simulator{config: config}, nil
}

// Completed returns the number of trials finished by the current run.
func (s *Simulator) Completed() int {
	return int(s.completed.Load())
}

// Run executes all trials and returns the merged statistics. A cancelled
// context stops workers between trials and no partial result is returned.
// Calling Run while another run is in progress returns ErrAlreadyRunning.
func (s *Simulator) Run(ctx context.Context) (*Result, error) {
	if !s.running.CompareAndSwap(false, true) {
		return nil, ErrAlreadyRunning
	}
	defer s.running.Store(false)

	cfg := s.config
	runID := uuid.NewString()
	seed := randutil.Seed(cfg.Seed)
	logger := cfg.Logger.With("run_id", runID[:8])

	// Each worker needs at least one trial.
	workers := min(cfg.Workers, cfg.Trials)
	perWorker, remainder := cfg.Trials/workers, cfg.Trials%workers

	logger.Info("Starting simulation",
		"trials", cfg.Trials, "players", cfg.Players, "workers", workers, "seed", seed)

	s.completed.Store(0)
	start := cfg.Clock.Now()

	// The ticker exists before any worker starts so the first interval is never missed.
	progressCtx, stopProgress := context.WithCancel(ctx)
	defer stopProgress()
	var progress quartz.Waiter
	if cfg.ProgressInterval > 0 {
		progress = cfg.Clock.TickerFunc(progressCtx, cfg.ProgressInterval, func() error {
			s.reportProgress(logger, start)
			return nil
		}, "simulator", "progress")
	}

	partials := make([]*statistics.Matrices, workers)
	g, gctx := errgroup.WithContext(ctx)
	first := 0
	for w := range workers {
		count := perWorker
		if w < remainder {
			count++ // Distribute remainder trials
		}
		offset := first
		g.Go(func() error {
			m, err := s.runWorker(gctx, w, seed, offset, count)
			if err != nil {
				return fmt.Errorf("worker %d: %w", w, err)
			}
			partials[w] = m
			return nil
		})
		first += count
	}

	err := g.Wait()
	stopProgress()
	if progress != nil {
		if werr := progress.Wait(); werr != nil && !errors.Is(werr, context.Canceled) {
			logger.Debug("Progress ticker stopped", "error", werr)
		}
	}
	if err != nil {
		logger.Warn("Simulation stopped", "completed", s.Completed(), "error", err)
		return nil, err
	}

	total := statistics.New()
	for _, m := range partials {
		total.Merge(m)
	}
	if err := total.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	elapsed := cfg.Clock.Since(start)
	logger.Info("Simulation complete",
		"trials", total.Trials, "elapsed", elapsed.Round(time.Millisecond), "rate", rate(cfg.Trials, elapsed))

	return &Result{
		RunID:    runID,
		Seed:     seed,
		Trials:   cfg.Trials,
		Players:  cfg.Players,
		Workers:  workers,
		Elapsed:  elapsed,
		Matrices: total,
	}, nil
}

// runWorker plays count trials numbered from first with its own deck, players
// and matrices, so nothing is shared with other workers until the merge.
func (s *Simulator) runWorker(ctx context.Context, worker int, seed int64, first, count int) (*statistics.Matrices, error) {
	deck := poker.NewDeck(randutil.Worker(seed, worker))
	players := make([]poker.Player, s.config.Players)
	matrices := statistics.New()

	for i := range count {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		table, err := deal(deck, players)
		if err != nil {
			return nil, err
		}
		winners, err := poker.DetermineWinners(table, players)
		if err != nil {
			return nil, err
		}
		if err := matrices.Update(players, winners); err != nil {
			return nil, err
		}

		if trial := first + i; s.sampled(trial) {
			s.observe(trial, table, players, winners)
		}
		s.completed.Add(1)
	}
	return matrices, nil
}

// deal shuffles the deck, gives every player two hole cards and returns the
// board. The board aliases the deck until its next shuffle.
func deal(deck *poker.Deck, players []poker.Player) (poker.Table, error) {
	deck.Shuffle()
	for i := range players {
		hole, err := deck.Deal(2)
		if err != nil {
			return poker.Table{}, err
		}
		players[i] = poker.Player{Hole: [2]poker.Card{hole[0], hole[1]}}
	}
	board, err := deck.Deal(CommunityCards)
	if err != nil {
		return poker.Table{}, err
	}
	return poker.Table{Community: board}, nil
}

func (s *Simulator) sampled(trial int) bool {
	return s.config.Observer != nil && s.config.SampleEvery > 0 && trial%s.config.SampleEvery == 0
}

func (s *Simulator) observe(trial int, table poker.Table, players []poker.Player, winners []int) {
	outcome := TrialOutcome{
		Trial:   trial,
		Total:   s.config.Trials,
		Table:   poker.Table{Community: slices.Clone(table.Community)},
		Players: slices.Clone(players),
		Winners: slices.Clone(winners),
		Ranking: *players[winners[0]].Ranking,
	}
	s.observeMu.Lock()
	defer s.observeMu.Unlock()
	s.config.Observer(outcome)
}

func (s *Simulator) reportProgress(logger *log.Logger, start time.Time) {
	elapsed := s.config.Clock.Since(start)
	completed := s.Completed()
	p := Progress{
		Completed: completed,
		Total:     s.config.Trials,
		Elapsed:   elapsed,
		Rate:      rate(completed, elapsed),
	}
	logger.Info("Progress",
		"completed", p.Completed, "total", p.Total,
		"percent", fmt.Sprintf("%.1f%%", 100*float64(p.Completed)/float64(p.Total)),
		"rate", fmt.Sprintf("%.0f/s", p.Rate))
	if s.config.OnProgress != nil {
		s.config.OnProgress(p)
	}
}

func rate(trials int, elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}
	return float64(trials) / elapsed.Seconds()
}
