package poker

import "errors"

var (
	// ErrInvalidInput is returned for card sets outside 5-7 cards, duplicate or
	// out-of-range cards, and unparsable card notation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnevaluatedPlayer is returned when winners are resolved before every
	// player holds a hand ranking.
	ErrUnevaluatedPlayer = errors.New("unevaluated player")

	// ErrNoPlayers is returned when resolving an empty player list.
	ErrNoPlayers = errors.New("no players")
)
