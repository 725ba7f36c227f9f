package poker

import (
	"fmt"
	"slices"
	"strings"
)

// Category enumerates hand classes from weakest (HighCard=1) to strongest (RoyalFlush=10).
type Category uint8

const (
	HighCard Category = iota + 1
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// NumCategories is the number of hand categories.
const NumCategories = 10

var categoryNames = [...]string{
	HighCard:      "High Card",
	OnePair:       "One Pair",
	TwoPair:       "Two Pair",
	ThreeOfAKind:  "Three of a Kind",
	Straight:      "Straight",
	Flush:         "Flush",
	FullHouse:     "Full House",
	FourOfAKind:   "Four of a Kind",
	StraightFlush: "Straight Flush",
	RoyalFlush:    "Royal Flush",
}

// categoryArity is the tiebreak length each category produces.
var categoryArity = [...]int{
	HighCard:      5,
	OnePair:       4,
	TwoPair:       3,
	ThreeOfAKind:  3,
	Straight:      1,
	Flush:         5,
	FullHouse:     2,
	FourOfAKind:   2,
	StraightFlush: 1,
	RoyalFlush:    1,
}

// Valid reports whether c is one of the ten categories.
func (c Category) Valid() bool {
	return c >= HighCard && c <= RoyalFlush
}

// String returns the category name, e.g. "Full House".
func (c Category) String() string {
	if !c.Valid() {
		return "Unknown"
	}
	return categoryNames[c]
}

// Arity returns the tiebreak length for the category, or 0 if invalid.
func (c Category) Arity() int {
	if !c.Valid() {
		return 0
	}
	return categoryArity[c]
}

// Categories returns all categories in ascending strength.
func Categories() []Category {
	out := make([]Category, 0, NumCategories)
	for c := HighCard; c <= RoyalFlush; c++ {
		out = append(out, c)
	}
	return out
}

// HandRanking is the evaluated strength of a card set: a category plus the
// ranks that break ties within it, most significant first.
type HandRanking struct {
	Category Category
	Tiebreak []Rank
}

// Compare orders a against b: 1 if a is stronger, -1 if weaker, 0 if tied.
// Categories are compared first, then tiebreak ranks left to right.
func Compare(a, b HandRanking) int {
	switch {
	case a.Category > b.Category:
		return 1
	case a.Category < b.Category:
		return -1
	}
	// Equal categories produce equal-length tiebreaks; a length difference
	// only decides once the common prefix ties.
	return slices.Compare(a.Tiebreak, b.Tiebreak)
}

// Beats reports whether h is strictly stronger than other.
func (h HandRanking) Beats(other HandRanking) bool {
	return Compare(h, other) > 0
}

// Equal reports whether h and other are exactly tied.
func (h HandRanking) Equal(other HandRanking) bool {
	return Compare(h, other) == 0
}

// String renders the ranking as "Full House [7 2]".
func (h HandRanking) String() string {
	parts := make([]string, len(h.Tiebreak))
	for i, r := range h.Tiebreak {
		parts[i] = fmt.Sprint(uint8(r))
	}
	return fmt.Sprintf("%s [%s]", h.Category, strings.Join(parts, " "))
}
