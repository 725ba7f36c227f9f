package poker

import (
	"fmt"
	"strings"
)

// Rank is a card rank from Two (2) to Ace (14).
type Rank uint8

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Valid reports whether r is within Two..Ace.
func (r Rank) Valid() bool {
	return r >= Two && r <= Ace
}

// String returns the single character used in card notation ("T" for ten).
func (r Rank) String() string {
	switch r {
	case Ten:
		return "T"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		if r >= Two && r <= Nine {
			return string('0' + byte(r))
		}
		return "?"
	}
}

var rankNames = [...]string{
	Two: "2", Three: "3", Four: "4", Five: "5", Six: "6", Seven: "7", Eight: "8",
	Nine: "9", Ten: "10", Jack: "Jack", Queen: "Queen", King: "King", Ace: "Ace",
}

var rankPlurals = [...]string{
	Two: "Twos", Three: "Threes", Four: "Fours", Five: "Fives", Six: "Sixes",
	Seven: "Sevens", Eight: "Eights", Nine: "Nines", Ten: "Tens", Jack: "Jacks",
	Queen: "Queens", King: "Kings", Ace: "Aces",
}

// Name returns the display name: numerals for 2-10, words for face cards and aces.
func (r Rank) Name() string {
	if !r.Valid() {
		return "?"
	}
	return rankNames[r]
}

// Plural returns the plural display name ("Kings", "Fours").
func (r Rank) Plural() string {
	if !r.Valid() {
		return "?"
	}
	return rankPlurals[r]
}

// Suit is one of the four card suits.
type Suit uint8

const (
	Hearts Suit = iota
	Diamonds
	Clubs
	Spades
)

// NumSuits is the number of suits in a standard deck.
const NumSuits = 4

// Valid reports whether s is one of the four suits.
func (s Suit) Valid() bool {
	return s < NumSuits
}

// String returns the lower-case suit letter used in card notation.
func (s Suit) String() string {
	switch s {
	case Hearts:
		return "h"
	case Diamonds:
		return "d"
	case Clubs:
		return "c"
	case Spades:
		return "s"
	default:
		return "?"
	}
}

// Symbol returns the unicode suit symbol.
func (s Suit) Symbol() string {
	switch s {
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// Card is an immutable (rank, suit) pair.
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard returns the card with the given rank and suit.
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// Valid reports whether both rank and suit are in range.
func (c Card) Valid() bool {
	return c.Rank.Valid() && c.Suit.Valid()
}

// String returns the two character notation, e.g. "Ah" or "Td".
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// index maps a valid card onto 0..51.
func (c Card) index() int {
	return int(c.Suit)*13 + int(c.Rank-Two)
}

// ParseCard parses notation such as "As", "td" or "10h".
func ParseCard(s string) (Card, error) {
	if len(s) < 2 || len(s) > 3 {
		return Card{}, fmt.Errorf("%w: card %q", ErrInvalidInput, s)
	}

	rankText := strings.ToUpper(s[:len(s)-1])
	var rank Rank
	switch rankText {
	case "A":
		rank = Ace
	case "K":
		rank = King
	case "Q":
		rank = Queen
	case "J":
		rank = Jack
	case "T", "10":
		rank = Ten
	default:
		if len(rankText) != 1 || rankText[0] < '2' || rankText[0] > '9' {
			return Card{}, fmt.Errorf("%w: rank in %q", ErrInvalidInput, s)
		}
		rank = Rank(rankText[0] - '0')
	}

	var suit Suit
	switch s[len(s)-1] {
	case 'h', 'H':
		suit = Hearts
	case 'd', 'D':
		suit = Diamonds
	case 'c', 'C':
		suit = Clubs
	case 's', 'S':
		suit = Spades
	default:
		return Card{}, fmt.Errorf("%w: suit in %q", ErrInvalidInput, s)
	}

	return NewCard(rank, suit), nil
}

// ParseCards parses a run of cards such as "AhKd" or "Ah Kd 10s".
func ParseCards(s string) ([]Card, error) {
	var cards []Card
	for _, field := range strings.Fields(s) {
		for len(field) > 0 {
			n := 2
			if strings.HasPrefix(field, "10") {
				n = 3
			}
			if len(field) < n {
				return nil, fmt.Errorf("%w: trailing %q", ErrInvalidInput, field)
			}
			card, err := ParseCard(field[:n])
			if err != nil {
				return nil, err
			}
			cards = append(cards, card)
			field = field[n:]
		}
	}
	return cards, nil
}

// MustParseCards is ParseCards for literals in tests and examples.
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(err)
	}
	return cards
}

// FormatCards joins card notation with single spaces.
func FormatCards(cards []Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
