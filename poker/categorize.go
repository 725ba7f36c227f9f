package poker

// StartingHand is the shape of two hole cards: the higher and lower rank and
// whether both share a suit. Pairs are never suited.
type StartingHand struct {
	High   Rank
	Low    Rank
	Suited bool
}

// NumStartingHands is the number of distinct starting-hand shapes (13 pairs,
// 78 suited, 78 offsuit).
const NumStartingHands = 169

// StartingHandOf classifies two hole cards.
func StartingHandOf(a, b Card) StartingHand {
	high, low := a.Rank, b.Rank
	if low > high {
		high, low = low, high
	}
	return StartingHand{High: high, Low: low, Suited: a.Suit == b.Suit}
}

// Pair reports whether both cards share a rank.
func (h StartingHand) Pair() bool {
	return h.High == h.Low
}

// Index returns the (row, column) matrix cell for the hand: (High-2, Low-2).
func (h StartingHand) Index() (int, int) {
	return int(h.High - Two), int(h.Low - Two)
}

// Key returns the conventional notation: "AA", "AKs", "T9o".
func (h StartingHand) Key() string {
	key := h.High.String() + h.Low.String()
	switch {
	case h.Pair():
		return key
	case h.Suited:
		return key + "s"
	default:
		return key + "o"
	}
}

// String returns Key.
func (h StartingHand) String() string {
	return h.Key()
}

// AllStartingHands lists all 169 shapes, pairs first, then by descending high
// and low rank with suited before offsuit.
func AllStartingHands() []StartingHand {
	hands := make([]StartingHand, 0, NumStartingHands)
	for r := Ace; r >= Two; r-- {
		hands = append(hands, StartingHand{High: r, Low: r})
	}
	for high := Ace; high > Two; high-- {
		for low := high - 1; low >= Two; low-- {
			hands = append(hands,
				StartingHand{High: high, Low: low, Suited: true},
				StartingHand{High: high, Low: low})
		}
	}
	return hands
}

// Tier is a coarse preflop strength bucket.
type Tier string

const (
	TierPremium Tier = "Premium"
	TierStrong  Tier = "Strong"
	TierMedium  Tier = "Medium"
	TierWeak    Tier = "Weak"
	TierTrash   Tier = "Trash"
)

// Tiers lists the tiers from strongest to weakest.
func Tiers() []Tier {
	return []Tier{TierPremium, TierStrong, TierMedium, TierWeak, TierTrash}
}

// Tier buckets the hand.
// Premium: JJ+, AK. Strong: TT, AQ, AJ. Medium: 77-99, suited broadway.
// Weak: 22-66, suited connectors and one-gappers. Trash: everything else.
func (h StartingHand) Tier() Tier {
	switch {
	case h.Pair() && h.High >= Jack:
		return TierPremium
	case h.High == Ace && h.Low == King:
		return TierPremium
	case h.Pair() && h.High == Ten:
		return TierStrong
	case h.High == Ace && (h.Low == Queen || h.Low == Jack):
		return TierStrong
	case h.Pair() && h.High >= Seven:
		return TierMedium
	case h.Suited && h.Low >= Ten:
		return TierMedium
	case h.Pair():
		return TierWeak
	case h.Suited && h.High-h.Low <= 2:
		return TierWeak
	default:
		return TierTrash
	}
}
