package poker

import (
	"fmt"
	"math/bits"
)

const (
	// MinEvalCards and MaxEvalCards bound the size of an evaluated card set.
	MinEvalCards = 5
	MaxEvalCards = 7
)

// Rank masks use bit r for rank r, so bits 2..14 are meaningful.
const (
	wheelMask uint16 = 1<<Ace | 1<<Two | 1<<Three | 1<<Four | 1<<Five
	royalMask uint16 = 1<<Ten | 1<<Jack | 1<<Queen | 1<<King | 1<<Ace
)

// Evaluate classifies the best five-card hand contained in cards, which must
// hold 5 to 7 distinct valid cards (typically community plus hole cards).
func Evaluate(cards []Card) (HandRanking, error) {
	if len(cards) < MinEvalCards || len(cards) > MaxEvalCards {
		return HandRanking{}, fmt.Errorf("%w: %d cards, want %d-%d",
			ErrInvalidInput, len(cards), MinEvalCards, MaxEvalCards)
	}

	var (
		seen      uint64
		counts    [Ace + 1]uint8
		suitMasks [NumSuits]uint16
	)
	for _, c := range cards {
		if !c.Valid() {
			return HandRanking{}, fmt.Errorf("%w: card %s (rank %d, suit %d)",
				ErrInvalidInput, c, c.Rank, c.Suit)
		}
		bit := uint64(1) << c.index()
		if seen&bit != 0 {
			return HandRanking{}, fmt.Errorf("%w: duplicate card %s", ErrInvalidInput, c)
		}
		seen |= bit
		counts[c.Rank]++
		suitMasks[c.Suit] |= 1 << c.Rank
	}

	return rankFromCounts(&counts, &suitMasks), nil
}

// EvaluateHand evaluates two hole cards together with the community cards.
func EvaluateHand(hole [2]Card, community []Card) (HandRanking, error) {
	var buf [MaxEvalCards]Card
	if len(community) > MaxEvalCards-2 {
		return HandRanking{}, fmt.Errorf("%w: %d community cards", ErrInvalidInput, len(community))
	}
	cards := append(buf[:0], hole[0], hole[1])
	cards = append(cards, community...)
	return Evaluate(cards)
}

func rankFromCounts(counts *[Ace + 1]uint8, suitMasks *[NumSuits]uint16) HandRanking {
	var rankMask, quadsMask, tripsMask, pairsMask uint16
	for r := Two; r <= Ace; r++ {
		bit := uint16(1) << r
		switch counts[r] {
		case 0:
			continue
		case 2:
			pairsMask |= bit
		case 3:
			tripsMask |= bit
		case 4:
			quadsMask |= bit
		}
		rankMask |= bit
	}

	// At most one suit can hold five of seven cards.
	var flushMask uint16
	for _, m := range suitMasks {
		if bits.OnesCount16(m) >= 5 {
			flushMask = m
			break
		}
	}
	straight := straightHigh(rankMask)

	tiebreak := make([]Rank, 0, 5)

	if flushMask != 0 && straight != 0 {
		// A straight across suits does not imply one inside the flush suit.
		if flushMask&royalMask == royalMask {
			return HandRanking{Category: RoyalFlush, Tiebreak: append(tiebreak, Ace)}
		}
		if high := straightHigh(flushMask); high != 0 {
			return HandRanking{Category: StraightFlush, Tiebreak: append(tiebreak, high)}
		}
	}

	if quadsMask != 0 {
		quad := highestRank(quadsMask)
		kicker := highestRank(rankMask &^ rankBit(quad))
		return HandRanking{Category: FourOfAKind, Tiebreak: append(tiebreak, quad, kicker)}
	}

	if tripsMask != 0 {
		trip := highestRank(tripsMask)
		// A second set of trips also fills the pair slot.
		if pairCandidates := (tripsMask | pairsMask) &^ rankBit(trip); pairCandidates != 0 {
			return HandRanking{Category: FullHouse, Tiebreak: append(tiebreak, trip, highestRank(pairCandidates))}
		}
	}

	if flushMask != 0 {
		return HandRanking{Category: Flush, Tiebreak: appendTopRanks(tiebreak, flushMask, 5)}
	}

	if straight != 0 {
		return HandRanking{Category: Straight, Tiebreak: append(tiebreak, straight)}
	}

	if tripsMask != 0 {
		trip := highestRank(tripsMask)
		tiebreak = append(tiebreak, trip)
		return HandRanking{Category: ThreeOfAKind, Tiebreak: appendTopRanks(tiebreak, rankMask&^rankBit(trip), 2)}
	}

	if pairsMask != 0 {
		high := highestRank(pairsMask)
		if rest := pairsMask &^ rankBit(high); rest != 0 {
			low := highestRank(rest)
			// With three pairs the third pair's rank is the best kicker.
			kicker := highestRank(rankMask &^ rankBit(high) &^ rankBit(low))
			return HandRanking{Category: TwoPair, Tiebreak: append(tiebreak, high, low, kicker)}
		}
		tiebreak = append(tiebreak, high)
		return HandRanking{Category: OnePair, Tiebreak: appendTopRanks(tiebreak, rankMask&^rankBit(high), 3)}
	}

	return HandRanking{Category: HighCard, Tiebreak: appendTopRanks(tiebreak, rankMask, 5)}
}

// straightHigh returns the high card of the best straight in mask, Five for
// the wheel, or 0 when there is none.
func straightHigh(mask uint16) Rank {
	// Bit p survives only if ranks p..p+4 are all present.
	seq := mask & (mask >> 1) & (mask >> 2) & (mask >> 3) & (mask >> 4)
	if seq != 0 {
		return highestRank(seq) + 4
	}
	if mask&wheelMask == wheelMask {
		return Five
	}
	return 0
}

func rankBit(r Rank) uint16 {
	return 1 << r
}

// highestRank returns the highest rank in a non-empty mask.
func highestRank(mask uint16) Rank {
	return Rank(bits.Len16(mask) - 1)
}

// appendTopRanks appends up to n ranks from mask in descending order.
func appendTopRanks(dst []Rank, mask uint16, n int) []Rank {
	for ; n > 0 && mask != 0; n-- {
		top := highestRank(mask)
		dst = append(dst, top)
		mask &^= rankBit(top)
	}
	return dst
}
