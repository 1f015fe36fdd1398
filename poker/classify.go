package poker

import (
	"fmt"
	"slices"
)

// Classify returns the category of a five-card hand.
//
// Checks run in a fixed order: flushes first, then rank multiplicities, then
// straights. A suited run is therefore never reported as a plain straight.
func Classify(hand Hand) (Category, error) {
	if hand.Len() != HandSize {
		return 0, fmt.Errorf("%w: classify needs %d cards, got %d",
			ErrPreconditionViolation, HandSize, hand.Len())
	}

	sorted := slices.Clone(hand.ranks)
	slices.Sort(sorted)

	if isFlush(hand.suits) {
		switch {
		case isRoyal(sorted):
			return RoyalFlush, nil
		case isRun(sorted):
			return StraightFlush, nil
		default:
			return Flush, nil
		}
	}

	counts := rankCounts(hand.ranks)
	switch len(counts) {
	case 2:
		if n := counts[hand.ranks[0]]; n == 1 || n == 4 {
			return FourOfAKind, nil
		}
		return FullHouse, nil
	case 3:
		for _, n := range counts {
			if n == 2 {
				return TwoPair, nil
			}
		}
		return ThreeOfAKind, nil
	case 4:
		return Pair, nil
	}

	// Ace is rank 1, so A-2-3-4-5 is a plain run; only the ace-high
	// straight needs the royal ranks.
	if isRun(sorted) || isRoyal(sorted) {
		return Straight, nil
	}
	return HighCard, nil
}

// MustClassify is Classify that panics on error
func MustClassify(hand Hand) Category {
	c, err := Classify(hand)
	if err != nil {
		panic(err)
	}
	return c
}

func isFlush(suits []Suit) bool {
	for _, s := range suits[1:] {
		if s != suits[0] {
			return false
		}
	}
	return true
}

func rankCounts(ranks []Rank) map[Rank]int {
	counts := make(map[Rank]int, len(ranks))
	for _, r := range ranks {
		counts[r]++
	}
	return counts
}
