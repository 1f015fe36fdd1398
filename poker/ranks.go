package poker

import "slices"

const (
	// HandSize is the number of cards in a complete hand or board
	HandSize = 5

	// HoleSize is the number of private cards dealt to a player
	HoleSize = 2

	// DeckSize is the number of cards in a standard deck
	DeckSize = NumSuits * NumRanks

	// QuadsSize is the number of cards of one rank
	QuadsSize = NumSuits
)

// RoyalRanks are the ranks of a royal flush in ascending order. The same
// ranks form the ace-high straight, which is the only straight that is not
// a run of consecutive rank values because Ace is 1.
var RoyalRanks = [HandSize]Rank{Ace, Ten, Jack, Queen, King}

// IsRoyalRank reports whether r is Ten, Jack, Queen, King or Ace.
func IsRoyalRank(r Rank) bool {
	return slices.Contains(RoyalRanks[:], r)
}

// AllSuits returns the suits in ascending order
func AllSuits() []Suit {
	return []Suit{Hearts, Diamonds, Spades, Clubs}
}

// isRoyal reports whether sorted matches RoyalRanks
func isRoyal(sorted []Rank) bool {
	return slices.Equal(sorted, RoyalRanks[:])
}

// isRun reports whether sorted ranks are consecutive with no repeats
func isRun(sorted []Rank) bool {
	for i := 1; i < len(sorted); i++ {
		if sorted[i] != sorted[i-1]+1 {
			return false
		}
	}
	return len(sorted) > 0
}
