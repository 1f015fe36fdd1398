// Package describe names and scores complete hands using
// github.com/paulhankin/poker.
package describe

import (
	"fmt"

	ph "github.com/paulhankin/poker"

	"github.com/BadrinathKonidala/Poker-AI-Bot/poker"
)

// Describe returns a readable description of a five-card hand, e.g. the
// pair and kickers that make it up.
func Describe(hand poker.Hand) (string, error) {
	cards, err := convert(hand)
	if err != nil {
		return "", err
	}
	return ph.Describe(cards[:])
}

// Score returns the strength of a five-card hand. Larger scores are
// stronger hands.
func Score(hand poker.Hand) (int16, error) {
	cards, err := convert(hand)
	if err != nil {
		return 0, err
	}
	return ph.Eval5(&cards), nil
}

func convert(hand poker.Hand) ([5]ph.Card, error) {
	var out [5]ph.Card
	if hand.Len() != poker.HandSize {
		return out, fmt.Errorf("%w: need %d cards, got %d",
			poker.ErrPreconditionViolation, poker.HandSize, hand.Len())
	}
	for i, c := range hand.Cards() {
		// Both sides number ranks with Ace as 1.
		pc, err := ph.MakeCard(toSuit(c.Suit), ph.Rank(c.Rank))
		if err != nil {
			return out, fmt.Errorf("card %s: %w", c, err)
		}
		out[i] = pc
	}
	return out, nil
}

func toSuit(s poker.Suit) ph.Suit {
	switch s {
	case poker.Hearts:
		return ph.Heart
	case poker.Diamonds:
		return ph.Diamond
	case poker.Spades:
		return ph.Spade
	default:
		return ph.Club
	}
}
