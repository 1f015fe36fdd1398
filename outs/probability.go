// Package outs computes the chance that the rest of the board completes a
// target hand for a player, given the board so far and the player's hole
// cards.
//
// Every estimate is hypergeometric: the cards still to come on the board are
// drawn uniformly from the cards neither on the board nor in the hole.
package outs

import (
	"errors"
	"fmt"

	"github.com/BadrinathKonidala/Poker-AI-Bot/poker"
)

var (
	// ErrInvalidBoard is returned when the board holds more than five cards
	ErrInvalidBoard = errors.New("invalid board")

	// ErrDuplicateCard is returned when a card appears twice among the board
	// and hole cards
	ErrDuplicateCard = errors.New("duplicate card")
)

// draw describes the cards still to come on the board
type draw struct {
	known    []poker.Card
	used     poker.CardSet
	boardLen int
	unseen   int // cards not on the board or in the hole
	slots    int // board cards still to be dealt
}

func newDraw(board poker.Hand, hole poker.HoleCards) (draw, error) {
	if board.Len() > poker.HandSize {
		return draw{}, fmt.Errorf("%w: board has %d cards, at most %d allowed",
			ErrInvalidBoard, board.Len(), poker.HandSize)
	}

	known := append(board.Cards(), hole.Cards()...)
	used := poker.NewCardSet(known...)
	if used.Len() != len(known) {
		return draw{}, fmt.Errorf("%w: %s / %s", ErrDuplicateCard, board, hole)
	}

	return draw{
		known:    known,
		used:     used,
		boardLen: board.Len(),
		unseen:   poker.DeckSize - len(known),
		slots:    poker.HandSize - board.Len(),
	}, nil
}

// ways counts the completions of the board that contain a specific set of
// need unseen cards.
func (d draw) ways(need int) int64 {
	return Binomial(d.unseen-need, d.slots-need)
}

// total counts every completion of the board
func (d draw) total() int64 {
	return Binomial(d.unseen, d.slots)
}

// RoyalProbability returns the chance that the completed board and the hole
// cards together hold a royal flush.
//
// For each suit the missing royal cards must all land in the remaining board
// slots. Suits exclude one another since seven cards cannot hold two royals,
// so the per-suit counts add up exactly.
func RoyalProbability(board poker.Hand, hole poker.HoleCards) (float64, error) {
	d, err := newDraw(board, hole)
	if err != nil {
		return 0, err
	}

	var royals [poker.NumSuits + 1]int
	for _, c := range d.known {
		if poker.IsRoyalRank(c.Rank) {
			royals[c.Suit]++
		}
	}

	var favourable int64
	for _, suit := range poker.AllSuits() {
		// Fewer royals than board cards leaves more missing royals than slots.
		if royals[suit] < d.boardLen {
			continue
		}
		favourable += d.ways(poker.HandSize - royals[suit])
	}
	return float64(favourable) / float64(d.total()), nil
}

// QuadsProbability returns the chance that the completed board and the hole
// cards together hold four cards of one rank.
//
// Seven cards cannot hold two sets of quads, so the per-rank counts add up
// exactly.
func QuadsProbability(board poker.Hand, hole poker.HoleCards) (float64, error) {
	d, err := newDraw(board, hole)
	if err != nil {
		return 0, err
	}

	var counts [poker.NumRanks + 1]int
	for _, c := range d.known {
		counts[c.Rank]++
	}

	var favourable int64
	for rank := poker.Ace; rank <= poker.King; rank++ {
		need := poker.QuadsSize - counts[rank]
		if need > d.slots {
			continue
		}
		favourable += d.ways(need)
	}
	return float64(favourable) / float64(d.total()), nil
}
