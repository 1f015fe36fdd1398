package outs

import "github.com/BadrinathKonidala/Poker-AI-Bot/poker"

// Report collects the outs estimates for one board and set of hole cards
type Report struct {
	Board    poker.Hand
	Hole     poker.HoleCards
	Unseen   int // cards not on the board or in the hole
	ToCome   int // board cards still to be dealt
	Royal    float64
	Quads    float64
	Category poker.Category // category of the board itself, set once it is complete
}

// BoardComplete reports whether all five board cards are known
func (r Report) BoardComplete() bool {
	return r.ToCome == 0
}

// Compute builds a Report for the board and hole cards
func Compute(board poker.Hand, hole poker.HoleCards) (Report, error) {
	d, err := newDraw(board, hole)
	if err != nil {
		return Report{}, err
	}

	royal, err := RoyalProbability(board, hole)
	if err != nil {
		return Report{}, err
	}
	quads, err := QuadsProbability(board, hole)
	if err != nil {
		return Report{}, err
	}

	r := Report{
		Board:  board,
		Hole:   hole,
		Unseen: d.unseen,
		ToCome: d.slots,
		Royal:  royal,
		Quads:  quads,
	}
	if r.BoardComplete() {
		if r.Category, err = poker.Classify(board); err != nil {
			return Report{}, err
		}
	}
	return r, nil
}
