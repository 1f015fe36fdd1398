package outs

import (
	"context"
	"io"
	"runtime"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/BadrinathKonidala/Poker-AI-Bot/poker"
)

// royalMask holds the A, T, J, Q and K bits of a suit mask
const royalMask = 1<<(poker.Ace-1) | 1<<(poker.Ten-1) | 1<<(poker.Jack-1) |
	1<<(poker.Queen-1) | 1<<(poker.King-1)

// Tally counts board completions by the hands they make
type Tally struct {
	Total uint64
	Royal uint64
	Quads uint64
}

// RoyalProbability returns the share of completions holding a royal flush
func (t Tally) RoyalProbability() float64 {
	if t.Total == 0 {
		return 0
	}
	return float64(t.Royal) / float64(t.Total)
}

// QuadsProbability returns the share of completions holding four of a kind
func (t Tally) QuadsProbability() float64 {
	if t.Total == 0 {
		return 0
	}
	return float64(t.Quads) / float64(t.Total)
}

func (t *Tally) merge(o Tally) {
	t.Total += o.Total
	t.Royal += o.Royal
	t.Quads += o.Quads
}

func (t *Tally) record(cards poker.CardSet) {
	t.Total++

	var masks [poker.NumSuits]uint16
	for i, suit := range poker.AllSuits() {
		masks[i] = cards.SuitMask(suit)
		if masks[i]&royalMask == royalMask {
			t.Royal++
		}
	}
	if masks[0]&masks[1]&masks[2]&masks[3] != 0 {
		t.Quads++
	}
}

// Enumerator counts outs by visiting every possible completion of the board.
// It is slower than the closed forms but makes no counting assumptions.
type Enumerator struct {
	workers int
	logger  *log.Logger
}

// Option configures an Enumerator
type Option func(*Enumerator)

// WithWorkers bounds the number of goroutines walking completions
func WithWorkers(n int) Option {
	return func(e *Enumerator) {
		if n > 0 {
			e.workers = n
		}
	}
}

// WithLogger sets the logger used for progress messages
func WithLogger(logger *log.Logger) Option {
	return func(e *Enumerator) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEnumerator creates an Enumerator
func NewEnumerator(opts ...Option) *Enumerator {
	e := &Enumerator{
		workers: runtime.GOMAXPROCS(0),
		logger:  log.NewWithOptions(io.Discard, log.Options{}),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Enumerate tallies every completion of the board from the unseen cards.
// Work is split by the first card drawn, so each worker owns its own tally.
func (e *Enumerator) Enumerate(ctx context.Context, board poker.Hand, hole poker.HoleCards) (Tally, error) {
	d, err := newDraw(board, hole)
	if err != nil {
		return Tally{}, err
	}

	unseen := poker.NewDeck().Without(d.used)
	e.logger.Debug("Enumerating board completions",
		"board", board.String(),
		"hole", hole.String(),
		"unseen", len(unseen),
		"toCome", d.slots,
		"workers", e.workers)

	if d.slots == 0 {
		var t Tally
		t.record(d.used)
		return t, nil
	}

	// Branch i draws unseen[i] as its lowest card.
	branches := len(unseen) - d.slots + 1
	tallies := make([]Tally, branches)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for i := 0; i < branches; i++ {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			walk(unseen, i+1, d.slots-1, d.used.With(unseen[i]), &tallies[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Tally{}, err
	}

	var total Tally
	for _, t := range tallies {
		total.merge(t)
	}

	e.logger.Debug("Enumeration complete",
		"total", total.Total,
		"royal", total.Royal,
		"quads", total.Quads)
	return total, nil
}

// walk records every way of adding need more cards from unseen[start:]
func walk(unseen []poker.Card, start, need int, cards poker.CardSet, t *Tally) {
	if need == 0 {
		t.record(cards)
		return
	}
	for i := start; i <= len(unseen)-need; i++ {
		walk(unseen, i+1, need-1, cards.With(unseen[i]), t)
	}
}
