package main

import (
	"fmt"
	"strings"

	"github.com/BadrinathKonidala/Poker-AI-Bot/internal/describe"
	"github.com/BadrinathKonidala/Poker-AI-Bot/outs"
	"github.com/BadrinathKonidala/Poker-AI-Bot/poker"
)

// ClassifyCmd classifies a complete hand
type ClassifyCmd struct {
	Cards []string `arg:"" help:"Five cards, e.g. 'Ah Th Jh Qh Kh' or 'AhThJhQhKh'"`
}

func (cmd ClassifyCmd) Run(a *app) error {
	hand, err := poker.ParseHand(strings.Join(cmd.Cards, " "))
	if err != nil {
		return fmt.Errorf("parsing hand: %w", err)
	}

	category, err := poker.Classify(hand)
	if err != nil {
		return err
	}

	description, err := describe.Describe(hand)
	if err != nil {
		a.logger.Warn("Could not describe hand", "hand", hand.String(), "error", err)
	}

	a.logger.Debug("Classified hand", "hand", hand.String(), "category", int(category))
	a.printer.Classification(hand, category, description)
	return nil
}

// OutsCmd reports royal flush and quads probabilities for a board
type OutsCmd struct {
	Hole    string `short:"H" required:"" help:"Hole cards, e.g. 'ThJh'"`
	Board   string `short:"b" help:"Board cards dealt so far, e.g. '2c7d9s'"`
	Exact   bool   `short:"x" help:"Also count every board completion"`
	Workers int    `short:"w" help:"Goroutines for --exact (overrides config)"`
}

func (cmd OutsCmd) Run(a *app) error {
	hole, err := poker.ParseHoleCards(cmd.Hole)
	if err != nil {
		return fmt.Errorf("parsing hole cards: %w", err)
	}
	board, err := poker.ParseHand(cmd.Board)
	if err != nil {
		return fmt.Errorf("parsing board: %w", err)
	}

	start := a.clock.Now()
	report, err := outs.Compute(board, hole)
	if err != nil {
		return err
	}

	var exact *outs.Tally
	if cmd.Exact || a.cfg.Enumerate.Always {
		workers := a.cfg.Enumerate.Workers
		if cmd.Workers > 0 {
			workers = cmd.Workers
		}
		ctx, stop := setupSignalHandler(a.logger)
		defer stop()

		enumerator := outs.NewEnumerator(outs.WithWorkers(workers), outs.WithLogger(a.logger))
		tally, err := enumerator.Enumerate(ctx, board, hole)
		if err != nil {
			return fmt.Errorf("enumerating boards: %w", err)
		}
		exact = &tally
	}
	elapsed := a.clock.Since(start)

	a.logger.Debug("Computed outs",
		"board", board.String(),
		"hole", hole.String(),
		"royal", report.Royal,
		"quads", report.Quads,
		"elapsed", elapsed)
	a.printer.Report(report, exact, elapsed)
	return nil
}
