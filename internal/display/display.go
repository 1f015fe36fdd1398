// Package display renders classifications and outs reports for the terminal.
package display

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/BadrinathKonidala/Poker-AI-Bot/outs"
	"github.com/BadrinathKonidala/Poker-AI-Bot/poker"
)

// Options controls rendering
type Options struct {
	Precision int  // decimal places for percentages
	Plain     bool // disable colour and suit symbols
}

// Printer writes styled output to a writer
type Printer struct {
	out  io.Writer
	opts Options

	header   lipgloss.Style
	cards    lipgloss.Style
	category lipgloss.Style
	percent  lipgloss.Style
	muted    lipgloss.Style
}

// NewPrinter creates a Printer writing to out
func NewPrinter(out io.Writer, opts Options) *Printer {
	r := lipgloss.NewRenderer(out)
	if opts.Plain {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Printer{
		out:      out,
		opts:     opts,
		header:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
		cards:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		category: r.NewStyle().Foreground(lipgloss.Color("12")),
		percent:  r.NewStyle().Foreground(lipgloss.Color("10")),
		muted:    r.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// Classification prints a hand with its category code, name and description
func (p *Printer) Classification(hand poker.Hand, category poker.Category, description string) {
	w := tabwriter.NewWriter(p.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\n", p.header.Render("hand"), p.cards.Render(p.formatCards(hand.Cards())))
	fmt.Fprintf(w, "%s\t%s\n", p.header.Render("category"),
		p.category.Render(fmt.Sprintf("%d %s", category, category)))
	if description != "" {
		fmt.Fprintf(w, "%s\t%s\n", p.header.Render("detail"), description)
	}
	w.Flush()
}

// Report prints an outs report. exact may be nil when no enumeration ran.
func (p *Printer) Report(r outs.Report, exact *outs.Tally, elapsed time.Duration) {
	if r.Board.Len() > 0 {
		fmt.Fprintf(p.out, "%s\n", p.header.Render("board"))
		fmt.Fprintf(p.out, "%s\n\n", p.cards.Render(p.formatCards(r.Board.Cards())))
	}
	fmt.Fprintf(p.out, "%s\n", p.header.Render("hole"))
	fmt.Fprintf(p.out, "%s\n\n", p.cards.Render(p.formatCards(r.Hole.Cards())))

	w := tabwriter.NewWriter(p.out, 0, 0, 2, ' ', 0)
	if exact != nil {
		fmt.Fprintf(w, "%s\t%s\t%s\n", p.header.Render("outs"), p.header.Render("closed"), p.header.Render("exact"))
		fmt.Fprintf(w, "%s\t%s\t%s\n", p.category.Render(poker.RoyalFlush.String()),
			p.formatPercent(r.Royal), p.formatPercent(exact.RoyalProbability()))
		fmt.Fprintf(w, "%s\t%s\t%s\n", p.category.Render(poker.FourOfAKind.String()),
			p.formatPercent(r.Quads), p.formatPercent(exact.QuadsProbability()))
	} else {
		fmt.Fprintf(w, "%s\t%s\n", p.header.Render("outs"), p.header.Render("probability"))
		fmt.Fprintf(w, "%s\t%s\n", p.category.Render(poker.RoyalFlush.String()), p.formatPercent(r.Royal))
		fmt.Fprintf(w, "%s\t%s\n", p.category.Render(poker.FourOfAKind.String()), p.formatPercent(r.Quads))
	}
	w.Flush()

	if r.BoardComplete() {
		fmt.Fprintf(p.out, "\n%s %s\n", p.header.Render("board makes"), p.category.Render(r.Category.String()))
	}

	fmt.Fprintf(p.out, "\n%s\n", p.muted.Render(fmt.Sprintf("%d to come from %d unseen cards in %v",
		r.ToCome, r.Unseen, elapsed.Truncate(time.Microsecond))))
}

func (p *Printer) formatCards(cards []poker.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		if p.opts.Plain {
			parts[i] = c.String()
		} else {
			parts[i] = c.Pretty()
		}
	}
	return strings.Join(parts, " ")
}

func (p *Printer) formatPercent(v float64) string {
	if v == 0 {
		return p.muted.Render(".")
	}
	return p.percent.Render(fmt.Sprintf("%.*f%%", p.opts.Precision, v*100))
}
