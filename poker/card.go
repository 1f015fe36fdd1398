package poker

import (
	"fmt"
	"strings"
)

// Suit represents a card suit (1-4)
type Suit uint8

const (
	Hearts Suit = iota + 1
	Diamonds
	Spades
	Clubs
)

// NumSuits is the number of suits in a standard deck
const NumSuits = 4

// String returns the short notation for a suit
func (s Suit) String() string {
	switch s {
	case Hearts:
		return "h"
	case Diamonds:
		return "d"
	case Spades:
		return "s"
	case Clubs:
		return "c"
	default:
		return "?"
	}
}

// Symbol returns the unicode symbol for a suit
func (s Suit) Symbol() string {
	switch s {
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Spades:
		return "♠"
	case Clubs:
		return "♣"
	default:
		return "?"
	}
}

// Valid reports whether s is one of the four suits
func (s Suit) Valid() bool {
	return s >= Hearts && s <= Clubs
}

// Rank represents a card rank. Ace is 1 and King is 13.
type Rank uint8

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// NumRanks is the number of ranks in a suit
const NumRanks = 13

// String returns the short notation for a rank
func (r Rank) String() string {
	switch r {
	case Ace:
		return "A"
	case Ten:
		return "T"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	}
	if r >= Two && r <= Nine {
		return string(rune('0' + r))
	}
	return "?"
}

// Valid reports whether r is between Ace and King
func (r Rank) Valid() bool {
	return r >= Ace && r <= King
}

// Card is a single playing card. Cards compare equal when suit and rank match.
type Card struct {
	Suit Suit
	Rank Rank
}

// NewCard creates a card, rejecting suits outside 1-4 and ranks outside 1-13.
func NewCard(suit Suit, rank Rank) (Card, error) {
	if !suit.Valid() || !rank.Valid() {
		return Card{}, fmt.Errorf("%w: suit %d, rank %d", ErrInvalidCard, suit, rank)
	}
	return Card{Suit: suit, Rank: rank}, nil
}

// Valid reports whether c has a suit in 1-4 and a rank in 1-13
func (c Card) Valid() bool {
	return c.Suit.Valid() && c.Rank.Valid()
}

func checkCards(cards ...Card) error {
	for _, c := range cards {
		if !c.Valid() {
			return fmt.Errorf("%w: suit %d, rank %d", ErrInvalidCard, c.Suit, c.Rank)
		}
	}
	return nil
}

// MustCard is NewCard that panics on invalid input
func MustCard(suit Suit, rank Rank) Card {
	c, err := NewCard(suit, rank)
	if err != nil {
		panic(err)
	}
	return c
}

// String returns the card in short notation (e.g. "Ah", "Td")
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// Pretty returns the card with a suit symbol (e.g. "A♥")
func (c Card) Pretty() string {
	return c.Rank.String() + c.Suit.Symbol()
}

// Index returns a dense 0-51 index for the card
func (c Card) Index() int {
	return int(c.Suit-1)*NumRanks + int(c.Rank-1)
}

// ParseCard parses a card in short notation. Ranks are A K Q J T 9-2
// (10 is also accepted) and suits are h d s c, case-insensitive.
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 || len(s) > 3 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}

	rank, err := parseRank(s[:len(s)-1])
	if err != nil {
		return Card{}, fmt.Errorf("%w: %q: %v", ErrInvalidCard, s, err)
	}
	suit, err := parseSuit(s[len(s)-1])
	if err != nil {
		return Card{}, fmt.Errorf("%w: %q: %v", ErrInvalidCard, s, err)
	}
	return Card{Suit: suit, Rank: rank}, nil
}

// ParseCards parses a run of cards such as "AhKhQh" or "Ah Kh 10h".
func ParseCards(s string) ([]Card, error) {
	var cards []Card
	for _, field := range strings.Fields(s) {
		for len(field) > 0 {
			n := 2
			if strings.HasPrefix(field, "10") {
				n = 3
			}
			if len(field) < n {
				return nil, fmt.Errorf("%w: incomplete card %q", ErrInvalidCard, field)
			}
			card, err := ParseCard(field[:n])
			if err != nil {
				return nil, err
			}
			cards = append(cards, card)
			field = field[n:]
		}
	}
	return cards, nil
}

// MustParseCards parses cards and panics on error (for tests)
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse cards '%s': %v", s, err))
	}
	return cards
}

func parseRank(s string) (Rank, error) {
	if s == "10" {
		return Ten, nil
	}
	if len(s) != 1 {
		return 0, fmt.Errorf("unknown rank '%s'", s)
	}
	switch c := s[0]; c {
	case 'A', 'a':
		return Ace, nil
	case 'K', 'k':
		return King, nil
	case 'Q', 'q':
		return Queen, nil
	case 'J', 'j':
		return Jack, nil
	case 'T', 't':
		return Ten, nil
	default:
		if c >= '2' && c <= '9' {
			return Rank(c - '0'), nil
		}
		return 0, fmt.Errorf("unknown rank '%c'", c)
	}
}

func parseSuit(c byte) (Suit, error) {
	switch c {
	case 'h', 'H':
		return Hearts, nil
	case 'd', 'D':
		return Diamonds, nil
	case 's', 'S':
		return Spades, nil
	case 'c', 'C':
		return Clubs, nil
	default:
		return 0, fmt.Errorf("unknown suit '%c'", c)
	}
}
