package poker

import (
	"fmt"
	"slices"
	"strings"
)

// Hand is an ordered run of up to five cards, built one card at a time.
// Ranks and suits are kept in parallel with the cards.
type Hand struct {
	cards []Card
	ranks []Rank
	suits []Suit
}

// NewHand creates a hand from up to five valid cards
func NewHand(cards ...Card) (Hand, error) {
	if len(cards) > HandSize {
		return Hand{}, fmt.Errorf("%w: hand cannot contain more than %d cards, got %d",
			ErrInvalidHandSize, HandSize, len(cards))
	}
	if err := checkCards(cards...); err != nil {
		return Hand{}, err
	}
	var h Hand
	for _, c := range cards {
		h.append(c)
	}
	return h, nil
}

// MustHand is NewHand that panics on error (for tests)
func MustHand(cards ...Card) Hand {
	h, err := NewHand(cards...)
	if err != nil {
		panic(err)
	}
	return h
}

// ParseHand parses a hand in short notation, e.g. "AhKhQhJhTh"
func ParseHand(s string) (Hand, error) {
	cards, err := ParseCards(s)
	if err != nil {
		return Hand{}, err
	}
	return NewHand(cards...)
}

// MustParseHand parses a hand and panics on error (for tests)
func MustParseHand(s string) Hand {
	return MustHand(MustParseCards(s)...)
}

// Add appends a valid card, failing once the hand already holds five cards
func (h *Hand) Add(c Card) error {
	if len(h.cards) >= HandSize {
		return fmt.Errorf("%w: hand cannot contain more than %d cards", ErrInvalidHandSize, HandSize)
	}
	if err := checkCards(c); err != nil {
		return err
	}
	h.append(c)
	return nil
}

// append clips before growing so copies of a Hand never share a tail
func (h *Hand) append(c Card) {
	h.cards = append(slices.Clip(h.cards), c)
	h.ranks = append(slices.Clip(h.ranks), c.Rank)
	h.suits = append(slices.Clip(h.suits), c.Suit)
}

// Len returns the number of cards in the hand
func (h Hand) Len() int {
	return len(h.cards)
}

// Cards returns a copy of the cards in order
func (h Hand) Cards() []Card {
	return append([]Card(nil), h.cards...)
}

// Ranks returns a copy of the card ranks in card order
func (h Hand) Ranks() []Rank {
	return append([]Rank(nil), h.ranks...)
}

// Suits returns a copy of the card suits in card order
func (h Hand) Suits() []Suit {
	return append([]Suit(nil), h.suits...)
}

// String returns the cards separated by spaces
func (h Hand) String() string {
	return joinCards(h.cards)
}

// HoleCards are the two private cards held by a player. They are fixed at
// construction.
type HoleCards struct {
	cards [HoleSize]Card
}

// NewHoleCards creates hole cards from exactly two cards
func NewHoleCards(cards ...Card) (HoleCards, error) {
	if len(cards) != HoleSize {
		return HoleCards{}, fmt.Errorf("%w: there must be exactly %d hole cards, got %d",
			ErrInvalidHandSize, HoleSize, len(cards))
	}
	if err := checkCards(cards...); err != nil {
		return HoleCards{}, err
	}
	return HoleCards{cards: [HoleSize]Card{cards[0], cards[1]}}, nil
}

// MustHoleCards is NewHoleCards that panics on error (for tests)
func MustHoleCards(cards ...Card) HoleCards {
	h, err := NewHoleCards(cards...)
	if err != nil {
		panic(err)
	}
	return h
}

// ParseHoleCards parses hole cards in short notation, e.g. "ThJh"
func ParseHoleCards(s string) (HoleCards, error) {
	cards, err := ParseCards(s)
	if err != nil {
		return HoleCards{}, err
	}
	return NewHoleCards(cards...)
}

// MustParseHoleCards parses hole cards and panics on error (for tests)
func MustParseHoleCards(s string) HoleCards {
	return MustHoleCards(MustParseCards(s)...)
}

// Cards returns the two cards in order
func (h HoleCards) Cards() []Card {
	return h.cards[:]
}

// Ranks returns the card ranks in card order
func (h HoleCards) Ranks() []Rank {
	return []Rank{h.cards[0].Rank, h.cards[1].Rank}
}

// Suits returns the card suits in card order
func (h HoleCards) Suits() []Suit {
	return []Suit{h.cards[0].Suit, h.cards[1].Suit}
}

// String returns the cards separated by spaces
func (h HoleCards) String() string {
	return joinCards(h.cards[:])
}

func joinCards(cards []Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
