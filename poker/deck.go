package poker

import "math/bits"

// CardSet is a set of cards with one bit per card index
type CardSet uint64

// NewCardSet creates a CardSet from a slice of cards
func NewCardSet(cards ...Card) CardSet {
	var cs CardSet
	for _, c := range cards {
		cs.Add(c)
	}
	return cs
}

// Add adds a card to the set
func (cs *CardSet) Add(c Card) {
	*cs |= 1 << c.Index()
}

// With returns a copy of the set that also holds c
func (cs CardSet) With(c Card) CardSet {
	return cs | 1<<c.Index()
}

// Contains checks if a card is in the set
func (cs CardSet) Contains(c Card) bool {
	return cs&(1<<c.Index()) != 0
}

// Len returns the number of cards in the set
func (cs CardSet) Len() int {
	return bits.OnesCount64(uint64(cs))
}

// SuitMask returns a 13-bit mask of the ranks held in suit s, with bit
// rank-1 set for each rank present.
func (cs CardSet) SuitMask(s Suit) uint16 {
	return uint16(uint64(cs)>>(uint(s-1)*NumRanks)) & 0x1FFF
}

// Deck is the standard 52-card deck in suit-then-rank order
type Deck struct {
	cards [DeckSize]Card
}

// NewDeck creates a full, ordered deck
func NewDeck() *Deck {
	d := &Deck{}
	i := 0
	for _, suit := range AllSuits() {
		for rank := Ace; rank <= King; rank++ {
			d.cards[i] = Card{Suit: suit, Rank: rank}
			i++
		}
	}
	return d
}

// Cards returns every card in the deck
func (d *Deck) Cards() []Card {
	return d.cards[:]
}

// Without returns the cards of the deck that are not in used, in deck order
func (d *Deck) Without(used CardSet) []Card {
	remaining := make([]Card, 0, DeckSize-used.Len())
	for _, c := range d.cards {
		if !used.Contains(c) {
			remaining = append(remaining, c)
		}
	}
	return remaining
}
