package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandAdd(t *testing.T) {
	t.Parallel()

	var hand Hand
	assert.Equal(t, 0, hand.Len())

	cards := MustParseCards("2c 7d 9s Kh Ah")
	for i, c := range cards {
		require.NoError(t, hand.Add(c))
		assert.Equal(t, i+1, hand.Len())

		// Parallel slices follow the cards
		ranks, suits := hand.Ranks(), hand.Suits()
		require.Len(t, ranks, hand.Len())
		require.Len(t, suits, hand.Len())
		for j, card := range hand.Cards() {
			assert.Equal(t, card.Rank, ranks[j])
			assert.Equal(t, card.Suit, suits[j])
		}
	}

	err := hand.Add(MustCard(Clubs, Ace))
	assert.ErrorIs(t, err, ErrInvalidHandSize)
	assert.Equal(t, 5, hand.Len())
	assert.Equal(t, cards, hand.Cards())
}

func TestNewHandTooManyCards(t *testing.T) {
	t.Parallel()

	_, err := NewHand(MustParseCards("2c3c4c5c6c7c")...)
	assert.ErrorIs(t, err, ErrInvalidHandSize)

	_, err = ParseHand("2c3c4c5c6c7c")
	assert.ErrorIs(t, err, ErrInvalidHandSize)
}

func TestHandCopiesAreIndependent(t *testing.T) {
	t.Parallel()

	base := MustParseHand("2c 7d 9s")
	a, b := base, base
	require.NoError(t, a.Add(MustCard(Hearts, Ace)))
	require.NoError(t, b.Add(MustCard(Spades, King)))

	assert.Equal(t, "2c 7d 9s Ah", a.String())
	assert.Equal(t, "2c 7d 9s Ks", b.String())
	assert.Equal(t, "2c 7d 9s", base.String())
}

func TestHandAccessorsReturnCopies(t *testing.T) {
	t.Parallel()

	hand := MustParseHand("AhKh")
	hand.Cards()[0] = MustCard(Clubs, Two)
	hand.Ranks()[0] = Two
	hand.Suits()[0] = Clubs

	assert.Equal(t, "Ah Kh", hand.String())
	assert.Equal(t, []Rank{Ace, King}, hand.Ranks())
	assert.Equal(t, []Suit{Hearts, Hearts}, hand.Suits())
}

func TestNewHoleCards(t *testing.T) {
	t.Parallel()

	hole, err := NewHoleCards(MustParseCards("ThJh")...)
	require.NoError(t, err)
	assert.Equal(t, []Rank{Ten, Jack}, hole.Ranks())
	assert.Equal(t, []Suit{Hearts, Hearts}, hole.Suits())
	assert.Equal(t, "Th Jh", hole.String())

	tests := []struct {
		name  string
		cards string
	}{
		{"no cards", ""},
		{"one card", "Ah"},
		{"three cards", "AhKhQh"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewHoleCards(MustParseCards(tt.cards)...)
			assert.ErrorIs(t, err, ErrInvalidHandSize)

			_, err = ParseHoleCards(tt.cards)
			assert.ErrorIs(t, err, ErrInvalidHandSize)
		})
	}
}

func TestHandsRejectInvalidCards(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		card Card
	}{
		{"rank past king", Card{Suit: Hearts, Rank: 14}},
		{"zero rank", Card{Suit: Spades, Rank: 0}},
		{"zero suit", Card{Suit: 0, Rank: Ace}},
		{"suit past clubs", Card{Suit: 5, Rank: King}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, tt.card.Valid())

			_, err := NewHand(MustCard(Clubs, Two), tt.card)
			assert.ErrorIs(t, err, ErrInvalidCard)

			h := MustParseHand("2c3c")
			assert.ErrorIs(t, h.Add(tt.card), ErrInvalidCard)
			assert.Equal(t, 2, h.Len(), "a rejected card must not be added")

			_, err = NewHoleCards(tt.card, MustCard(Clubs, Two))
			assert.ErrorIs(t, err, ErrInvalidCard)
		})
	}
}
