package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCard(t *testing.T) {
	t.Parallel()

	card, err := NewCard(Hearts, Ace)
	require.NoError(t, err)
	assert.Equal(t, Card{Suit: Hearts, Rank: Ace}, card)
	assert.Equal(t, "Ah", card.String())
	assert.Equal(t, "A♥", card.Pretty())

	tests := []struct {
		name string
		suit Suit
		rank Rank
	}{
		{"zero suit", 0, Ace},
		{"suit too high", 5, Ace},
		{"zero rank", Hearts, 0},
		{"rank too high", Hearts, 14},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCard(tt.suit, tt.rank)
			assert.ErrorIs(t, err, ErrInvalidCard)
		})
	}
}

func TestCardEquality(t *testing.T) {
	t.Parallel()
	assert.Equal(t, MustCard(Spades, Queen), MustCard(Spades, Queen))
	assert.NotEqual(t, MustCard(Spades, Queen), MustCard(Clubs, Queen))
	assert.NotEqual(t, MustCard(Spades, Queen), MustCard(Spades, King))
}

func TestParseCard(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		input   string
		want    Card
		wantErr bool
	}{
		{name: "ace of hearts", input: "Ah", want: Card{Hearts, Ace}},
		{name: "ten with T", input: "Td", want: Card{Diamonds, Ten}},
		{name: "ten with 10", input: "10d", want: Card{Diamonds, Ten}},
		{name: "lowercase", input: "ks", want: Card{Spades, King}},
		{name: "number card", input: "7c", want: Card{Clubs, Seven}},
		{name: "two", input: "2h", want: Card{Hearts, Two}},
		{name: "invalid rank", input: "Xs", wantErr: true},
		{name: "invalid suit", input: "Ax", wantErr: true},
		{name: "one is not a rank", input: "1h", wantErr: true},
		{name: "empty string", input: "", wantErr: true},
		{name: "too short", input: "A", wantErr: true},
		{name: "too long", input: "Asd", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			card, err := ParseCard(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidCard)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, card)
		})
	}
}

func TestParseCards(t *testing.T) {
	t.Parallel()

	cards, err := ParseCards("AhTh Jh 10hKh")
	require.NoError(t, err)
	assert.Equal(t, []Card{
		{Hearts, Ace}, {Hearts, Ten}, {Hearts, Jack}, {Hearts, Ten}, {Hearts, King},
	}, cards)

	cards, err = ParseCards("")
	require.NoError(t, err)
	assert.Empty(t, cards)

	_, err = ParseCards("AhK")
	assert.ErrorIs(t, err, ErrInvalidCard)
}

func TestAll52CardsRoundTrip(t *testing.T) {
	t.Parallel()
	seen := make(map[int]bool)

	for _, card := range NewDeck().Cards() {
		parsed, err := ParseCard(card.String())
		require.NoError(t, err)
		assert.Equal(t, card, parsed)

		assert.False(t, seen[card.Index()], "duplicate index for %s", card)
		seen[card.Index()] = true
		assert.True(t, card.Index() >= 0 && card.Index() < DeckSize)
	}
	assert.Len(t, seen, DeckSize)
}

func TestRoyalRanks(t *testing.T) {
	t.Parallel()
	for rank := Ace; rank <= King; rank++ {
		want := rank == Ace || rank >= Ten
		assert.Equal(t, want, IsRoyalRank(rank), "rank %s", rank)
	}
}
