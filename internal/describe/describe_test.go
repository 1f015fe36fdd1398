package describe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BadrinathKonidala/Poker-AI-Bot/poker"
)

// One hand per category, strongest first
var ladder = []string{
	"AhThJhQhKh",
	"5c6c7c8c9c",
	"AhAdAsAc5h",
	"2h2d2s7c7h",
	"2h5h9hJhKh",
	"2h3d4s5c6h",
	"9h9d9sKc2h",
	"9h9dKsKc2h",
	"9h9dKs4c2h",
	"2h5d9sJcKh",
}

func TestScoreOrderMatchesCategoryOrder(t *testing.T) {
	var prevScore int16
	var prevCategory poker.Category
	for i, cards := range ladder {
		hand := poker.MustParseHand(cards)
		category, err := poker.Classify(hand)
		require.NoError(t, err)
		assert.Equal(t, poker.Category(i+1), category, cards)

		score, err := Score(hand)
		require.NoError(t, err)
		if i > 0 {
			assert.True(t, prevCategory.Beats(category))
			assert.Greater(t, prevScore, score, "%s should score below the previous hand", cards)
		}
		prevScore, prevCategory = score, category
	}
}

func TestScoreAgreesAcrossCategories(t *testing.T) {
	// Wheel straights sit at the bottom of their category but still above
	// the best hand of the category below.
	wheel := poker.MustParseHand("Ah2d3s4c5h")
	trips := poker.MustParseHand("AhAdAsKcQh")
	steelWheel := poker.MustParseHand("Ah2h3h4h5h")
	quads := poker.MustParseHand("AhAdAsAcKh")

	ws, err := Score(wheel)
	require.NoError(t, err)
	ts, err := Score(trips)
	require.NoError(t, err)
	assert.Greater(t, ws, ts)

	ss, err := Score(steelWheel)
	require.NoError(t, err)
	qs, err := Score(quads)
	require.NoError(t, err)
	assert.Greater(t, ss, qs)
}

func TestDescribe(t *testing.T) {
	for _, cards := range ladder {
		desc, err := Describe(poker.MustParseHand(cards))
		require.NoError(t, err)
		assert.NotEmpty(t, desc)
	}
}

func TestRequiresFiveCards(t *testing.T) {
	_, err := Describe(poker.MustParseHand("AhKh"))
	assert.ErrorIs(t, err, poker.ErrPreconditionViolation)

	_, err = Score(poker.MustParseHand(""))
	assert.ErrorIs(t, err, poker.ErrPreconditionViolation)
}
