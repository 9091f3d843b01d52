package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShuffledDeckIsPermutation(t *testing.T) {
	for range 20 {
		deck := NewShuffledDeck()
		require.Len(t, deck, 52)

		seen := make(map[Card]bool, 52)
		for _, c := range deck {
			assert.False(t, seen[c], "duplicate card %s", c)
			seen[c] = true
		}

		for _, c := range NewDeck() {
			assert.True(t, seen[c], "missing card %s", c)
		}
	}
}

func TestDraw(t *testing.T) {
	deck := Deck{{Rank: Rank2, Suit: Spade}, {Rank: RankA, Suit: Heart}}

	c, err := deck.Draw()
	require.NoError(t, err)
	assert.Equal(t, Card{Rank: RankA, Suit: Heart}, c)
	assert.Len(t, deck, 1)

	c, err = deck.Draw()
	require.NoError(t, err)
	assert.Equal(t, Card{Rank: Rank2, Suit: Spade}, c)

	_, err = deck.Draw()
	assert.ErrorIs(t, err, ErrEmptyDeck)
}

func TestCardValue(t *testing.T) {
	assert.Equal(t, 11, Card{Rank: RankA}.Value())
	assert.Equal(t, 10, Card{Rank: RankK}.Value())
	assert.Equal(t, 10, Card{Rank: RankQ}.Value())
	assert.Equal(t, 10, Card{Rank: RankJ}.Value())
	assert.Equal(t, 10, Card{Rank: Rank10}.Value())
	assert.Equal(t, 7, Card{Rank: Rank7}.Value())
	assert.Equal(t, 2, Card{Rank: Rank2}.Value())
}

func TestScoreSoftAces(t *testing.T) {
	// A + A + 9 = 11 + 11 + 9 = 31, one ace downgrades: 21.
	hand := []Card{{Rank: RankA}, {Rank: RankA, Suit: Heart}, {Rank: Rank9}}
	assert.Equal(t, 21, Score(hand))

	// A + A + A = 33, two downgrades: 13.
	hand = []Card{{Rank: RankA}, {Rank: RankA, Suit: Heart}, {Rank: RankA, Suit: Club}}
	assert.Equal(t, 13, Score(hand))
}

func TestScorePlain(t *testing.T) {
	hand := []Card{{Rank: RankK}, {Rank: Rank5}, {Rank: Rank6}}
	assert.Equal(t, 21, Score(hand))

	hand = []Card{{Rank: RankK}, {Rank: RankQ}, {Rank: Rank5}}
	assert.Equal(t, 25, Score(hand))

	assert.Equal(t, 0, Score(nil))
}
