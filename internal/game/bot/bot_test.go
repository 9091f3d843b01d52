package bot

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/JackT-C/poker/internal/game/card"
)

func TestNamerRotates(t *testing.T) {
	var n Namer

	first := n.Next()
	assert.Equal(t, "Alice Bot", first)
	for i := 1; i < len(names); i++ {
		n.Next()
	}
	assert.Equal(t, first, n.Next(), "names wrap around")
}

func TestNewID(t *testing.T) {
	id := NewID()
	assert.True(t, strings.HasPrefix(id, "bot_"))
	assert.NotEqual(t, id, NewID())
}

func TestDecidePokerStrongHandRaises(t *testing.T) {
	// Four of a kind on the board: strength 7, always a raise.
	hand := []card.Card{{Rank: card.Rank9, Suit: card.Spade}, {Rank: card.Rank9, Suit: card.Heart}}
	community := []card.Card{
		{Rank: card.Rank9, Suit: card.Diamond},
		{Rank: card.Rank9, Suit: card.Club},
		{Rank: card.Rank2, Suit: card.Spade},
	}

	for range 50 {
		d := DecidePoker(hand, community, 100, 0)
		assert.Equal(t, ActionRaise, d.Action)
		assert.GreaterOrEqual(t, d.Amount, 120)
		assert.Less(t, d.Amount, 170)
	}
}

func TestDecidePokerWeakHandNeverRaises(t *testing.T) {
	// High card only: folds when the call is expensive, otherwise calls.
	hand := []card.Card{{Rank: card.Rank2, Suit: card.Spade}, {Rank: card.Rank7, Suit: card.Heart}}
	community := []card.Card{
		{Rank: card.Rank9, Suit: card.Diamond},
		{Rank: card.RankJ, Suit: card.Club},
		{Rank: card.Rank4, Suit: card.Heart},
	}

	for range 50 {
		d := DecidePoker(hand, community, 100, 0)
		assert.NotEqual(t, ActionRaise, d.Action)
	}
}

func TestDecideBlackjack(t *testing.T) {
	assert.Equal(t, "hit", DecideBlackjack(11, 10))
	assert.Equal(t, "stand", DecideBlackjack(17, 10))
	assert.Equal(t, "stand", DecideBlackjack(21, 2))

	// 13..16 stands only against a weak house card.
	assert.Equal(t, "stand", DecideBlackjack(14, 6))
	assert.Equal(t, "stand", DecideBlackjack(13, 2))
	assert.Equal(t, "hit", DecideBlackjack(14, 7))
	assert.Equal(t, "hit", DecideBlackjack(16, 10))

	// 12 is not in the stand band.
	assert.Equal(t, "hit", DecideBlackjack(12, 6))
}

func TestBlackjackBetBounds(t *testing.T) {
	for range 100 {
		bet := BlackjackBet(1000)
		assert.GreaterOrEqual(t, bet, 50)
		assert.Less(t, bet, 250)
	}

	assert.Equal(t, 30, BlackjackBet(30), "capped by bankroll")
}
