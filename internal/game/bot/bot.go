// Package bot supplies automated players: their identities and the
// heuristic policies that stand in for human input.
package bot

import (
	"math/rand/v2"
	"sync"

	"github.com/google/uuid"

	"github.com/JackT-C/poker/internal/game/card"
)

var names = []string{"Alice Bot", "Bob Bot", "Charlie Bot", "Diana Bot", "Eve Bot", "Frank Bot"}

// Namer hands out bot display names from a rotating list. The counter is
// the only cross-room shared state besides the connection registry; it is
// append-only and order-insensitive.
type Namer struct {
	counter int
	mu      sync.Mutex
}

// Next returns the next bot name in rotation.
func (n *Namer) Next() string {
	n.mu.Lock()
	defer n.mu.Unlock()

	name := names[n.counter%len(names)]
	n.counter++
	return name
}

// NewID generates a bot player id. Bot ids never collide with connection
// ids and are never targets of disconnect cleanup.
func NewID() string {
	return "bot_" + uuid.New().String()
}

// Action names shared with the poker engine.
const (
	ActionFold  = "fold"
	ActionCall  = "call"
	ActionRaise = "raise"
)

// PokerDecision is a bot's chosen poker move.
type PokerDecision struct {
	Action string
	Amount int // raise target, total bet this street
}

// DecidePoker picks a poker action from the bot's combined hand strength.
// Strong hands raise by the current bet plus a bounded random bump, decent
// hands call, weak hands fold only when the call would cost more than 50.
func DecidePoker(hand, community []card.Card, currentBet, seatBet int) PokerDecision {
	strength := card.Evaluate(append(append([]card.Card{}, hand...), community...)).Rank
	betDiff := currentBet - seatBet
	roll := rand.Float64()

	switch {
	case strength >= card.Flush || (strength >= card.ThreeOfAKind && roll > 0.5):
		return PokerDecision{Action: ActionRaise, Amount: currentBet + rand.IntN(50) + 20}
	case strength >= card.Pair || roll > 0.6:
		return PokerDecision{Action: ActionCall}
	case betDiff > 50:
		return PokerDecision{Action: ActionFold}
	default:
		return PokerDecision{Action: ActionCall}
	}
}

// DecideBlackjack applies the fixed threshold strategy: hit below 12,
// stand at 17+, stand on 13..16 only against a weak house up-card.
func DecideBlackjack(score, houseUpValue int) string {
	switch {
	case score < 12:
		return "hit"
	case score >= 17:
		return "stand"
	case score >= 13 && score <= 16 && houseUpValue <= 6:
		return "stand"
	default:
		return "hit"
	}
}

// BlackjackBet picks a randomized pre-round bet in [50, 250), capped by
// the bot's bankroll.
func BlackjackBet(chips int) int {
	bet := rand.IntN(200) + 50
	return min(bet, chips)
}
