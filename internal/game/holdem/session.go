// Package holdem implements the betting card game state machine: blinds,
// sequential betting streets, community card tranches, and a categorical
// showdown.
package holdem

import (
	"time"

	"github.com/JackT-C/poker/internal/config"
	"github.com/JackT-C/poker/internal/game/card"
	"github.com/JackT-C/poker/internal/game/room"
	"github.com/JackT-C/poker/internal/protocol"
	"github.com/JackT-C/poker/internal/protocol/convert"
)

// Round is a betting street.
type Round string

const (
	RoundPreflop Round = "preflop"
	RoundFlop    Round = "flop"
	RoundTurn    Round = "turn"
	RoundRiver   Round = "river"
)

const (
	smallBlind = 5
	bigBlind   = 10
	raiseFloor = 10
)

// Seat is one player's state within a single round. Seats are snapshotted
// from room membership when the round starts; later joiners wait for the
// next auto-restart.
type Seat struct {
	Player *room.Player
	Hand   []card.Card
	Bet    int
	Folded bool
}

// Session drives poker for one room. All state is guarded by the room
// lock; timer callbacks re-acquire it and re-validate before mutating.
type Session struct {
	room *room.Room
	cfg  *config.GameConfig

	deck       card.Deck
	community  []card.Card
	seats      []*Seat
	pot        int
	currentBet int
	turn       int
	round      Round
	active     bool
	stopped    bool

	botTimer     *time.Timer
	restartTimer *time.Timer
}

// NewSession creates the poker session for a room.
func NewSession(r *room.Room, cfg *config.GameConfig) *Session {
	return &Session{
		room:  r,
		cfg:   cfg,
		round: RoundPreflop,
	}
}

// PlayerJoined seats a new player. Mid-round joiners are not dealt in;
// they play from the next round.
func (s *Session) PlayerJoined(p *room.Player) {}

// PlayerLeft reconciles an active round with a departed player: their seat
// folds, and if that leaves one live seat the round ends on the spot.
func (s *Session) PlayerLeft(p *room.Player) {
	if !s.active {
		return
	}

	idx := -1
	for i, seat := range s.seats {
		if seat.Player == p {
			idx = i
			break
		}
	}
	if idx < 0 || s.seats[idx].Folded {
		return
	}

	s.seats[idx].Folded = true
	if s.turn == idx {
		s.advanceTurn()
	}
	s.afterAction()
}

// Stop cancels all scheduled work. Called with the room lock held when the
// room is torn down.
func (s *Session) Stop() {
	s.stopped = true
	s.active = false
	s.stopTimers()
}

func (s *Session) stopTimers() {
	if s.botTimer != nil {
		s.botTimer.Stop()
		s.botTimer = nil
	}
	if s.restartTimer != nil {
		s.restartTimer.Stop()
		s.restartTimer = nil
	}
}

// Snapshot returns the broadcastable poker room state. Hole cards are
// excluded; they travel privately via deal_cards.
func (s *Session) Snapshot() any {
	snap := protocol.PokerSnapshot{
		RoomKey:    s.room.Key,
		Community:  convert.CardsToInfos(s.community),
		Pot:        s.pot,
		CurrentBet: s.currentBet,
		Round:      string(s.round),
		Active:     s.active,
	}

	if len(s.seats) > 0 {
		snap.Players = make([]protocol.PokerSeatInfo, len(s.seats))
		for i, seat := range s.seats {
			snap.Players[i] = protocol.PokerSeatInfo{
				ID:     seat.Player.ID,
				Name:   seat.Player.Name,
				Chips:  seat.Player.Chips,
				Bet:    seat.Bet,
				Folded: seat.Folded,
				IsBot:  seat.Player.IsBot,
			}
		}
	} else {
		snap.Players = make([]protocol.PokerSeatInfo, len(s.room.Players))
		for i, p := range s.room.Players {
			snap.Players[i] = protocol.PokerSeatInfo{
				ID:    p.ID,
				Name:  p.Name,
				Chips: p.Chips,
				IsBot: p.IsBot,
			}
		}
	}

	if s.active && s.turn < len(s.seats) {
		snap.Turn = s.seats[s.turn].Player.ID
	}
	return snap
}

// activeSeats counts seats still in the hand.
func (s *Session) activeSeats() int {
	n := 0
	for _, seat := range s.seats {
		if !seat.Folded {
			n++
		}
	}
	return n
}

// revealedHands builds the end-of-round hand reveal. Evaluations are
// attached for live seats only, and only when the round reached showdown.
func (s *Session) revealedHands(withEvals bool) []protocol.RevealedHand {
	hands := make([]protocol.RevealedHand, len(s.seats))
	for i, seat := range s.seats {
		hands[i] = protocol.RevealedHand{
			Name:   seat.Player.Name,
			Hand:   convert.CardsToInfos(seat.Hand),
			Folded: seat.Folded,
		}
		if withEvals && !seat.Folded {
			eval := convert.EvalToInfo(card.Evaluate(append(append([]card.Card{}, seat.Hand...), s.community...)))
			hands[i].Evaluation = &eval
		}
	}
	return hands
}
