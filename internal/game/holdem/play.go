package holdem

import (
	"log"
	"time"

	"github.com/JackT-C/poker/internal/apperrors"
	"github.com/JackT-C/poker/internal/game/bot"
	"github.com/JackT-C/poker/internal/game/card"
	"github.com/JackT-C/poker/internal/protocol"
	"github.com/JackT-C/poker/internal/protocol/codec"
	"github.com/JackT-C/poker/internal/protocol/convert"
)

// Start begins a new round: fresh deck, two hole cards per seat, forced
// blinds from the first two seats, turn on seat 0.
func (s *Session) Start() error {
	s.room.Lock()
	defer s.room.Unlock()
	return s.startLocked()
}

func (s *Session) startLocked() error {
	if s.active {
		return apperrors.ErrGameStarted
	}
	if len(s.room.Players) < 2 {
		return apperrors.ErrNotEnoughPlayers
	}

	s.deck = card.NewShuffledDeck()
	s.community = nil
	s.pot = 0
	s.currentBet = bigBlind
	s.turn = 0
	s.round = RoundPreflop
	s.active = true

	s.seats = make([]*Seat, len(s.room.Players))
	for i, p := range s.room.Players {
		hand := make([]card.Card, 0, 2)
		for range 2 {
			c, err := s.deck.Draw()
			if err != nil {
				s.forceReset()
				return apperrors.ErrDeckExhausted
			}
			hand = append(hand, c)
		}
		s.seats[i] = &Seat{Player: p, Hand: hand}
	}

	// Forced blinds from the first two seats.
	s.seats[0].Player.Chips -= smallBlind
	s.seats[0].Bet = smallBlind
	s.pot += smallBlind

	s.seats[1].Player.Chips -= bigBlind
	s.seats[1].Bet = bigBlind
	s.pot += bigBlind

	for _, seat := range s.seats {
		seat.Player.Send(codec.MustNewMessage(protocol.MsgDealCards, protocol.DealCardsPayload{
			Hand: convert.CardsToInfos(seat.Hand),
		}))
	}

	s.room.Broadcast(codec.MustNewMessage(protocol.MsgGameStart, protocol.RoomUpdatePayload{Room: s.Snapshot()}))
	log.Printf("🃏 poker round started in room %s (%d seats)", s.room.Key, len(s.seats))

	s.maybeScheduleBot()
	return nil
}

// HandleAction applies a fold/call/raise from the seat whose turn it is.
// Invalid actions are rejected without any state change.
func (s *Session) HandleAction(playerID, action string, amount int) error {
	s.room.Lock()
	defer s.room.Unlock()

	if !s.active {
		return apperrors.ErrGameNotStart
	}
	if s.seats[s.turn].Player.ID != playerID {
		return apperrors.ErrNotYourTurn
	}

	if err := s.apply(s.seats[s.turn], action, amount); err != nil {
		return err
	}

	s.advanceTurn()
	s.afterAction()
	return nil
}

// apply validates and executes one action for a seat.
func (s *Session) apply(seat *Seat, action string, amount int) error {
	switch action {
	case bot.ActionFold:
		seat.Folded = true

	case bot.ActionCall:
		callAmount := s.currentBet - seat.Bet
		if callAmount < 0 || seat.Player.Chips < callAmount {
			return apperrors.ErrInsufficientChips
		}
		seat.Player.Chips -= callAmount
		seat.Bet += callAmount
		s.pot += callAmount

	case bot.ActionRaise:
		if amount < raiseFloor || amount < s.currentBet {
			return apperrors.ErrInvalidBet
		}
		delta := amount - seat.Bet
		if delta < 0 || seat.Player.Chips < delta {
			return apperrors.ErrInsufficientChips
		}
		seat.Player.Chips -= delta
		seat.Bet = amount
		s.pot += delta
		s.currentBet = amount

	default:
		return apperrors.ErrInvalidAction
	}
	return nil
}

// advanceTurn moves the pointer to the next unfolded seat, cycling.
func (s *Session) advanceTurn() {
	if s.activeSeats() == 0 {
		return
	}
	for {
		s.turn = (s.turn + 1) % len(s.seats)
		if !s.seats[s.turn].Folded || s.activeSeats() <= 1 {
			return
		}
	}
}

// afterAction runs the shared post-action flow: end by fold, street
// advancement when bets are level, or hand-off to the next seat.
func (s *Session) afterAction() {
	if s.activeSeats() == 1 {
		s.endByFold()
		return
	}

	betsLevel := true
	for _, seat := range s.seats {
		if !seat.Folded && seat.Bet != s.currentBet {
			betsLevel = false
			break
		}
	}
	if betsLevel {
		s.advanceRound()
		return
	}

	s.room.Broadcast(codec.MustNewMessage(protocol.MsgGameUpdate, protocol.RoomUpdatePayload{Room: s.Snapshot()}))
	s.maybeScheduleBot()
}

// advanceRound reveals the next community tranche, or runs the showdown
// after the river closes.
func (s *Session) advanceRound() {
	var tranche int
	switch s.round {
	case RoundPreflop:
		s.round, tranche = RoundFlop, 3
	case RoundFlop:
		s.round, tranche = RoundTurn, 1
	case RoundTurn:
		s.round, tranche = RoundRiver, 1
	case RoundRiver:
		s.showdown()
		return
	}

	for range tranche {
		c, err := s.deck.Draw()
		if err != nil {
			s.forceReset()
			return
		}
		s.community = append(s.community, c)
	}

	s.currentBet = 0
	for _, seat := range s.seats {
		seat.Bet = 0
	}
	s.turn = 0
	if s.seats[0].Folded {
		s.advanceTurn()
	}

	s.room.Broadcast(codec.MustNewMessage(protocol.MsgRoundAdvance, protocol.RoomUpdatePayload{Room: s.Snapshot()}))

	// Give clients a beat to render the new street before a bot acts.
	s.scheduleAfter(500*time.Millisecond, func() {
		s.botTurn()
	})
}

// showdown evaluates every live seat's combined hand and pays the pot to
// the strictly-highest categorical rank. The first seat encountered keeps
// ties; kickers are never compared and the pot is never split.
func (s *Session) showdown() {
	var best *Seat
	var bestEval card.HandEvaluation
	for _, seat := range s.seats {
		if seat.Folded {
			continue
		}
		eval := card.Evaluate(append(append([]card.Card{}, seat.Hand...), s.community...))
		if best == nil || eval.Rank > bestEval.Rank {
			best, bestEval = seat, eval
		}
	}
	if best == nil {
		s.forceReset()
		return
	}

	best.Player.Chips += s.pot

	s.room.Broadcast(codec.MustNewMessage(protocol.MsgGameEnd, protocol.GameEndPayload{
		Winner:   best.Player.Name,
		HandName: bestEval.Name,
		Pot:      s.pot,
		AllHands: s.revealedHands(true),
	}))
	log.Printf("🏆 %s wins %d with %s in room %s", best.Player.Name, s.pot, bestEval.Name, s.room.Key)

	s.finishRound()
}

// endByFold awards the pot to the last unfolded seat without a showdown.
func (s *Session) endByFold() {
	var winner *Seat
	for _, seat := range s.seats {
		if !seat.Folded {
			winner = seat
			break
		}
	}
	if winner == nil {
		s.forceReset()
		return
	}

	winner.Player.Chips += s.pot

	s.room.Broadcast(codec.MustNewMessage(protocol.MsgGameEnd, protocol.GameEndPayload{
		Winner:   winner.Player.Name,
		Pot:      s.pot,
		AllHands: s.revealedHands(false),
	}))
	log.Printf("🏆 %s wins %d by fold in room %s", winner.Player.Name, s.pot, s.room.Key)

	s.finishRound()
}

// finishRound deactivates the table and schedules the reset/restart pair.
func (s *Session) finishRound() {
	s.active = false

	s.restartTimer = time.AfterFunc(s.cfg.RestartDelay(), func() {
		s.room.Lock()
		defer s.room.Unlock()
		if s.stopped || s.active {
			return
		}
		s.resetLocked()
		s.scheduleAfter(500*time.Millisecond, func() {
			if len(s.room.Players) >= 2 {
				_ = s.startLocked()
			}
		})
	})
}

// Reset clears the table outside a running round.
func (s *Session) Reset() error {
	s.room.Lock()
	defer s.room.Unlock()
	s.resetLocked()
	return nil
}

func (s *Session) resetLocked() {
	s.active = false
	s.deck = card.NewShuffledDeck()
	s.community = nil
	s.seats = nil
	s.pot = 0
	s.currentBet = 0
	s.turn = 0
	s.round = RoundPreflop

	s.room.Broadcast(codec.MustNewMessage(protocol.MsgGameReset, protocol.RoomUpdatePayload{Room: s.Snapshot()}))
}

// forceReset handles fatal-to-round conditions such as deck exhaustion.
func (s *Session) forceReset() {
	log.Printf("⚠️ poker round in room %s force-reset", s.room.Key)
	s.resetLocked()
}

// scheduleAfter runs fn under the room lock after a delay, skipping it if
// the session was stopped meanwhile.
func (s *Session) scheduleAfter(d time.Duration, fn func()) {
	s.botTimer = time.AfterFunc(d, func() {
		s.room.Lock()
		defer s.room.Unlock()
		if s.stopped {
			return
		}
		fn()
	})
}

// maybeScheduleBot queues a bot decision if a bot holds the turn.
func (s *Session) maybeScheduleBot() {
	if !s.active || !s.seats[s.turn].Player.IsBot {
		return
	}
	s.scheduleAfter(s.cfg.BotThinkDelay(), func() {
		s.botTurn()
	})
}

// botTurn plays one bot decision and chains into the next seat. Called
// under the room lock from a timer; the round may have ended or the room
// reset while the bot was "thinking", so everything is re-validated.
func (s *Session) botTurn() {
	if !s.active || s.turn >= len(s.seats) {
		return
	}
	seat := s.seats[s.turn]
	if !seat.Player.IsBot || seat.Folded {
		return
	}

	decision := bot.DecidePoker(seat.Hand, s.community, s.currentBet, seat.Bet)
	if err := s.apply(seat, decision.Action, decision.Amount); err != nil {
		// A bot that cannot afford its chosen move degrades to call, then fold.
		if s.apply(seat, bot.ActionCall, 0) != nil {
			seat.Folded = true
		}
	}
	log.Printf("🤖 %s plays %s in room %s", seat.Player.Name, decision.Action, s.room.Key)

	s.advanceTurn()
	s.afterAction()
}
