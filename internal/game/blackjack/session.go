// Package blackjack implements the scoring card game: pre-round bets, a
// house hand drawn to seventeen, and per-seat hit/stand play with the
// soft-ace score rule.
package blackjack

import (
	"log"
	"time"

	"github.com/JackT-C/poker/internal/apperrors"
	"github.com/JackT-C/poker/internal/config"
	"github.com/JackT-C/poker/internal/game/bot"
	"github.com/JackT-C/poker/internal/game/card"
	"github.com/JackT-C/poker/internal/game/room"
	"github.com/JackT-C/poker/internal/protocol"
	"github.com/JackT-C/poker/internal/protocol/codec"
	"github.com/JackT-C/poker/internal/protocol/convert"
)

// Seat result labels.
const (
	ResultBust = "Bust"
	ResultWin  = "Win"
	ResultPush = "Push"
	ResultLoss = "Loss"
)

const houseStandsAt = 17

// Seat is one player's table state. Unlike poker, seats persist across
// rounds; bets and hands are cleared at settlement.
type Seat struct {
	Player   *room.Player
	Hand     []card.Card
	Bet      int
	Score    int
	Standing bool
	Result   string
}

// Session drives blackjack for one room. State is guarded by the room
// lock; staggered bot callbacks re-validate the round before acting.
type Session struct {
	room *room.Room
	cfg  *config.GameConfig

	deck       card.Deck
	houseHand  []card.Card
	houseScore int
	seats      []*Seat
	active     bool
	stopped    bool

	botTimers []*time.Timer
}

// NewSession creates the blackjack session for a room.
func NewSession(r *room.Room, cfg *config.GameConfig) *Session {
	return &Session{room: r, cfg: cfg}
}

// PlayerJoined gives the new player a seat.
func (s *Session) PlayerJoined(p *room.Player) {
	s.seats = append(s.seats, &Seat{Player: p})
}

// PlayerLeft drops the player's seat. A departed seat counts as settled,
// which can close an active round.
func (s *Session) PlayerLeft(p *room.Player) {
	for i, seat := range s.seats {
		if seat.Player == p {
			s.seats = append(s.seats[:i], s.seats[i+1:]...)
			break
		}
	}
	if s.active && s.allSettled() {
		s.resolveLocked()
	}
}

// Stop cancels scheduled bot work. Called with the room lock held.
func (s *Session) Stop() {
	s.stopped = true
	s.active = false
	for _, t := range s.botTimers {
		t.Stop()
	}
	s.botTimers = nil
}

// Snapshot returns the broadcastable blackjack room state. Only the house
// up-card is exposed while a round is live.
func (s *Session) Snapshot() any {
	snap := protocol.BlackjackSnapshot{
		RoomKey: s.room.Key,
		Players: make([]protocol.BlackjackSeatInfo, len(s.seats)),
		Active:  s.active,
	}
	for i, seat := range s.seats {
		snap.Players[i] = s.seatInfo(seat)
	}

	if len(s.houseHand) > 0 {
		if s.active {
			up := convert.CardToInfo(s.houseHand[0])
			snap.HouseCard = &up
		} else {
			snap.HouseHand = convert.CardsToInfos(s.houseHand)
			snap.HouseScore = s.houseScore
		}
	}
	return snap
}

func (s *Session) seatInfo(seat *Seat) protocol.BlackjackSeatInfo {
	return protocol.BlackjackSeatInfo{
		ID:       seat.Player.ID,
		Name:     seat.Player.Name,
		Chips:    seat.Player.Chips,
		Bet:      seat.Bet,
		Hand:     convert.CardsToInfos(seat.Hand),
		Score:    seat.Score,
		Standing: seat.Standing,
		Result:   seat.Result,
		IsBot:    seat.Player.IsBot,
	}
}

func (s *Session) seatByID(playerID string) *Seat {
	for _, seat := range s.seats {
		if seat.Player.ID == playerID {
			return seat
		}
	}
	return nil
}

// PlaceBet records a pre-round bet, debiting the player's chips. Re-bets
// replace the previous amount.
func (s *Session) PlaceBet(playerID string, amount int) error {
	s.room.Lock()
	defer s.room.Unlock()

	if s.active {
		return apperrors.ErrGameStarted
	}
	seat := s.seatByID(playerID)
	if seat == nil {
		return apperrors.ErrNotInRoom
	}
	if amount <= 0 {
		return apperrors.ErrInvalidBet
	}
	if amount > seat.Player.Chips+seat.Bet {
		return apperrors.ErrInsufficientChips
	}

	seat.Player.Chips += seat.Bet // refund a replaced bet
	seat.Player.Chips -= amount
	seat.Bet = amount

	s.room.SnapshotUpdate("")
	return nil
}

// Start deals a new round to the house and every betting seat. Bots
// without a bet place a randomized one first.
func (s *Session) Start() error {
	s.room.Lock()
	defer s.room.Unlock()

	if s.active {
		return apperrors.ErrGameStarted
	}

	for _, seat := range s.seats {
		if seat.Player.IsBot && seat.Bet == 0 {
			seat.Bet = bot.BlackjackBet(seat.Player.Chips)
			seat.Player.Chips -= seat.Bet
		}
	}

	betting := 0
	for _, seat := range s.seats {
		if seat.Bet > 0 {
			betting++
		}
	}
	if betting == 0 {
		return apperrors.ErrNotEnoughPlayers
	}

	s.deck = card.NewShuffledDeck()
	s.houseHand = nil
	for range 2 {
		c, err := s.deck.Draw()
		if err != nil {
			s.forceReset()
			return apperrors.ErrDeckExhausted
		}
		s.houseHand = append(s.houseHand, c)
	}
	s.houseScore = card.Score(s.houseHand)

	for _, seat := range s.seats {
		seat.Result = ""
		if seat.Bet == 0 {
			continue
		}
		seat.Hand = nil
		for range 2 {
			c, err := s.deck.Draw()
			if err != nil {
				s.forceReset()
				return apperrors.ErrDeckExhausted
			}
			seat.Hand = append(seat.Hand, c)
		}
		seat.Score = card.Score(seat.Hand)
		seat.Standing = false
	}

	s.active = true

	s.room.Broadcast(codec.MustNewMessage(protocol.MsgBlackjackStart, protocol.BlackjackStartPayload{
		Room:      s.Snapshot().(protocol.BlackjackSnapshot),
		HouseCard: convert.CardToInfo(s.houseHand[0]),
	}))
	log.Printf("🂡 blackjack round started in room %s (%d betting)", s.room.Key, betting)

	s.scheduleBotTurns()
	return nil
}

// Hit draws one card for the seat; going over 21 forces it to standing
// with a private bust notice.
func (s *Session) Hit(playerID string) error {
	s.room.Lock()
	defer s.room.Unlock()

	if !s.active {
		return apperrors.ErrGameNotStart
	}
	seat := s.seatByID(playerID)
	if seat == nil {
		return apperrors.ErrNotInRoom
	}
	if seat.Standing || seat.Bet == 0 {
		return apperrors.ErrInvalidAction
	}

	c, err := s.deck.Draw()
	if err != nil {
		s.forceReset()
		return apperrors.ErrDeckExhausted
	}
	seat.Hand = append(seat.Hand, c)
	seat.Score = card.Score(seat.Hand)

	if seat.Score > 21 {
		seat.Standing = true
		seat.Player.Send(codec.MustNewMessage(protocol.MsgBust, protocol.BustPayload{Score: seat.Score}))
	}

	s.room.Broadcast(codec.MustNewMessage(protocol.MsgPlayerUpdate, protocol.PlayerUpdatePayload{Player: s.seatInfo(seat)}))

	if s.allSettled() {
		s.resolveLocked()
	}
	return nil
}

// Stand marks the seat as standing; once every betting seat stands the
// round resolves.
func (s *Session) Stand(playerID string) error {
	s.room.Lock()
	defer s.room.Unlock()

	if !s.active {
		return apperrors.ErrGameNotStart
	}
	seat := s.seatByID(playerID)
	if seat == nil {
		return apperrors.ErrNotInRoom
	}

	seat.Standing = true
	s.room.Broadcast(codec.MustNewMessage(protocol.MsgPlayerUpdate, protocol.PlayerUpdatePayload{Player: s.seatInfo(seat)}))

	if s.allSettled() {
		s.resolveLocked()
	}
	return nil
}

// allSettled reports whether every betting seat is done acting.
func (s *Session) allSettled() bool {
	for _, seat := range s.seats {
		if seat.Bet > 0 && !seat.Standing {
			return false
		}
	}
	return true
}

// resolveLocked draws the house to seventeen and settles every betting
// seat: bust loses the debited bet, beating the house pays double, a tie
// pushes the bet back.
func (s *Session) resolveLocked() {
	for s.houseScore < houseStandsAt {
		c, err := s.deck.Draw()
		if err != nil {
			s.forceReset()
			return
		}
		s.houseHand = append(s.houseHand, c)
		s.houseScore = card.Score(s.houseHand)
	}

	for _, seat := range s.seats {
		if seat.Bet == 0 {
			continue
		}
		switch {
		case seat.Score > 21:
			seat.Result = ResultBust
		case s.houseScore > 21 || seat.Score > s.houseScore:
			seat.Player.Chips += seat.Bet * 2
			seat.Result = ResultWin
		case seat.Score == s.houseScore:
			seat.Player.Chips += seat.Bet
			seat.Result = ResultPush
		default:
			seat.Result = ResultLoss
		}
		seat.Bet = 0
	}

	s.active = false

	s.room.Broadcast(codec.MustNewMessage(protocol.MsgGameEnd, protocol.BlackjackEndPayload{
		Room:       s.Snapshot().(protocol.BlackjackSnapshot),
		HouseHand:  convert.CardsToInfos(s.houseHand),
		HouseScore: s.houseScore,
	}))
	log.Printf("🂡 blackjack round resolved in room %s (house %d)", s.room.Key, s.houseScore)
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
	s.houseHand = nil
	s.houseScore = 0
	for _, seat := range s.seats {
		seat.Hand = nil
		seat.Bet = 0
		seat.Score = 0
		seat.Standing = false
		seat.Result = ""
	}
	s.room.Broadcast(codec.MustNewMessage(protocol.MsgGameReset, protocol.RoomUpdatePayload{Room: s.Snapshot()}))
}

// forceReset handles fatal-to-round conditions such as deck exhaustion.
func (s *Session) forceReset() {
	log.Printf("⚠️ blackjack round in room %s force-reset", s.room.Key)
	s.resetLocked()
}

// scheduleBotTurns queues one staggered callback per betting bot. Each
// callback replays the fixed threshold strategy for its bot and, once the
// last seat settles, resolves the round.
func (s *Session) scheduleBotTurns() {
	delay := s.cfg.BotThinkDelay()
	for _, seat := range s.seats {
		if !seat.Player.IsBot || seat.Bet == 0 {
			continue
		}
		seat := seat
		t := time.AfterFunc(delay, func() {
			s.room.Lock()
			defer s.room.Unlock()
			if s.stopped || !s.active {
				return
			}
			s.playBotSeat(seat)
		})
		s.botTimers = append(s.botTimers, t)
		delay += 2 * s.cfg.BotThinkDelay()
	}
}

// playBotSeat runs one bot's whole hand against the house up-card.
func (s *Session) playBotSeat(seat *Seat) {
	if seat.Standing || seat.Bet == 0 || len(s.houseHand) == 0 {
		return
	}
	upValue := s.houseHand[0].Value()

	for !seat.Standing && seat.Score < 21 {
		if bot.DecideBlackjack(seat.Score, upValue) == "hit" {
			c, err := s.deck.Draw()
			if err != nil {
				s.forceReset()
				return
			}
			seat.Hand = append(seat.Hand, c)
			seat.Score = card.Score(seat.Hand)
			if seat.Score >= 21 {
				seat.Standing = true
			}
		} else {
			seat.Standing = true
		}
	}

	s.room.Broadcast(codec.MustNewMessage(protocol.MsgPlayerUpdate, protocol.PlayerUpdatePayload{Player: s.seatInfo(seat)}))

	if s.allSettled() {
		s.resolveLocked()
	}
}
