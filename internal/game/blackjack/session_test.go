package blackjack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JackT-C/poker/internal/apperrors"
	"github.com/JackT-C/poker/internal/config"
	"github.com/JackT-C/poker/internal/game/card"
	"github.com/JackT-C/poker/internal/game/room"
)

func newTestSession(t *testing.T, names ...string) (*Session, *room.Room) {
	t.Helper()
	r := &room.Room{Kind: room.KindBlackjack, Key: "test"}
	cfg := config.Default()
	s := NewSession(r, &cfg.Game)
	r.Session = s
	for _, name := range names {
		p := &room.Player{ID: name, Name: name, Chips: room.StartingChips, IsBot: false}
		r.Players = append(r.Players, p)
		s.PlayerJoined(p)
	}
	t.Cleanup(func() {
		r.Lock()
		s.Stop()
		r.Unlock()
	})
	return s, r
}

func TestPlaceBet(t *testing.T) {
	s, r := newTestSession(t, "alice")
	p := r.Players[0]

	require.NoError(t, s.PlaceBet("alice", 100))
	assert.Equal(t, 900, p.Chips)
	assert.Equal(t, 100, s.seats[0].Bet)

	// a replaced bet refunds the previous one first
	require.NoError(t, s.PlaceBet("alice", 250))
	assert.Equal(t, 750, p.Chips)
	assert.Equal(t, 250, s.seats[0].Bet)

	assert.ErrorIs(t, s.PlaceBet("alice", 0), apperrors.ErrInvalidBet)
	assert.ErrorIs(t, s.PlaceBet("alice", room.StartingChips+1), apperrors.ErrInsufficientChips)
	assert.ErrorIs(t, s.PlaceBet("ghost", 50), apperrors.ErrNotInRoom)
}

func TestStartDealsToBettingSeatsOnly(t *testing.T) {
	s, _ := newTestSession(t, "alice", "bob")
	require.NoError(t, s.PlaceBet("alice", 100))

	require.NoError(t, s.Start())

	assert.True(t, s.active)
	assert.Len(t, s.houseHand, 2)
	assert.Len(t, s.seats[0].Hand, 2)
	assert.Equal(t, card.Score(s.seats[0].Hand), s.seats[0].Score)
	assert.Empty(t, s.seats[1].Hand, "seat without a bet is dealt nothing")

	assert.ErrorIs(t, s.Start(), apperrors.ErrGameStarted)
	assert.ErrorIs(t, s.PlaceBet("alice", 50), apperrors.ErrGameStarted)
}

func TestStartRequiresABet(t *testing.T) {
	s, _ := newTestSession(t, "alice")
	assert.ErrorIs(t, s.Start(), apperrors.ErrNotEnoughPlayers)
}

func TestStartAutoBetsBots(t *testing.T) {
	s, r := newTestSession(t, "alice")
	botPlayer := &room.Player{ID: "bot_1", Name: "Alice Bot", Chips: room.StartingChips, IsBot: true}
	r.Players = append(r.Players, botPlayer)
	s.PlayerJoined(botPlayer)

	require.NoError(t, s.PlaceBet("alice", 100))
	require.NoError(t, s.Start())

	botSeat := s.seats[1]
	assert.GreaterOrEqual(t, botSeat.Bet, 50)
	assert.Less(t, botSeat.Bet, 250)
	assert.Equal(t, room.StartingChips-botSeat.Bet, botPlayer.Chips)
}

func TestHitBustForcesStanding(t *testing.T) {
	s, _ := newTestSession(t, "alice")
	require.NoError(t, s.PlaceBet("alice", 100))
	require.NoError(t, s.Start())

	seat := s.seats[0]
	seat.Hand = []card.Card{
		{Rank: card.RankK, Suit: card.Spade},
		{Rank: card.RankQ, Suit: card.Heart},
	}
	seat.Score = card.Score(seat.Hand)
	// any draw busts a hard twenty
	require.NoError(t, s.Hit("alice"))

	assert.Greater(t, seat.Score, 21)
	assert.True(t, seat.Standing)
	assert.False(t, s.active, "lone busted seat settles the round")
	assert.Equal(t, ResultBust, seat.Result)
}

func TestHitRejectedWhenNotPlaying(t *testing.T) {
	s, _ := newTestSession(t, "alice", "bob")
	assert.ErrorIs(t, s.Hit("alice"), apperrors.ErrGameNotStart)

	require.NoError(t, s.PlaceBet("alice", 100))
	require.NoError(t, s.Start())
	assert.ErrorIs(t, s.Hit("bob"), apperrors.ErrInvalidAction)
}

func TestResolveSettlement(t *testing.T) {
	s, r := newTestSession(t, "winner", "pusher", "loser")
	for _, id := range []string{"winner", "pusher", "loser"} {
		require.NoError(t, s.PlaceBet(id, 100))
	}
	require.NoError(t, s.Start())

	// pin the table: house holds eighteen and will not draw
	s.houseHand = []card.Card{
		{Rank: card.RankK, Suit: card.Spade},
		{Rank: card.Rank8, Suit: card.Heart},
	}
	s.houseScore = card.Score(s.houseHand)
	require.Equal(t, 18, s.houseScore)

	fix := func(seat *Seat, a, b card.Rank) {
		seat.Hand = []card.Card{{Rank: a, Suit: card.Club}, {Rank: b, Suit: card.Diamond}}
		seat.Score = card.Score(seat.Hand)
	}
	fix(s.seats[0], card.RankK, card.RankQ) // 20 beats 18
	fix(s.seats[1], card.RankK, card.Rank8) // 18 pushes
	fix(s.seats[2], card.RankK, card.Rank7) // 17 loses

	s.seats[0].Standing = true
	s.seats[1].Standing = true
	require.NoError(t, s.Stand("loser"))

	assert.False(t, s.active)
	assert.Equal(t, ResultWin, s.seats[0].Result)
	assert.Equal(t, ResultPush, s.seats[1].Result)
	assert.Equal(t, ResultLoss, s.seats[2].Result)

	assert.Equal(t, room.StartingChips+100, r.Players[0].Chips)
	assert.Equal(t, room.StartingChips, r.Players[1].Chips)
	assert.Equal(t, room.StartingChips-100, r.Players[2].Chips)

	for _, seat := range s.seats {
		assert.Zero(t, seat.Bet, "bets clear at settlement")
	}
}

func TestHouseDrawsToSeventeen(t *testing.T) {
	s, _ := newTestSession(t, "alice")
	require.NoError(t, s.PlaceBet("alice", 100))
	require.NoError(t, s.Start())

	s.houseHand = []card.Card{
		{Rank: card.Rank2, Suit: card.Spade},
		{Rank: card.Rank3, Suit: card.Heart},
	}
	s.houseScore = card.Score(s.houseHand)
	s.seats[0].Hand = []card.Card{
		{Rank: card.RankK, Suit: card.Club},
		{Rank: card.RankQ, Suit: card.Diamond},
	}
	s.seats[0].Score = 20

	require.NoError(t, s.Stand("alice"))

	assert.GreaterOrEqual(t, s.houseScore, 17)
	assert.Greater(t, len(s.houseHand), 2)
}

func TestLeaverClosesRound(t *testing.T) {
	s, r := newTestSession(t, "alice", "bob")
	require.NoError(t, s.PlaceBet("alice", 100))
	require.NoError(t, s.PlaceBet("bob", 100))
	require.NoError(t, s.Start())

	require.NoError(t, s.Stand("alice"))
	assert.True(t, s.active, "bob is still acting")

	r.Lock()
	bob := r.Players[1]
	r.Players = r.Players[:1]
	s.PlayerLeft(bob)
	r.Unlock()

	assert.False(t, s.active, "last acting seat leaving resolves the round")
	assert.Len(t, s.seats, 1)
}

func TestResetClearsTable(t *testing.T) {
	s, _ := newTestSession(t, "alice")
	require.NoError(t, s.PlaceBet("alice", 100))
	require.NoError(t, s.Start())

	require.NoError(t, s.Reset())

	assert.False(t, s.active)
	assert.Empty(t, s.houseHand)
	assert.Empty(t, s.seats[0].Hand)
	assert.Zero(t, s.seats[0].Bet)
}
