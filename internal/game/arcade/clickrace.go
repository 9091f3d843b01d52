package arcade

import (
	"log"

	"github.com/JackT-C/poker/internal/apperrors"
	"github.com/JackT-C/poker/internal/config"
	"github.com/JackT-C/poker/internal/game/room"
	"github.com/JackT-C/poker/internal/protocol"
	"github.com/JackT-C/poker/internal/protocol/codec"
)

// ClickRace is the two-seat mash game: a countdown opens a fixed window
// and the higher click count takes the reward.
type ClickRace struct {
	base
	clicks map[string]int
}

// NewClickRace creates the click-race session for a room.
func NewClickRace(r *room.Room, cfg *config.GameConfig) *ClickRace {
	return &ClickRace{base: newBase(r, cfg), clicks: make(map[string]int)}
}

func (g *ClickRace) PlayerJoined(p *room.Player) {}

// PlayerLeft cancels a running race; a walkover win makes mashing alone
// pointless.
func (g *ClickRace) PlayerLeft(p *room.Player) {
	delete(g.ready, p.ID)
	delete(g.clicks, p.ID)
	if g.active {
		g.abort()
	}
}

func (g *ClickRace) Stop() { g.stop() }

func (g *ClickRace) Snapshot() any { return g.snapshot() }

// Ready marks the seat ready; when both seats are, the countdown starts.
func (g *ClickRace) Ready(playerID string) error {
	g.room.Lock()
	defer g.room.Unlock()

	all, err := g.markReady(playerID, room.MaxPlayers(room.KindClickRace))
	if err != nil {
		return err
	}
	if !all {
		return nil
	}

	g.countdown(func() {
		g.active = true
		g.clicks = make(map[string]int)
		g.after(g.cfg.ClickWindow(), g.finish)
		log.Printf("🖱️ click race open in room %s", g.room.Key)
	})
	return nil
}

// Report stores a seat's running click count. Counts only move up, so a
// stale or replayed report cannot lower a score.
func (g *ClickRace) Report(playerID string, count int) error {
	g.room.Lock()
	defer g.room.Unlock()

	if !g.active {
		return apperrors.ErrGameNotStart
	}
	if g.room.PlayerByID(playerID) == nil {
		return apperrors.ErrNotInRoom
	}

	if count > g.clicks[playerID] {
		g.clicks[playerID] = count
	}

	standings := make([]protocol.ClickStanding, len(g.room.Players))
	for i, p := range g.room.Players {
		standings[i] = protocol.ClickStanding{ID: p.ID, Name: p.Name, Clicks: g.clicks[p.ID]}
	}
	g.room.Broadcast(codec.MustNewMessage(protocol.MsgClickProgress, protocol.ClickProgressPayload{Players: standings}))
	return nil
}

// finish closes the window and settles. On a tie the first seat wins.
func (g *ClickRace) finish() {
	if !g.active {
		return
	}
	g.active = false
	g.clearReady()

	var winner *room.Player
	for _, p := range g.room.Players {
		if winner == nil || g.clicks[p.ID] > g.clicks[winner.ID] {
			winner = p
		}
	}
	if winner == nil {
		return
	}

	g.payout(winner, winReward, lossForfeit, func(p *room.Player) protocol.ArcadeEndPayload {
		return protocol.ArcadeEndPayload{Hits: g.clicks[p.ID]}
	})
	log.Printf("🖱️ %s wins the click race in room %s (%d clicks)", winner.Name, g.room.Key, g.clicks[winner.ID])
}

// abort ends a race without payout.
func (g *ClickRace) abort() {
	g.active = false
	g.clearReady()
	if g.timer != nil {
		g.timer.Stop()
		g.timer = nil
	}
	g.room.SnapshotUpdate("")
}
