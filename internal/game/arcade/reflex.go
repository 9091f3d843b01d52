package arcade

import (
	"log"
	"math/rand/v2"
	"time"

	"github.com/JackT-C/poker/internal/apperrors"
	"github.com/JackT-C/poker/internal/config"
	"github.com/JackT-C/poker/internal/game/room"
	"github.com/JackT-C/poker/internal/protocol"
	"github.com/JackT-C/poker/internal/protocol/codec"
)

// Target placement bounds and the hit goal.
const (
	targetRadius = 30.0
	targetMinX   = 50.0
	targetMaxX   = 750.0
	targetMinY   = 50.0
	targetMaxY   = 550.0
	hitGoal      = 20
)

// aim is one seat's reflex tally.
type aim struct {
	hits        int
	totalTimeMs float64
}

// Reflex is the two-seat aim trainer: one shared target at a time, each
// hit respawns it, and the higher tally when the clock runs out wins.
type Reflex struct {
	base

	scores   map[string]*aim
	deadline time.Time
	secTimer *time.Timer
}

// NewReflex creates the reflex session for a room.
func NewReflex(r *room.Room, cfg *config.GameConfig) *Reflex {
	return &Reflex{base: newBase(r, cfg), scores: make(map[string]*aim)}
}

func (g *Reflex) PlayerJoined(p *room.Player) {}

// PlayerLeft cancels a running game.
func (g *Reflex) PlayerLeft(p *room.Player) {
	delete(g.ready, p.ID)
	delete(g.scores, p.ID)
	if g.active {
		g.active = false
		g.clearReady()
		g.stopSecTimer()
		g.room.SnapshotUpdate("")
	}
}

func (g *Reflex) Stop() {
	g.stop()
	g.stopSecTimer()
}

func (g *Reflex) Snapshot() any { return g.snapshot() }

func (g *Reflex) stopSecTimer() {
	if g.secTimer != nil {
		g.secTimer.Stop()
		g.secTimer = nil
	}
}

// Ready marks the seat ready; with both seats ready the countdown runs,
// then the play window opens with the first target.
func (g *Reflex) Ready(playerID string) error {
	g.room.Lock()
	defer g.room.Unlock()

	all, err := g.markReady(playerID, room.MaxPlayers(room.KindReflex))
	if err != nil {
		return err
	}
	if !all {
		return nil
	}

	g.countdown(func() {
		g.active = true
		g.scores = make(map[string]*aim)
		for _, p := range g.room.Players {
			g.scores[p.ID] = &aim{}
		}
		g.deadline = time.Now().Add(g.cfg.ReflexTime())
		g.spawnTarget()
		g.tickSecond()
		log.Printf("🎯 reflex game started in room %s", g.room.Key)
	})
	return nil
}

// Hit records a target hit with the client-measured reaction time, pushes
// fresh standings to both seats, and respawns the target. Reaching the
// hit goal ends the game early.
func (g *Reflex) Hit(playerID string, timeMs float64) error {
	g.room.Lock()
	defer g.room.Unlock()

	if !g.active {
		return apperrors.ErrGameNotStart
	}
	score, ok := g.scores[playerID]
	if !ok {
		return apperrors.ErrNotInRoom
	}

	score.hits++
	score.totalTimeMs += timeMs

	if score.hits >= hitGoal {
		g.finish()
		return nil
	}

	g.sendStandings()
	g.spawnTarget()
	return nil
}

// spawnTarget places the next shared target at a random position.
func (g *Reflex) spawnTarget() {
	g.room.Broadcast(codec.MustNewMessage(protocol.MsgTargetSpawn, protocol.TargetSpawnPayload{
		X:      targetMinX + rand.Float64()*(targetMaxX-targetMinX),
		Y:      targetMinY + rand.Float64()*(targetMaxY-targetMinY),
		Radius: targetRadius,
	}))
}

// tickSecond re-arms a one-second timer that keeps both seats' clocks in
// sync and ends the game at the deadline.
func (g *Reflex) tickSecond() {
	g.secTimer = time.AfterFunc(time.Second, func() {
		g.room.Lock()
		defer g.room.Unlock()
		if g.stopped || !g.active {
			return
		}
		if !time.Now().Before(g.deadline) {
			g.finish()
			return
		}
		g.sendStandings()
		g.tickSecond()
	})
}

// sendStandings gives each seat its own-versus-opponent view.
func (g *Reflex) sendStandings() {
	left := int(time.Until(g.deadline).Seconds())
	if left < 0 {
		left = 0
	}
	for _, p := range g.room.Players {
		own := g.scores[p.ID]
		if own == nil {
			continue
		}
		view := protocol.TargetStatePayload{
			Hits:      own.hits,
			AvgTimeMs: avgTime(own),
			TimeLeft:  left,
		}
		for id, other := range g.scores {
			if id == p.ID {
				continue
			}
			view.OpponentHits = other.hits
			view.OpponentAvgTime = avgTime(other)
		}
		p.Send(codec.MustNewMessage(protocol.MsgTargetState, view))
	}
}

func avgTime(a *aim) float64 {
	if a.hits == 0 {
		return 0
	}
	return a.totalTimeMs / float64(a.hits)
}

// finish settles for the higher tally; the first seat keeps ties.
func (g *Reflex) finish() {
	g.active = false
	g.clearReady()
	g.stopSecTimer()

	var winner *room.Player
	for _, p := range g.room.Players {
		if g.scores[p.ID] == nil {
			continue
		}
		if winner == nil || g.scores[p.ID].hits > g.scores[winner.ID].hits {
			winner = p
		}
	}
	if winner == nil {
		return
	}

	g.payout(winner, potStake/2, potStake/2, func(p *room.Player) protocol.ArcadeEndPayload {
		score := g.scores[p.ID]
		if score == nil {
			return protocol.ArcadeEndPayload{}
		}
		return protocol.ArcadeEndPayload{Hits: score.hits, AvgTimeMs: avgTime(score)}
	})
	log.Printf("🎯 %s wins the reflex game in room %s (%d hits)", winner.Name, g.room.Key, g.scores[winner.ID].hits)
}
