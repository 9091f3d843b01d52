package arcade

import (
	"log"
	"math"
	"math/rand/v2"

	"github.com/JackT-C/poker/internal/apperrors"
	"github.com/JackT-C/poker/internal/config"
	"github.com/JackT-C/poker/internal/game/room"
	"github.com/JackT-C/poker/internal/protocol"
	"github.com/JackT-C/poker/internal/protocol/codec"
)

// Arena field and combat constants.
const (
	arenaWidth  = 800.0
	arenaHeight = 600.0

	bulletStep   = 10.0
	hitRadius    = 20.0
	bulletDamage = 20
	fullHealth   = 100
	killTarget   = 10
)

// fighter is one arena combatant's live state.
type fighter struct {
	player *room.Player
	x, y   float64
	angle  float64
	health int
	kills  int
	deaths int
}

// Arena is the up-to-four-seat shooter: a fixed-rate tick advances
// bullets, applies damage, and ends the match at ten kills.
type Arena struct {
	base

	fighters map[string]*fighter
	bullets  []protocol.BulletState
}

// NewArena creates the arena session for a room.
func NewArena(r *room.Room, cfg *config.GameConfig) *Arena {
	return &Arena{base: newBase(r, cfg), fighters: make(map[string]*fighter)}
}

func (g *Arena) PlayerJoined(p *room.Player) {}

// PlayerLeft removes the fighter; a lone survivor ends the match.
func (g *Arena) PlayerLeft(p *room.Player) {
	delete(g.ready, p.ID)
	delete(g.fighters, p.ID)
	if g.active && len(g.fighters) <= 1 {
		g.active = false
		g.clearReady()
		g.room.SnapshotUpdate("")
	}
}

func (g *Arena) Stop() { g.stop() }

func (g *Arena) Snapshot() any { return g.snapshot() }

// corner spawn points, one per seat.
var spawnCorners = [][2]float64{
	{50, 50},
	{arenaWidth - 50, 50},
	{50, arenaHeight - 50},
	{arenaWidth - 50, arenaHeight - 50},
}

// Ready marks the seat ready; once every seat is (two minimum), fighters
// spawn in the corners and the tick loop starts.
func (g *Arena) Ready(playerID string) error {
	g.room.Lock()
	defer g.room.Unlock()

	all, err := g.markReady(playerID, 2)
	if err != nil {
		return err
	}
	if !all {
		return nil
	}

	g.active = true
	g.bullets = nil
	g.fighters = make(map[string]*fighter)
	for i, p := range g.room.Players {
		corner := spawnCorners[i%len(spawnCorners)]
		g.fighters[p.ID] = &fighter{player: p, x: corner[0], y: corner[1], health: fullHealth}
	}

	g.room.Broadcast(codec.MustNewMessage(protocol.MsgArenaStart, protocol.RoomUpdatePayload{Room: g.snapshot()}))
	g.runTicker(g.tick)
	log.Printf("🔫 arena match started in room %s (%d fighters)", g.room.Key, len(g.fighters))
	return nil
}

// Move updates the seat's position and aim, clamped to the field.
func (g *Arena) Move(playerID string, x, y, angle float64) error {
	g.room.Lock()
	defer g.room.Unlock()

	if !g.active {
		return apperrors.ErrGameNotStart
	}
	f, ok := g.fighters[playerID]
	if !ok {
		return apperrors.ErrNotInRoom
	}

	f.x = clamp(x, 0, arenaWidth)
	f.y = clamp(y, 0, arenaHeight)
	f.angle = angle
	return nil
}

// Shoot spawns a bullet at the given muzzle position and heading.
func (g *Arena) Shoot(playerID string, x, y, angle float64) error {
	g.room.Lock()
	defer g.room.Unlock()

	if !g.active {
		return apperrors.ErrGameNotStart
	}
	if _, ok := g.fighters[playerID]; !ok {
		return apperrors.ErrNotInRoom
	}

	g.bullets = append(g.bullets, protocol.BulletState{X: x, Y: y, Angle: angle, Shooter: playerID})
	return nil
}

// tick advances every bullet one step and resolves hits. Runs under the
// room lock.
func (g *Arena) tick() bool {
	alive := g.bullets[:0]
	for _, b := range g.bullets {
		b.X += bulletStep * math.Cos(b.Angle)
		b.Y += bulletStep * math.Sin(b.Angle)
		if b.X < 0 || b.X > arenaWidth || b.Y < 0 || b.Y > arenaHeight {
			continue
		}
		if g.resolveHit(b) {
			continue
		}
		alive = append(alive, b)
	}
	g.bullets = alive

	for _, f := range g.fighters {
		if f.kills >= killTarget {
			g.finish(f)
			return false
		}
	}

	g.broadcastViews()
	return true
}

// resolveHit applies bullet damage to the first struck fighter, handling
// the kill/respawn cycle. Reports whether the bullet connected.
func (g *Arena) resolveHit(b protocol.BulletState) bool {
	for id, f := range g.fighters {
		if id == b.Shooter {
			continue
		}
		if math.Hypot(f.x-b.X, f.y-b.Y) > hitRadius {
			continue
		}

		f.health -= bulletDamage
		if f.health <= 0 {
			f.deaths++
			f.health = fullHealth
			f.x = rand.Float64() * arenaWidth
			f.y = rand.Float64() * arenaHeight
			if shooter, ok := g.fighters[b.Shooter]; ok {
				shooter.kills++
			}
		}
		return true
	}
	return false
}

// broadcastViews sends each fighter a personal view: opponents in full,
// own vitals, and the live bullets.
func (g *Arena) broadcastViews() {
	for id, f := range g.fighters {
		view := protocol.ArenaStatePayload{
			Health:  f.health,
			Kills:   f.kills,
			Deaths:  f.deaths,
			Bullets: g.bullets,
		}
		for oid, o := range g.fighters {
			if oid == id {
				continue
			}
			view.Opponents = append(view.Opponents, protocol.ArenaOpponent{
				ID: oid, Name: o.player.Name, X: o.x, Y: o.y, Angle: o.angle, Health: o.health,
			})
		}
		f.player.Send(codec.MustNewMessage(protocol.MsgArenaState, view))
	}
}

// finish pays the victor half the pot and charges each loser the same.
func (g *Arena) finish(winner *fighter) {
	g.active = false
	g.clearReady()

	g.payout(winner.player, potStake/2, potStake/2, func(p *room.Player) protocol.ArcadeEndPayload {
		kills := 0
		if f, ok := g.fighters[p.ID]; ok {
			kills = f.kills
		}
		return protocol.ArcadeEndPayload{Kills: kills}
	})
	log.Printf("🔫 %s wins the arena in room %s (%d kills)", winner.player.Name, g.room.Key, winner.kills)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
