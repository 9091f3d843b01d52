// Package arcade implements the head-to-head real-time games: click race,
// paddle, arena, and reflex. They share a ready handshake, a 3-2-1-GO
// countdown, and a per-room ticker goroutine that re-checks the game state
// under the room lock on every tick.
package arcade

import (
	"time"

	"github.com/JackT-C/poker/internal/apperrors"
	"github.com/JackT-C/poker/internal/config"
	"github.com/JackT-C/poker/internal/game/room"
	"github.com/JackT-C/poker/internal/protocol"
	"github.com/JackT-C/poker/internal/protocol/codec"
)

// Entry stakes for the winner-takes bonus games.
const (
	winReward   = 100
	lossForfeit = 50
	potStake    = 100 // arena and reflex play for half the pot each way
)

const countdownFrom = 3

// base carries the state shared by every arcade session: the ready
// handshake and countdown plus lifecycle flags. Embedding sessions guard
// it with the room lock.
type base struct {
	room *room.Room
	cfg  *config.GameConfig

	ready   map[string]bool
	active  bool
	stopped bool

	timer *time.Timer // pending countdown step or window deadline
}

func newBase(r *room.Room, cfg *config.GameConfig) base {
	return base{room: r, cfg: cfg, ready: make(map[string]bool)}
}

// markReady flags a seat as ready and reports whether the whole room is.
// A full room of ready seats is the start condition for every arcade game.
func (b *base) markReady(playerID string, minPlayers int) (bool, error) {
	if b.active {
		return false, apperrors.ErrGameStarted
	}
	if b.room.PlayerByID(playerID) == nil {
		return false, apperrors.ErrNotInRoom
	}
	b.ready[playerID] = true
	b.room.SnapshotUpdate("")

	if len(b.room.Players) < minPlayers {
		return false, nil
	}
	for _, p := range b.room.Players {
		if !b.ready[p.ID] {
			return false, nil
		}
	}
	return true, nil
}

// clearReady resets the handshake after a game ends or a player leaves.
func (b *base) clearReady() {
	b.ready = make(map[string]bool)
}

// snapshot is the shared lobby view.
func (b *base) snapshot() protocol.ArcadeSnapshot {
	snap := protocol.ArcadeSnapshot{
		RoomKey: b.room.Key,
		Players: make([]protocol.ArcadeSeatInfo, len(b.room.Players)),
		Active:  b.active,
	}
	for i, p := range b.room.Players {
		snap.Players[i] = protocol.ArcadeSeatInfo{ID: p.ID, Name: p.Name, Ready: b.ready[p.ID]}
	}
	return snap
}

// countdown broadcasts 3, 2, 1 at one-second intervals and then a zero
// "GO" tick, after which begin runs under the room lock. Called with the
// lock held.
func (b *base) countdown(begin func()) {
	b.step(countdownFrom, begin)
}

func (b *base) step(n int, begin func()) {
	b.room.Broadcast(codec.MustNewMessage(protocol.MsgCountdown, protocol.CountdownPayload{Count: n}))
	if n == 0 {
		begin()
		return
	}
	b.timer = time.AfterFunc(time.Second, func() {
		b.room.Lock()
		defer b.room.Unlock()
		if b.stopped {
			return
		}
		b.step(n-1, begin)
	})
}

// after runs fn under the room lock once the delay passes, unless the
// session was stopped meanwhile.
func (b *base) after(d time.Duration, fn func()) {
	b.timer = time.AfterFunc(d, func() {
		b.room.Lock()
		defer b.room.Unlock()
		if b.stopped {
			return
		}
		fn()
	})
}

// runTicker drives a fixed-rate game loop in its own goroutine. Each tick
// takes the room lock, re-checks that the game is still live, and applies
// tick; the goroutine exits as soon as tick returns false or the session
// stops.
func (b *base) runTicker(tick func() bool) {
	interval := b.cfg.TickInterval()
	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		for range t.C {
			b.room.Lock()
			if b.stopped || !b.active {
				b.room.Unlock()
				return
			}
			alive := tick()
			b.room.Unlock()
			if !alive {
				return
			}
		}
	}()
}

// stop flips the lifecycle flags and cancels pending timers. Tickers see
// the flags on their next tick and exit.
func (b *base) stop() {
	b.stopped = true
	b.active = false
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
}

// payout settles a winner-takes bonus game and tells each seat the result
// from its own point of view.
func (b *base) payout(winner *room.Player, reward, forfeit int, detail func(p *room.Player) protocol.ArcadeEndPayload) {
	for _, p := range b.room.Players {
		end := detail(p)
		end.WinnerID = winner.ID
		end.WinnerName = winner.Name
		if p == winner {
			p.Chips += reward
			end.Winnings = reward
		} else {
			p.Chips -= forfeit
			end.Cost = forfeit
		}
		p.Send(codec.MustNewMessage(protocol.MsgArcadeEnd, end))
	}
}
