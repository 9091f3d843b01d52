package arcade

import (
	"log"
	"math/rand/v2"

	"github.com/JackT-C/poker/internal/apperrors"
	"github.com/JackT-C/poker/internal/config"
	"github.com/JackT-C/poker/internal/game/room"
	"github.com/JackT-C/poker/internal/protocol"
	"github.com/JackT-C/poker/internal/protocol/codec"
)

// Court geometry and ball physics. The left paddle belongs to seat 0, the
// right paddle to seat 1.
const (
	courtWidth   = 800.0
	courtHeight  = 500.0
	ballRadius   = 8.0
	paddleHeight = 100.0
	paddleEdge   = 20.0 // paddle faces sit this far from each wall

	serveSpeedX   = 5.0
	speedUpFactor = 1.05
	deflectFactor = 0.1
	winningScore  = 11
)

// Paddle is the two-seat ball game: a fixed-rate tick integrates the ball,
// bounces it off walls and paddles, and scores when it leaves the court.
type Paddle struct {
	base

	ball    protocol.BallState
	paddleY [2]float64
	score   [2]int
}

// NewPaddle creates the paddle session for a room.
func NewPaddle(r *room.Room, cfg *config.GameConfig) *Paddle {
	return &Paddle{base: newBase(r, cfg)}
}

func (g *Paddle) PlayerJoined(p *room.Player) {}

// PlayerLeft cancels a running match.
func (g *Paddle) PlayerLeft(p *room.Player) {
	delete(g.ready, p.ID)
	if g.active {
		g.active = false
		g.clearReady()
		g.room.SnapshotUpdate("")
	}
}

func (g *Paddle) Stop() { g.stop() }

func (g *Paddle) Snapshot() any { return g.snapshot() }

// Ready marks the seat ready; with both seats ready the countdown runs and
// the tick loop starts on GO.
func (g *Paddle) Ready(playerID string) error {
	g.room.Lock()
	defer g.room.Unlock()

	all, err := g.markReady(playerID, room.MaxPlayers(room.KindPaddle))
	if err != nil {
		return err
	}
	if !all {
		return nil
	}

	g.countdown(func() {
		g.active = true
		g.score = [2]int{}
		g.paddleY = [2]float64{courtHeight/2 - paddleHeight/2, courtHeight/2 - paddleHeight/2}
		g.serve()
		g.runTicker(g.tick)
		log.Printf("🏓 paddle match started in room %s", g.room.Key)
	})
	return nil
}

// Move sets the seat's paddle position, clamped to the court.
func (g *Paddle) Move(playerID string, y float64) error {
	g.room.Lock()
	defer g.room.Unlock()

	if !g.active {
		return apperrors.ErrGameNotStart
	}
	idx := g.room.SeatIndex(playerID)
	if idx < 0 || idx > 1 {
		return apperrors.ErrNotInRoom
	}

	if y < 0 {
		y = 0
	}
	if y > courtHeight-paddleHeight {
		y = courtHeight - paddleHeight
	}
	g.paddleY[idx] = y
	return nil
}

// serve centres the ball with a random horizontal direction and a random
// vertical drift.
func (g *Paddle) serve() {
	vx := serveSpeedX
	if rand.IntN(2) == 0 {
		vx = -vx
	}
	g.ball = protocol.BallState{
		X:      courtWidth / 2,
		Y:      courtHeight / 2,
		SpeedX: vx,
		SpeedY: rand.Float64()*6 - 3,
	}
}

// tick advances the ball one step. Runs under the room lock.
func (g *Paddle) tick() bool {
	g.ball.X += g.ball.SpeedX
	g.ball.Y += g.ball.SpeedY

	if g.ball.Y-ballRadius < 0 || g.ball.Y+ballRadius > courtHeight {
		g.ball.SpeedY = -g.ball.SpeedY
	}

	// Paddle faces: a hit reverses and speeds up the ball, and the contact
	// offset from the paddle centre sets the new vertical drift.
	if g.ball.SpeedX < 0 && g.ball.X-ballRadius <= paddleEdge &&
		g.ball.Y >= g.paddleY[0] && g.ball.Y <= g.paddleY[0]+paddleHeight {
		g.bounceOff(g.paddleY[0])
	}
	if g.ball.SpeedX > 0 && g.ball.X+ballRadius >= courtWidth-paddleEdge &&
		g.ball.Y >= g.paddleY[1] && g.ball.Y <= g.paddleY[1]+paddleHeight {
		g.bounceOff(g.paddleY[1])
	}

	if g.ball.X < 0 {
		g.score[1]++
		g.serve()
	} else if g.ball.X > courtWidth {
		g.score[0]++
		g.serve()
	}

	if g.score[0] >= winningScore || g.score[1] >= winningScore {
		g.finish()
		return false
	}

	g.room.Broadcast(codec.MustNewMessage(protocol.MsgPaddleState, protocol.PaddleStatePayload{
		Ball:     g.ball,
		Paddle1Y: g.paddleY[0],
		Paddle2Y: g.paddleY[1],
		Score1:   g.score[0],
		Score2:   g.score[1],
	}))
	return true
}

func (g *Paddle) bounceOff(paddleY float64) {
	g.ball.SpeedX = -g.ball.SpeedX * speedUpFactor
	g.ball.SpeedY = (g.ball.Y - (paddleY + paddleHeight/2)) * deflectFactor
}

// finish settles the match for the first seat to eleven.
func (g *Paddle) finish() {
	g.active = false
	g.clearReady()

	idx := 0
	if g.score[1] > g.score[0] {
		idx = 1
	}
	if idx >= len(g.room.Players) {
		return
	}
	winner := g.room.Players[idx]

	g.payout(winner, winReward, lossForfeit, func(p *room.Player) protocol.ArcadeEndPayload {
		return protocol.ArcadeEndPayload{Score1: g.score[0], Score2: g.score[1]}
	})
	log.Printf("🏓 %s wins the paddle match in room %s (%d-%d)", winner.Name, g.room.Key, g.score[0], g.score[1])
}
