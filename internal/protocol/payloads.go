package protocol

// --- Shared DTOs ---

// CardInfo is the wire representation of a single card.
type CardInfo struct {
	Rank  string `json:"rank"`
	Suit  string `json:"suit"`
	Value int    `json:"value"`
}

// HandEvalInfo is the wire representation of a hand evaluation.
type HandEvalInfo struct {
	Rank        int    `json:"rank"` // 0 high card .. 9 royal flush
	Name        string `json:"name"`
	Description string `json:"description"`
}

// --- Client request payloads ---

// JoinRoomPayload asks to join (creating on demand) a room.
type JoinRoomPayload struct {
	RoomKey    string `json:"room_key"`
	Game       string `json:"game"` // poker/blackjack/clickrace/paddle/arena/reflex
	PlayerName string `json:"player_name"`
}

// PokerActionPayload carries a fold/call/raise action.
type PokerActionPayload struct {
	Action string `json:"action"`
	Amount int    `json:"amount,omitempty"` // raise target, total bet this street
}

// PlaceBetPayload carries a blackjack bet.
type PlaceBetPayload struct {
	Amount int `json:"amount"`
}

// ClickReportPayload carries a click-race cumulative click count.
type ClickReportPayload struct {
	Clicks int `json:"clicks"`
}

// PaddleMovePayload carries a paddle position update.
type PaddleMovePayload struct {
	Y float64 `json:"y"`
}

// ArenaMovePayload carries an arena position/aim update.
type ArenaMovePayload struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Angle float64 `json:"angle"`
}

// ArenaShootPayload spawns a projectile at the given origin and angle.
type ArenaShootPayload struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Angle float64 `json:"angle"`
}

// TargetHitPayload reports a reflex target hit and the reaction time.
type TargetHitPayload struct {
	TimeMs float64 `json:"time_ms"`
}

// ChatPayload carries a chat message to the sender's room.
type ChatPayload struct {
	Text string `json:"text"`
}

// --- Server response payloads ---

// ConnectedPayload confirms the connection and assigns an identity.
type ConnectedPayload struct {
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`
}

// RoomUpdatePayload broadcasts a room snapshot, optionally with an
// announcement line.
type RoomUpdatePayload struct {
	Room    any    `json:"room"`
	Message string `json:"message,omitempty"`
}

// ChatMessagePayload relays a chat line to the room.
type ChatMessagePayload struct {
	Sender    string `json:"sender"`
	SenderID  string `json:"sender_id"`
	Text      string `json:"text"`
	Timestamp int64  `json:"timestamp"`
}

// ChatSystemPayload carries a system announcement.
type ChatSystemPayload struct {
	Text string `json:"text"`
}

// DealCardsPayload delivers a private hand to its owner.
type DealCardsPayload struct {
	Hand []CardInfo `json:"hand"`
}

// ErrorPayload reports a rejected operation to the offending client.
type ErrorPayload struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// --- Poker snapshots ---

// PokerSeatInfo is one seat in a poker snapshot. Hole cards are never
// included; they travel via deal_cards to their owner only.
type PokerSeatInfo struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Chips  int    `json:"chips"`
	Bet    int    `json:"bet"`
	Folded bool   `json:"folded"`
	IsBot  bool   `json:"is_bot"`
}

// PokerSnapshot is the broadcastable poker room state.
type PokerSnapshot struct {
	RoomKey    string          `json:"room_key"`
	Players    []PokerSeatInfo `json:"players"`
	Community  []CardInfo      `json:"community"`
	Pot        int             `json:"pot"`
	CurrentBet int             `json:"current_bet"`
	Turn       string          `json:"turn"` // player ID on turn, empty between rounds
	Round      string          `json:"round"`
	Active     bool            `json:"active"`
}

// RevealedHand is one seat's cards shown at round end.
type RevealedHand struct {
	Name       string        `json:"name"`
	Hand       []CardInfo    `json:"hand"`
	Folded     bool          `json:"folded"`
	Evaluation *HandEvalInfo `json:"evaluation,omitempty"`
}

// GameEndPayload announces a settled poker round.
type GameEndPayload struct {
	Winner   string         `json:"winner"`
	HandName string         `json:"hand,omitempty"` // empty when won by fold
	Pot      int            `json:"pot"`
	AllHands []RevealedHand `json:"all_hands"`
}

// --- Blackjack snapshots ---

// BlackjackSeatInfo is one seat in a blackjack snapshot.
type BlackjackSeatInfo struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Chips    int        `json:"chips"`
	Bet      int        `json:"bet"`
	Hand     []CardInfo `json:"hand"`
	Score    int        `json:"score"`
	Standing bool       `json:"standing"`
	Result   string     `json:"result,omitempty"`
	IsBot    bool       `json:"is_bot"`
}

// BlackjackSnapshot is the broadcastable blackjack room state. Only the
// house up-card is exposed while a round is live.
type BlackjackSnapshot struct {
	RoomKey    string              `json:"room_key"`
	Players    []BlackjackSeatInfo `json:"players"`
	HouseCard  *CardInfo           `json:"house_card,omitempty"`
	HouseHand  []CardInfo          `json:"house_hand,omitempty"` // revealed at round end
	HouseScore int                 `json:"house_score,omitempty"`
	Active     bool                `json:"active"`
}

// BlackjackStartPayload announces a started blackjack round.
type BlackjackStartPayload struct {
	Room      BlackjackSnapshot `json:"room"`
	HouseCard CardInfo          `json:"house_card"`
}

// BlackjackEndPayload announces a resolved blackjack round.
type BlackjackEndPayload struct {
	Room       BlackjackSnapshot `json:"room"`
	HouseHand  []CardInfo        `json:"house_hand"`
	HouseScore int               `json:"house_score"`
}

// PlayerUpdatePayload broadcasts a single changed seat.
type PlayerUpdatePayload struct {
	Player BlackjackSeatInfo `json:"player"`
}

// BustPayload tells one player they busted.
type BustPayload struct {
	Score int `json:"score"`
}

// --- Arcade payloads ---

// ArcadeSeatInfo identifies one arcade participant.
type ArcadeSeatInfo struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Ready bool   `json:"ready"`
}

// ArcadeSnapshot is the lobby-state snapshot shared by the arcade games.
type ArcadeSnapshot struct {
	RoomKey string           `json:"room_key"`
	Players []ArcadeSeatInfo `json:"players"`
	Active  bool             `json:"active"`
}

// CountdownPayload carries one countdown tick; 0 means GO.
type CountdownPayload struct {
	Count int `json:"count"`
}

// ClickStanding is one seat's click-race progress.
type ClickStanding struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Clicks int    `json:"clicks"`
}

// ClickProgressPayload broadcasts click-race standings during the window.
type ClickProgressPayload struct {
	Players []ClickStanding `json:"players"`
}

// BallState is the paddle game ball.
type BallState struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	SpeedX float64 `json:"speed_x"`
	SpeedY float64 `json:"speed_y"`
}

// PaddleStatePayload is one paddle-game tick.
type PaddleStatePayload struct {
	Ball     BallState `json:"ball"`
	Paddle1Y float64   `json:"paddle1_y"`
	Paddle2Y float64   `json:"paddle2_y"`
	Score1   int       `json:"score1"`
	Score2   int       `json:"score2"`
}

// ArenaOpponent is another player as seen in an arena_state view.
type ArenaOpponent struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Angle  float64 `json:"angle"`
	Health int     `json:"health"`
}

// BulletState is one live projectile.
type BulletState struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Angle   float64 `json:"angle"`
	Shooter string  `json:"shooter"`
}

// ArenaStatePayload is a per-player arena tick.
type ArenaStatePayload struct {
	Opponents []ArenaOpponent `json:"opponents"`
	Health    int             `json:"health"`
	Kills     int             `json:"kills"`
	Deaths    int             `json:"deaths"`
	Bullets   []BulletState   `json:"bullets"`
}

// TargetSpawnPayload places a new reflex target.
type TargetSpawnPayload struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Radius float64 `json:"radius"`
}

// TargetStatePayload is a per-player reflex standings view.
type TargetStatePayload struct {
	Hits            int     `json:"hits"`
	OpponentHits    int     `json:"opponent_hits"`
	AvgTimeMs       float64 `json:"avg_time_ms"`
	OpponentAvgTime float64 `json:"opponent_avg_time_ms"`
	TimeLeft        int     `json:"time_left"`
}

// ArcadeEndPayload announces an arcade result. Winnings and Cost are from
// the recipient's perspective.
type ArcadeEndPayload struct {
	WinnerID   string  `json:"winner_id"`
	WinnerName string  `json:"winner_name"`
	Winnings   int     `json:"winnings"`
	Cost       int     `json:"cost"`
	Score1     int     `json:"score1,omitempty"`
	Score2     int     `json:"score2,omitempty"`
	Hits       int     `json:"hits,omitempty"`
	AvgTimeMs  float64 `json:"avg_time_ms,omitempty"`
	Kills      int     `json:"kills,omitempty"`
}
