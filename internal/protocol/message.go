package protocol

import "encoding/json"

// Message is the envelope for every frame exchanged over the socket.
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// MessageType identifies the operation carried by a Message.
type MessageType string

// Client → server message types.
const (
	// Room operations
	MsgJoinRoom  MessageType = "join_room"  // join (or lazily create) a room
	MsgLeaveRoom MessageType = "leave_room" // leave the current room
	MsgAddBot    MessageType = "add_bot"    // seat a bot in the current room
	MsgStartGame MessageType = "start_game" // start a round (card games)
	MsgResetGame MessageType = "reset_game" // reset the table (card games)

	// Poker
	MsgPokerAction MessageType = "poker_action" // fold / call / raise

	// Blackjack
	MsgPlaceBet MessageType = "place_bet"
	MsgHit      MessageType = "hit"
	MsgStand    MessageType = "stand"

	// Arcade games
	MsgReady       MessageType = "ready"        // ready up for an arcade game
	MsgClickReport MessageType = "click_report" // click-race progress
	MsgPaddleMove  MessageType = "paddle_move"  // paddle y position
	MsgArenaMove   MessageType = "arena_move"   // arena position + aim angle
	MsgArenaShoot  MessageType = "arena_shoot"  // fire a projectile
	MsgTargetHit   MessageType = "target_hit"   // reflex target hit

	// Chat
	MsgChat MessageType = "chat"
)

// Server → client message types.
const (
	MsgConnected  MessageType = "connected"   // connection established
	MsgRoomUpdate MessageType = "room_update" // room snapshot broadcast

	// Chat
	MsgChatMessage MessageType = "chat_message"
	MsgChatSystem  MessageType = "chat_system"

	// Card game flow
	MsgDealCards      MessageType = "deal_cards"      // private hand, owner only
	MsgGameStart      MessageType = "game_start"      // poker round started
	MsgGameUpdate     MessageType = "game_update"     // poker state after an action
	MsgRoundAdvance   MessageType = "round_advance"   // community tranche revealed
	MsgGameEnd        MessageType = "game_end"        // round settled
	MsgBlackjackStart MessageType = "blackjack_start" // blackjack round started
	MsgPlayerUpdate   MessageType = "player_update"   // single seat changed
	MsgBust           MessageType = "bust"            // private bust notice
	MsgGameReset      MessageType = "game_reset"      // table cleared

	// Arcade flow
	MsgCountdown     MessageType = "countdown"      // 3-2-1-GO ticks
	MsgClickProgress MessageType = "click_progress" // click-race standings
	MsgPaddleState   MessageType = "paddle_state"   // ball/paddle/score tick
	MsgArenaStart    MessageType = "arena_start"
	MsgArenaState    MessageType = "arena_state" // per-player arena view
	MsgTargetSpawn   MessageType = "target_spawn"
	MsgTargetState   MessageType = "target_state" // per-player reflex view
	MsgArcadeEnd     MessageType = "arcade_end"   // arcade result + payout

	// Errors
	MsgError MessageType = "error"
)
