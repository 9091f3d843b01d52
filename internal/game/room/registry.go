package room

import (
	"log"
	"sync"
	"time"

	"github.com/JackT-C/poker/internal/apperrors"
	"github.com/JackT-C/poker/internal/types"
)

// SessionFactory builds the engine session for a freshly created room.
type SessionFactory func(kind Kind, r *Room) Session

// Registry is the service object owning every live room, keyed by game
// kind and room key. It is constructed once at process start and injected
// into the gateway; nothing reaches it as a global.
type Registry struct {
	newSession SessionFactory
	rooms      map[Kind]map[string]*Room
	mu         sync.RWMutex
}

// NewRegistry creates an empty registry.
func NewRegistry(factory SessionFactory) *Registry {
	rooms := make(map[Kind]map[string]*Room, len(maxPlayers))
	for kind := range maxPlayers {
		rooms[kind] = make(map[string]*Room)
	}
	return &Registry{
		newSession: factory,
		rooms:      rooms,
	}
}

// GetOrCreate returns the room for (kind, key), constructing it with
// game-specific defaults on first join. Idempotent.
func (reg *Registry) GetOrCreate(kind Kind, key string) *Room {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	if r, ok := reg.rooms[kind][key]; ok {
		return r
	}

	r := &Room{
		Kind:      kind,
		Key:       key,
		CreatedAt: time.Now(),
	}
	r.Session = reg.newSession(kind, r)
	reg.rooms[kind][key] = r

	log.Printf("🏠 room %s/%s created", kind, key)
	return r
}

// Get returns the room for (kind, key), nil if absent.
func (reg *Registry) Get(kind Kind, key string) *Room {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	return reg.rooms[kind][key]
}

// Join seats a player in the room. The client is nil for bots.
func (reg *Registry) Join(r *Room, id, name string, client types.ClientInterface, isBot bool) (*Player, error) {
	r.Lock()
	defer r.Unlock()

	if len(r.Players) >= MaxPlayers(r.Kind) {
		return nil, apperrors.ErrRoomFull
	}

	p := &Player{
		ID:     id,
		Name:   name,
		Chips:  StartingChips,
		IsBot:  isBot,
		Client: client,
	}
	r.Players = append(r.Players, p)
	r.Session.PlayerJoined(p)

	if client != nil {
		client.SetRoom(string(r.Kind), r.Key)
	}

	log.Printf("👤 %s joined room %s/%s (seat %d)", name, r.Kind, r.Key, len(r.Players)-1)
	return p, nil
}

// Leave removes a player from the room, lets the engine reconcile any game
// in progress, and discards the room when it empties. A room with zero
// players never persists.
func (reg *Registry) Leave(r *Room, playerID string) *Player {
	r.Lock()

	idx := r.SeatIndex(playerID)
	if idx < 0 {
		r.Unlock()
		return nil
	}
	p := r.Players[idx]
	r.Players = append(r.Players[:idx], r.Players[idx+1:]...)
	r.Session.PlayerLeft(p)

	if p.Client != nil {
		p.Client.SetRoom("", "")
	}

	empty := len(r.Players) == 0
	if empty {
		r.Session.Stop()
	}
	r.Unlock()

	if empty {
		reg.mu.Lock()
		delete(reg.rooms[r.Kind], r.Key)
		reg.mu.Unlock()
		log.Printf("🏠 room %s/%s disbanded", r.Kind, r.Key)
	}

	log.Printf("👋 %s left room %s/%s", p.Name, r.Kind, r.Key)
	return p
}

// RoomCount returns the number of live rooms across all game kinds.
func (reg *Registry) RoomCount() int {
	reg.mu.RLock()
	defer reg.mu.RUnlock()

	count := 0
	for _, byKey := range reg.rooms {
		count += len(byKey)
	}
	return count
}
