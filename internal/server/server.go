// Package server is the WebSocket gateway: it owns the connection
// registry, upgrades sockets, and wires the room registry, account store,
// and REST layer together.
package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"

	"github.com/JackT-C/poker/internal/api"
	"github.com/JackT-C/poker/internal/config"
	"github.com/JackT-C/poker/internal/game/arcade"
	"github.com/JackT-C/poker/internal/game/blackjack"
	"github.com/JackT-C/poker/internal/game/holdem"
	"github.com/JackT-C/poker/internal/game/room"
	"github.com/JackT-C/poker/internal/payment"
	"github.com/JackT-C/poker/internal/protocol"
	"github.com/JackT-C/poker/internal/protocol/codec"
	"github.com/JackT-C/poker/internal/server/handler"
	"github.com/JackT-C/poker/internal/server/storage"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // restrict origins before exposing publicly
	},
}

// Server is the game gateway.
type Server struct {
	config   *config.Config
	redis    *redis.Client
	store    *storage.RedisStore
	registry *room.Registry
	handler  *handler.Handler
	router   *gin.Engine

	clients   map[string]*Client
	clientsMu sync.RWMutex

	httpServer *http.Server
}

// NewGameSession is the registry factory: it picks the engine for a
// room's game kind.
func NewGameSession(cfg *config.GameConfig) room.SessionFactory {
	return func(kind room.Kind, r *room.Room) room.Session {
		switch kind {
		case room.KindPoker:
			return holdem.NewSession(r, cfg)
		case room.KindBlackjack:
			return blackjack.NewSession(r, cfg)
		case room.KindClickRace:
			return arcade.NewClickRace(r, cfg)
		case room.KindPaddle:
			return arcade.NewPaddle(r, cfg)
		case room.KindArena:
			return arcade.NewArena(r, cfg)
		default:
			return arcade.NewReflex(r, cfg)
		}
	}
}

// New builds the server and verifies the Redis connection.
func New(cfg *config.Config) (*Server, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}

	s := &Server{
		config:   cfg,
		redis:    rdb,
		store:    storage.NewRedisStore(rdb),
		registry: room.NewRegistry(NewGameSession(&cfg.Game)),
		clients:  make(map[string]*Client),
	}
	s.handler = handler.New(handler.Deps{Registry: s.registry})

	rest := api.New(api.Deps{
		Store:    s.store,
		Payments: payment.NewHTTPProvider(cfg.Payment.ProviderURL),
	})
	s.router = api.NewRouter(rest)
	s.router.GET("/ws", func(c *gin.Context) {
		s.handleWebSocket(c.Writer, c.Request)
	})

	return s, nil
}

// Start serves HTTP until the listener fails or Shutdown runs.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)

	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	log.Printf("🚀 server listening on ws://%s/ws", addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown stops the listener and closes every connection.
func (s *Server) Shutdown(ctx context.Context) error {
	s.clientsMu.Lock()
	for _, c := range s.clients {
		c.Close()
	}
	s.clientsMu.Unlock()

	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// handleWebSocket upgrades the connection and runs the client pumps.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}

	client := NewClient(s, conn)
	client.IP = r.RemoteAddr
	s.registerClient(client)

	client.SendMessage(codec.MustNewMessage(protocol.MsgConnected, protocol.ConnectedPayload{
		PlayerID:   client.ID,
		PlayerName: client.Name,
	}))
	log.Printf("✅ %s connected", client)

	go client.WritePump()
	go client.ReadPump()
}

func (s *Server) registerClient(c *Client) {
	s.clientsMu.Lock()
	s.clients[c.ID] = c
	s.clientsMu.Unlock()
}

// handleDisconnect runs once per connection when its read pump exits.
func (s *Server) handleDisconnect(c *Client) {
	s.handler.HandleDisconnect(c)
	c.Close()

	s.clientsMu.Lock()
	delete(s.clients, c.ID)
	s.clientsMu.Unlock()

	log.Printf("👋 %s disconnected", c)
}

// ClientCount returns the number of live connections.
func (s *Server) ClientCount() int {
	s.clientsMu.RLock()
	defer s.clientsMu.RUnlock()
	return len(s.clients)
}

// RoomCount returns the number of live rooms.
func (s *Server) RoomCount() int {
	return s.registry.RoomCount()
}
