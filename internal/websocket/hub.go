package websocket

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"event-ticketing-be/internal/pkg/logger"

	"github.com/redis/go-redis/v9"
)

// Hub fans out check-in events to every connected staff dashboard.
type Hub struct {
	// Registered clients
	clients map[*Client]bool

	// Register requests from the clients.
	register chan *Client

	// Unregister requests from clients.
	unregister chan *Client

	// Lock for safe map access
	mu sync.RWMutex

	// Redis connection for cross-instance fanout
	rdb *redis.Client

	// Dedicated Logger
	logger logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
		rdb:        rdb,
		logger:     log,
	}
}

func (h *Hub) Run() {
	// Start Redis Subscriber if Redis is available
	if h.rdb != nil {
		go h.subscribeToRedis()
	}

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			h.logger.Info("Hub", "Client registered", map[string]interface{}{"user_id": client.UserID})

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
				h.logger.Info("Hub", "Client unregistered", map[string]interface{}{"user_id": client.UserID})
			}
			h.mu.Unlock()
		}
	}
}

// Broadcast sends a check-in event to ALL connected clients. With redis
// available the message goes through the shared channel so every instance,
// including this one, delivers it exactly once to its local clients.
func (h *Hub) Broadcast(event interface{}) {
	data, _ := json.Marshal(map[string]interface{}{
		"type": "checkin",
		"data": event,
	})

	if h.rdb != nil {
		err := h.rdb.Publish(context.Background(), "checkin_events", data).Err()
		if err == nil {
			return
		}
		// Redis down: deliver to this instance's clients so the feed
		// keeps working locally.
		h.logger.Warn("Hub", "Redis publish failed, delivering locally", map[string]interface{}{"error": err.Error()})
	}

	h.broadcastLocal(data)
}

func (h *Hub) broadcastLocal(data []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.clients {
		select {
		case client.Send <- data:
		default:
			h.logger.Warn("Hub", "Client Send buffer full, dropping connection", map[string]interface{}{"user_id": client.UserID})
			go func(c *Client) { h.unregister <- c }(client)
		}
	}
}

func (h *Hub) subscribeToRedis() {
	// Every instance subscribes to the shared channel and fans out to its
	// local clients.
	ctx := context.Background()
	pubsub := h.rdb.Subscribe(ctx, "checkin_events")
	defer pubsub.Close()

	ch := pubsub.Channel()

	for msg := range ch {
		if !json.Valid([]byte(msg.Payload)) {
			log.Printf("Redis msg parse error: invalid payload")
			continue
		}
		h.broadcastLocal([]byte(msg.Payload))
	}
}
