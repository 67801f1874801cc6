// Package stream fans live geolocation fixes out to websocket
// subscribers. A watch session publishes each fix to the hub; every
// browser tab subscribed to that session receives it. Redis pub/sub
// carries fixes across instances when configured.
package stream

import (
	"context"
	"log"
	"sync"

	"github.com/redis/go-redis/v9"
)

type Hub struct {
	redis   *redis.Client
	clients map[string]map[*Client]struct{}
	mu      sync.RWMutex
}

type Client struct {
	SessionID string
	Send      chan []byte
}

func NewHub(redisClient *redis.Client) *Hub {
	h := &Hub{
		redis:   redisClient,
		clients: map[string]map[*Client]struct{}{},
	}

	if redisClient != nil {
		go h.subscribeRedis()
	}
	return h
}

func (h *Hub) Register(sessionID string) *Client {
	client := &Client{
		SessionID: sessionID,
		Send:      make(chan []byte, 64),
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[sessionID] == nil {
		h.clients[sessionID] = map[*Client]struct{}{}
	}
	h.clients[sessionID][client] = struct{}{}
	return client
}

func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if sessionClients, ok := h.clients[client.SessionID]; ok {
		delete(sessionClients, client)
		if len(sessionClients) == 0 {
			delete(h.clients, client.SessionID)
		}
	}
	close(client.Send)
}

// Broadcast delivers a payload to every local subscriber of the session
// and mirrors it to Redis for subscribers on other instances. Slow
// subscribers drop messages rather than block the publisher.
func (h *Hub) Broadcast(sessionID string, payload []byte) {
	// sends happen under the read lock so Unregister cannot close a
	// channel mid-send
	h.mu.RLock()
	for client := range h.clients[sessionID] {
		select {
		case client.Send <- payload:
		default:
		}
	}
	h.mu.RUnlock()

	if h.redis != nil {
		err := h.redis.Publish(context.Background(), redisChannel(sessionID), payload).Err()
		if err != nil {
			log.Printf("redis publish error: %v", err)
		}
	}
}

func (h *Hub) subscribeRedis() {
	ctx := context.Background()
	pubsub := h.redis.PSubscribe(ctx, "geowatch:*:fixes")
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		sessionID := sessionIDFromChannel(msg.Channel)
		h.mu.RLock()
		for client := range h.clients[sessionID] {
			select {
			case client.Send <- []byte(msg.Payload):
			default:
			}
		}
		h.mu.RUnlock()
	}
}

func redisChannel(sessionID string) string {
	return "geowatch:" + sessionID + ":fixes"
}

func sessionIDFromChannel(ch string) string {
	// geowatch:{session}:fixes
	const prefix = "geowatch:"
	const suffix = ":fixes"
	if len(ch) <= len(prefix)+len(suffix) {
		return ""
	}
	return ch[len(prefix) : len(ch)-len(suffix)]
}
