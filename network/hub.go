package network

import (
	"encoding/json"
	"log"
	"sync"
	"sync/atomic"
)

// clientBuffer is the per-spectator queue depth; full queues drop frames
const clientBuffer = 8

type client struct {
	id    uint64
	every atomic.Int64
	out   chan []byte
}

// Hub fans frames out to subscribed spectators
// Publish is called from the game loop and never blocks
type Hub struct {
	mu      sync.RWMutex
	clients map[uint64]*client
	nextID  atomic.Uint64
	count   atomic.Int64

	sent    atomic.Int64
	dropped atomic.Int64
}

func NewHub() *Hub {
	return &Hub{clients: make(map[uint64]*client)}
}

func (h *Hub) join(every int) *client {
	c := &client{
		id:  h.nextID.Add(1),
		out: make(chan []byte, clientBuffer),
	}
	c.every.Store(int64(every))

	h.mu.Lock()
	h.clients[c.id] = c
	h.mu.Unlock()
	h.count.Add(1)
	return c
}

func (h *Hub) leave(c *client) {
	h.mu.Lock()
	if _, ok := h.clients[c.id]; ok {
		delete(h.clients, c.id)
		h.count.Add(-1)
	}
	h.mu.Unlock()
}

// ClientCount returns connected spectators
func (h *Hub) ClientCount() int {
	return int(h.count.Load())
}

// Publish encodes frame once and queues it for every client due at tick
func (h *Hub) Publish(tick int64, frame any) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if len(h.clients) == 0 {
		return
	}

	var payload []byte
	for _, c := range h.clients {
		if every := c.every.Load(); every > 1 && tick%every != 0 {
			continue
		}
		if payload == nil {
			b, err := json.Marshal(FrameMsg{
				Type:            TypeFrame,
				ProtocolVersion: Version,
				Tick:            tick,
				Frame:           frame,
			})
			if err != nil {
				log.Printf("observer: encode frame %d: %v", tick, err)
				return
			}
			payload = b
		}

		select {
		case c.out <- payload:
			h.sent.Add(1)
		default:
			h.dropped.Add(1)
		}
	}
}

// Stats returns frames queued and dropped since start
func (h *Hub) Stats() (sent, dropped int64) {
	return h.sent.Load(), h.dropped.Load()
}
