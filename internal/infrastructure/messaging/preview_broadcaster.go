// Package messaging provides real-time communication for the live preview.
package messaging

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/BaillieLodges/beckons-go/internal/infrastructure/observability/logging"
	"github.com/gorilla/websocket"
)

// PreviewClient represents a single connected live-preview browser tab.
type PreviewClient struct {
	Conn *websocket.Conn
	Send chan []byte
}

// ContentUpdate is the message sent to preview clients after an inline save.
type ContentUpdate struct {
	Type      string `json:"type"` // always "content-updated"
	EntryID   string `json:"entryId"`
	Field     string `json:"field"`
	UpdatedAt string `json:"updatedAt"`
}

// PreviewBroadcaster fans inline-editor saves out to connected preview tabs
// so open pages refresh without a reload.
type PreviewBroadcaster struct {
	clients    map[*PreviewClient]bool
	register   chan *PreviewClient
	unregister chan *PreviewClient
	broadcast  chan []byte
	quit       chan struct{}
	stopOnce   sync.Once
	logger     *logging.ChanneledLogger
	mu         sync.RWMutex
}

// NewPreviewBroadcaster creates a new broadcaster instance.
func NewPreviewBroadcaster(logger *logging.ChanneledLogger) *PreviewBroadcaster {
	return &PreviewBroadcaster{
		clients:    make(map[*PreviewClient]bool),
		register:   make(chan *PreviewClient),
		unregister: make(chan *PreviewClient),
		broadcast:  make(chan []byte, 16),
		quit:       make(chan struct{}),
		logger:     logger,
	}
}

// Run starts the broadcaster's main loop. This should be run as a goroutine;
// it exits after Stop is called.
func (b *PreviewBroadcaster) Run() {
	for {
		select {
		case <-b.quit:
			b.mu.Lock()
			for client := range b.clients {
				delete(b.clients, client)
				close(client.Send)
			}
			b.mu.Unlock()
			b.logger.Editor().Debug("Preview broadcaster stopped")
			return

		case client := <-b.register:
			b.mu.Lock()
			b.clients[client] = true
			b.mu.Unlock()
			b.logger.Editor().Debug("Preview client registered", "clients", b.ClientCount())

		case client := <-b.unregister:
			b.mu.Lock()
			if _, ok := b.clients[client]; ok {
				delete(b.clients, client)
				close(client.Send)
			}
			b.mu.Unlock()
			b.logger.Editor().Debug("Preview client unregistered", "clients", b.ClientCount())

		case message := <-b.broadcast:
			b.mu.RLock()
			for client := range b.clients {
				select {
				case client.Send <- message:
				default:
					// Slow client; drop the message rather than block the loop.
				}
			}
			b.mu.RUnlock()
		}
	}
}

// Register queues a client for registration.
func (b *PreviewBroadcaster) Register(client *PreviewClient) {
	b.register <- client
}

// Stop terminates the fan-out loop and closes every connected client's send
// channel. Safe to call more than once.
func (b *PreviewBroadcaster) Stop() {
	b.stopOnce.Do(func() { close(b.quit) })
}

// Unregister queues a client for unregistration.
func (b *PreviewBroadcaster) Unregister(client *PreviewClient) {
	b.unregister <- client
}

// ClientCount reports the number of connected preview clients.
func (b *PreviewBroadcaster) ClientCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.clients)
}

// BroadcastContentUpdate notifies all preview clients that a field was saved.
func (b *PreviewBroadcaster) BroadcastContentUpdate(entryID, field string) {
	update := ContentUpdate{
		Type:      "content-updated",
		EntryID:   entryID,
		Field:     field,
		UpdatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	message, err := json.Marshal(update)
	if err != nil {
		b.logger.Editor().Error("Failed to marshal content update", "error", err.Error())
		return
	}
	b.broadcast <- message
}

// WritePump drains the client's send channel onto its websocket connection,
// interleaving pings. Runs as a goroutine per client.
func (c *PreviewClient) WritePump(pingInterval time.Duration) {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.Send:
			if !ok {
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// ReadPump discards inbound frames and detects disconnects. Runs as a
// goroutine per client; unregisters the client on exit.
func (c *PreviewClient) ReadPump(b *PreviewBroadcaster) {
	defer func() {
		b.Unregister(c)
		c.Conn.Close()
	}()
	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			return
		}
	}
}
