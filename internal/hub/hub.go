// Package hub fans write events out to connected websocket clients.
package hub

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"fleetdesk/internal/models"
)

const (
	// writeWait bounds a single write to a client.
	writeWait = 10 * time.Second
	// clientBuffer is how many events may queue for one client before it
	// is considered too slow and dropped.
	clientBuffer = 16
)

// Publisher accepts events for broadcast.
type Publisher interface {
	Publish(ev models.Event)
}

// Conn is the part of *websocket.Conn the hub writes to.
type Conn interface {
	WriteJSON(v interface{}) error
	SetWriteDeadline(t time.Time) error
	Close() error
}

type client struct {
	conn Conn
	send chan models.Event
}

// EventHub manages active websocket connections and broadcasts events to all of them.
// Each client is written by its own goroutine so a stalled reader only
// affects itself.
type EventHub struct {
	clients   map[Conn]*client
	broadcast chan models.Event
	done      chan struct{}
	closeOnce sync.Once
	mu        sync.Mutex
	writers   sync.WaitGroup
}

// NewEventHub creates a hub and starts its broadcast goroutine.
func NewEventHub() *EventHub {
	h := &EventHub{
		clients:   make(map[Conn]*client),
		broadcast: make(chan models.Event, 100),
		done:      make(chan struct{}),
	}
	go h.run()
	return h
}

func (h *EventHub) run() {
	for {
		select {
		case ev := <-h.broadcast:
			h.send(ev)
		case <-h.done:
			return
		}
	}
}

func (h *EventHub) send(ev models.Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, c := range h.clients {
		select {
		case c.send <- ev:
		default:
			logrus.Warn("dropping slow websocket client")
			h.drop(c)
		}
	}
}

func (h *EventHub) write(c *client) {
	defer h.writers.Done()

	for ev := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteJSON(ev); err != nil {
			logrus.WithError(err).Warn("dropping websocket client after failed write")
			h.mu.Lock()
			if h.clients[c.conn] == c {
				h.drop(c)
			}
			h.mu.Unlock()
			return
		}
	}
}

// drop removes c and stops its writer. h.mu must be held.
func (h *EventHub) drop(c *client) {
	delete(h.clients, c.conn)
	close(c.send)
	c.conn.Close()
}

// Publish queues ev for broadcast. Events are dropped when the queue is
// full or the hub is closed.
func (h *EventHub) Publish(ev models.Event) {
	select {
	case <-h.done:
		return
	default:
	}
	select {
	case h.broadcast <- ev:
	default:
		logrus.WithField("type", ev.Type).Warn("event queue full, dropping event")
	}
}

// Register adds a client. Connections registered after Close are closed
// immediately.
func (h *EventHub) Register(conn Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	select {
	case <-h.done:
		conn.Close()
		return
	default:
	}
	if _, ok := h.clients[conn]; ok {
		return
	}
	c := &client{conn: conn, send: make(chan models.Event, clientBuffer)}
	h.clients[conn] = c
	h.writers.Add(1)
	go h.write(c)
}

// Unregister removes a client and closes it.
func (h *EventHub) Unregister(conn Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if c, ok := h.clients[conn]; ok {
		h.drop(c)
	}
}

// Clients returns the number of connected clients.
func (h *EventHub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Close stops broadcasting, disconnects every client and waits for the
// client writers to exit.
func (h *EventHub) Close() {
	h.closeOnce.Do(func() {
		close(h.done)
		h.mu.Lock()
		for _, c := range h.clients {
			h.drop(c)
		}
		h.mu.Unlock()
		h.writers.Wait()
	})
}

var _ Conn = (*websocket.Conn)(nil)
