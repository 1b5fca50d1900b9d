// Package live fans gallery change notifications out to every open tab of
// the same user.
package live

import (
	"sync"
	"time"
)

const (
	ImageSaved       = "image.saved"
	ImageDeleted     = "image.deleted"
	PortfolioUpdated = "portfolio.updated"
	EventAdded       = "event.added"
	EventRemoved     = "event.removed"
)

type Message struct {
	Type    string    `json:"type"`
	UserID  string    `json:"user_id"`
	Payload any       `json:"payload,omitempty"`
	At      time.Time `json:"at"`
}

// Publisher is what controllers depend on.
type Publisher interface {
	Publish(userID, typ string, payload any)
}

type Hub struct {
	mu     sync.RWMutex
	subs   map[string]map[chan Message]struct{}
	buffer int
}

func NewHub(buffer int) *Hub {
	if buffer <= 0 {
		buffer = 16
	}
	return &Hub{subs: map[string]map[chan Message]struct{}{}, buffer: buffer}
}

// Subscribe registers a listener for userID. Call the returned func to leave.
func (h *Hub) Subscribe(userID string) (<-chan Message, func()) {
	ch := make(chan Message, h.buffer)
	h.mu.Lock()
	if h.subs[userID] == nil {
		h.subs[userID] = map[chan Message]struct{}{}
	}
	h.subs[userID][ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs[userID], ch)
			if len(h.subs[userID]) == 0 {
				delete(h.subs, userID)
			}
			h.mu.Unlock()
			close(ch)
		})
	}
}

// Publish never blocks; a subscriber whose buffer is full misses the message.
func (h *Hub) Publish(userID, typ string, payload any) {
	msg := Message{Type: typ, UserID: userID, Payload: payload, At: time.Now()}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for ch := range h.subs[userID] {
		select {
		case ch <- msg:
		default:
		}
	}
}

func (h *Hub) Subscribers(userID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[userID])
}

// Nop discards everything.
type Nop struct{}

func (Nop) Publish(string, string, any) {}
