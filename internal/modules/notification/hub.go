package notification

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"imobsite/internal/domain"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	maxMsgSize = 4 * 1024
)

const (
	EventSnapshot    = "snapshot"
	EventLeadCreated = "lead_created"
)

// Event is a real-time message pushed to an admin session.
type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload,omitempty"`
}

// SnapshotPayload carries the session's full notification state.
type SnapshotPayload struct {
	Items  []Notification `json:"items"`
	Unread int            `json:"unread"`
	Badge  string         `json:"badge"`
}

// LeadCreatedPayload carries one freshly submitted lead plus the
// session state after it was added.
type LeadCreatedPayload struct {
	Lead   domain.Lead `json:"lead"`
	Unread int         `json:"unread"`
	Badge  string      `json:"badge"`
}

// RecentLeadReader loads the leads a fresh session starts from.
type RecentLeadReader interface {
	ListRecent(ctx context.Context, limit int) ([]domain.Lead, error)
}

// session is one connected admin browser tab. Each session owns its
// Center, so read state never leaks between tabs or admins.
type session struct {
	id     int
	userID int64
	conn   *websocket.Conn
	center *Center
	sub    *Subscription

	// mu serializes enqueue against close. The feed delivers callbacks
	// outside any hub lock, so a publish can race a disconnect.
	mu     sync.Mutex
	closed bool
	send   chan []byte
}

func (s *session) enqueue(data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	select {
	case s.send <- data:
	default:
		// Client too slow, skip
	}
}

func (s *session) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	close(s.send)
}

// Hub manages the live admin notification sessions.
type Hub struct {
	mu       sync.Mutex
	sessions map[int]*session
	nextID   int

	feed  *Feed
	leads RecentLeadReader
}

func NewHub(feed *Feed, leads RecentLeadReader) *Hub {
	return &Hub{
		sessions: make(map[int]*session),
		feed:     feed,
		leads:    leads,
	}
}

func (h *Hub) register(s *session) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.nextID++
	s.id = h.nextID
	h.sessions[s.id] = s
}

func (h *Hub) unregister(s *session) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if existing, ok := h.sessions[s.id]; ok && existing == s {
		delete(h.sessions, s.id)
		s.close()
	}
}

// SessionCount reports how many admin sessions are connected.
func (h *Hub) SessionCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.sessions)
}

// Close tears down every live session.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, s := range h.sessions {
		s.sub.Unsubscribe()
		_ = s.conn.Close()
		delete(h.sessions, id)
	}
}

// ServeWS runs one admin session over an upgraded connection. It loads
// the recent leads into the session's Center, subscribes to the lead
// feed and blocks until the client disconnects. The feed subscription
// is released on every exit path.
func (h *Hub) ServeWS(conn *websocket.Conn, userID int64) {
	s := &session{
		userID: userID,
		conn:   conn,
		send:   make(chan []byte, 64),
		center: NewCenter(),
	}

	if recent, err := h.leads.ListRecent(context.Background(), Capacity); err == nil {
		s.center.Load(recent)
	}

	s.sub = h.feed.Subscribe(func(lead domain.Lead) {
		s.center.Add(lead)
		h.push(s, Event{
			Type: EventLeadCreated,
			Payload: LeadCreatedPayload{
				Lead:   lead,
				Unread: s.center.UnreadCount(),
				Badge:  s.center.Badge(),
			},
		})
	})

	h.register(s)
	h.push(s, snapshotEvent(s.center))

	go h.writePump(s)
	h.readPump(s)
}

func snapshotEvent(c *Center) Event {
	return Event{
		Type: EventSnapshot,
		Payload: SnapshotPayload{
			Items:  c.Items(),
			Unread: c.UnreadCount(),
			Badge:  c.Badge(),
		},
	}
}

func (h *Hub) push(s *session, event Event) {
	data, err := json.Marshal(event)
	if err != nil {
		return
	}
	s.enqueue(data)
}

func (h *Hub) readPump(s *session) {
	defer func() {
		s.sub.Unsubscribe()
		h.unregister(s)
		s.conn.Close()
	}()

	s.conn.SetReadLimit(maxMsgSize)
	s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		s.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, msg, err := s.conn.ReadMessage()
		if err != nil {
			break
		}

		var cmd struct {
			Type   string `json:"type"`
			LeadID int64  `json:"lead_id"`
		}
		if err := json.Unmarshal(msg, &cmd); err != nil {
			continue
		}

		switch cmd.Type {
		case "mark_read":
			s.center.MarkRead(cmd.LeadID)
			h.push(s, snapshotEvent(s.center))
		case "mark_all_read":
			s.center.MarkAllRead()
			h.push(s, snapshotEvent(s.center))
		case "dismiss_toast":
			s.center.DismissToast()
		}
	}
}

func (h *Hub) writePump(s *session) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		s.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-s.send:
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				s.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := s.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
