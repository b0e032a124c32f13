// Package rtsvc keeps open pages fresh when other actors mutate shared
// state. It is a freshness enhancement, not a correctness dependency:
// connection errors are logged, never surfaced.
package rtsvc

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/pkg/errors"

	"github.com/darasaonline/darasa/core"
)

// Event names pushed by the backend.
const (
	EventBatchNotification = "batch-notification"
	EventScheduleCreated   = "schedule-created"
	EventScheduleUpdated   = "schedule-updated"
	EventPayoutUpdate      = "payout-update"
	EventNotification      = "notification"
)

// message is the wire frame: an event name plus the matching REST
// resource's JSON shape as payload.
type message struct {
	Event   string          `json:"event"`
	Payload json.RawMessage `json:"payload"`
}

type Handler func(payload json.RawMessage)

type (
	// Channel is one realtime connection per authenticated user.
	Channel struct {
		id   string
		conn *websocket.Conn
		log  core.Logger

		mu        sync.Mutex
		listeners map[string]map[string]Handler // event -> subID -> handler
		closed    bool
	}

	// Subscription is the handle returned by Subscribe; Close deregisters
	// exactly the listener it stands for.
	Subscription struct {
		ch    *Channel
		event string
		id    string
	}
)

// Dial opens the channel, authenticating with the session's bearer token at
// handshake, and starts the read loop.
func Dial(conf *core.Config, sess *core.Session, log core.Logger) (*Channel, error) {
	hdr := http.Header{}
	hdr.Set("Authorization", "Bearer "+sess.Token)

	conn, _, err := websocket.DefaultDialer.Dial(conf.RealtimeURL, hdr)
	if err != nil {
		return nil, errors.Wrap(err, "realtime: dial")
	}

	ch := &Channel{
		id:        uuid.NewString(),
		conn:      conn,
		log:       log,
		listeners: make(map[string]map[string]Handler),
	}
	go ch.readLoop()
	return ch, nil
}

// Subscribe registers a handler for a named event. The returned handle must
// be closed when the subscribing page unmounts, otherwise its callback keeps
// firing after navigation.
func (ch *Channel) Subscribe(event string, fn Handler) *Subscription {
	ch.mu.Lock()
	defer ch.mu.Unlock()

	subID := uuid.NewString()
	if ch.listeners[event] == nil {
		ch.listeners[event] = make(map[string]Handler)
	}
	ch.listeners[event][subID] = fn
	return &Subscription{ch: ch, event: event, id: subID}
}

func (s *Subscription) Close() {
	s.ch.mu.Lock()
	defer s.ch.mu.Unlock()

	if m := s.ch.listeners[s.event]; m != nil {
		delete(m, s.id)
	}
}

// Close tears the connection down. Idempotent; registered listeners are
// dropped so no callback fires after close.
func (ch *Channel) Close() error {
	ch.mu.Lock()
	if ch.closed {
		ch.mu.Unlock()
		return nil
	}
	ch.closed = true
	ch.listeners = make(map[string]map[string]Handler)
	ch.mu.Unlock()

	return ch.conn.Close()
}

func (ch *Channel) readLoop() {
	for {
		_, data, err := ch.conn.ReadMessage()
		if err != nil {
			ch.mu.Lock()
			closed := ch.closed
			ch.mu.Unlock()
			if !closed {
				// no automatic reconnect; the next page mount dials fresh
				ch.log.Debug("realtime: read loop ended", err)
			}
			return
		}

		var msg message
		if err := json.Unmarshal(data, &msg); err != nil {
			ch.log.Debug("realtime: bad frame", err)
			continue
		}
		ch.dispatch(msg)
	}
}

func (ch *Channel) dispatch(msg message) {
	ch.mu.Lock()
	handlers := make([]Handler, 0, len(ch.listeners[msg.Event]))
	for _, fn := range ch.listeners[msg.Event] {
		handlers = append(handlers, fn)
	}
	ch.mu.Unlock()

	for _, fn := range handlers {
		fn(msg.Payload)
	}
}
