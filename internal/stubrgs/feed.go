package stubrgs

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // development stub, any origin may watch
	},
}

// FeedMessage is one entry on the live event feed.
type FeedMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type feedClient struct {
	conn *websocket.Conn
	send chan []byte
}

// EventFeed broadcasts recorded round events to connected development
// consoles over websocket.
type EventFeed struct {
	mu      sync.Mutex
	clients map[*feedClient]struct{}
	log     zerolog.Logger
}

// NewEventFeed creates an empty feed.
func NewEventFeed(log zerolog.Logger) *EventFeed {
	return &EventFeed{
		clients: make(map[*feedClient]struct{}),
		log:     log,
	}
}

// Handle upgrades the request to a websocket and streams feed messages until
// the peer goes away.
func (f *EventFeed) Handle(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		f.log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	client := &feedClient{
		conn: conn,
		send: make(chan []byte, 256),
	}

	f.mu.Lock()
	f.clients[client] = struct{}{}
	f.mu.Unlock()

	go f.writePump(client)
	go f.readPump(client)
}

// Broadcast fans a message out to every connected client. Slow clients drop
// messages rather than block the caller.
func (f *EventFeed) Broadcast(msgType string, payload interface{}) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return
	}
	msgBytes, err := json.Marshal(FeedMessage{Type: msgType, Payload: payloadBytes})
	if err != nil {
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for client := range f.clients {
		select {
		case client.send <- msgBytes:
		default:
		}
	}
}

func (f *EventFeed) remove(client *feedClient) {
	f.mu.Lock()
	delete(f.clients, client)
	f.mu.Unlock()
}

func (f *EventFeed) writePump(c *feedClient) {
	ticker := time.NewTicker(30 * time.Second)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump consumes incoming frames so pongs are processed; the feed is
// one-way.
func (f *EventFeed) readPump(c *feedClient) {
	defer func() {
		f.remove(c)
		close(c.send)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(512)
	c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				f.log.Debug().Err(err).Msg("feed client read error")
			}
			return
		}
	}
}
