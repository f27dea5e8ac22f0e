package assistant

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10

	maxMessageSize = 4096
)

type inboundMessage struct {
	Message string `json:"message"`
}

type outboundMessage struct {
	Type      string `json:"type"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
}

const (
	messageTypeReply   = "reply"
	messageTypeWarning = "warning"
)

// Client is one open chat log. Each inbound message gets exactly one
// outbound message: a reply, or a warning when the collaborator fails.
type Client struct {
	hub  *Hub
	svc  *Service
	conn *websocket.Conn
	send chan []byte
}

func NewClient(hub *Hub, svc *Service, conn *websocket.Conn) *Client {
	return &Client{
		hub:  hub,
		svc:  svc,
		conn: conn,
		send: make(chan []byte, 16),
	}
}

func (c *Client) ReadPump() {
	defer func() {
		c.hub.Unregister(c)
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			return
		}

		var in inboundMessage
		if err := json.Unmarshal(raw, &in); err != nil {
			c.push(messageTypeWarning, WarningReply)
			continue
		}

		reply, err := c.svc.Reply(context.Background(), in.Message)
		if err != nil {
			c.push(messageTypeWarning, WarningReply)
			continue
		}
		c.push(messageTypeReply, reply)
	}
}

func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *Client) push(msgType, text string) {
	out := outboundMessage{
		Type:      msgType,
		Text:      text,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(out)
	if err != nil {
		return
	}
	select {
	case c.send <- b:
	default:
	}
}
