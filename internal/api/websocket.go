package api

import (
	"encoding/json"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"github.com/lgbarn/chesscore-go/internal/session"
)

const localSession = "session"

// Websocket message types.
const (
	MessageSnapshot      = "snapshot"
	MessageError         = "error"
	MessageMove          = "move"
	MessageCancelPremove = "cancelPremove"
)

// Message is the websocket frame in both directions. Clients send moves
// with Type "move" and an optional Source; the server sends snapshots and
// errors.
type Message struct {
	Type     string            `json:"type"`
	UCI      string            `json:"uci,omitempty"`
	Source   string            `json:"source,omitempty"`
	Snapshot *session.Snapshot `json:"snapshot,omitempty"`
	Error    string            `json:"error,omitempty"`
}

// upgrade resolves the session and refuses plain HTTP requests.
func (h *Handler) upgrade(c *fiber.Ctx) error {
	s, err := h.session(c)
	if err != nil {
		return err
	}
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}
	c.Locals(localSession, s)
	return c.Next()
}

func (h *Handler) stream() fiber.Handler {
	return websocket.New(func(c *websocket.Conn) {
		s, ok := c.Locals(localSession).(*session.Session)
		if !ok {
			c.Close()
			return
		}
		h.serve(c, s)
	}, websocket.Config{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
	})
}

// serve streams snapshots to the client and applies the moves it sends.
// All writes happen on this goroutine.
func (h *Handler) serve(c *websocket.Conn, s *session.Session) {
	logger := h.logger.With().Str("session", s.ID()).Logger()
	logger.Info().Msg("stream opened")
	defer logger.Info().Msg("stream closed")

	updates, cancel := s.Subscribe()
	defer cancel()

	replies := make(chan Message, 1)
	done := make(chan struct{})
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		defer close(done)
		for {
			messageType, data, err := c.ReadMessage()
			if err != nil {
				logger.Debug().Err(err).Msg("read ended")
				return
			}
			if messageType != websocket.TextMessage {
				continue
			}
			if reply, ok := handleMessage(s, data); ok {
				select {
				case replies <- reply:
				case <-quit:
					return
				}
			}
		}
	}()

	snap := s.Snapshot()
	if err := c.WriteJSON(Message{Type: MessageSnapshot, Snapshot: &snap}); err != nil {
		logger.Debug().Err(err).Msg("write failed")
		return
	}
	for {
		var msg Message
		select {
		case snap, ok := <-updates:
			if !ok {
				return
			}
			msg = Message{Type: MessageSnapshot, Snapshot: &snap}
		case msg = <-replies:
		case <-done:
			return
		}
		if err := c.WriteJSON(msg); err != nil {
			logger.Debug().Err(err).Msg("write failed")
			return
		}
	}
}

// handleMessage applies one client frame. Successful moves reach the
// client through the subscription, so only errors produce a reply.
func handleMessage(s *session.Session, data []byte) (Message, bool) {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return Message{Type: MessageError, Error: "invalid message: " + err.Error()}, true
	}

	var err error
	switch msg.Type {
	case MessageMove:
		_, err = play(s, msg.Source, msg.UCI)
	case MessageCancelPremove:
		s.CancelPremove()
	default:
		err = fmt.Errorf("unknown message type %q", msg.Type)
	}
	if err != nil {
		return Message{Type: MessageError, Error: err.Error()}, true
	}
	return Message{}, false
}
