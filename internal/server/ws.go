package server

import (
	"encoding/json"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// MessageType names the kinds of socket messages.
type MessageType string

const (
	msgMove      MessageType = "move"
	msgUndo      MessageType = "undo"
	msgReset     MessageType = "reset"
	msgState     MessageType = "state"
	msgGameState MessageType = "gameState"
	msgError     MessageType = "error"
)

// Message is the envelope for every socket message in both directions.
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// ErrorBody is the payload of error replies, also used by the REST API.
type ErrorBody struct {
	Error             string `json:"error"`
	PromotionRequired bool   `json:"promotionRequired,omitempty"`
}

// moveRequest is the payload of a move, in either notation.
type moveRequest struct {
	UCI string `json:"uci"`
	SAN string `json:"san"`
}

func message(t MessageType, payload interface{}) Message {
	raw, err := json.Marshal(payload)
	if err != nil {
		raw, _ = json.Marshal(ErrorBody{Error: err.Error()})
		t = msgError
	}
	return Message{Type: t, Payload: raw}
}

func errorMessage(err error) Message {
	return message(msgError, errorBody(err))
}

// requireUpgrade rejects plain HTTP requests to socket routes and unknown
// games before the upgrade happens.
func (h *handler) requireUpgrade(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}
	if _, err := h.games.Get(c.Params("id")); err != nil {
		return h.fail(c, err)
	}
	return c.Next()
}

// handleConnection serves one socket: each text message is applied to the
// game and the new state is broadcast to every socket on it. Errors are
// replied to the sender only.
func (h *handler) handleConnection(c *websocket.Conn) {
	id := c.Params("id")
	session, err := h.games.Get(id)
	if err != nil {
		if werr := c.WriteJSON(errorMessage(err)); werr != nil && h.verbose {
			h.log.Printf("socket on game %s: write failed: %v", id, werr)
		}
		c.Close()
		return
	}

	cl := session.addConn(c)
	written := make(chan struct{})
	go func() {
		defer close(written)
		cl.writeLoop(func(err error) {
			if h.verbose {
				h.log.Printf("socket on game %s: write failed: %v", id, err)
			}
		})
		// Unblocks ReadMessage when the write side stopped first.
		c.Close()
	}()
	defer func() {
		session.removeConn(cl)
		<-written
	}()
	if h.verbose {
		h.log.Printf("socket connected to game %s", id)
	}

	for {
		messageType, data, err := c.ReadMessage()
		if err != nil {
			if h.verbose {
				h.log.Printf("socket on game %s closed: %v", id, err)
			}
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg Message
		if err := json.Unmarshal(data, &msg); err != nil {
			msg = message(msgError, ErrorBody{Error: "malformed message: " + err.Error()})
			if !session.reply(cl, msg) {
				return
			}
			continue
		}
		if reply, ok := handleMessage(session, msg); ok {
			if !session.reply(cl, reply) {
				return
			}
		}
	}
}

// handleMessage applies one socket message. It returns a reply for the
// sender when there is one; successful changes are broadcast by the
// session instead.
func handleMessage(session *Session, msg Message) (Message, bool) {
	var err error
	switch msg.Type {
	case msgMove:
		var req moveRequest
		if err := json.Unmarshal(msg.Payload, &req); err != nil {
			return message(msgError, ErrorBody{Error: "malformed move: " + err.Error()}), true
		}
		_, err = playMove(session, req)
	case msgUndo:
		_, err = session.Undo()
	case msgReset:
		session.Reset()
	case msgState:
		return message(msgGameState, session.State()), true
	default:
		return message(msgError, ErrorBody{Error: fmt.Sprintf("unknown message type %q", msg.Type)}), true
	}
	if err != nil {
		return errorMessage(err), true
	}
	return Message{}, false
}
