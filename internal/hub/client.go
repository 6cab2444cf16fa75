/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package hub

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = 54 * time.Second
	maxMessageSize = 4096
	sendBuffer     = 256
)

// Client is one live transport session of an authenticated user.
// It is owned by the hub for its whole lifetime and never persisted.
type Client struct {
	UserUUID string // Identity resolved from the session at upgrade time, empty when unresolved
	Username string

	hub  *Hub
	conn *websocket.Conn
	send chan []byte

	mu     sync.Mutex
	closed bool
}

// NewClient wraps an upgraded websocket connection. The send channel is
// buffered so slow readers delay nobody else.
func NewClient(h *Hub, conn *websocket.Conn, userUUID, username string) *Client {
	if conn != nil {
		conn.SetReadLimit(maxMessageSize)
	}
	return &Client{
		UserUUID: userUUID,
		Username: username,
		hub:      h,
		conn:     conn,
		send:     make(chan []byte, sendBuffer),
	}
}

// Push queues an event for delivery on this connection. Delivery is
// best-effort: a closed client or a full buffer drops the event and returns
// false, the durable notification is the fallback for anything that matters.
func (c *Client) Push(event string, payload any) bool {
	raw, err := json.Marshal(Event{Event: event, Payload: payload})
	if err != nil {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	select {
	case c.send <- raw:
		return true
	default:
		return false
	}
}

// shutdown marks the client closed and closes the send channel exactly once.
func (c *Client) shutdown() {
	c.mu.Lock()
	if !c.closed {
		c.closed = true
		close(c.send)
	}
	c.mu.Unlock()
}

// Run starts the read and write pumps and blocks until the connection dies.
// The disconnect cleanup is registered before anything else so it runs even
// when an in-flight action fails, per the hub's lifecycle contract.
func (c *Client) Run() {
	defer func() {
		c.hub.HandleDisconnect(c)
		c.shutdown()
		c.conn.Close()
	}()

	go c.writePump()

	if err := c.hub.HandleConnect(c); err != nil {
		c.hub.logger.Logf("Connect sequence failed for %s {%v}", c.UserUUID, err)
		return
	}

	c.readPump()
}

func (c *Client) readPump() {
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.logger.Logf("Unexpected close from %s {%v}", c.UserUUID, err)
			}
			return
		}
		c.dispatch(raw)
	}
}

// dispatch routes one client request to the matching hub action. Actions are
// handled inline on this goroutine, which preserves per-connection ordering.
// Failed actions are logged and swallowed: no error event is pushed, clients
// infer failure from the absence of the confirmation event.
func (c *Client) dispatch(raw []byte) {
	var action Action
	if err := json.Unmarshal(raw, &action); err != nil {
		c.hub.logger.Logf("Malformed request from %s {%v}", c.UserUUID, err)
		return
	}

	var err error
	switch action.Action {
	case ActionSendMessage:
		var p sendMessageParams
		if err = json.Unmarshal(action.Payload, &p); err == nil {
			err = c.hub.SendDirectMessage(c, p.ReceiverID, p.Content)
		}
	case ActionSendGroupMessage:
		var p sendGroupMessageParams
		if err = json.Unmarshal(action.Payload, &p); err == nil {
			err = c.hub.SendGroupMessage(c, p.GroupID, p.Content)
		}
	case ActionJoinGroup:
		var p groupParams
		if err = json.Unmarshal(action.Payload, &p); err == nil {
			err = c.hub.JoinGroup(c, p.GroupID)
		}
	case ActionLeaveGroup:
		var p groupParams
		if err = json.Unmarshal(action.Payload, &p); err == nil {
			err = c.hub.LeaveGroup(c, p.GroupID)
		}
	case ActionUpdateStatus:
		var p updateStatusParams
		if err = json.Unmarshal(action.Payload, &p); err == nil {
			err = c.hub.UpdateStatus(c, p.Status)
		}
	case ActionMarkMessageAsRead:
		var p markReadParams
		if err = json.Unmarshal(action.Payload, &p); err == nil {
			err = c.hub.MarkMessageAsRead(c, p.MessageID)
		}
	case ActionMarkGroupMessageAsRead:
		var p markReadParams
		if err = json.Unmarshal(action.Payload, &p); err == nil {
			err = c.hub.MarkGroupMessageAsRead(c, p.MessageID)
		}
	default:
		c.hub.logger.Logf("Unknown action %q from %s", action.Action, c.UserUUID)
		return
	}

	if err != nil {
		c.hub.logger.Logf("Action %s from %s failed {%v}", action.Action, c.UserUUID, err)
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case raw, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, raw); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
