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
	"time"
)

// Events pushed to connected clients.
const (
	EventUserConnected       = "UserConnected"
	EventUserDisconnected    = "UserDisconnected"
	EventUserStatusUpdated   = "UserStatusUpdated"
	EventReceiveMessage      = "ReceiveMessage"
	EventMessageSent         = "MessageSent"
	EventReceiveGroupMessage = "ReceiveGroupMessage"
	EventMessageRead         = "MessageRead"
	EventGroupMessageRead    = "GroupMessageRead"
	EventUserJoinedGroup     = "UserJoinedGroup"
	EventUserLeftGroup       = "UserLeftGroup"
	EventReceiveNotification = "ReceiveNotification"
)

// Actions clients may invoke over the socket.
const (
	ActionSendMessage            = "SendMessage"
	ActionSendGroupMessage       = "SendGroupMessage"
	ActionJoinGroup              = "JoinGroup"
	ActionLeaveGroup             = "LeaveGroup"
	ActionUpdateStatus           = "UpdateStatus"
	ActionMarkMessageAsRead      = "MarkMessageAsRead"
	ActionMarkGroupMessageAsRead = "MarkGroupMessageAsRead"
)

// Envelope of every server push.
type Event struct {
	Event   string `json:"event"`
	Payload any    `json:"payload"`
}

// Envelope of every client request read off the socket.
// The transport delivers these in order per connection; the hub processes them
// in that same order.
type Action struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload"`
}

// Payload of ReceiveMessage and MessageSent. The sender receives MessageSent
// with the server-assigned id and timestamp so it can reconcile an optimistic UI.
type DirectMessagePayload struct {
	MessageID  string    `json:"message-id"`
	SenderID   string    `json:"sender-id"`
	SenderName string    `json:"sender-name"`
	ReceiverID string    `json:"receiver-id"`
	Content    string    `json:"content"`
	SentAt     time.Time `json:"sent-at"`
	IsRead     bool      `json:"is-read"`
}

// Payload of ReceiveGroupMessage.
type GroupMessagePayload struct {
	MessageID  string    `json:"message-id"`
	SenderID   string    `json:"sender-id"`
	SenderName string    `json:"sender-name"`
	GroupID    string    `json:"group-id"`
	Content    string    `json:"content"`
	SentAt     time.Time `json:"sent-at"`
}

type UserPayload struct {
	UserID string `json:"user-id"`
}

type StatusPayload struct {
	UserID string `json:"user-id"`
	Status string `json:"status"`
}

type ReadPayload struct {
	MessageID string `json:"message-id"`
}

type GroupReadPayload struct {
	MessageID string `json:"message-id"`
	ReaderID  string `json:"reader-id"`
}

type GroupActivityPayload struct {
	GroupID  string `json:"group-id"`
	UserName string `json:"user-name"`
}

// Parameter shapes of the client actions.
type sendMessageParams struct {
	ReceiverID string `json:"receiver-id"`
	Content    string `json:"content"`
}

type sendGroupMessageParams struct {
	GroupID string `json:"group-id"`
	Content string `json:"content"`
}

type groupParams struct {
	GroupID string `json:"group-id"`
}

type updateStatusParams struct {
	Status string `json:"status"`
}

type markReadParams struct {
	MessageID string `json:"message-id"`
}
