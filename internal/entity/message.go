/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package entity

import "time"

// Represents a message sent between two users or in a group chat.
// Exactly one of ReceiverUUID and GroupUUID is set.
// Messages are never physically deleted, only the IsDeleted flag is raised,
// and IsRead only ever transitions false to true.
type Message struct {
	UUID         string    `gorm:"primaryKey" json:"uuid"`            // Unique identifier
	SenderUUID   string    `gorm:"not null;index" json:"sender"`      // UUID of the user that sent the message
	ReceiverUUID *string   `gorm:"index" json:"receiver,omitempty"`   // UUID of the receiving user, nil for group messages
	GroupUUID    *string   `gorm:"index" json:"group,omitempty"`      // UUID of the receiving group, nil for DMs
	Content      string    `gorm:"not null" json:"content"`           // Actual content of the message, stored in full
	SentAt       time.Time `gorm:"not null;index" json:"sent-at"`     // Server-assigned send timestamp
	IsRead       bool      `gorm:"default:false" json:"is-read"`      // Raised when the receiver (or any group member) reads it
	IsDeleted    bool      `gorm:"default:false" json:"is-deleted"`   // Soft-delete flag
}

// True when the message was sent in a group chat rather than a DM.
func (m *Message) IsForGroup() bool {
	return m.GroupUUID != nil
}
