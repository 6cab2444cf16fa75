/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package entity

import "time"

// Categories used when enqueueing notifications.
const (
	CategoryUserStatus    = "UserStatus"
	CategoryDirectMessage = "DirectMessage"
	CategoryGroupMessage  = "GroupMessage"
	CategoryGroupActivity = "GroupActivity"
	CategoryMessageStatus = "MessageStatus"
)

// A notification enqueued for a user as a side effect of a hub action.
// It is the durable fallback for events the user may have missed live.
type Notification struct {
	UUID          string    `gorm:"primaryKey" json:"uuid"`           // Unique identifier
	RecipientUUID string    `gorm:"not null;index" json:"recipient"`  // User the notification is for
	Title         string    `gorm:"not null" json:"title"`            // Short headline
	Body          string    `gorm:"not null" json:"body"`             // Truncated preview text
	Category      string    `gorm:"not null;index" json:"category"`   // One of the Category constants
	RelatedUUID   *string   `gorm:"index" json:"related,omitempty"`   // Optional reference to the entity that caused it
	CreatedAt     time.Time `gorm:"not null;index" json:"created-at"` // Time of creation
	IsRead        bool      `gorm:"default:false" json:"is-read"`     // Raised when the user opens it
}
