/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package entity

import (
	"time"

	"gorm.io/gorm"
)

// Presence statuses set by the hub on connect/disconnect. Any other string is a
// user-chosen custom status.
const (
	StatusOnline  = "Online"
	StatusOffline = "Offline"
)

// A registered user of the chat system
type User struct {
	UUID      string         `gorm:"primaryKey" json:"uuid"`            // Unique identifier
	Username  string         `gorm:"uniqueIndex;not null" json:"username"` // Display name, unique across the system
	Status    string         `gorm:"not null;default:'Offline'" json:"status"` // Presence status (Online/Offline/custom)
	LastSeen  time.Time      `gorm:"index" json:"last-seen"`            // Last time the user connected or disconnected
	CreatedAt time.Time      `gorm:"not null;index" json:"created-at"`  // Time of registration
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                    // Time of soft deletion

	Secret UserSecret `gorm:"foreignKey:UserUUID;references:UUID" json:"-"` // Hashed credentials, kept in their own table
}
