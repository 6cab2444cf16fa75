/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package entity

import "time"

// A directed contact edge: UserUUID has ContactUUID in their contact list.
// The edge is asymmetric, presence events only flow along existing edges.
type Contact struct {
	UserUUID    string    `gorm:"primaryKey" json:"user"`          // Owner of the contact entry
	ContactUUID string    `gorm:"primaryKey" json:"contact"`       // The user being followed
	IsBlocked   bool      `gorm:"default:false" json:"is-blocked"` // Blocked contacts are hidden from listings
	CreatedAt   time.Time `gorm:"not null" json:"created-at"`      // Time the edge was created

	ContactUser *User `gorm:"foreignKey:ContactUUID;references:UUID" json:"contact-user,omitempty"`
}
