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

// Member roles inside a group. The creator always holds RoleAdmin.
const (
	RoleAdmin  = "Admin"
	RoleMember = "Member"
)

// Group entity for the chat system
type ChatGroup struct {
	UUID        string         `gorm:"primaryKey" json:"uuid"`           // Unique identifier
	Name        string         `gorm:"not null;index" json:"name"`       // Name of the group chat
	CreatorUUID string         `gorm:"not null;index" json:"creator"`    // User that created the group, always an Admin member
	IsPrivate   bool           `gorm:"default:false" json:"is-private"`  // Private groups are visible to members only
	CreatedAt   time.Time      `gorm:"not null;index" json:"created-at"` // Time of creation
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`                   // Time of soft deletion

	Members []GroupMember `gorm:"foreignKey:GroupUUID;references:UUID" json:"members,omitempty"` // Membership edges of the group
}

// A membership edge between a group and a user
type GroupMember struct {
	GroupUUID string    `gorm:"primaryKey" json:"group"`               // Group the user belongs to
	UserUUID  string    `gorm:"primaryKey" json:"user"`                // The member
	Role      string    `gorm:"not null;default:'Member'" json:"role"` // Admin or Member
	JoinedAt  time.Time `gorm:"not null" json:"joined-at"`             // Time the user joined

	User *User `gorm:"foreignKey:UserUUID;references:UUID" json:"user-entity,omitempty"`
}
