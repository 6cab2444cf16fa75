/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package repository

import (
	"chatterbox/internal/entity"

	"gorm.io/gorm"
)

// This repository manipulates groups and their membership edges.
// It is the authority for group membership: the hub's routing cache is derived
// from it and always subordinate to it.
type GroupRepository interface {
	Create(group *entity.ChatGroup) error              // Inserts a group together with its initial members
	GetByUUID(uuid string) (*entity.ChatGroup, error)  // Retrieves the group with the given uuid, members included
	SoftDelete(uuid string) error                      // Soft deletes the group (the record remains, it's just marked deleted)

	AddMember(member *entity.GroupMember) error            // Inserts a membership edge
	RemoveMember(groupUUID, userUUID string) error         // Deletes a membership edge, no-op if absent
	IsMember(groupUUID, userUUID string) (bool, error)     // True when a membership edge exists
	MemberUUIDs(groupUUID string) ([]string, error)        // UUIDs of all members of the group
	GetMembers(groupUUID string) ([]*entity.GroupMember, error) // Membership edges with the user entities loaded

	GroupsOf(userUUID string) ([]string, error)                  // UUIDs of all groups the user is a member of
	ListVisible(userUUID string) ([]*entity.ChatGroup, error)    // Public groups plus private groups the user belongs to
}

// Implementation of the repository using a SQLite DB
type SQLiteGroupRepository struct {
	db *gorm.DB
}

func NewSQLiteGroupRepository(db *gorm.DB) GroupRepository {
	return &SQLiteGroupRepository{db}
}

func (repo *SQLiteGroupRepository) Create(group *entity.ChatGroup) error {
	return repo.db.Create(group).Error
}

func (repo *SQLiteGroupRepository) GetByUUID(uuid string) (*entity.ChatGroup, error) {
	var group entity.ChatGroup
	if err := repo.db.Preload("Members").Where("uuid = ?", uuid).First(&group).Error; err != nil {
		return nil, err
	}
	return &group, nil
}

func (repo *SQLiteGroupRepository) SoftDelete(uuid string) error {
	return repo.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("group_uuid = ?", uuid).Delete(&entity.GroupMember{}).Error; err != nil {
			return err
		}
		return tx.Where("uuid = ?", uuid).Delete(&entity.ChatGroup{}).Error
	})
}

func (repo *SQLiteGroupRepository) AddMember(member *entity.GroupMember) error {
	return repo.db.Create(member).Error
}

func (repo *SQLiteGroupRepository) RemoveMember(groupUUID, userUUID string) error {
	return repo.db.
		Where("group_uuid = ? AND user_uuid = ?", groupUUID, userUUID).
		Delete(&entity.GroupMember{}).Error
}

func (repo *SQLiteGroupRepository) IsMember(groupUUID, userUUID string) (bool, error) {
	var count int64
	err := repo.db.Model(&entity.GroupMember{}).
		Where("group_uuid = ? AND user_uuid = ?", groupUUID, userUUID).
		Count(&count).Error
	return count > 0, err
}

func (repo *SQLiteGroupRepository) MemberUUIDs(groupUUID string) ([]string, error) {
	var uuids []string
	err := repo.db.Model(&entity.GroupMember{}).
		Where("group_uuid = ?", groupUUID).
		Pluck("user_uuid", &uuids).Error
	return uuids, err
}

func (repo *SQLiteGroupRepository) GetMembers(groupUUID string) ([]*entity.GroupMember, error) {
	var members []*entity.GroupMember
	err := repo.db.Preload("User").
		Where("group_uuid = ?", groupUUID).
		Find(&members).Error
	return members, err
}

func (repo *SQLiteGroupRepository) GroupsOf(userUUID string) ([]string, error) {
	var uuids []string
	err := repo.db.Model(&entity.GroupMember{}).
		Where("user_uuid = ?", userUUID).
		Pluck("group_uuid", &uuids).Error
	return uuids, err
}

func (repo *SQLiteGroupRepository) ListVisible(userUUID string) ([]*entity.ChatGroup, error) {
	var groups []*entity.ChatGroup
	err := repo.db.Preload("Members").
		Where("is_private = ? OR uuid IN (?)",
			false,
			repo.db.Model(&entity.GroupMember{}).Select("group_uuid").Where("user_uuid = ?", userUUID),
		).
		Find(&groups).Error
	return groups, err
}
