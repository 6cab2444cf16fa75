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

// This repository manipulates the directed contact edges between users.
// Contact edges are asymmetric: A having B as a contact says nothing about B.
type ContactRepository interface {
	Add(contact *entity.Contact) error                            // Inserts a contact edge
	Remove(userUUID, contactUUID string) error                    // Deletes the edge, no-op if absent
	SetBlocked(userUUID, contactUUID string, blocked bool) error  // Raises or clears the blocked flag on the edge
	Get(userUUID, contactUUID string) (*entity.Contact, error)    // Retrieves a single edge
	ListContactsOf(userUUID string) ([]*entity.Contact, error)    // Outgoing unblocked edges of the user, with the contact users loaded
	WatcherUUIDs(contactUUID string) ([]string, error)            // Users that have contactUUID in their contact list (presence flows to these)
}

// Implementation of the repository using a SQLite DB
type SQLiteContactRepository struct {
	db *gorm.DB
}

func NewSQLiteContactRepository(db *gorm.DB) ContactRepository {
	return &SQLiteContactRepository{db}
}

func (repo *SQLiteContactRepository) Add(contact *entity.Contact) error {
	return repo.db.Create(contact).Error
}

func (repo *SQLiteContactRepository) Remove(userUUID, contactUUID string) error {
	return repo.db.
		Where("user_uuid = ? AND contact_uuid = ?", userUUID, contactUUID).
		Delete(&entity.Contact{}).Error
}

func (repo *SQLiteContactRepository) SetBlocked(userUUID, contactUUID string, blocked bool) error {
	return repo.db.Model(&entity.Contact{}).
		Where("user_uuid = ? AND contact_uuid = ?", userUUID, contactUUID).
		Update("is_blocked", blocked).Error
}

func (repo *SQLiteContactRepository) Get(userUUID, contactUUID string) (*entity.Contact, error) {
	var contact entity.Contact
	err := repo.db.
		Where("user_uuid = ? AND contact_uuid = ?", userUUID, contactUUID).
		First(&contact).Error
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

func (repo *SQLiteContactRepository) ListContactsOf(userUUID string) ([]*entity.Contact, error) {
	var contacts []*entity.Contact
	err := repo.db.Preload("ContactUser").
		Where("user_uuid = ? AND is_blocked = ?", userUUID, false).
		Find(&contacts).Error
	return contacts, err
}

func (repo *SQLiteContactRepository) WatcherUUIDs(contactUUID string) ([]string, error) {
	var uuids []string
	err := repo.db.Model(&entity.Contact{}).
		Where("contact_uuid = ?", contactUUID).
		Pluck("user_uuid", &uuids).Error
	return uuids, err
}
