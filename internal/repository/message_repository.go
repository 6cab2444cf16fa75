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

// This repository manipulates chat messages, both DM and group ones.
// Messages are only ever soft deleted and the read flag is only ever raised.
type MessageRepository interface {
	Create(message *entity.Message) error            // Inserts a message
	GetByUUID(uuid string) (*entity.Message, error)  // Retrieves the message with the given uuid
	MarkRead(uuid string) error                      // Raises the read flag
	SoftDelete(uuid string) error                    // Raises the deleted flag, the row remains

	HistoryDirect(a, b string, limit int) ([]*entity.Message, error)     // Last limit messages of the DM chat between a and b, oldest first
	HistoryGroup(groupUUID string, limit int) ([]*entity.Message, error) // Last limit messages of the group chat, oldest first
}

// Implementation of the repository using a SQLite DB
type SQLiteMessageRepository struct {
	db *gorm.DB
}

func NewSQLiteMessageRepository(db *gorm.DB) MessageRepository {
	return &SQLiteMessageRepository{db}
}

func (repo *SQLiteMessageRepository) Create(message *entity.Message) error {
	return repo.db.Create(message).Error
}

func (repo *SQLiteMessageRepository) GetByUUID(uuid string) (*entity.Message, error) {
	var message entity.Message
	if err := repo.db.Where("uuid = ?", uuid).First(&message).Error; err != nil {
		return nil, err
	}
	return &message, nil
}

func (repo *SQLiteMessageRepository) MarkRead(uuid string) error {
	return repo.db.Model(&entity.Message{}).
		Where("uuid = ?", uuid).
		Update("is_read", true).Error
}

func (repo *SQLiteMessageRepository) SoftDelete(uuid string) error {
	return repo.db.Model(&entity.Message{}).
		Where("uuid = ?", uuid).
		Update("is_deleted", true).Error
}

func (repo *SQLiteMessageRepository) HistoryDirect(a, b string, limit int) ([]*entity.Message, error) {
	var messages []*entity.Message
	err := repo.db.
		Where("is_deleted = ?", false).
		Where(
			repo.db.Where("sender_uuid = ? AND receiver_uuid = ?", a, b).
				Or("sender_uuid = ? AND receiver_uuid = ?", b, a),
		).
		Order("sent_at DESC").
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	reverse(messages)
	return messages, nil
}

func (repo *SQLiteMessageRepository) HistoryGroup(groupUUID string, limit int) ([]*entity.Message, error) {
	var messages []*entity.Message
	err := repo.db.
		Where("group_uuid = ? AND is_deleted = ?", groupUUID, false).
		Order("sent_at DESC").
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	reverse(messages)
	return messages, nil
}

// The history queries fetch newest-first to apply the limit, clients want oldest first.
func reverse(messages []*entity.Message) {
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
}
