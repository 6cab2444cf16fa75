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

// This repository stores the notifications enqueued for users.
// All reads and mutations are scoped to the recipient so users can only touch their own.
type NotificationRepository interface {
	Create(notification *entity.Notification) error // Inserts a notification

	ListFor(recipientUUID string, limit, offset int) ([]*entity.Notification, error) // Newest-first page of the recipient's notifications
	UnreadCount(recipientUUID string) (int64, error)                                 // Number of unread notifications

	MarkRead(uuid, recipientUUID string) error // Raises the read flag on one notification
	MarkAllRead(recipientUUID string) error    // Raises the read flag on all of the recipient's notifications
	Delete(uuid, recipientUUID string) error   // Deletes one notification
	DeleteAll(recipientUUID string) error      // Deletes all of the recipient's notifications
}

// Implementation of the repository using a SQLite DB
type SQLiteNotificationRepository struct {
	db *gorm.DB
}

func NewSQLiteNotificationRepository(db *gorm.DB) NotificationRepository {
	return &SQLiteNotificationRepository{db}
}

func (repo *SQLiteNotificationRepository) Create(notification *entity.Notification) error {
	return repo.db.Create(notification).Error
}

func (repo *SQLiteNotificationRepository) ListFor(recipientUUID string, limit, offset int) ([]*entity.Notification, error) {
	var notifications []*entity.Notification
	err := repo.db.
		Where("recipient_uuid = ?", recipientUUID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&notifications).Error
	return notifications, err
}

func (repo *SQLiteNotificationRepository) UnreadCount(recipientUUID string) (int64, error) {
	var count int64
	err := repo.db.Model(&entity.Notification{}).
		Where("recipient_uuid = ? AND is_read = ?", recipientUUID, false).
		Count(&count).Error
	return count, err
}

func (repo *SQLiteNotificationRepository) MarkRead(uuid, recipientUUID string) error {
	return repo.db.Model(&entity.Notification{}).
		Where("uuid = ? AND recipient_uuid = ?", uuid, recipientUUID).
		Update("is_read", true).Error
}

func (repo *SQLiteNotificationRepository) MarkAllRead(recipientUUID string) error {
	return repo.db.Model(&entity.Notification{}).
		Where("recipient_uuid = ?", recipientUUID).
		Update("is_read", true).Error
}

func (repo *SQLiteNotificationRepository) Delete(uuid, recipientUUID string) error {
	return repo.db.
		Where("uuid = ? AND recipient_uuid = ?", uuid, recipientUUID).
		Delete(&entity.Notification{}).Error
}

func (repo *SQLiteNotificationRepository) DeleteAll(recipientUUID string) error {
	return repo.db.
		Where("recipient_uuid = ?", recipientUUID).
		Delete(&entity.Notification{}).Error
}
