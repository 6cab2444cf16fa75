/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package service

import (
	"time"

	"chatterbox/internal/applog"
	"chatterbox/internal/entity"
	"chatterbox/internal/hub"
	"chatterbox/internal/repository"

	"github.com/google/uuid"
)

const notificationPageSize = 20

// The notification sink. Enqueue persists the notification, then best-effort
// pushes it to the recipient's live connection if there is one; the persisted
// row is what offline users catch up on. The rest of the interface backs the
// notification REST surface.
type NotificationService interface {
	Enqueue(recipientUUID, title, body, category string, relatedUUID *string) // Fire-and-forget, implements the hub's sink contract

	List(recipientUUID string, page int) ([]*entity.Notification, int64, error) // Newest-first page plus the unread count
	MarkRead(uuid, recipientUUID string) error
	MarkAllRead(recipientUUID string) error
	Delete(uuid, recipientUUID string) error
	DeleteAll(recipientUUID string) error
}

type notificationService struct {
	notificationRepository repository.NotificationRepository // Repository for notifications
	presence               *hub.PresenceRegistry             // Used for the best-effort live push
	logger                 applog.Logger                     // Logs a format string
}

func NewNotificationService(notificationRepo repository.NotificationRepository, presence *hub.PresenceRegistry, logger applog.Logger) NotificationService {
	return &notificationService{
		notificationRepository: notificationRepo,
		presence:               presence,
		logger:                 logger,
	}
}

func (n *notificationService) Enqueue(recipientUUID, title, body, category string, relatedUUID *string) {
	notification := &entity.Notification{
		UUID:          uuid.New().String(),
		RecipientUUID: recipientUUID,
		Title:         title,
		Body:          body,
		Category:      category,
		RelatedUUID:   relatedUUID,
		CreatedAt:     time.Now(),
	}
	if err := n.notificationRepository.Create(notification); err != nil {
		// Fire-and-forget: the caller already did its durable work, a lost
		// notification must not fail the action that produced it.
		n.logger.Logf("Persisting notification for %s failed {%v}", recipientUUID, err)
		return
	}

	if client, ok := n.presence.Lookup(recipientUUID); ok {
		client.Push(hub.EventReceiveNotification, notification)
	}
}

func (n *notificationService) List(recipientUUID string, page int) ([]*entity.Notification, int64, error) {
	if page < 1 {
		page = 1
	}
	notifications, err := n.notificationRepository.ListFor(recipientUUID, notificationPageSize, (page-1)*notificationPageSize)
	if err != nil {
		return nil, 0, err
	}
	unread, err := n.notificationRepository.UnreadCount(recipientUUID)
	if err != nil {
		return nil, 0, err
	}
	return notifications, unread, nil
}

func (n *notificationService) MarkRead(uuid, recipientUUID string) error {
	return n.notificationRepository.MarkRead(uuid, recipientUUID)
}

func (n *notificationService) MarkAllRead(recipientUUID string) error {
	return n.notificationRepository.MarkAllRead(recipientUUID)
}

func (n *notificationService) Delete(uuid, recipientUUID string) error {
	return n.notificationRepository.Delete(uuid, recipientUUID)
}

func (n *notificationService) DeleteAll(recipientUUID string) error {
	return n.notificationRepository.DeleteAll(recipientUUID)
}
