/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package service

import (
	"chatterbox/internal/applog"
	"chatterbox/internal/entity"
	"chatterbox/internal/repository"
)

// Service used to read back chat history. Writing goes through the hub, which
// owns the persist-then-notify sequence; this service only queries.
type MessageService interface {
	HistoryWith(actorUUID, otherUUID string) ([]*entity.Message, error) // The DM chat between the actor and another user, oldest first
	Delete(actorUUID, messageUUID string) error                         // Soft deletes one of the actor's own messages
}

type messageService struct {
	messageRepository repository.MessageRepository // Repository for messages
	userRepository    repository.UserRepository    // Repository for users
	logger            applog.Logger                // Logs a format string
}

func NewMessageService(messageRepo repository.MessageRepository, userRepo repository.UserRepository, logger applog.Logger) MessageService {
	return &messageService{
		messageRepository: messageRepo,
		userRepository:    userRepo,
		logger:            logger,
	}
}

func (m *messageService) HistoryWith(actorUUID, otherUUID string) ([]*entity.Message, error) {
	if _, err := m.userRepository.GetByUUID(otherUUID); err != nil {
		return nil, err
	}
	return m.messageRepository.HistoryDirect(actorUUID, otherUUID, historyLimit)
}

func (m *messageService) Delete(actorUUID, messageUUID string) error {
	message, err := m.messageRepository.GetByUUID(messageUUID)
	if err != nil {
		return err
	}
	if message.SenderUUID != actorUUID {
		return ErrForbidden
	}
	return m.messageRepository.SoftDelete(messageUUID)
}
