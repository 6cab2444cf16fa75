/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package service

import (
	"fmt"
	"time"

	"chatterbox/internal/applog"
	"chatterbox/internal/entity"
	"chatterbox/internal/repository"
)

const searchLimit = 10

// Service used to manage a user's contact list
type ContactService interface {
	List(userUUID string) ([]*entity.User, error)               // Retrieves the unblocked contacts of the user
	Search(actorUUID, term string) ([]*entity.User, error)      // Searches users by name fragment, excluding the actor, capped at 10
	Add(userUUID, contactUUID string) error                     // Adds a directed contact edge
	Remove(userUUID, contactUUID string) error                  // Removes the edge, no-op if absent
	SetBlocked(userUUID, contactUUID string, blocked bool) error // Raises or clears the blocked flag
}

type contactService struct {
	contactRepository repository.ContactRepository // Repository for contact edges
	userRepository    repository.UserRepository    // Repository for users
	logger            applog.Logger                // Logs a format string
}

func NewContactService(contactRepo repository.ContactRepository, userRepo repository.UserRepository, logger applog.Logger) ContactService {
	return &contactService{
		contactRepository: contactRepo,
		userRepository:    userRepo,
		logger:            logger,
	}
}

func (s *contactService) List(userUUID string) ([]*entity.User, error) {
	contacts, err := s.contactRepository.ListContactsOf(userUUID)
	if err != nil {
		return nil, err
	}
	users := make([]*entity.User, 0, len(contacts))
	for _, contact := range contacts {
		if contact.ContactUser != nil {
			users = append(users, contact.ContactUser)
		}
	}
	return users, nil
}

func (s *contactService) Search(actorUUID, term string) ([]*entity.User, error) {
	return s.userRepository.SearchByName(term, actorUUID, searchLimit)
}

func (s *contactService) Add(userUUID, contactUUID string) error {
	if userUUID == contactUUID {
		return fmt.Errorf("Cannot add yourself as a contact")
	}
	if _, err := s.userRepository.GetByUUID(contactUUID); err != nil {
		return fmt.Errorf("The requested user does not exist {%s}", err.Error())
	}

	contact := &entity.Contact{
		UserUUID:    userUUID,
		ContactUUID: contactUUID,
		IsBlocked:   false,
		CreatedAt:   time.Now(),
	}
	if err := s.contactRepository.Add(contact); err != nil {
		return err
	}
	s.logger.Logf("Contact edge %s -> %s created", userUUID, contactUUID)
	return nil
}

func (s *contactService) Remove(userUUID, contactUUID string) error {
	return s.contactRepository.Remove(userUUID, contactUUID)
}

func (s *contactService) SetBlocked(userUUID, contactUUID string, blocked bool) error {
	return s.contactRepository.SetBlocked(userUUID, contactUUID, blocked)
}
