/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

// Package hub is the real-time core: it tracks which users are connected,
// routes direct and group messages to live connections, keeps the group
// routing cache in sync with durable membership, and emits presence and
// notification side effects.
//
// There is no global event loop. Each connection runs its own goroutine and
// calls into the hub directly; the presence registry and the group router are
// the only shared mutable state and both are internally synchronized. Every
// action follows persist-then-notify: nothing is pushed to a socket before the
// durable write succeeded.
package hub

import (
	"errors"
	"fmt"
	"time"

	"chatterbox/internal/applog"
	"chatterbox/internal/entity"
	"chatterbox/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Notifier is the notification sink. Enqueue is fire-and-forget: the hub never
// learns whether the notification was delivered, only that it was accepted.
type Notifier interface {
	Enqueue(recipientUUID, title, body, category string, relatedUUID *string)
}

// Hub orchestrates the connection lifecycle and every real-time action.
type Hub struct {
	presence *PresenceRegistry
	router   *GroupRouter

	users       repository.UserRepository
	contacts    repository.ContactRepository
	memberships repository.GroupRepository
	messages    repository.MessageRepository

	notifier Notifier
	logger   applog.Logger
}

func NewHub(
	presence *PresenceRegistry,
	router *GroupRouter,
	users repository.UserRepository,
	contacts repository.ContactRepository,
	memberships repository.GroupRepository,
	messages repository.MessageRepository,
	notifier Notifier,
	logger applog.Logger,
) *Hub {
	return &Hub{
		presence:    presence,
		router:      router,
		users:       users,
		contacts:    contacts,
		memberships: memberships,
		messages:    messages,
		notifier:    notifier,
		logger:      logger,
	}
}

// HandleConnect runs the Connecting -> Connected transition: register
// presence, go Online, tell the watching contacts, and subscribe the
// connection to every group the user durably belongs to. The subscriptions
// complete before this returns, so the user misses no group message once the
// connect sequence is done.
func (h *Hub) HandleConnect(c *Client) error {
	if c.UserUUID == "" {
		return nil
	}

	h.presence.Connect(c.UserUUID, c)

	user, err := h.users.GetByUUID(c.UserUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("loading user on connect: %w", err)
	}

	if err := h.users.UpdateStatus(c.UserUUID, entity.StatusOnline, time.Now()); err != nil {
		return fmt.Errorf("setting online status: %w", err)
	}

	h.notifyWatchers(c.UserUUID, EventUserConnected, UserPayload{UserID: c.UserUUID},
		"Contact Online", user.Username+" is now online")

	groups, err := h.memberships.GroupsOf(c.UserUUID)
	if err != nil {
		return fmt.Errorf("loading group memberships on connect: %w", err)
	}
	for _, groupUUID := range groups {
		h.router.Subscribe(c, groupUUID)
	}

	h.logger.Logf("User %s connected (%d groups)", c.UserUUID, len(groups))
	return nil
}

// HandleDisconnect runs the Connected -> Disconnected transition. It is
// registered unconditionally at connection start, so it also runs when the
// disconnect was caused by a failed action. The routing cache entry is always
// dropped; presence and the Offline status are only touched when this
// connection is still the registered one, so a reconnect from a second device
// survives the first device's late disconnect.
func (h *Hub) HandleDisconnect(c *Client) {
	if c.UserUUID == "" {
		return
	}

	h.router.Drop(c)

	current, ok := h.presence.Lookup(c.UserUUID)
	if !ok || current != c {
		return
	}
	h.presence.Disconnect(c.UserUUID)

	user, err := h.users.GetByUUID(c.UserUUID)
	if err != nil {
		h.logger.Logf("Loading user on disconnect failed for %s {%v}", c.UserUUID, err)
		return
	}
	if err := h.users.UpdateStatus(c.UserUUID, entity.StatusOffline, time.Now()); err != nil {
		h.logger.Logf("Setting offline status failed for %s {%v}", c.UserUUID, err)
		return
	}

	h.notifyWatchers(c.UserUUID, EventUserDisconnected, UserPayload{UserID: c.UserUUID},
		"Contact Offline", user.Username+" has gone offline")

	h.logger.Logf("User %s disconnected", c.UserUUID)
}

// SendDirectMessage persists a DM and delivers it: a best-effort live push to
// the receiver, a MessageSent confirmation to the caller, and always a durable
// notification for the receiver whatever their live status.
func (h *Hub) SendDirectMessage(c *Client, receiverUUID, content string) error {
	if c.UserUUID == "" {
		return nil
	}
	sender, err := h.users.GetByUUID(c.UserUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("loading sender: %w", err)
	}

	message := &entity.Message{
		UUID:         uuid.New().String(),
		SenderUUID:   sender.UUID,
		ReceiverUUID: &receiverUUID,
		Content:      content,
		SentAt:       time.Now(),
		IsRead:       false,
		IsDeleted:    false,
	}
	if err := h.messages.Create(message); err != nil {
		return fmt.Errorf("persisting message: %w", err)
	}

	payload := DirectMessagePayload{
		MessageID:  message.UUID,
		SenderID:   sender.UUID,
		SenderName: sender.Username,
		ReceiverID: receiverUUID,
		Content:    content,
		SentAt:     message.SentAt,
		IsRead:     false,
	}

	if receiver, ok := h.presence.Lookup(receiverUUID); ok {
		receiver.Push(EventReceiveMessage, payload)
	}
	c.Push(EventMessageSent, payload)

	h.notifier.Enqueue(
		receiverUUID,
		"New message from "+sender.Username,
		truncateForNotification(content),
		entity.CategoryDirectMessage,
		&sender.UUID,
	)
	return nil
}

// SendGroupMessage persists a group message, broadcasts it to every connection
// subscribed to the group (the sender included, who observes their own message
// through the broadcast), and enqueues one notification per other durable
// member so offline members are told too.
func (h *Hub) SendGroupMessage(c *Client, groupUUID, content string) error {
	if c.UserUUID == "" {
		return nil
	}
	sender, err := h.users.GetByUUID(c.UserUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("loading sender: %w", err)
	}

	// Membership is checked against the durable store, not the routing cache.
	isMember, err := h.memberships.IsMember(groupUUID, c.UserUUID)
	if err != nil {
		return fmt.Errorf("checking membership: %w", err)
	}
	if !isMember {
		return nil
	}

	message := &entity.Message{
		UUID:       uuid.New().String(),
		SenderUUID: sender.UUID,
		GroupUUID:  &groupUUID,
		Content:    content,
		SentAt:     time.Now(),
	}
	if err := h.messages.Create(message); err != nil {
		return fmt.Errorf("persisting message: %w", err)
	}

	payload := GroupMessagePayload{
		MessageID:  message.UUID,
		SenderID:   sender.UUID,
		SenderName: sender.Username,
		GroupID:    groupUUID,
		Content:    content,
		SentAt:     message.SentAt,
	}
	for _, subscriber := range h.router.MembersOf(groupUUID) {
		subscriber.Push(EventReceiveGroupMessage, payload)
	}

	group, err := h.memberships.GetByUUID(groupUUID)
	if err != nil {
		h.logger.Logf("Group %s gone before notifying members {%v}", groupUUID, err)
		return nil
	}
	h.notifyOtherMembers(groupUUID, sender.UUID,
		"New message in "+group.Name,
		sender.Username+": "+truncateForNotification(content),
		entity.CategoryGroupMessage)
	return nil
}

// JoinGroup subscribes the connection to a group's live broadcasts. The caller
// must already be a durable member; joining a nonexistent group is rejected.
func (h *Hub) JoinGroup(c *Client, groupUUID string) error {
	if c.UserUUID == "" {
		return nil
	}
	user, err := h.users.GetByUUID(c.UserUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("loading user: %w", err)
	}

	group, err := h.memberships.GetByUUID(groupUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("group %s does not exist", groupUUID)
		}
		return fmt.Errorf("loading group: %w", err)
	}

	isMember, err := h.memberships.IsMember(groupUUID, c.UserUUID)
	if err != nil {
		return fmt.Errorf("checking membership: %w", err)
	}
	if !isMember {
		return nil
	}

	h.router.Subscribe(c, groupUUID)

	payload := GroupActivityPayload{GroupID: groupUUID, UserName: user.Username}
	for _, subscriber := range h.router.MembersOf(groupUUID) {
		subscriber.Push(EventUserJoinedGroup, payload)
	}
	h.notifyOtherMembers(groupUUID, c.UserUUID,
		"Group Activity", user.Username+" joined "+group.Name, entity.CategoryGroupActivity)
	return nil
}

// LeaveGroup drops the connection from the group's live broadcasts. It is
// idempotent and needs no membership check; durable membership changes go
// through the group service.
func (h *Hub) LeaveGroup(c *Client, groupUUID string) error {
	if c.UserUUID == "" {
		return nil
	}
	user, err := h.users.GetByUUID(c.UserUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("loading user: %w", err)
	}

	h.router.Unsubscribe(c, groupUUID)

	group, err := h.memberships.GetByUUID(groupUUID)
	if err != nil {
		return nil
	}

	payload := GroupActivityPayload{GroupID: groupUUID, UserName: user.Username}
	for _, subscriber := range h.router.MembersOf(groupUUID) {
		subscriber.Push(EventUserLeftGroup, payload)
	}
	h.notifyOtherMembers(groupUUID, c.UserUUID,
		"Group Activity", user.Username+" left "+group.Name, entity.CategoryGroupActivity)
	return nil
}

// UpdateStatus records a new presence status. The persisted write and the
// durable notification happen only when the status actually changed, so
// re-setting the same status is idempotent; live contacts still receive the
// broadcast either way.
func (h *Hub) UpdateStatus(c *Client, status string) error {
	if c.UserUUID == "" {
		return nil
	}
	user, err := h.users.GetByUUID(c.UserUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("loading user: %w", err)
	}

	changed := user.Status != status
	if changed {
		if err := h.users.UpdateStatus(c.UserUUID, status, user.LastSeen); err != nil {
			return fmt.Errorf("persisting status: %w", err)
		}
	}

	watchers, err := h.contacts.WatcherUUIDs(c.UserUUID)
	if err != nil {
		return fmt.Errorf("loading watchers: %w", err)
	}
	for _, watcherUUID := range watchers {
		if watcher, ok := h.presence.Lookup(watcherUUID); ok {
			watcher.Push(EventUserStatusUpdated, StatusPayload{UserID: c.UserUUID, Status: status})
			if changed {
				h.notifier.Enqueue(watcherUUID, "Contact Status Update",
					user.Username+" is now "+status, entity.CategoryUserStatus, nil)
			}
		}
	}
	return nil
}

// MarkMessageAsRead raises the read flag of a DM the caller received. Only the
// first transition produces a receipt push and a notification for the sender;
// re-marking is a no-op. Receipts on unknown messages are silently dropped.
func (h *Hub) MarkMessageAsRead(c *Client, messageUUID string) error {
	if c.UserUUID == "" {
		return nil
	}

	message, err := h.messages.GetByUUID(messageUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("loading message: %w", err)
	}
	if message.ReceiverUUID == nil || *message.ReceiverUUID != c.UserUUID {
		return nil
	}
	if message.IsRead {
		return nil
	}

	if err := h.messages.MarkRead(messageUUID); err != nil {
		return fmt.Errorf("marking message read: %w", err)
	}

	if sender, ok := h.presence.Lookup(message.SenderUUID); ok {
		sender.Push(EventMessageRead, ReadPayload{MessageID: messageUUID})
	}

	reader, err := h.users.GetByUUID(c.UserUUID)
	if err != nil {
		return nil
	}
	h.notifier.Enqueue(message.SenderUUID, "Message Read",
		reader.Username+" has read your message", entity.CategoryMessageStatus, &messageUUID)
	return nil
}

// MarkGroupMessageAsRead raises the read flag of a group message. Any member
// may mark it; membership is implied by the group subscription, there is no
// receiver to check ownership against. First transition only, like the DM path.
func (h *Hub) MarkGroupMessageAsRead(c *Client, messageUUID string) error {
	if c.UserUUID == "" {
		return nil
	}

	message, err := h.messages.GetByUUID(messageUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("loading message: %w", err)
	}
	if !message.IsForGroup() || message.IsRead {
		return nil
	}

	if err := h.messages.MarkRead(messageUUID); err != nil {
		return fmt.Errorf("marking message read: %w", err)
	}

	payload := GroupReadPayload{MessageID: messageUUID, ReaderID: c.UserUUID}
	for _, subscriber := range h.router.MembersOf(*message.GroupUUID) {
		subscriber.Push(EventGroupMessageRead, payload)
	}

	reader, err := h.users.GetByUUID(c.UserUUID)
	if err != nil {
		return nil
	}
	h.notifier.Enqueue(message.SenderUUID, "Group Message Read",
		reader.Username+" has read your message in the group", entity.CategoryMessageStatus, &messageUUID)
	return nil
}

// notifyWatchers pushes an event to every currently-present contact that has
// this user in their list, and enqueues a notification for each of those.
// Presence edges are asymmetric: only watchers are told, not watched users.
func (h *Hub) notifyWatchers(userUUID, event string, payload any, title, body string) {
	watchers, err := h.contacts.WatcherUUIDs(userUUID)
	if err != nil {
		h.logger.Logf("Loading watchers of %s failed {%v}", userUUID, err)
		return
	}
	for _, watcherUUID := range watchers {
		if watcher, ok := h.presence.Lookup(watcherUUID); ok {
			watcher.Push(event, payload)
			h.notifier.Enqueue(watcherUUID, title, body, entity.CategoryUserStatus, nil)
		}
	}
}

// notifyOtherMembers enqueues one notification per durable group member other
// than the acting user. Durable members, not subscribed connections: offline
// members must be notified too.
func (h *Hub) notifyOtherMembers(groupUUID, actorUUID, title, body, category string) {
	memberUUIDs, err := h.memberships.MemberUUIDs(groupUUID)
	if err != nil {
		h.logger.Logf("Loading members of %s failed {%v}", groupUUID, err)
		return
	}
	for _, memberUUID := range memberUUIDs {
		if memberUUID == actorUUID {
			continue
		}
		h.notifier.Enqueue(memberUUID, title, body, category, &groupUUID)
	}
}

// Notification bodies carry a preview only; the stored message keeps the full
// content. Anything over 50 runes is cut to 47 plus an ellipsis.
func truncateForNotification(content string) string {
	runes := []rune(content)
	if len(runes) > 50 {
		return string(runes[:47]) + "..."
	}
	return content
}
