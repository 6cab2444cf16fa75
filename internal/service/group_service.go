/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package service

import (
	"errors"
	"time"

	"chatterbox/internal/applog"
	"chatterbox/internal/entity"
	"chatterbox/internal/repository"

	"github.com/google/uuid"
)

// Things a user may attempt on a group. Every permission decision in the
// system goes through Can, so the rules live in exactly one place.
type GroupAction int

const (
	GroupActionView GroupAction = iota
	GroupActionManageMembers
	GroupActionDelete
)

var (
	ErrForbidden      = errors.New("actor lacks permission for this group action")
	ErrCreatorRemoval = errors.New("the group creator cannot be removed")
	ErrNotAMember     = errors.New("user is not a member of the group")
)

const historyLimit = 50

// Service used to handle groups and user-group interaction
type GroupService interface {
	CreateGroup(name, creatorUUID string, isPrivate bool) (*entity.ChatGroup, error) // Creates a group, the creator becomes its first member with the Admin role
	DeleteGroup(actorUUID, groupUUID string) error                                   // Soft deletes the group, creator only

	Details(actorUUID, groupUUID string) (*entity.ChatGroup, []*entity.GroupMember, []*entity.Message, error) // Group, members and recent messages, visibility rules applied
	ListVisible(actorUUID string) ([]*entity.ChatGroup, error)                                                // Public groups plus private groups the actor belongs to

	AddMember(actorUUID, groupUUID, userUUID string) error    // Adds a member, requires the manage-members capability
	RemoveMember(actorUUID, groupUUID, userUUID string) error // Removes a member, requires the manage-members capability, never the creator
	Leave(actorUUID, groupUUID string) error                  // Removes the actor's own membership, invalid for the creator

	Can(actorUUID string, group *entity.ChatGroup, action GroupAction) bool // The single capability check
}

type groupService struct {
	groupRepository   repository.GroupRepository   // Repository for groups, the membership authority
	userRepository    repository.UserRepository    // Repository for users
	messageRepository repository.MessageRepository // Repository for messages
	logger            applog.Logger                // Logs a format string
}

func NewGroupService(groupRepo repository.GroupRepository, userRepo repository.UserRepository, messageRepo repository.MessageRepository, logger applog.Logger) GroupService {
	return &groupService{
		groupRepository:   groupRepo,
		userRepository:    userRepo,
		messageRepository: messageRepo,
		logger:            logger,
	}
}

// Can decides whether actor may perform action on group.
// Deletion is reserved to the creator; member management to the creator and
// Admin-role members; viewing to anyone for public groups and members for
// private ones.
func (g *groupService) Can(actorUUID string, group *entity.ChatGroup, action GroupAction) bool {
	if group == nil {
		return false
	}
	isCreator := group.CreatorUUID == actorUUID

	var isMember, isAdmin bool
	for _, member := range group.Members {
		if member.UserUUID == actorUUID {
			isMember = true
			isAdmin = member.Role == entity.RoleAdmin
			break
		}
	}

	switch action {
	case GroupActionView:
		return !group.IsPrivate || isMember
	case GroupActionManageMembers:
		return isCreator || isAdmin
	case GroupActionDelete:
		return isCreator
	}
	return false
}

func (g *groupService) CreateGroup(name, creatorUUID string, isPrivate bool) (*entity.ChatGroup, error) {
	if _, err := g.userRepository.GetByUUID(creatorUUID); err != nil {
		return nil, err
	}

	now := time.Now()
	group := &entity.ChatGroup{
		UUID:        uuid.New().String(),
		Name:        name,
		CreatorUUID: creatorUUID,
		IsPrivate:   isPrivate,
		CreatedAt:   now,
		Members: []entity.GroupMember{
			{UserUUID: creatorUUID, Role: entity.RoleAdmin, JoinedAt: now},
		},
	}
	if err := g.groupRepository.Create(group); err != nil {
		return nil, err
	}
	g.logger.Logf("Group %s (%s) created by %s", group.Name, group.UUID, creatorUUID)
	return group, nil
}

func (g *groupService) DeleteGroup(actorUUID, groupUUID string) error {
	group, err := g.groupRepository.GetByUUID(groupUUID)
	if err != nil {
		return err
	}
	if !g.Can(actorUUID, group, GroupActionDelete) {
		return ErrForbidden
	}
	if err := g.groupRepository.SoftDelete(groupUUID); err != nil {
		return err
	}
	g.logger.Logf("Group %s deleted by %s", groupUUID, actorUUID)
	return nil
}

func (g *groupService) Details(actorUUID, groupUUID string) (*entity.ChatGroup, []*entity.GroupMember, []*entity.Message, error) {
	group, err := g.groupRepository.GetByUUID(groupUUID)
	if err != nil {
		return nil, nil, nil, err
	}
	if !g.Can(actorUUID, group, GroupActionView) {
		return nil, nil, nil, ErrForbidden
	}

	members, err := g.groupRepository.GetMembers(groupUUID)
	if err != nil {
		return nil, nil, nil, err
	}
	messages, err := g.messageRepository.HistoryGroup(groupUUID, historyLimit)
	if err != nil {
		return nil, nil, nil, err
	}
	return group, members, messages, nil
}

func (g *groupService) ListVisible(actorUUID string) ([]*entity.ChatGroup, error) {
	return g.groupRepository.ListVisible(actorUUID)
}

func (g *groupService) AddMember(actorUUID, groupUUID, userUUID string) error {
	group, err := g.groupRepository.GetByUUID(groupUUID)
	if err != nil {
		return err
	}
	if !g.Can(actorUUID, group, GroupActionManageMembers) {
		return ErrForbidden
	}
	if _, err := g.userRepository.GetByUUID(userUUID); err != nil {
		return err
	}

	member := &entity.GroupMember{
		GroupUUID: groupUUID,
		UserUUID:  userUUID,
		Role:      entity.RoleMember,
		JoinedAt:  time.Now(),
	}
	if err := g.groupRepository.AddMember(member); err != nil {
		return err
	}
	g.logger.Logf("User %s added to group %s by %s", userUUID, groupUUID, actorUUID)
	return nil
}

func (g *groupService) RemoveMember(actorUUID, groupUUID, userUUID string) error {
	group, err := g.groupRepository.GetByUUID(groupUUID)
	if err != nil {
		return err
	}
	if !g.Can(actorUUID, group, GroupActionManageMembers) {
		return ErrForbidden
	}
	if group.CreatorUUID == userUUID {
		return ErrCreatorRemoval
	}

	if err := g.groupRepository.RemoveMember(groupUUID, userUUID); err != nil {
		return err
	}
	g.logger.Logf("User %s removed from group %s by %s", userUUID, groupUUID, actorUUID)
	return nil
}

func (g *groupService) Leave(actorUUID, groupUUID string) error {
	group, err := g.groupRepository.GetByUUID(groupUUID)
	if err != nil {
		return err
	}
	if group.CreatorUUID == actorUUID {
		return ErrCreatorRemoval
	}
	isMember, err := g.groupRepository.IsMember(groupUUID, actorUUID)
	if err != nil {
		return err
	}
	if !isMember {
		return ErrNotAMember
	}
	return g.groupRepository.RemoveMember(groupUUID, actorUUID)
}
