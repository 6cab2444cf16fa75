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
	"testing"

	"chatterbox/internal/applog"
	"chatterbox/internal/entity"
	"chatterbox/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newGroupService(t *testing.T) (GroupService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	svc := NewGroupService(
		repository.NewSQLiteGroupRepository(db),
		repository.NewSQLiteUserRepository(db),
		repository.NewSQLiteMessageRepository(db),
		applog.Nop(),
	)
	return svc, db
}

func TestCreateGroupMakesCreatorAdmin(t *testing.T) {
	svc, db := newGroupService(t)
	alice := seedUser(t, db, "alice")

	group, err := svc.CreateGroup("gophers", alice.UUID, false)
	require.NoError(t, err)
	require.Len(t, group.Members, 1)
	assert.Equal(t, alice.UUID, group.Members[0].UserUUID)
	assert.Equal(t, entity.RoleAdmin, group.Members[0].Role)

	_, err = svc.CreateGroup("orphan", "no-such-user", false)
	assert.Error(t, err)
}

func TestGroupCapabilities(t *testing.T) {
	svc, db := newGroupService(t)
	creator := seedUser(t, db, "creator")
	admin := seedUser(t, db, "admin")
	member := seedUser(t, db, "member")
	outsider := seedUser(t, db, "outsider")

	group := &entity.ChatGroup{
		UUID:        "g",
		Name:        "g",
		CreatorUUID: creator.UUID,
		IsPrivate:   true,
		Members: []entity.GroupMember{
			{GroupUUID: "g", UserUUID: creator.UUID, Role: entity.RoleAdmin},
			{GroupUUID: "g", UserUUID: admin.UUID, Role: entity.RoleAdmin},
			{GroupUUID: "g", UserUUID: member.UUID, Role: entity.RoleMember},
		},
	}

	assert.True(t, svc.Can(creator.UUID, group, GroupActionDelete))
	assert.False(t, svc.Can(admin.UUID, group, GroupActionDelete), "admins do not get deletion")
	assert.True(t, svc.Can(creator.UUID, group, GroupActionManageMembers))
	assert.True(t, svc.Can(admin.UUID, group, GroupActionManageMembers))
	assert.False(t, svc.Can(member.UUID, group, GroupActionManageMembers))

	assert.True(t, svc.Can(member.UUID, group, GroupActionView))
	assert.False(t, svc.Can(outsider.UUID, group, GroupActionView), "private groups hide from outsiders")

	group.IsPrivate = false
	assert.True(t, svc.Can(outsider.UUID, group, GroupActionView))

	assert.False(t, svc.Can(creator.UUID, nil, GroupActionView))
}

func TestDetailsEnforcesVisibility(t *testing.T) {
	svc, db := newGroupService(t)
	alice := seedUser(t, db, "alice")
	outsider := seedUser(t, db, "outsider")

	group, err := svc.CreateGroup("secret", alice.UUID, true)
	require.NoError(t, err)

	_, members, _, err := svc.Details(alice.UUID, group.UUID)
	require.NoError(t, err)
	assert.Len(t, members, 1)

	_, _, _, err = svc.Details(outsider.UUID, group.UUID)
	assert.True(t, errors.Is(err, ErrForbidden))
}

func TestAddAndRemoveMember(t *testing.T) {
	svc, db := newGroupService(t)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	mallory := seedUser(t, db, "mallory")

	group, err := svc.CreateGroup("gophers", alice.UUID, false)
	require.NoError(t, err)

	assert.True(t, errors.Is(svc.AddMember(mallory.UUID, group.UUID, bob.UUID), ErrForbidden))
	require.NoError(t, svc.AddMember(alice.UUID, group.UUID, bob.UUID))
	assert.Error(t, svc.AddMember(alice.UUID, group.UUID, "no-such-user"))

	assert.True(t, errors.Is(svc.RemoveMember(bob.UUID, group.UUID, alice.UUID), ErrForbidden))
	assert.True(t, errors.Is(svc.RemoveMember(alice.UUID, group.UUID, alice.UUID), ErrCreatorRemoval))
	require.NoError(t, svc.RemoveMember(alice.UUID, group.UUID, bob.UUID))
}

func TestLeave(t *testing.T) {
	svc, db := newGroupService(t)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	carol := seedUser(t, db, "carol")

	group, err := svc.CreateGroup("gophers", alice.UUID, false)
	require.NoError(t, err)
	require.NoError(t, svc.AddMember(alice.UUID, group.UUID, bob.UUID))

	assert.True(t, errors.Is(svc.Leave(alice.UUID, group.UUID), ErrCreatorRemoval))
	assert.True(t, errors.Is(svc.Leave(carol.UUID, group.UUID), ErrNotAMember))
	require.NoError(t, svc.Leave(bob.UUID, group.UUID))
}

func TestDeleteGroup(t *testing.T) {
	svc, db := newGroupService(t)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	group, err := svc.CreateGroup("doomed", alice.UUID, false)
	require.NoError(t, err)

	assert.True(t, errors.Is(svc.DeleteGroup(bob.UUID, group.UUID), ErrForbidden))
	require.NoError(t, svc.DeleteGroup(alice.UUID, group.UUID))

	_, _, _, err = svc.Details(alice.UUID, group.UUID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}
