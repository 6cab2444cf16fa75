/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package repository

import (
	"testing"
	"time"

	"chatterbox/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactListExcludesBlocked(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLiteContactRepository(db)

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	carol := seedUser(t, db, "carol")

	require.NoError(t, repo.Add(&entity.Contact{UserUUID: alice.UUID, ContactUUID: bob.UUID, CreatedAt: time.Now()}))
	require.NoError(t, repo.Add(&entity.Contact{UserUUID: alice.UUID, ContactUUID: carol.UUID, CreatedAt: time.Now()}))
	require.NoError(t, repo.SetBlocked(alice.UUID, carol.UUID, true))

	contacts, err := repo.ListContactsOf(alice.UUID)
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	require.NotNil(t, contacts[0].ContactUser)
	assert.Equal(t, "bob", contacts[0].ContactUser.Username)

	require.NoError(t, repo.SetBlocked(alice.UUID, carol.UUID, false))
	contacts, err = repo.ListContactsOf(alice.UUID)
	require.NoError(t, err)
	assert.Len(t, contacts, 2)
}

func TestContactWatcherUUIDsIsDirectional(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLiteContactRepository(db)

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	carol := seedUser(t, db, "carol")

	// bob and carol both watch alice; alice watches nobody.
	require.NoError(t, repo.Add(&entity.Contact{UserUUID: bob.UUID, ContactUUID: alice.UUID, CreatedAt: time.Now()}))
	require.NoError(t, repo.Add(&entity.Contact{UserUUID: carol.UUID, ContactUUID: alice.UUID, CreatedAt: time.Now()}))

	watchers, err := repo.WatcherUUIDs(alice.UUID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{bob.UUID, carol.UUID}, watchers)

	watchers, err = repo.WatcherUUIDs(bob.UUID)
	require.NoError(t, err)
	assert.Empty(t, watchers)
}

func TestContactRemove(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLiteContactRepository(db)

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	require.NoError(t, repo.Add(&entity.Contact{UserUUID: alice.UUID, ContactUUID: bob.UUID, CreatedAt: time.Now()}))

	require.NoError(t, repo.Remove(alice.UUID, bob.UUID))
	contacts, err := repo.ListContactsOf(alice.UUID)
	require.NoError(t, err)
	assert.Empty(t, contacts)

	// Removing an absent edge is a no-op.
	require.NoError(t, repo.Remove(alice.UUID, bob.UUID))
}
