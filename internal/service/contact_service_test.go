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
	"testing"

	"chatterbox/internal/applog"
	"chatterbox/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newContactService(t *testing.T) (ContactService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	svc := NewContactService(
		repository.NewSQLiteContactRepository(db),
		repository.NewSQLiteUserRepository(db),
		applog.Nop(),
	)
	return svc, db
}

func TestContactAddAndList(t *testing.T) {
	svc, db := newContactService(t)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	require.NoError(t, svc.Add(alice.UUID, bob.UUID))

	contacts, err := svc.List(alice.UUID)
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, "bob", contacts[0].Username)

	// The edge is directed, bob sees nothing.
	contacts, err = svc.List(bob.UUID)
	require.NoError(t, err)
	assert.Empty(t, contacts)
}

func TestContactAddRejectsSelfAndUnknown(t *testing.T) {
	svc, db := newContactService(t)
	alice := seedUser(t, db, "alice")

	assert.Error(t, svc.Add(alice.UUID, alice.UUID))
	assert.Error(t, svc.Add(alice.UUID, "no-such-user"))
}

func TestContactBlockHidesFromList(t *testing.T) {
	svc, db := newContactService(t)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	require.NoError(t, svc.Add(alice.UUID, bob.UUID))
	require.NoError(t, svc.SetBlocked(alice.UUID, bob.UUID, true))

	contacts, err := svc.List(alice.UUID)
	require.NoError(t, err)
	assert.Empty(t, contacts)

	require.NoError(t, svc.SetBlocked(alice.UUID, bob.UUID, false))
	contacts, err = svc.List(alice.UUID)
	require.NoError(t, err)
	assert.Len(t, contacts, 1)
}

func TestContactSearchCapsResults(t *testing.T) {
	svc, db := newContactService(t)
	alice := seedUser(t, db, "alice")
	for i := 0; i < 15; i++ {
		seedUser(t, db, fmt.Sprintf("gopher-%02d", i))
	}

	found, err := svc.Search(alice.UUID, "gopher")
	require.NoError(t, err)
	assert.Len(t, found, searchLimit)

	found, err = svc.Search(alice.UUID, "ali")
	require.NoError(t, err)
	assert.Empty(t, found, "the actor is excluded from their own search")
}
