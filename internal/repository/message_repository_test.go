/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package repository

import (
	"fmt"
	"testing"
	"time"

	"chatterbox/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedDirectMessage(t *testing.T, repo MessageRepository, sender, receiver, content string, sentAt time.Time) *entity.Message {
	t.Helper()
	m := &entity.Message{
		UUID:         uuid.New().String(),
		SenderUUID:   sender,
		ReceiverUUID: &receiver,
		Content:      content,
		SentAt:       sentAt,
	}
	require.NoError(t, repo.Create(m))
	return m
}

func TestHistoryDirectMergesBothDirections(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLiteMessageRepository(db)

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	carol := seedUser(t, db, "carol")

	base := time.Now()
	seedDirectMessage(t, repo, alice.UUID, bob.UUID, "one", base)
	seedDirectMessage(t, repo, bob.UUID, alice.UUID, "two", base.Add(time.Second))
	seedDirectMessage(t, repo, alice.UUID, bob.UUID, "three", base.Add(2*time.Second))
	seedDirectMessage(t, repo, alice.UUID, carol.UUID, "other chat", base.Add(3*time.Second))

	history, err := repo.HistoryDirect(alice.UUID, bob.UUID, 50)
	require.NoError(t, err)
	require.Len(t, history, 3)

	// Oldest first, regardless of who sent what.
	assert.Equal(t, "one", history[0].Content)
	assert.Equal(t, "two", history[1].Content)
	assert.Equal(t, "three", history[2].Content)
}

func TestHistoryDirectAppliesLimitToNewest(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLiteMessageRepository(db)

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	base := time.Now()
	for i := 0; i < 5; i++ {
		seedDirectMessage(t, repo, alice.UUID, bob.UUID, fmt.Sprintf("m%d", i), base.Add(time.Duration(i)*time.Second))
	}

	history, err := repo.HistoryDirect(alice.UUID, bob.UUID, 2)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "m3", history[0].Content, "the limit keeps the newest messages")
	assert.Equal(t, "m4", history[1].Content)
}

func TestHistoryExcludesSoftDeleted(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLiteMessageRepository(db)

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	kept := seedDirectMessage(t, repo, alice.UUID, bob.UUID, "kept", time.Now())
	gone := seedDirectMessage(t, repo, alice.UUID, bob.UUID, "gone", time.Now().Add(time.Second))
	require.NoError(t, repo.SoftDelete(gone.UUID))

	history, err := repo.HistoryDirect(alice.UUID, bob.UUID, 50)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, kept.UUID, history[0].UUID)

	// The row itself is still there, only flagged.
	raw, err := repo.GetByUUID(gone.UUID)
	require.NoError(t, err)
	assert.True(t, raw.IsDeleted)
	assert.Equal(t, "gone", raw.Content)
}

func TestHistoryGroup(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLiteMessageRepository(db)

	alice := seedUser(t, db, "alice")
	groupUUID := uuid.New().String()
	otherGroup := uuid.New().String()

	base := time.Now()
	for i, g := range []string{groupUUID, groupUUID, otherGroup} {
		gCopy := g
		require.NoError(t, repo.Create(&entity.Message{
			UUID:       uuid.New().String(),
			SenderUUID: alice.UUID,
			GroupUUID:  &gCopy,
			Content:    fmt.Sprintf("g%d", i),
			SentAt:     base.Add(time.Duration(i) * time.Second),
		}))
	}

	history, err := repo.HistoryGroup(groupUUID, 50)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "g0", history[0].Content)
	assert.Equal(t, "g1", history[1].Content)
}

func TestMarkRead(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLiteMessageRepository(db)

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	m := seedDirectMessage(t, repo, alice.UUID, bob.UUID, "unread", time.Now())

	require.NoError(t, repo.MarkRead(m.UUID))

	loaded, err := repo.GetByUUID(m.UUID)
	require.NoError(t, err)
	assert.True(t, loaded.IsRead)
}
