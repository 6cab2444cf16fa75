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
	"time"

	"chatterbox/internal/applog"
	"chatterbox/internal/entity"
	"chatterbox/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestHistoryWith(t *testing.T) {
	db := newTestDB(t)
	svc := NewMessageService(
		repository.NewSQLiteMessageRepository(db),
		repository.NewSQLiteUserRepository(db),
		applog.Nop(),
	)

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	base := time.Now()
	for i, pair := range [][2]string{{alice.UUID, bob.UUID}, {bob.UUID, alice.UUID}} {
		receiver := pair[1]
		require.NoError(t, db.Create(&entity.Message{
			UUID:         uuid.New().String(),
			SenderUUID:   pair[0],
			ReceiverUUID: &receiver,
			Content:      "hi",
			SentAt:       base.Add(time.Duration(i) * time.Second),
		}).Error)
	}

	history, err := svc.HistoryWith(alice.UUID, bob.UUID)
	require.NoError(t, err)
	assert.Len(t, history, 2)

	_, err = svc.HistoryWith(alice.UUID, "no-such-user")
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestDeleteOwnMessageOnly(t *testing.T) {
	db := newTestDB(t)
	svc := NewMessageService(
		repository.NewSQLiteMessageRepository(db),
		repository.NewSQLiteUserRepository(db),
		applog.Nop(),
	)

	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	receiver := bob.UUID
	m := &entity.Message{
		UUID:         uuid.New().String(),
		SenderUUID:   alice.UUID,
		ReceiverUUID: &receiver,
		Content:      "oops",
		SentAt:       time.Now(),
	}
	require.NoError(t, db.Create(m).Error)

	assert.True(t, errors.Is(svc.Delete(bob.UUID, m.UUID), ErrForbidden))
	require.NoError(t, svc.Delete(alice.UUID, m.UUID))

	var loaded entity.Message
	require.NoError(t, db.Where("uuid = ?", m.UUID).First(&loaded).Error)
	assert.True(t, loaded.IsDeleted)
}
