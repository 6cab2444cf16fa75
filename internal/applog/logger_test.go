/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package applog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubsystemLogWrites(t *testing.T) {
	dir := t.TempDir()
	a, err := NewAppLogger(dir, true)
	require.NoError(t, err)

	logger, err := a.RegisterSubsystem("hub")
	require.NoError(t, err)

	logger.Logf("hello %s", "world")

	// Drain the entry the way Run would.
	entry := <-a.inbox
	require.NoError(t, a.actualWrite(entry.name, entry.formatted))
	a.CloseAll()

	content, err := os.ReadFile(filepath.Join(dir, "hub.log"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "[hub]: ")
	assert.Contains(t, string(content), "hello world")
}

func TestDisabledLoggingWritesNothing(t *testing.T) {
	dir := t.TempDir()
	a, err := NewAppLogger(dir, false)
	require.NoError(t, err)

	logger, err := a.RegisterSubsystem("quiet")
	require.NoError(t, err)

	logger.Logf("should not appear")
	entry := <-a.inbox
	require.NoError(t, a.actualWrite(entry.name, entry.formatted))
	a.CloseAll()

	content, err := os.ReadFile(filepath.Join(dir, "quiet.log"))
	require.NoError(t, err)
	assert.Empty(t, content)
}

func TestGetSubsystemLogger(t *testing.T) {
	a, err := NewAppLogger(t.TempDir(), true)
	require.NoError(t, err)
	defer a.CloseAll()

	_, err = a.GetSubsystemLogger("missing")
	assert.Error(t, err)

	_, err = a.RegisterSubsystem("present")
	require.NoError(t, err)
	logger, err := a.GetSubsystemLogger("present")
	require.NoError(t, err)
	assert.NotNil(t, logger)
}

func TestUnknownSubsystemWrite(t *testing.T) {
	a, err := NewAppLogger(t.TempDir(), true)
	require.NoError(t, err)
	defer a.CloseAll()

	assert.Error(t, a.actualWrite("ghost", "boo"))
}
