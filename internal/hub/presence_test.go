/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package hub

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresenceConnectAndLookup(t *testing.T) {
	p := NewPresenceRegistry()
	c := NewClient(nil, nil, "user-1", "alice")

	_, ok := p.Lookup("user-1")
	assert.False(t, ok)

	p.Connect("user-1", c)

	got, ok := p.Lookup("user-1")
	require.True(t, ok)
	assert.Same(t, c, got)
	assert.Equal(t, 1, p.Online())
}

func TestPresenceReconnectOverwrites(t *testing.T) {
	p := NewPresenceRegistry()
	first := NewClient(nil, nil, "user-1", "alice")
	second := NewClient(nil, nil, "user-1", "alice")

	p.Connect("user-1", first)
	p.Connect("user-1", second)

	got, ok := p.Lookup("user-1")
	require.True(t, ok)
	assert.Same(t, second, got, "a reconnect must replace the previous connection")
	assert.Equal(t, 1, p.Online())
}

func TestPresenceDisconnect(t *testing.T) {
	p := NewPresenceRegistry()
	c := NewClient(nil, nil, "user-1", "alice")

	p.Connect("user-1", c)
	p.Disconnect("user-1")

	_, ok := p.Lookup("user-1")
	assert.False(t, ok)
	assert.Equal(t, 0, p.Online())

	// Disconnecting an unknown user must not panic.
	p.Disconnect("user-2")
}

func TestPresenceConcurrentAccess(t *testing.T) {
	p := NewPresenceRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			id := fmt.Sprintf("user-%d", n)
			c := NewClient(nil, nil, id, "user")
			p.Connect(id, c)
			p.Lookup(id)
			if n%2 == 0 {
				p.Disconnect(id)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 25, p.Online())
}
