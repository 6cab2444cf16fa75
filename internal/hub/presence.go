/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package hub

import "sync"

// PresenceRegistry maps a user to their single live connection.
// It is shared by every connection goroutine, so every operation takes the
// internal lock; callers never coordinate locking themselves.
//
// At most one connection is tracked per user: a second connect overwrites the
// mapping (last-writer-wins) and the previous connection simply becomes
// unroutable, it is not closed.
type PresenceRegistry struct {
	lock    sync.RWMutex
	clients map[string]*Client
}

func NewPresenceRegistry() *PresenceRegistry {
	return &PresenceRegistry{
		clients: make(map[string]*Client),
	}
}

// Connect records, or overwrites, the live connection of the user.
func (p *PresenceRegistry) Connect(userUUID string, c *Client) {
	p.lock.Lock()
	p.clients[userUUID] = c
	p.lock.Unlock()
}

// Disconnect removes the mapping of the user, if any. Never fails.
func (p *PresenceRegistry) Disconnect(userUUID string) {
	p.lock.Lock()
	delete(p.clients, userUUID)
	p.lock.Unlock()
}

// Lookup returns the live connection of the user, if any.
func (p *PresenceRegistry) Lookup(userUUID string) (*Client, bool) {
	p.lock.RLock()
	c, ok := p.clients[userUUID]
	p.lock.RUnlock()
	return c, ok
}

// Online reports how many users currently have a live connection.
func (p *PresenceRegistry) Online() int {
	p.lock.RLock()
	n := len(p.clients)
	p.lock.RUnlock()
	return n
}
