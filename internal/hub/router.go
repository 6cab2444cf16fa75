/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package hub

import "sync"

// GroupRouter is the routing cache from a group to the connections currently
// subscribed to it. It is derived state: group membership authority lives in
// the durable store, this cache only decides which live sockets a group
// broadcast reaches. Internally synchronized like the presence registry.
type GroupRouter struct {
	lock        sync.RWMutex
	subscribers map[string]map[*Client]struct{}
}

func NewGroupRouter() *GroupRouter {
	return &GroupRouter{
		subscribers: make(map[string]map[*Client]struct{}),
	}
}

// Subscribe adds the connection to the group's broadcast set.
func (g *GroupRouter) Subscribe(c *Client, groupUUID string) {
	g.lock.Lock()
	set, ok := g.subscribers[groupUUID]
	if !ok {
		set = make(map[*Client]struct{})
		g.subscribers[groupUUID] = set
	}
	set[c] = struct{}{}
	g.lock.Unlock()
}

// Unsubscribe removes the connection from the group's broadcast set, no-op if absent.
func (g *GroupRouter) Unsubscribe(c *Client, groupUUID string) {
	g.lock.Lock()
	if set, ok := g.subscribers[groupUUID]; ok {
		delete(set, c)
		if len(set) == 0 {
			delete(g.subscribers, groupUUID)
		}
	}
	g.lock.Unlock()
}

// MembersOf returns a snapshot of the connections subscribed to the group.
func (g *GroupRouter) MembersOf(groupUUID string) []*Client {
	g.lock.RLock()
	defer g.lock.RUnlock()

	set := g.subscribers[groupUUID]
	clients := make([]*Client, 0, len(set))
	for c := range set {
		clients = append(clients, c)
	}
	return clients
}

// Drop removes the connection from every group it is subscribed to.
// Called on disconnect so dead connections never linger in broadcast sets.
func (g *GroupRouter) Drop(c *Client) {
	g.lock.Lock()
	for groupUUID, set := range g.subscribers {
		delete(set, c)
		if len(set) == 0 {
			delete(g.subscribers, groupUUID)
		}
	}
	g.lock.Unlock()
}
