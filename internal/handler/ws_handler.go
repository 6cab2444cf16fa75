/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package handler

import (
	"net/http"

	"chatterbox/internal/applog"
	"chatterbox/internal/hub"

	"github.com/gorilla/websocket"
)

// Handler that upgrades an authenticated HTTP request to a websocket and
// hands the connection to the hub.
type WsHandler struct {
	hub      *hub.Hub
	upgrader websocket.Upgrader
	logger   applog.Logger
}

func NewWsHandler(h *hub.Hub, logger applog.Logger) *WsHandler {
	return &WsHandler{
		hub: h,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		logger: logger,
	}
}

// Serve upgrades the request and runs the client's pumps. The read pump runs
// on the request goroutine, so the handler returns when the socket closes.
func (h *WsHandler) Serve(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Logf("Websocket upgrade failed for user %s: %v", user.UUID, err)
		return
	}

	h.logger.Logf("User %s (%s) connected over websocket", user.Username, user.UUID)
	client := hub.NewClient(h.hub, conn, user.UUID, user.Username)
	client.Run()
}
