/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package handler

import (
	"errors"
	"net/http"

	"chatterbox/internal/applog"
	"chatterbox/internal/service"

	"github.com/gorilla/mux"
)

type MessageHandler struct {
	messageService service.MessageService // Service used to query and delete messages
	logger         applog.Logger          // Logs a format string
}

func NewMessageHandler(messageService service.MessageService, logger applog.Logger) *MessageHandler {
	return &MessageHandler{
		messageService: messageService,
		logger:         logger,
	}
}

// History returns the direct chat between the caller and the user named in
// the path, oldest message first.
func (h *MessageHandler) History(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	otherUUID := mux.Vars(r)["uuid"]
	messages, err := h.messageService.HistoryWith(user.UUID, otherUUID)
	if err != nil {
		h.logger.Logf("Could not load chat history for %s with %s: %v", user.UUID, otherUUID, err)
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"messages": messages})
}

func (h *MessageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	messageUUID := mux.Vars(r)["uuid"]
	if err := h.messageService.Delete(user.UUID, messageUUID); err != nil {
		if errors.Is(err, service.ErrForbidden) {
			http.Error(w, "Not the sender of this message", http.StatusForbidden)
			return
		}
		http.Error(w, "Message not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"deleted": messageUUID})
}
