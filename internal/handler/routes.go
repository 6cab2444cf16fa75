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

	"chatterbox/internal/middleware"

	"github.com/gorilla/mux"
	"github.com/gorilla/sessions"
)

// Handlers groups every HTTP handler the server mounts.
type Handlers struct {
	Auth          *AuthHandler
	Contacts      *ContactHandler
	Groups        *GroupHandler
	Messages      *MessageHandler
	Notifications *NotificationHandler
	Ws            *WsHandler
}

// NewRouter mounts all the application routes. Everything except registration
// and login sits behind the session middleware.
func NewRouter(h Handlers, store *sessions.CookieStore) *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/register", h.Auth.Register).Methods(http.MethodPost)
	router.HandleFunc("/login", h.Auth.Login).Methods(http.MethodPost)

	authed := router.PathPrefix("/").Subrouter()
	authed.Use(func(next http.Handler) http.Handler {
		return middleware.AuthMiddleware(store, next)
	})

	authed.HandleFunc("/logout", h.Auth.Logout).Methods(http.MethodPost)

	authed.HandleFunc("/contacts", h.Contacts.List).Methods(http.MethodGet)
	authed.HandleFunc("/contacts/search", h.Contacts.Search).Methods(http.MethodGet)
	authed.HandleFunc("/contacts", h.Contacts.Add).Methods(http.MethodPost)
	authed.HandleFunc("/contacts/{uuid}", h.Contacts.Remove).Methods(http.MethodDelete)
	authed.HandleFunc("/contacts/{uuid}/blocked", h.Contacts.SetBlocked).Methods(http.MethodPut)

	authed.HandleFunc("/groups", h.Groups.List).Methods(http.MethodGet)
	authed.HandleFunc("/groups", h.Groups.Create).Methods(http.MethodPost)
	authed.HandleFunc("/groups/{uuid}", h.Groups.Details).Methods(http.MethodGet)
	authed.HandleFunc("/groups/{uuid}", h.Groups.Delete).Methods(http.MethodDelete)
	authed.HandleFunc("/groups/{uuid}/members", h.Groups.AddMember).Methods(http.MethodPost)
	authed.HandleFunc("/groups/{uuid}/members/{user}", h.Groups.RemoveMember).Methods(http.MethodDelete)
	authed.HandleFunc("/groups/{uuid}/leave", h.Groups.Leave).Methods(http.MethodPost)

	authed.HandleFunc("/messages/with/{uuid}", h.Messages.History).Methods(http.MethodGet)
	authed.HandleFunc("/messages/{uuid}", h.Messages.Delete).Methods(http.MethodDelete)

	authed.HandleFunc("/notifications", h.Notifications.List).Methods(http.MethodGet)
	authed.HandleFunc("/notifications/read-all", h.Notifications.MarkAllRead).Methods(http.MethodPut)
	authed.HandleFunc("/notifications/{uuid}/read", h.Notifications.MarkRead).Methods(http.MethodPut)
	authed.HandleFunc("/notifications/{uuid}", h.Notifications.Delete).Methods(http.MethodDelete)
	authed.HandleFunc("/notifications", h.Notifications.DeleteAll).Methods(http.MethodDelete)

	authed.HandleFunc("/ws", h.Ws.Serve).Methods(http.MethodGet)

	return router
}
