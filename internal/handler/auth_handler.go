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

	"chatterbox/internal/service"

	"github.com/gorilla/sessions"
)

type AuthHandler struct {
	authService service.AuthService
	store       *sessions.CookieStore
}

func NewAuthHandler(authService service.AuthService, store *sessions.CookieStore) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		store:       store,
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	username := r.FormValue("username")
	password := r.FormValue("password")
	if username == "" || password == "" {
		http.Error(w, "Username and password are required", http.StatusBadRequest)
		return
	}

	user, err := h.authService.Register(username, password)
	if err != nil {
		http.Error(w, "Registration failed... Try again later.", http.StatusConflict)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"status": "success",
		"user":   user,
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	username := r.FormValue("username")
	password := r.FormValue("password")

	user, err := h.authService.Login(username, password)
	if err != nil {
		http.Error(w, "Wrong credentials", http.StatusUnauthorized)
		return
	}

	session, _ := h.store.Get(r, "auth-session")
	session.Values["user_uuid"] = user.UUID
	session.Values["username"] = user.Username
	if err := session.Save(r, w); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status": "success",
		"user":   user,
	})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	session, _ := h.store.Get(r, "auth-session")
	session.Options.MaxAge = -1
	session.Save(r, w)

	writeJSON(w, http.StatusOK, map[string]any{"status": "success"})
}
