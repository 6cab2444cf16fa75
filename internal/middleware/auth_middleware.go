/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package middleware

import (
	"context"
	"net/http"

	"chatterbox/internal/entity"

	"github.com/gorilla/sessions"
)

type contextKey string

// UserKey is the request-context key under which the authenticated user is stored.
const UserKey contextKey = "user"

// AuthMiddleware resolves the caller's identity from the session cookie and
// places the user into the request context. Requests without a usable session
// are rejected before reaching the handler.
func AuthMiddleware(store *sessions.CookieStore, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := store.Get(r, "auth-session")
		if err != nil {
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		userUUID, ok1 := session.Values["user_uuid"].(string)
		username, ok2 := session.Values["username"].(string)

		if !(ok1 && ok2) {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		user := entity.User{
			UUID:     userUUID,
			Username: username,
		}

		ctx := context.WithValue(r.Context(), UserKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
