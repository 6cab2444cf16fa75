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

	"chatterbox/internal/service"

	"github.com/gorilla/mux"
)

type GroupHandler struct {
	groupService service.GroupService
}

func NewGroupHandler(groupService service.GroupService) *GroupHandler {
	return &GroupHandler{groupService: groupService}
}

func (h *GroupHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	name := r.FormValue("name")
	if name == "" {
		http.Error(w, "Group name is required", http.StatusBadRequest)
		return
	}
	isPrivate := r.FormValue("private") == "true"

	group, err := h.groupService.CreateGroup(name, user.UUID, isPrivate)
	if err != nil {
		http.Error(w, "Group was not created", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"status": "success", "group": group})
}

// Lists public groups plus the private ones the caller belongs to
func (h *GroupHandler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	groups, err := h.groupService.ListVisible(user.UUID)
	if err != nil {
		http.Error(w, "Could not load groups", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"groups": groups})
}

// The group, its members and the last messages of its chat
func (h *GroupHandler) Details(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	groupUUID := mux.Vars(r)["uuid"]
	group, members, messages, err := h.groupService.Details(user.UUID, groupUUID)
	if err != nil {
		if errors.Is(err, service.ErrForbidden) {
			http.Error(w, "Cannot access group", http.StatusForbidden)
			return
		}
		http.Error(w, "The group does not exist", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"group":    group,
		"members":  members,
		"messages": messages,
	})
}

func (h *GroupHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	groupUUID := mux.Vars(r)["uuid"]
	if err := h.groupService.DeleteGroup(user.UUID, groupUUID); err != nil {
		if errors.Is(err, service.ErrForbidden) {
			http.Error(w, "Only the creator can delete a group", http.StatusForbidden)
			return
		}
		http.Error(w, "Group was not deleted", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (h *GroupHandler) AddMember(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	groupUUID := mux.Vars(r)["uuid"]
	userUUID := r.FormValue("user-uuid")
	if err := h.groupService.AddMember(user.UUID, groupUUID, userUUID); err != nil {
		if errors.Is(err, service.ErrForbidden) {
			http.Error(w, "Cannot manage members of this group", http.StatusForbidden)
			return
		}
		http.Error(w, "User was not added", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (h *GroupHandler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	groupUUID := vars["uuid"]
	userUUID := vars["user"]
	if err := h.groupService.RemoveMember(user.UUID, groupUUID, userUUID); err != nil {
		switch {
		case errors.Is(err, service.ErrForbidden):
			http.Error(w, "Cannot manage members of this group", http.StatusForbidden)
		case errors.Is(err, service.ErrCreatorRemoval):
			http.Error(w, "The creator cannot be removed", http.StatusBadRequest)
		default:
			http.Error(w, "User was not removed", http.StatusBadRequest)
		}
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// Removes the caller's own durable membership
func (h *GroupHandler) Leave(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	groupUUID := mux.Vars(r)["uuid"]
	if err := h.groupService.Leave(user.UUID, groupUUID); err != nil {
		if errors.Is(err, service.ErrCreatorRemoval) {
			http.Error(w, "The creator cannot leave the group", http.StatusBadRequest)
			return
		}
		http.Error(w, "Could not leave the group", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
