package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"backoffice/src/schemas"
)

func (h *Handler) GetAllUsers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	skip, limit := pagination(r)
	users, err := h.Controller.GetAllUsers(ctx, skip, limit)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, users, http.StatusOK)
}

func (h *Handler) GetUserByID(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	id, err := idParam(r, "id")
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	user, err := h.Controller.GetUserByID(ctx, id)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, user, http.StatusOK)
}

func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	var req schemas.UserCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	user, err := h.Controller.CreateUser(ctx, req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, user, http.StatusCreated)
}

func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	id, err := idParam(r, "id")
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	var patch schemas.UserUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	user, err := h.Controller.UpdateUser(ctx, id, patch)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, user, http.StatusOK)
}

func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	id, err := idParam(r, "id")
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	user, err := h.Controller.DeleteUser(ctx, id)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, user, http.StatusOK)
}
