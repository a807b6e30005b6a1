package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"backoffice/src/schemas"
)

func (h *Handler) GetAllClients(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	skip, limit := pagination(r)
	clients, err := h.Controller.GetAllClients(ctx, skip, limit)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, clients, http.StatusOK)
}

func (h *Handler) GetClientByID(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	id, err := idParam(r, "id")
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	client, err := h.Controller.GetClientByID(ctx, id)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, client, http.StatusOK)
}

func (h *Handler) CreateClient(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	var req schemas.ClientCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	client, err := h.Controller.CreateClient(ctx, req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, client, http.StatusCreated)
}

func (h *Handler) UpdateClient(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	id, err := idParam(r, "id")
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	var patch schemas.ClientUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	client, err := h.Controller.UpdateClient(ctx, id, patch)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, client, http.StatusOK)
}

func (h *Handler) DeleteClient(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	id, err := idParam(r, "id")
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	client, err := h.Controller.DeleteClient(ctx, id)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, client, http.StatusOK)
}

func (h *Handler) SearchClients(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	skip, limit := pagination(r)
	search := schemas.ClientSearchRequest{
		Name:  r.URL.Query().Get("name"),
		Email: r.URL.Query().Get("email"),
		Skip:  skip,
		Limit: limit,
	}
	if v := r.URL.Query().Get("is_active"); v != "" {
		isActive, err := strconv.ParseBool(v)
		if err != nil {
			http.Error(w, "invalid is_active query parameter", http.StatusBadRequest)
			return
		}
		search.IsActive = &isActive
	}

	clients, err := h.Controller.SearchClients(ctx, search)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, clients, http.StatusOK)
}

func (h *Handler) CountClients(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	var isActive *bool
	if v := r.URL.Query().Get("is_active"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			http.Error(w, "invalid is_active query parameter", http.StatusBadRequest)
			return
		}
		isActive = &parsed
	}

	count, err := h.Controller.CountClients(ctx, isActive)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, schemas.ClientCountResponse{Count: count}, http.StatusOK)
}
