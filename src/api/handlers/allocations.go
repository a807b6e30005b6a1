package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"backoffice/src/schemas"
)

func (h *Handler) GetAllAllocations(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	skip, limit := pagination(r)
	allocations, err := h.Controller.GetAllAllocations(ctx, skip, limit)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, allocations, http.StatusOK)
}

func (h *Handler) GetAllocationByID(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	id, err := idParam(r, "id")
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	allocation, err := h.Controller.GetAllocationByID(ctx, id)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, allocation, http.StatusOK)
}

func (h *Handler) GetClientAllocations(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	clientID, err := idParam(r, "clientID")
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	allocations, err := h.Controller.GetClientAllocations(ctx, clientID)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, allocations, http.StatusOK)
}

func (h *Handler) GetClientAllocationByAsset(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	clientID, err := idParam(r, "clientID")
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	assetID, err := idParam(r, "assetID")
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	allocation, err := h.Controller.GetClientAllocationByAsset(ctx, clientID, assetID)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, allocation, http.StatusOK)
}

// CreateAllocation accepts the asset as a single asset_id field that may hold
// a numeric id or a ticker; it is converted to a tagged reference here.
func (h *Handler) CreateAllocation(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	var req schemas.AllocationCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ref := schemas.AssetReference{Ticker: req.AssetID}
	if id, err := strconv.Atoi(req.AssetID); err == nil {
		ref = schemas.AssetReference{ID: &id, Ticker: req.AssetID}
	}

	allocation, err := h.Controller.CreateAllocation(ctx, req, ref)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, allocation, http.StatusCreated)
}

func (h *Handler) UpdateAllocation(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	id, err := idParam(r, "id")
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	var patch schemas.AllocationUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	allocation, err := h.Controller.UpdateAllocation(ctx, id, patch)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, allocation, http.StatusOK)
}

func (h *Handler) DeleteAllocation(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	id, err := idParam(r, "id")
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	allocation, err := h.Controller.DeleteAllocation(ctx, id)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, allocation, http.StatusOK)
}
