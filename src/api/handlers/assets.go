package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"backoffice/src/schemas"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) GetAllAssets(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	skip, limit := pagination(r)
	assets, err := h.Controller.GetAllAssets(ctx, skip, limit)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, assets, http.StatusOK)
}

func (h *Handler) GetAssetByID(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	id, err := idParam(r, "id")
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	asset, err := h.Controller.GetAssetByID(ctx, id)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, asset, http.StatusOK)
}

func (h *Handler) GetAssetByTicker(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	ticker := chi.URLParam(r, "ticker")
	asset, err := h.Controller.GetAssetByTicker(ctx, ticker)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, asset, http.StatusOK)
}

func (h *Handler) CreateAsset(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	var req schemas.AssetCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	asset, err := h.Controller.CreateAsset(ctx, req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, asset, http.StatusCreated)
}

func (h *Handler) CreateAssetFromTicker(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	ticker := chi.URLParam(r, "ticker")
	asset, err := h.Controller.CreateAssetFromTicker(ctx, ticker)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, asset, http.StatusCreated)
}

func (h *Handler) UpdateAsset(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	id, err := idParam(r, "id")
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	var patch schemas.AssetUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	asset, err := h.Controller.UpdateAsset(ctx, id, patch)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, asset, http.StatusOK)
}

func (h *Handler) DeleteAsset(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	id, err := idParam(r, "id")
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	asset, err := h.Controller.DeleteAsset(ctx, id)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, asset, http.StatusOK)
}

func (h *Handler) SearchAssetsByTicker(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	ticker := r.URL.Query().Get("ticker")
	if ticker == "" {
		http.Error(w, "missing ticker query parameter", http.StatusBadRequest)
		return
	}

	assets, err := h.Controller.SearchAssetsByTicker(ctx, ticker)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, assets, http.StatusOK)
}
