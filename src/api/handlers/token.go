package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"backoffice/src/schemas"
)

func (h *Handler) PostToken(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	var req schemas.TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	token, err := h.Controller.PostToken(ctx, req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, token, http.StatusOK)
}
