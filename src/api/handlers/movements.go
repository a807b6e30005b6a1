package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"backoffice/src/schemas"
	"backoffice/src/utils"
)

func (h *Handler) GetAllMovements(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	skip, limit := pagination(r)
	movements, err := h.Controller.GetAllMovements(ctx, skip, limit)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, movements, http.StatusOK)
}

func (h *Handler) GetMovementByID(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	id, err := idParam(r, "id")
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	movement, err := h.Controller.GetMovementByID(ctx, id)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, movement, http.StatusOK)
}

func (h *Handler) CreateMovement(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	var req schemas.MovementCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	movement, err := h.Controller.CreateMovement(ctx, req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, movement, http.StatusCreated)
}

func (h *Handler) UpdateMovement(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	id, err := idParam(r, "id")
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	var patch schemas.MovementUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	movement, err := h.Controller.UpdateMovement(ctx, id, patch)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, movement, http.StatusOK)
}

func (h *Handler) DeleteMovement(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	id, err := idParam(r, "id")
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	movement, err := h.Controller.DeleteMovement(ctx, id)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, movement, http.StatusOK)
}

func (h *Handler) GetClientMovements(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	clientID, err := idParam(r, "clientID")
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	startDate, err := optionalDate(r, "start_date")
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	endDate, err := optionalDate(r, "end_date")
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	movements, err := h.Controller.GetClientMovements(ctx, clientID, startDate, endDate)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, movements, http.StatusOK)
}

func (h *Handler) GetMovementsByPeriod(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	filter, err := periodFilter(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	movements, err := h.Controller.GetMovementsByPeriod(ctx, filter)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, movements, http.StatusOK)
}

func (h *Handler) GetMovementSummary(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	filter, err := periodFilter(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	summary, err := h.Controller.GetMovementSummary(ctx, filter)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, summary, http.StatusOK)
}

func (h *Handler) GetOfficeSummary(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	startDate, err := optionalDate(r, "start_date")
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	endDate, err := optionalDate(r, "end_date")
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	summary, err := h.Controller.GetOfficeSummary(ctx, schemas.PeriodFilter{StartDate: startDate, EndDate: endDate})
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, summary, http.StatusOK)
}

func (h *Handler) GetClientBalance(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	clientID, err := idParam(r, "clientID")
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	asOfDate, err := optionalDate(r, "as_of_date")
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	balance, err := h.Controller.GetClientBalance(ctx, clientID, asOfDate)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	asOf := time.Now().UTC()
	if asOfDate != nil {
		asOf = *asOfDate
	}
	h.respond(w, r, schemas.BalanceResponse{
		ClientID: clientID,
		Balance:  balance,
		AsOfDate: asOf,
	}, http.StatusOK)
}

func (h *Handler) ExportClientMovementsCSV(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	clientID, err := idParam(r, "clientID")
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	startDate, err := optionalDate(r, "start_date")
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	endDate, err := optionalDate(r, "end_date")
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	buf, err := h.Controller.ExportClientMovementsCSV(ctx, clientID, schemas.PeriodFilter{StartDate: startDate, EndDate: endDate})
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	filename := fmt.Sprintf("movements_client_%d_%s.csv", clientID, time.Now().UTC().Format(utils.FileTimestampLayout))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func (h *Handler) ExportClientMovementsXLSX(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	clientID, err := idParam(r, "clientID")
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	startDate, err := optionalDate(r, "start_date")
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	endDate, err := optionalDate(r, "end_date")
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	file, err := h.Controller.ExportClientMovementsXLSX(ctx, clientID, schemas.PeriodFilter{StartDate: startDate, EndDate: endDate})
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	filename := fmt.Sprintf("movements_client_%d_%s.xlsx", clientID, time.Now().UTC().Format(utils.FileTimestampLayout))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.WriteHeader(http.StatusOK)
	if err := file.Write(w); err != nil {
		h.Logger.WithError(err).Error("failed to write xlsx response")
	}
}

func periodFilter(r *http.Request) (schemas.PeriodFilter, error) {
	var filter schemas.PeriodFilter

	startDate, err := optionalDate(r, "start_date")
	if err != nil {
		return filter, err
	}
	endDate, err := optionalDate(r, "end_date")
	if err != nil {
		return filter, err
	}
	filter.StartDate = startDate
	filter.EndDate = endDate

	if v := r.URL.Query().Get("client_id"); v != "" {
		clientID, err := strconv.Atoi(v)
		if err != nil {
			return filter, utils.BadRequest("invalid client_id query parameter")
		}
		filter.ClientID = &clientID
	}
	return filter, nil
}
