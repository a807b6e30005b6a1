package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"backoffice/src/api/controllers"
	"backoffice/src/utils"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	Controller controllers.IController
	Logger     *logrus.Logger
}

func NewHandler(controller controllers.IController, logger *logrus.Logger) *Handler {
	return &Handler{Controller: controller, Logger: logger}
}

func (h *Handler) respond(w http.ResponseWriter, _ *http.Request, data interface{}, status int) {
	res, err := json.Marshal(data)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_, _ = w.Write(res)
}

func (h *Handler) HandleErrors(w http.ResponseWriter, err error) {
	var httpErr *utils.HTTPError
	if errors.Is(err, context.DeadlineExceeded) {
		h.respond(w, nil, map[string]string{"error": "Request timed out"}, http.StatusGatewayTimeout)
	} else if errors.As(err, &httpErr) {
		h.respond(w, nil, map[string]string{"error": httpErr.Message}, httpErr.Code)
	} else if err != nil {
		h.Logger.WithError(err).Error("unhandled error")
		h.respond(w, nil, map[string]string{"error": err.Error()}, http.StatusInternalServerError)
	} else {
		h.respond(w, nil, map[string]string{"error": "Unhandled error"}, http.StatusInternalServerError)
	}
}

func Healthcheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// idParam reads an integer chi URL parameter.
func idParam(r *http.Request, name string) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil {
		return 0, utils.BadRequest("invalid " + name + " URL parameter")
	}
	return id, nil
}

// pagination reads skip/limit query parameters with the usual defaults.
func pagination(r *http.Request) (int, int) {
	skip := 0
	limit := 100
	if v := r.URL.Query().Get("skip"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			skip = parsed
		}
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 && parsed <= 1000 {
			limit = parsed
		}
	}
	return skip, limit
}

// optionalDate reads an optional date query parameter.
func optionalDate(r *http.Request, key string) (*time.Time, error) {
	value := r.URL.Query().Get(key)
	if value == "" {
		return nil, nil
	}
	t, err := utils.ParseDateParam(value)
	if err != nil {
		return nil, utils.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	return &t, nil
}

const requestTimeout = 10 * time.Second
