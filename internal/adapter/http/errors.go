package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"channel-offers/internal/core/domain"
	"channel-offers/internal/core/port"
	"channel-offers/internal/feed"
)

// errorBody is the JSON error payload.
type errorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func writeJSONError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorBody{Error: message, Details: details})
}

// writeError maps use case errors to responses. Invalid fields produce 400
// with the field name, missing products or offers 404 and offers that cannot
// be written to a feed 422. Anything else is logged and reported as 500.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, op string, err error) {
	var fieldErr *domain.InvalidFieldError
	switch {
	case errors.As(err, &fieldErr):
		writeJSONError(w, http.StatusBadRequest, "invalid field", fieldErr.Field)
	case errors.Is(err, port.ErrNotFound):
		writeJSONError(w, http.StatusNotFound, "not found", err.Error())
	case errors.Is(err, feed.ErrNonFinite):
		writeJSONError(w, http.StatusUnprocessableEntity, "unrenderable offer", err.Error())
	default:
		h.logger.Error(op+" error",
			slog.Any("error", err),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)
		writeJSONError(w, http.StatusInternalServerError, "internal error", "")
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
