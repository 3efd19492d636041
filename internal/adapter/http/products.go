package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

const defaultListLimit = 100

// handleGetProduct returns the product with its serialized offers.
func (h *Handler) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.GetProduct(r.Context(), chi.URLParam(r, "sku"))
	if err != nil {
		h.writeError(w, r, "get product", err)
		return
	}
	h.writeJSON(w, view)
}

// handleListProducts returns known seller SKUs. The optional limit query
// parameter defaults to 100.
func (h *Handler) handleListProducts(w http.ResponseWriter, r *http.Request) {
	limit := defaultListLimit
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			writeJSONError(w, http.StatusBadRequest, "invalid limit", s)
			return
		}
		limit = n
	}
	skus, err := h.svc.ListSKUs(r.Context(), limit)
	if err != nil {
		h.writeError(w, r, "list products", err)
		return
	}
	if skus == nil {
		skus = []string{}
	}
	h.writeJSON(w, map[string][]string{"skus": skus})
}

type feedRequest struct {
	SKUs []string `json:"skus"`
}

// handleBuildFeed renders a product update feed for the requested SKUs.
// The feed request id is returned in the X-Feed-Request-Id header.
func (h *Handler) handleBuildFeed(w http.ResponseWriter, r *http.Request) {
	var req feedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid JSON", err.Error())
		return
	}
	if len(req.SKUs) == 0 {
		writeJSONError(w, http.StatusBadRequest, "invalid request", "skus must not be empty")
		return
	}
	if len(req.SKUs) > h.maxFeedProducts {
		writeJSONError(w, http.StatusBadRequest, "invalid request", "too many skus")
		return
	}
	f, err := h.svc.BuildFeed(r.Context(), req.SKUs)
	if err != nil {
		h.writeError(w, r, "build feed", err)
		return
	}
	h.logger.Info("feed built",
		slog.String("feed_request_id", f.RequestID),
		slog.Int("products", f.Products),
		slog.Int("offers", f.Offers),
	)
	w.Header().Set("Content-Type", "application/xml")
	w.Header().Set("X-Feed-Request-Id", f.RequestID)
	if _, err = w.Write(f.Document); err != nil {
		h.logger.Error("write feed error", slog.Any("error", err))
	}
}
