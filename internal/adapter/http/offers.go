package httpadapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"channel-offers/internal/core/domain"
	"channel-offers/internal/core/port"
)

// offerRequest is the body of PUT /products/{sku}/offers. Field names
// follow the serialized offer record. Dates use "2006-01-02 15:04:05"
// (UTC) or RFC 3339; an empty string means no date.
type offerRequest struct {
	OperatorCode    string   `json:"operatorCode"`
	Price           *float64 `json:"price"`
	Stock           *int     `json:"stock"`
	Status          string   `json:"status"`
	BusinessUnit    *string  `json:"businessUnit"`
	SpecialPrice    *float64 `json:"specialPrice"`
	SpecialFromDate *string  `json:"specialFromDate"`
	SpecialToDate   *string  `json:"specialToDate"`
	IsPublished     *int     `json:"isPublished"`
}

func (req offerRequest) toInput() (port.OfferInput, error) {
	if req.Price == nil {
		return port.OfferInput{}, errors.New("price is required")
	}
	if req.Stock == nil {
		return port.OfferInput{}, errors.New("stock is required")
	}
	from, err := parseDate(req.SpecialFromDate)
	if err != nil {
		return port.OfferInput{}, fmt.Errorf("invalid specialFromDate: %w", err)
	}
	to, err := parseDate(req.SpecialToDate)
	if err != nil {
		return port.OfferInput{}, fmt.Errorf("invalid specialToDate: %w", err)
	}
	return port.OfferInput{
		OperatorCode:  req.OperatorCode,
		Price:         *req.Price,
		Stock:         *req.Stock,
		Status:        req.Status,
		IsPublished:   req.IsPublished,
		BusinessUnit:  req.BusinessUnit,
		SalePrice:     req.SpecialPrice,
		SaleStartDate: from,
		SaleEndDate:   to,
	}, nil
}

func parseDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(domain.DateTimeLayout, *s, time.UTC)
	if err != nil {
		if t, err = time.Parse(time.RFC3339, *s); err != nil {
			return nil, err
		}
	}
	return &t, nil
}

// handlePutOffer creates or replaces the offer for the body's operator
// code on product {sku}. It responds with the serialized offer.
func (h *Handler) handlePutOffer(w http.ResponseWriter, r *http.Request) {
	var req offerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid JSON", err.Error())
		return
	}
	in, err := req.toInput()
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request", err.Error())
		return
	}
	rec, err := h.svc.PutOffer(r.Context(), chi.URLParam(r, "sku"), in)
	if err != nil {
		h.writeError(w, r, "put offer", err)
		return
	}
	h.writeJSON(w, rec)
}

// handleRemoveOffer deletes the offer for {operatorCode} from product {sku}.
func (h *Handler) handleRemoveOffer(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.RemoveOffer(r.Context(), chi.URLParam(r, "sku"), chi.URLParam(r, "operatorCode")); err != nil {
		h.writeError(w, r, "remove offer", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type priceRequest struct {
	Price        *float64 `json:"price"`
	SpecialPrice *float64 `json:"specialPrice"`
}

// handleUpdatePrice sets the price and optionally the sale price of an
// existing offer.
func (h *Handler) handleUpdatePrice(w http.ResponseWriter, r *http.Request) {
	var req priceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid JSON", err.Error())
		return
	}
	if req.Price == nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request", "price is required")
		return
	}
	rec, err := h.svc.UpdatePrice(r.Context(), chi.URLParam(r, "sku"), chi.URLParam(r, "operatorCode"), *req.Price, req.SpecialPrice)
	if err != nil {
		h.writeError(w, r, "update price", err)
		return
	}
	h.writeJSON(w, rec)
}

type stockRequest struct {
	Stock *int `json:"stock"`
}

// handleUpdateStock sets the stock of an existing offer.
func (h *Handler) handleUpdateStock(w http.ResponseWriter, r *http.Request) {
	var req stockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid JSON", err.Error())
		return
	}
	if req.Stock == nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request", "stock is required")
		return
	}
	rec, err := h.svc.UpdateStock(r.Context(), chi.URLParam(r, "sku"), chi.URLParam(r, "operatorCode"), *req.Stock)
	if err != nil {
		h.writeError(w, r, "update stock", err)
		return
	}
	h.writeJSON(w, rec)
}

// handleGetAttributes returns the feed attributes of one offer as a JSON
// object whose keys keep feed order.
func (h *Handler) handleGetAttributes(w http.ResponseWriter, r *http.Request) {
	attrs, err := h.svc.GetAttributes(r.Context(), chi.URLParam(r, "sku"), chi.URLParam(r, "operatorCode"))
	if err != nil {
		h.writeError(w, r, "get attributes", err)
		return
	}
	h.writeJSON(w, attrs)
}
