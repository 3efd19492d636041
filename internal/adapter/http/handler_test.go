package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"channel-offers/internal/core/domain"
	"channel-offers/internal/core/port"
	"channel-offers/internal/core/port/mocks"
	"channel-offers/internal/feed"
)

func newTestHandler(t *testing.T) (*mocks.MockOfferUseCase, http.Handler) {
	t.Helper()
	svc := mocks.NewMockOfferUseCase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return svc, NewHandler(svc, logger, 2).Router()
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestPutOffer(t *testing.T) {
	svc, h := newTestHandler(t)

	from := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	var got port.OfferInput
	svc.EXPECT().
		PutOffer(mock.Anything, "SKU-1", mock.AnythingOfType("port.OfferInput")).
		RunAndReturn(func(_ context.Context, _ string, in port.OfferInput) (*domain.Record, error) {
			got = in
			return &domain.Record{
				OperatorCode:    "MP",
				Price:           100,
				SpecialPrice:    80.0,
				SpecialFromDate: from,
				SpecialToDate:   "",
				Stock:           5,
				Status:          "active",
			}, nil
		})

	rec := do(t, h, http.MethodPut, "/api/v1/products/SKU-1/offers",
		`{"operatorCode":"MP","price":100,"stock":5,"status":"active","specialPrice":80,"specialFromDate":"2024-05-01 10:00:00","specialToDate":""}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	assert.Equal(t, "MP", got.OperatorCode)
	assert.Equal(t, 100.0, got.Price)
	assert.Equal(t, 5, got.Stock)
	require.NotNil(t, got.SalePrice)
	assert.Equal(t, 80.0, *got.SalePrice)
	require.NotNil(t, got.SaleStartDate)
	assert.True(t, from.Equal(*got.SaleStartDate))
	assert.Nil(t, got.SaleEndDate)
	assert.Nil(t, got.IsPublished)
	assert.Nil(t, got.BusinessUnit)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "", body["businessUnit"])
	assert.Equal(t, 80.0, body["specialPrice"])
	assert.Equal(t, "", body["specialToDate"])
	v, ok := body["isPublished"]
	assert.True(t, ok)
	assert.Nil(t, v)
}

func TestPutOfferRequestErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{"operatorCode":`},
		{name: "missing price", body: `{"operatorCode":"MP","stock":1,"status":"active"}`},
		{name: "missing stock", body: `{"operatorCode":"MP","price":1,"status":"active"}`},
		{name: "bad date", body: `{"operatorCode":"MP","price":1,"stock":1,"status":"active","specialFromDate":"tomorrow"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, h := newTestHandler(t)
			rec := do(t, h, http.MethodPut, "/api/v1/products/SKU-1/offers", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestPutOfferInvalidField(t *testing.T) {
	svc, h := newTestHandler(t)
	svc.EXPECT().
		PutOffer(mock.Anything, "SKU-1", mock.Anything).
		Return(nil, domain.NewInvalidField(domain.FieldSpecialPrice))

	rec := do(t, h, http.MethodPut, "/api/v1/products/SKU-1/offers",
		`{"operatorCode":"MP","price":100,"stock":5,"status":"active","specialPrice":150}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "invalid field", body.Error)
	assert.Equal(t, "specialPrice", body.Details)
}

func TestUpdatePrice(t *testing.T) {
	svc, h := newTestHandler(t)
	svc.EXPECT().
		UpdatePrice(mock.Anything, "SKU-1", "facl", 50.0, (*float64)(nil)).
		Return(&domain.Record{OperatorCode: "facl", Price: 50, SpecialPrice: 90.0, SpecialFromDate: "", SpecialToDate: "", Status: "active"}, nil)

	rec := do(t, h, http.MethodPatch, "/api/v1/products/SKU-1/offers/facl/price", `{"price":50}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"specialPrice":90`)

	rec = do(t, h, http.MethodPatch, "/api/v1/products/SKU-1/offers/facl/price", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateStockNotFound(t *testing.T) {
	svc, h := newTestHandler(t)
	svc.EXPECT().
		UpdateStock(mock.Anything, "SKU-404", "MP", 3).
		Return(nil, fmt.Errorf("product SKU-404: %w", port.ErrNotFound))

	rec := do(t, h, http.MethodPatch, "/api/v1/products/SKU-404/offers/MP/stock", `{"stock":3}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not found", decodeError(t, rec).Error)
}

func TestUpdateStockInternalError(t *testing.T) {
	svc, h := newTestHandler(t)
	svc.EXPECT().
		UpdateStock(mock.Anything, "SKU-1", "MP", 3).
		Return(nil, errors.New("connection reset"))

	rec := do(t, h, http.MethodPatch, "/api/v1/products/SKU-1/offers/MP/stock", `{"stock":3}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "internal error", body.Error)
	assert.Empty(t, body.Details)
}

func TestGetProduct(t *testing.T) {
	svc, h := newTestHandler(t)
	svc.EXPECT().
		GetProduct(mock.Anything, "SKU-1").
		Return(&port.ProductView{SellerSKU: "SKU-1", Offers: []domain.Record{{OperatorCode: "MP", SpecialPrice: "", SpecialFromDate: "", SpecialToDate: ""}}}, nil)

	rec := do(t, h, http.MethodGet, "/api/v1/products/SKU-1", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body struct {
		SellerSKU string           `json:"sellerSku"`
		Offers    []map[string]any `json:"businessUnits"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "SKU-1", body.SellerSKU)
	require.Len(t, body.Offers, 1)
	assert.Equal(t, "MP", body.Offers[0]["operatorCode"])
}

func TestGetAttributesKeepsOrder(t *testing.T) {
	svc, h := newTestHandler(t)
	offer, err := domain.NewChannelOffer(nil, "MP", 100, 5, "active")
	require.NoError(t, err)
	svc.EXPECT().GetAttributes(mock.Anything, "SKU-1", "MP").Return(offer.AllAttributes(), nil)

	rec := do(t, h, http.MethodGet, "/api/v1/products/SKU-1/offers/MP/attributes", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"OperatorCode":"MP","Price":100,"SpecialPrice":"","SpecialFromDate":"","SpecialToDate":"","Stock":5,"Status":"active"}`,
		rec.Body.String())
	assert.True(t, strings.HasPrefix(rec.Body.String(), `{"OperatorCode":"MP","Price":100,"SpecialPrice":""`))
}

func TestListProducts(t *testing.T) {
	svc, h := newTestHandler(t)
	svc.EXPECT().ListSKUs(mock.Anything, 100).Return(nil, nil)
	svc.EXPECT().ListSKUs(mock.Anything, 5).Return([]string{"A"}, nil)

	rec := do(t, h, http.MethodGet, "/api/v1/products", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"skus":[]}`, rec.Body.String())

	rec = do(t, h, http.MethodGet, "/api/v1/products?limit=5", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"skus":["A"]}`, rec.Body.String())

	rec = do(t, h, http.MethodGet, "/api/v1/products?limit=-1", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBuildFeed(t *testing.T) {
	svc, h := newTestHandler(t)
	svc.EXPECT().
		BuildFeed(mock.Anything, []string{"A", "B"}).
		Return(&port.Feed{RequestID: "req-1", Document: []byte("<Request></Request>"), Products: 2, Offers: 3}, nil)

	rec := do(t, h, http.MethodPost, "/api/v1/feeds", `{"skus":["A","B"]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/xml", rec.Header().Get("Content-Type"))
	assert.Equal(t, "req-1", rec.Header().Get("X-Feed-Request-Id"))
	assert.Equal(t, "<Request></Request>", rec.Body.String())
}

func TestBuildFeedRequestLimits(t *testing.T) {
	_, h := newTestHandler(t)

	rec := do(t, h, http.MethodPost, "/api/v1/feeds", `{"skus":[]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/v1/feeds", `{"skus":["A","B","C"]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "too many skus", decodeError(t, rec).Details)
}

func TestRemoveOffer(t *testing.T) {
	svc, h := newTestHandler(t)
	svc.EXPECT().RemoveOffer(mock.Anything, "SKU-1", "MP").Return(nil)
	svc.EXPECT().
		RemoveOffer(mock.Anything, "SKU-1", "facl").
		Return(fmt.Errorf("offer SKU-1/facl: %w", port.ErrNotFound))

	rec := do(t, h, http.MethodDelete, "/api/v1/products/SKU-1/offers/MP", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = do(t, h, http.MethodDelete, "/api/v1/products/SKU-1/offers/facl", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBuildFeedNonFiniteValue(t *testing.T) {
	svc, h := newTestHandler(t)
	svc.EXPECT().
		BuildFeed(mock.Anything, []string{"A"}).
		Return(nil, fmt.Errorf("render feed: %w", feed.ErrNonFinite))

	rec := do(t, h, http.MethodPost, "/api/v1/feeds", `{"skus":["A"]}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "unrenderable offer", decodeError(t, rec).Error)
}
