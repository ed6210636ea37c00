package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	domcategory "example.com/catalog-api/internal/domain/category"
	categoryuc "example.com/catalog-api/internal/usecase/category"
	productuc "example.com/catalog-api/internal/usecase/product"
)

type stubPinger struct{ err error }

func (s stubPinger) Ping(ctx context.Context) error { return s.err }

func TestListCategories_ReturnsIDNameCount(t *testing.T) {
	categoryRepo := &mockCategoryRepository{}
	require.NoError(t, categoryRepo.CreateBatch(context.Background(), []*domcategory.Category{
		{Name: "New Arrivals", Count: 127},
		{Name: "Summer Collection", Count: 89},
		{Name: "Winter Essentials", Count: 93},
		{Name: "Accessories", Count: 154},
	}))
	router := setupProductAPI(&mockProductRepository{}, categoryRepo)

	var categories []map[string]any
	rec := getJSON(t, router, "/api/categories", &categories)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, categories, 4)
	require.Equal(t, map[string]any{"id": float64(1), "name": "New Arrivals", "count": float64(127)}, categories[0])
	require.Equal(t, float64(154), categories[3]["count"])
}

func TestListCategories_EmptyIsArray(t *testing.T) {
	router := setupProductAPI(&mockProductRepository{}, &mockCategoryRepository{})

	var categories []map[string]any
	rec := getJSON(t, router, "/api/categories", &categories)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, categories)
	require.Empty(t, categories)
}

func TestCORS_AllowsAnyOrigin(t *testing.T) {
	router := setupProductAPI(newSeededProductRepository(t), &mockCategoryRepository{})

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_Preflight(t *testing.T) {
	router := setupProductAPI(newSeededProductRepository(t), &mockCategoryRepository{})

	req := httptest.NewRequest(http.MethodOptions, "/api/featured-products", nil)
	req.Header.Set("Origin", "https://shop.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Less(t, rec.Code, 300)
	require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestUnknownRoute_ReturnsJSON404(t *testing.T) {
	router := setupProductAPI(&mockProductRepository{}, &mockCategoryRepository{})

	var body map[string]any
	rec := getJSON(t, router, "/api/orders", &body)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "not found", body["error"])
}

func TestWriteMethod_NotAllowed(t *testing.T) {
	router := setupProductAPI(&mockProductRepository{}, &mockCategoryRepository{})

	req := httptest.NewRequest(http.MethodPost, "/api/products", bytes.NewBufferString(`{"name":"x"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHealth(t *testing.T) {
	cases := []struct {
		name   string
		pinger Pinger
		code   int
		status string
	}{
		{name: "no store wired", pinger: nil, code: http.StatusOK, status: "ok"},
		{name: "store reachable", pinger: stubPinger{}, code: http.StatusOK, status: "ok"},
		{name: "store down", pinger: stubPinger{err: errors.New("closed")}, code: http.StatusServiceUnavailable, status: "unavailable"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			api := NewAPI(Dependencies{
				ProductService:  productuc.NewService(&mockProductRepository{}),
				CategoryService: categoryuc.NewService(&mockCategoryRepository{}),
				Store:           tc.pinger,
			})

			var body map[string]string
			rec := getJSON(t, api.Router(), "/health", &body)
			require.Equal(t, tc.code, rec.Code)
			require.Equal(t, tc.status, body["status"])
		})
	}
}

func TestRequestLogger_RecordsStatusAndErrors(t *testing.T) {
	logger, hook := test.NewNullLogger()
	repo := newSeededProductRepository(t)
	repo.listErr = errors.New("no such table: products")
	api := NewAPI(Dependencies{
		ProductService:  productuc.NewService(repo),
		CategoryService: categoryuc.NewService(&mockCategoryRepository{}),
		Logger:          logger,
	})

	rec := getJSON(t, api.Router(), "/api/products?sort=price-asc", nil)
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotContains(t, body["error"], "no such table")

	entries := hook.AllEntries()
	require.Len(t, entries, 2)
	require.Equal(t, logrus.ErrorLevel, entries[0].Level)
	require.EqualError(t, entries[0].Data[logrus.ErrorKey].(error), "no such table: products")
	require.Equal(t, "request completed", entries[1].Message)
	require.Equal(t, http.StatusInternalServerError, entries[1].Data["status"])
	require.Equal(t, "sort=price-asc", entries[1].Data["query"])
}
