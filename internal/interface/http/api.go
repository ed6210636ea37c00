package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"

	domcategory "example.com/catalog-api/internal/domain/category"
	domproduct "example.com/catalog-api/internal/domain/product"
	categoryuc "example.com/catalog-api/internal/usecase/category"
	productuc "example.com/catalog-api/internal/usecase/product"
)

var (
	errNotFound         = errors.New("not found")
	errMethodNotAllowed = errors.New("method not allowed")
	errInternal         = errors.New("internal server error")
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type API struct {
	categorySvc *categoryuc.Service
	productSvc  *productuc.Service
	store       Pinger
	log         logrus.FieldLogger
}

type Dependencies struct {
	CategoryService *categoryuc.Service
	ProductService  *productuc.Service
	Store           Pinger
	Logger          logrus.FieldLogger
}

func NewAPI(deps Dependencies) *API {
	logger := deps.Logger
	if logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		logger = l
	}
	return &API{
		categorySvc: deps.CategoryService,
		productSvc:  deps.ProductService,
		store:       deps.Store,
		log:         logger,
	}
}

func (a *API) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(a.requestLogger)
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		MaxAge:         300,
	}))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusNotFound, errNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, errMethodNotAllowed)
	})

	r.Get("/health", a.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/products", a.handleListProducts)
		r.Get("/products/{id:[0-9]+}", a.handleGetProduct)
		r.Get("/categories", a.handleListCategories)
		r.Get("/featured-products", a.handleFeaturedProducts)
	})

	return r
}

func (a *API) handleHealth(w http.ResponseWriter, r *http.Request) {
	if a.store != nil {
		if err := a.store.Ping(r.Context()); err != nil {
			a.log.WithError(err).Warn("health check failed")
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

type errorResponse struct {
	Error string `json:"error"`
}

func respondError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

// parseIDParam reads a numeric path parameter. The route pattern already
// guarantees digits, so a failure here means the value overflows int64.
func parseIDParam(r *http.Request, key string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, key), 10, 64)
}

func mapCategory(c *domcategory.Category) map[string]any {
	return map[string]any{
		"id":    c.ID,
		"name":  c.Name,
		"count": c.Count,
	}
}

func mapProduct(p *domproduct.Product) map[string]any {
	var description any
	if p.Description != "" {
		description = p.Description
	}
	return map[string]any{
		"id":          p.ID,
		"name":        p.Name,
		"price":       p.Price,
		"image":       p.Image,
		"category":    p.Category,
		"description": description,
		"created_at":  p.CreatedAt.UTC(),
	}
}

func mapProducts(products []*domproduct.Product) []map[string]any {
	resp := make([]map[string]any, 0, len(products))
	for _, p := range products {
		resp = append(resp, mapProduct(p))
	}
	return resp
}

func (a *API) handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domproduct.ErrProductNotFound):
		respondError(w, http.StatusNotFound, err)
	default:
		a.log.WithFields(logrus.Fields{
			"method":     r.Method,
			"path":       r.URL.Path,
			"request_id": chimw.GetReqID(r.Context()),
		}).WithError(err).Error("request failed")
		respondError(w, http.StatusInternalServerError, errInternal)
	}
}
