package http

import (
	"net/http"

	domproduct "example.com/catalog-api/internal/domain/product"
)

func (a *API) handleListProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domproduct.ListFilter{
		Category: q.Get("category"),
		Sort:     domproduct.ParseSort(q.Get("sort")),
	}

	products, err := a.productSvc.List(r.Context(), filter)
	if err != nil {
		a.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapProducts(products))
}

func (a *API) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusNotFound, domproduct.ErrProductNotFound)
		return
	}
	p, err := a.productSvc.GetByID(r.Context(), id)
	if err != nil {
		a.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapProduct(p))
}

func (a *API) handleFeaturedProducts(w http.ResponseWriter, r *http.Request) {
	products, err := a.productSvc.Featured(r.Context())
	if err != nil {
		a.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapProducts(products))
}
