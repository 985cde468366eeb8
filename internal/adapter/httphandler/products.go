package httphandler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

type ProductsService interface {
	port.ProductsReader
	port.ProductsEditor
	port.VariationsEditor
	port.AvailabilityReader
}

type ProductsHandler struct {
	products ProductsService
}

func RegisterProducts(mux *http.ServeMux, g Guard, products ProductsService) {
	h := ProductsHandler{products}

	mux.HandleFunc("GET /api/products", h.List)
	mux.HandleFunc("GET /api/products/featured", h.Featured)
	mux.HandleFunc("GET /api/products/new", h.NewArrivals)
	mux.HandleFunc("GET /api/products/{id}", h.Get)
	mux.HandleFunc("GET /api/products/{id}/availability", h.Availability)

	mux.Handle("POST /api/products", g.Admin(h.Create))
	mux.Handle("PUT /api/products/{id}", g.Admin(h.Update))
	mux.Handle("DELETE /api/products/{id}", g.Admin(h.Delete))
	mux.Handle("POST /api/products/{id}/variations", g.Admin(h.AddVariation))
	mux.Handle("PUT /api/products/{id}/variations", g.Admin(h.UpdateVariation))
	mux.Handle("DELETE /api/products/{id}/variations", g.Admin(h.RemoveVariation))
}

// List handles GET /api/products?category=&q=&sort=
func (h ProductsHandler) List(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.List"
	log := slog.With("op", op)

	q := r.URL.Query()
	filter := domain.ProductFilter{
		Category: q.Get("category"),
		Query:    q.Get("q"),
		Sort:     domain.ProductSort(q.Get("sort")),
	}
	if !filter.Sort.Valid() {
		writeError(w, log, fmt.Errorf("%s: sort %q: %w", op, filter.Sort, errInvalidQuery))
		return
	}

	ps, err := h.products.ListProducts(r.Context(), filter)
	if err != nil {
		writeError(w, log, err)
		return
	}
	writeJSON(w, log, http.StatusOK, productsFromDomain(ps))
}

func (h ProductsHandler) Featured(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.Featured"
	log := slog.With("op", op)

	ps, err := h.products.FeaturedProducts(r.Context())
	if err != nil {
		writeError(w, log, err)
		return
	}
	if len(ps) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, log, http.StatusOK, productsFromDomain(ps))
}

func (h ProductsHandler) NewArrivals(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.NewArrivals"
	log := slog.With("op", op)

	ps, err := h.products.NewArrivals(r.Context())
	if err != nil {
		writeError(w, log, err)
		return
	}
	writeJSON(w, log, http.StatusOK, productsFromDomain(ps))
}

func (h ProductsHandler) Get(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.Get"
	log := slog.With("op", op)

	p, err := h.products.GetProduct(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, log, err)
		return
	}
	writeJSON(w, log, http.StatusOK, productFromDomain(p))
}

// Availability handles GET /api/products/{id}/availability?color=&size=&quantity=
func (h ProductsHandler) Availability(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.Availability"
	log := slog.With("op", op)

	q := r.URL.Query()
	aq := port.AvailabilityQuery{Color: q.Get("color"), Size: q.Get("size")}
	if raw := q.Get("quantity"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, log, fmt.Errorf("%s: quantity %q: %w", op, raw, errInvalidQuery))
			return
		}
		aq.Quantity = n
	}

	a, err := h.products.Availability(r.Context(), r.PathValue("id"), aq)
	if err != nil {
		writeError(w, log, err)
		return
	}
	writeJSON(w, log, http.StatusOK, availabilityFromPort(a))
}

func (h ProductsHandler) Create(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.Create"
	log := slog.With("op", op)

	p, err := h.decodeProduct(r)
	if err != nil {
		writeError(w, log, err)
		return
	}

	p, err = h.products.CreateProduct(r.Context(), p)
	if err != nil {
		writeError(w, log, err)
		return
	}

	log.Info("product created", "productID", p.ID)
	writeJSON(w, log, http.StatusCreated, productFromDomain(p))
}

func (h ProductsHandler) Update(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.Update"
	log := slog.With("op", op)

	p, err := h.decodeProduct(r)
	if err != nil {
		writeError(w, log, err)
		return
	}

	p, err = h.products.UpdateProduct(r.Context(), r.PathValue("id"), p)
	if err != nil {
		writeError(w, log, err)
		return
	}
	writeJSON(w, log, http.StatusOK, productFromDomain(p))
}

func (h ProductsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.Delete"
	log := slog.With("op", op)

	id := r.PathValue("id")
	if err := h.products.DeleteProduct(r.Context(), id); err != nil {
		writeError(w, log, err)
		return
	}

	log.Info("product deleted", "productID", id)
	w.WriteHeader(http.StatusNoContent)
}

func (h ProductsHandler) AddVariation(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.AddVariation"
	log := slog.With("op", op)

	var v Variation
	if err := decodeJSON(r, &v); err != nil {
		writeError(w, log, err)
		return
	}

	p, err := h.products.AddVariation(r.Context(), r.PathValue("id"), domain.Variation(v))
	if err != nil {
		writeError(w, log, err)
		return
	}
	writeJSON(w, log, http.StatusCreated, productFromDomain(p))
}

func (h ProductsHandler) UpdateVariation(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.UpdateVariation"
	log := slog.With("op", op)

	var v Variation
	if err := decodeJSON(r, &v); err != nil {
		writeError(w, log, err)
		return
	}

	p, err := h.products.UpdateVariation(r.Context(), r.PathValue("id"), domain.Variation(v))
	if err != nil {
		writeError(w, log, err)
		return
	}
	writeJSON(w, log, http.StatusOK, productFromDomain(p))
}

// RemoveVariation handles DELETE /api/products/{id}/variations?size=&color=
func (h ProductsHandler) RemoveVariation(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.RemoveVariation"
	log := slog.With("op", op)

	q := r.URL.Query()
	size, color := q.Get("size"), q.Get("color")
	if size == "" || color == "" {
		writeError(w, log, fmt.Errorf("%s: size and color: %w", op, errInvalidQuery))
		return
	}

	p, err := h.products.RemoveVariation(r.Context(), r.PathValue("id"), size, color)
	if err != nil {
		writeError(w, log, err)
		return
	}
	writeJSON(w, log, http.StatusOK, productFromDomain(p))
}

func (ProductsHandler) decodeProduct(r *http.Request) (domain.Product, error) {
	var req ProductRequest
	if err := decodeJSON(r, &req); err != nil {
		return domain.Product{}, err
	}
	return req.toDomain()
}
