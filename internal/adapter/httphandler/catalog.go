package httphandler

import (
	"log/slog"
	"net/http"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

type CatalogHandler struct {
	categories port.CategoriesManager
	hero       port.HeroImagesManager
}

func RegisterCatalog(
	mux *http.ServeMux,
	g Guard,
	categories port.CategoriesManager,
	hero port.HeroImagesManager,
) {
	h := CatalogHandler{categories, hero}

	mux.HandleFunc("GET /api/categories", h.ListCategories)
	mux.Handle("POST /api/categories", g.Admin(h.CreateCategory))
	mux.Handle("PUT /api/categories/{id}", g.Admin(h.RenameCategory))
	mux.Handle("DELETE /api/categories/{id}", g.Admin(h.DeactivateCategory))
	mux.Handle("PATCH /api/categories/{id}/toggle-status", g.Admin(h.ToggleCategory))

	mux.HandleFunc("GET /api/hero", h.ListHeroImages)
	mux.Handle("POST /api/hero", g.Admin(h.CreateHeroImage))
	mux.Handle("PUT /api/hero/{id}", g.Admin(h.UpdateHeroImage))
	mux.Handle("DELETE /api/hero/{id}", g.Admin(h.DeleteHeroImage))
}

func (h CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.ListCategories"
	log := slog.With("op", op)

	cs, err := h.categories.ListCategories(r.Context())
	if err != nil {
		writeError(w, log, err)
		return
	}

	res := make([]Category, len(cs))
	for i, c := range cs {
		res[i] = categoryFromDomain(c)
	}
	writeJSON(w, log, http.StatusOK, res)
}

func (h CatalogHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.CreateCategory"
	log := slog.With("op", op)

	var req CategoryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, log, err)
		return
	}

	c, err := h.categories.CreateCategory(r.Context(), req.Name)
	if err != nil {
		writeError(w, log, err)
		return
	}
	writeJSON(w, log, http.StatusCreated, categoryFromDomain(c))
}

func (h CatalogHandler) RenameCategory(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.RenameCategory"
	log := slog.With("op", op)

	var req CategoryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, log, err)
		return
	}

	c, err := h.categories.RenameCategory(r.Context(), r.PathValue("id"), req.Name)
	if err != nil {
		writeError(w, log, err)
		return
	}
	writeJSON(w, log, http.StatusOK, categoryFromDomain(c))
}

func (h CatalogHandler) DeactivateCategory(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.DeactivateCategory"
	log := slog.With("op", op)

	if err := h.categories.DeactivateCategory(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h CatalogHandler) ToggleCategory(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.ToggleCategory"
	log := slog.With("op", op)

	c, err := h.categories.ToggleCategory(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, log, err)
		return
	}
	writeJSON(w, log, http.StatusOK, categoryFromDomain(c))
}

func (h CatalogHandler) ListHeroImages(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.ListHeroImages"
	log := slog.With("op", op)

	hs, err := h.hero.ListHeroImages(r.Context())
	if err != nil {
		writeError(w, log, err)
		return
	}

	res := make([]HeroImage, len(hs))
	for i, hi := range hs {
		res[i] = HeroImage(hi)
	}
	writeJSON(w, log, http.StatusOK, res)
}

func (h CatalogHandler) CreateHeroImage(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.CreateHeroImage"
	log := slog.With("op", op)

	var req HeroImage
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, log, err)
		return
	}

	hi, err := h.hero.CreateHeroImage(r.Context(), domain.HeroImage(req))
	if err != nil {
		writeError(w, log, err)
		return
	}
	writeJSON(w, log, http.StatusCreated, HeroImage(hi))
}

func (h CatalogHandler) UpdateHeroImage(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.UpdateHeroImage"
	log := slog.With("op", op)

	var req HeroImage
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, log, err)
		return
	}

	hi, err := h.hero.UpdateHeroImage(r.Context(), r.PathValue("id"), domain.HeroImage(req))
	if err != nil {
		writeError(w, log, err)
		return
	}
	writeJSON(w, log, http.StatusOK, HeroImage(hi))
}

func (h CatalogHandler) DeleteHeroImage(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.DeleteHeroImage"
	log := slog.With("op", op)

	if err := h.hero.DeleteHeroImage(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
