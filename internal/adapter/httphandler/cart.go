package httphandler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

type ShoppingHandler struct {
	carts     port.CartManager
	wishlists port.WishlistManager
	checkout  port.Checkout
}

func RegisterShopping(
	mux *http.ServeMux,
	g Guard,
	carts port.CartManager,
	wishlists port.WishlistManager,
	checkout port.Checkout,
) {
	h := ShoppingHandler{carts, wishlists, checkout}

	mux.Handle("GET /api/cart", g.User(h.Cart))
	mux.Handle("DELETE /api/cart", g.User(h.ClearCart))
	mux.Handle("POST /api/cart/items", g.User(h.AddToCart))
	mux.Handle("PUT /api/cart/items", g.User(h.UpdateCartLine))
	mux.Handle("DELETE /api/cart/items", g.User(h.RemoveFromCart))

	mux.Handle("GET /api/wishlist", g.User(h.Wishlist))
	mux.Handle("DELETE /api/wishlist", g.User(h.ClearWishlist))
	mux.Handle("PUT /api/wishlist/{productID}", g.User(h.AddToWishlist))
	mux.Handle("DELETE /api/wishlist/{productID}", g.User(h.RemoveFromWishlist))

	mux.HandleFunc("POST /api/checkout/direct", h.DirectOrder)
	mux.Handle("POST /api/checkout/cart", g.User(h.CartOrder))
}

func (h ShoppingHandler) Cart(w http.ResponseWriter, r *http.Request) {
	const op = "ShoppingHandler.Cart"
	log := slog.With("op", op)

	s, err := h.carts.Cart(r.Context(), principalFrom(r.Context()).UserID)
	if err != nil {
		writeError(w, log, err)
		return
	}
	writeJSON(w, log, http.StatusOK, cartFromDomain(s))
}

func (h ShoppingHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	const op = "ShoppingHandler.ClearCart"
	log := slog.With("op", op)

	if err := h.carts.ClearCart(r.Context(), principalFrom(r.Context()).UserID); err != nil {
		writeError(w, log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h ShoppingHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	h.mutateCart(w, r, "ShoppingHandler.AddToCart", h.carts.AddToCart)
}

func (h ShoppingHandler) UpdateCartLine(w http.ResponseWriter, r *http.Request) {
	h.mutateCart(w, r, "ShoppingHandler.UpdateCartLine", h.carts.UpdateCartLine)
}

func (h ShoppingHandler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	h.mutateCart(w, r, "ShoppingHandler.RemoveFromCart", h.carts.RemoveFromCart)
}

type cartMutation func(
	ctx context.Context, userID string, l domain.CartLine,
) (domain.CartSummary, error)

func (h ShoppingHandler) mutateCart(
	w http.ResponseWriter, r *http.Request, op string, mutate cartMutation,
) {
	log := slog.With("op", op)

	var req CartLineRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, log, err)
		return
	}

	s, err := mutate(r.Context(), principalFrom(r.Context()).UserID, req.toDomain())
	if err != nil {
		writeError(w, log, err)
		return
	}
	writeJSON(w, log, http.StatusOK, cartFromDomain(s))
}

func (h ShoppingHandler) Wishlist(w http.ResponseWriter, r *http.Request) {
	const op = "ShoppingHandler.Wishlist"
	log := slog.With("op", op)

	ps, err := h.wishlists.Wishlist(r.Context(), principalFrom(r.Context()).UserID)
	if err != nil {
		writeError(w, log, err)
		return
	}
	writeJSON(w, log, http.StatusOK, productsFromDomain(ps))
}

func (h ShoppingHandler) ClearWishlist(w http.ResponseWriter, r *http.Request) {
	const op = "ShoppingHandler.ClearWishlist"
	log := slog.With("op", op)

	err := h.wishlists.ClearWishlist(r.Context(), principalFrom(r.Context()).UserID)
	if err != nil {
		writeError(w, log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h ShoppingHandler) AddToWishlist(w http.ResponseWriter, r *http.Request) {
	const op = "ShoppingHandler.AddToWishlist"
	log := slog.With("op", op)

	userID := principalFrom(r.Context()).UserID
	err := h.wishlists.AddToWishlist(r.Context(), userID, r.PathValue("productID"))
	if err != nil {
		writeError(w, log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h ShoppingHandler) RemoveFromWishlist(w http.ResponseWriter, r *http.Request) {
	const op = "ShoppingHandler.RemoveFromWishlist"
	log := slog.With("op", op)

	userID := principalFrom(r.Context()).UserID
	err := h.wishlists.RemoveFromWishlist(r.Context(), userID, r.PathValue("productID"))
	if err != nil {
		writeError(w, log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h ShoppingHandler) DirectOrder(w http.ResponseWriter, r *http.Request) {
	const op = "ShoppingHandler.DirectOrder"
	log := slog.With("op", op)

	var req OrderRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, log, err)
		return
	}

	l, err := h.checkout.DirectOrder(r.Context(), domain.OrderRequest(req))
	if err != nil {
		writeError(w, log, err)
		return
	}
	writeJSON(w, log, http.StatusOK, OrderLink(l))
}

func (h ShoppingHandler) CartOrder(w http.ResponseWriter, r *http.Request) {
	const op = "ShoppingHandler.CartOrder"
	log := slog.With("op", op)

	l, err := h.checkout.CartOrder(r.Context(), principalFrom(r.Context()).UserID)
	if err != nil {
		writeError(w, log, err)
		return
	}
	writeJSON(w, log, http.StatusOK, OrderLink(l))
}
