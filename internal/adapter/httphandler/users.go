package httphandler

import (
	"log/slog"
	"net/http"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

type UsersHandler struct {
	users port.UsersManager
	stats port.StatsReader
}

func RegisterUsers(
	mux *http.ServeMux, g Guard, users port.UsersManager, stats port.StatsReader,
) {
	h := UsersHandler{users, stats}

	mux.HandleFunc("POST /api/users/register", h.Register)
	mux.HandleFunc("POST /api/users/login", h.Login)

	mux.Handle("GET /api/admin/approvals", g.Admin(h.PendingAdmins))
	mux.Handle("POST /api/admin/approvals/{id}", g.Admin(h.ApproveAdmin))
	mux.Handle("DELETE /api/admin/approvals/{id}", g.Admin(h.RejectAdmin))
	mux.Handle("GET /api/admin/stats", g.Admin(h.Stats))
}

func (h UsersHandler) Register(w http.ResponseWriter, r *http.Request) {
	const op = "UsersHandler.Register"
	log := slog.With("op", op)

	var req RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, log, err)
		return
	}

	u, err := h.users.Register(r.Context(), domain.Registration{
		Name:     req.Name,
		Mobile:   req.Mobile,
		Password: req.Password,
		IsAdmin:  req.IsAdmin,
	})
	if err != nil {
		writeError(w, log, err)
		return
	}

	log.Info("user registered", "userID", u.ID, "admin", u.IsAdmin)
	writeJSON(w, log, http.StatusCreated, userFromDomain(u))
}

func (h UsersHandler) Login(w http.ResponseWriter, r *http.Request) {
	const op = "UsersHandler.Login"
	log := slog.With("op", op)

	var req LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, log, err)
		return
	}

	s, err := h.users.Login(r.Context(), req.Mobile, req.Password)
	if err != nil {
		writeError(w, log, err)
		return
	}
	writeJSON(w, log, http.StatusOK, Session{Token: s.Token, User: userFromDomain(s.User)})
}

func (h UsersHandler) PendingAdmins(w http.ResponseWriter, r *http.Request) {
	const op = "UsersHandler.PendingAdmins"
	log := slog.With("op", op)

	us, err := h.users.PendingAdmins(r.Context())
	if err != nil {
		writeError(w, log, err)
		return
	}

	res := make([]User, len(us))
	for i, u := range us {
		res[i] = userFromDomain(u)
	}
	writeJSON(w, log, http.StatusOK, res)
}

func (h UsersHandler) ApproveAdmin(w http.ResponseWriter, r *http.Request) {
	const op = "UsersHandler.ApproveAdmin"
	log := slog.With("op", op)

	id := r.PathValue("id")
	if err := h.users.ApproveAdmin(r.Context(), id); err != nil {
		writeError(w, log, err)
		return
	}

	log.Info("admin approved", "userID", id)
	w.WriteHeader(http.StatusNoContent)
}

func (h UsersHandler) RejectAdmin(w http.ResponseWriter, r *http.Request) {
	const op = "UsersHandler.RejectAdmin"
	log := slog.With("op", op)

	id := r.PathValue("id")
	if err := h.users.RejectAdmin(r.Context(), id); err != nil {
		writeError(w, log, err)
		return
	}

	log.Info("admin request rejected", "userID", id)
	w.WriteHeader(http.StatusNoContent)
}

func (h UsersHandler) Stats(w http.ResponseWriter, r *http.Request) {
	const op = "UsersHandler.Stats"
	log := slog.With("op", op)

	s, err := h.stats.DashboardStats(r.Context())
	if err != nil {
		writeError(w, log, err)
		return
	}
	writeJSON(w, log, http.StatusOK, Stats(s))
}
