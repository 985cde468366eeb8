package httphandler

import (
	"context"
	"fmt"
	"log/slog"
	"mime"
	"net/http"
	"strings"

	"github.com/go-chi/cors"
	"github.com/niksmo/storefront/internal/core/domain"
)

func AllowJSON(next http.Handler) http.Handler {
	hf := func(w http.ResponseWriter, r *http.Request) {
		if r.ContentLength == 0 {
			next.ServeHTTP(w, r)
			return
		}

		mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if err != nil || mediaType != "application/json" {
			http.Error(w, "invalid media type", http.StatusUnsupportedMediaType)
			return
		}

		next.ServeHTTP(w, r)
	}
	return http.HandlerFunc(hf)
}

func CORS(next http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	})(next)
}

type Authenticator interface {
	Authenticate(ctx context.Context, token string) (domain.Principal, error)
}

type principalKey struct{}

// A Guard admits requests that carry a valid bearer token.
type Guard struct {
	auth Authenticator
}

func NewGuard(auth Authenticator) Guard {
	return Guard{auth}
}

func (g Guard) User(next http.HandlerFunc) http.Handler {
	return g.require(false, next)
}

func (g Guard) Admin(next http.HandlerFunc) http.Handler {
	return g.require(true, next)
}

func (g Guard) require(admin bool, next http.HandlerFunc) http.Handler {
	hf := func(w http.ResponseWriter, r *http.Request) {
		const op = "Guard.require"
		log := slog.With("op", op, "path", r.URL.Path)

		token, ok := bearerToken(r)
		if !ok {
			writeError(w, log, fmt.Errorf("%s: %w", op, errUnauthorized))
			return
		}

		p, err := g.auth.Authenticate(r.Context(), token)
		if err != nil {
			writeError(w, log, err)
			return
		}

		if admin && !p.Admin {
			writeError(w, log, fmt.Errorf("%s: %w", op, domain.ErrForbidden))
			return
		}

		ctx := context.WithValue(r.Context(), principalKey{}, p)
		next(w, r.WithContext(ctx))
	}
	return http.HandlerFunc(hf)
}

func bearerToken(r *http.Request) (string, bool) {
	h := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(h, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return "", false
	}
	return token, true
}

func principalFrom(ctx context.Context) domain.Principal {
	p, _ := ctx.Value(principalKey{}).(domain.Principal)
	return p
}
