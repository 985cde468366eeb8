package httphandler

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"
)

const (
	handlerTimeout    = 5 * time.Second
	readHeaderTimeout = 5 * time.Second
	idleTimeout       = 30 * time.Second
	maxHeaderBytes    = 64 << 10
)

// Server is the storefront API listener.
type Server struct {
	srv *http.Server
}

func NewServer(addr string, h http.Handler) Server {
	return Server{&http.Server{
		Addr:              addr,
		Handler:           http.TimeoutHandler(h, handlerTimeout, `{"error":"request timeout"}`),
		ReadHeaderTimeout: readHeaderTimeout,
		IdleTimeout:       idleTimeout,
		MaxHeaderBytes:    maxHeaderBytes,
	}}
}

// Serve accepts connections on ln until Shutdown. stop is called when
// serving ends for any reason.
func (s Server) Serve(ln net.Listener, stop context.CancelFunc) {
	const op = "Server.Serve"
	log := slog.With("op", op)

	defer stop()
	log.Info("http server is listening", "addr", ln.Addr().String())

	if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("http server stopped unexpectedly", "err", err)
	}
}

// Listen binds the configured address.
func (s Server) Listen() (net.Listener, error) {
	return net.Listen("tcp", s.srv.Addr)
}

func (s Server) Shutdown(ctx context.Context) {
	const op = "Server.Shutdown"
	log := slog.With("op", op)

	log.Info("closing http server...")
	if err := s.srv.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown gracefully", "err", err)
		return
	}
	log.Info("http server is closed")
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// LogRequests records method, path, status and duration of every request.
// Server errors are logged at warn level.
func LogRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		level := slog.LevelDebug
		if rec.status >= http.StatusInternalServerError {
			level = slog.LevelWarn
		}
		slog.Log(r.Context(), level, "request served",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}
