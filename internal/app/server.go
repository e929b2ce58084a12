package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/gorilla/handlers"
	"go.uber.org/zap"

	"slotmatch/internal/api"
	"slotmatch/internal/config"
	"slotmatch/internal/service"
)

const (
	requestIDHeader         = "X-Request-ID"
	corsRequestMethodHeader = "Access-Control-Request-Method"
)

// NewHandler wires the router with CORS, request ids, access logging and
// panic recovery.
func NewHandler(cfg *config.Config, logger *zap.Logger) http.Handler {
	svc := service.NewAvailabilityService(logger.Named("matcher"))
	availabilityHandler := api.NewAvailabilityHandler(svc, logger.Named("api"), cfg.MaxBodyBytes)
	router := api.NewRouter(availabilityHandler)

	accessLog := zap.NewStdLog(logger.Named("access"))
	var h http.Handler = router
	h = handlers.RecoveryHandler(handlers.RecoveryLogger(accessLog), handlers.PrintRecoveryStack(!cfg.IsProduction()))(h)
	h = handlers.LoggingHandler(accessLog.Writer(), h)
	h = withRequestID(h)
	cors := handlers.CORS(
		handlers.AllowedOrigins(cfg.AllowedOrigins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
		handlers.ExposedHeaders([]string{requestIDHeader}),
	)(h)
	return preflightOrPlain(cors, h)
}

// preflightOrPlain hands OPTIONS requests that are not CORS preflights (no
// Access-Control-Request-Method) to plain, which answers them with 200.
func preflightOrPlain(cors, plain http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions && r.Header.Get(corsRequestMethodHeader) == "" {
			plain.ServeHTTP(w, r)
			return
		}
		cors.ServeHTTP(w, r)
	})
}

// NewHTTPServer builds the server without starting it.
func NewHTTPServer(cfg *config.Config, logger *zap.Logger) *http.Server {
	return &http.Server{
		Addr:         cfg.Addr(),
		Handler:      NewHandler(cfg, logger),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		ErrorLog:     zap.NewStdLog(logger.Named("http")),
	}
}

// Run serves until ctx is cancelled or SIGINT/SIGTERM arrives, then shuts down
// within cfg.ShutdownTimeout.
func Run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := NewHTTPServer(cfg, logger)
	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server running", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}

func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(api.WithRequestID(r.Context(), id)))
	})
}
