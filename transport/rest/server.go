package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	logger *zap.Logger
	router chi.Router
	port   string
}

// NewServer mounts the game API, the event stream and the API document on one router.
func NewServer(logger *zap.Logger, port string, handlers Handlers, stream http.Handler) *Server {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(requestLogger(logger))
	router.Use(middleware.Recoverer)

	router.Get("/ping", handlers.PingHandler)
	router.Get("/swagger/connect4/swagger.json", swaggerHandler)

	router.Route("/connect4", func(r chi.Router) {
		r.Post("/register", handlers.Register)
		r.Get("/status", handlers.Status)
		r.Get("/board", handlers.Board)
		r.Post("/make_move", handlers.MakeMove)
		r.Post("/reset", handlers.Reset)
		r.Method(http.MethodGet, "/ws", stream)
	})

	return &Server{
		logger: logger,
		router: router,
		port:   port,
	}
}

func (that *Server) Handler() http.Handler {
	return that.router
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (that *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:         ":" + that.port,
		Handler:      that.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		that.logger.Info("http server started", zap.String("port", that.port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return errors.WithMessage(err, "failed to start server")
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.WithMessage(err, "failed to shutdown server")
	}

	return nil
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			started := time.Now()

			next.ServeHTTP(ww, r)

			logger.Debug("request served",
				zap.String("request_id", middleware.GetReqID(r.Context())),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(started)),
			)
		})
	}
}
