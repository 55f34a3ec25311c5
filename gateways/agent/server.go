package agent

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	config "github.com/meetflow/followup/config/agent"
	"github.com/meetflow/followup/gateways/agent/handler"
	"github.com/meetflow/followup/services/followup/analysis"
	"github.com/meetflow/followup/services/followup/notify"
	"github.com/meetflow/followup/services/followup/scheduler"
	"github.com/meetflow/followup/services/followup/taskstore"
	"github.com/meetflow/followup/services/followup/transcript"
	"github.com/meetflow/followup/services/followup/usecase"
)

type Server struct {
	cfg     *config.Config
	log     *slog.Logger
	handler *handler.Handler
}

// New wires every collaborator once, each in its live or synthetic variant,
// and builds the pipeline on top of them.
func New(cfg *config.Config, log *slog.Logger) (*Server, error) {
	log.Info("creating agent server",
		slog.Int("port", cfg.Port),
		slog.Bool("offline", cfg.Offline()),
		slog.Bool("fireflies_live", cfg.FirefliesLive()),
		slog.Bool("airtable_live", cfg.AirtableLive()),
		slog.Bool("gmail_live", cfg.GmailLive()),
		slog.Bool("calendar_live", cfg.CalendarLive()))

	uc := usecase.New(
		transcript.New(cfg, log),
		analysis.New(cfg, log),
		taskstore.New(cfg, log),
		notify.New(cfg, log),
		scheduler.New(cfg, log),
		log,
	)

	return &Server{
		cfg:     cfg,
		log:     log,
		handler: handler.New(uc, log),
	}, nil
}

func (s *Server) Start(ctx context.Context) error {
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.URLFormat)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	s.handler.RegisterRoutes(router)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", s.cfg.Port),
		Handler: router,
		// A run blocks on up to five sequential upstream calls, the model
		// call being the slowest. Keep the write timeout generous.
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 5 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.log.Info("agent gateway started", slog.String("address", srv.Addr))
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		s.log.Info("shutting down agent gateway")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.log.Error("graceful shutdown failed", slog.String("error", err.Error()))
			srv.Close()
			return fmt.Errorf("failed to gracefully shutdown server: %w", err)
		}
	}

	s.log.Info("server stopped cleanly")
	return nil
}
