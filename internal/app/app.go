package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/KunitakeHyuga/Hackathon/internal/adapter/postgres"
	conversationrepo "github.com/KunitakeHyuga/Hackathon/internal/adapter/postgres/conversation"
	historyrepo "github.com/KunitakeHyuga/Hackathon/internal/adapter/postgres/history"
	"github.com/KunitakeHyuga/Hackathon/internal/adapter/provider/voicevox"
	"github.com/KunitakeHyuga/Hackathon/internal/config"
	"github.com/KunitakeHyuga/Hackathon/internal/service/archive"
	"github.com/KunitakeHyuga/Hackathon/internal/service/speech"
	"github.com/KunitakeHyuga/Hackathon/internal/transport/middleware"
	"github.com/KunitakeHyuga/Hackathon/internal/transport/rest"
	"github.com/KunitakeHyuga/Hackathon/migrations"
)

// Run is the backend entry point. It loads configuration, connects to
// PostgreSQL, applies migrations, and serves the REST API until ctx is
// cancelled, then shuts the server down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, closeLog, err := NewLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.Bool("skip_migrations", cfg.Database.SkipMigrations),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if !cfg.Database.SkipMigrations {
		if err := postgres.Migrate(ctx, pool, migrations.FS, logger); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	handler, cleanup := newHTTPHandler(cfg, pool, reg, logger)
	defer cleanup()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return serve(ctx, srv, cfg.Server.ShutdownTimeout, logger)
}

// newHTTPHandler wires repositories, services and handlers behind the
// middleware chain. cleanup stops background work started here.
func newHTTPHandler(cfg *config.Config, pool *pgxpool.Pool, reg *prometheus.Registry, logger *slog.Logger) (http.Handler, func()) {
	// Adapters.
	conversations := conversationrepo.New(pool)
	history := historyrepo.New(pool)
	txm := postgres.NewTxManager(pool)
	engine := voicevox.NewEngine(cfg.Voicevox.URL, cfg.Voicevox.Timeout, logger)

	// Services.
	archiveSvc := archive.NewService(logger, conversations, history, txm)
	speechSvc := speech.NewService(logger, engine, cfg.Voicevox.DefaultSpeaker)

	metrics := middleware.NewMetrics(reg)
	limiter := middleware.NewRateLimiter(5 * time.Minute)

	mux := rest.NewRouter(rest.Handlers{
		Conversations: rest.NewConversationHandler(archiveSvc, logger),
		History:       rest.NewHistoryHandler(archiveSvc, logger),
		Speech:        rest.NewSpeechHandler(speechSvc, logger),
		Health:        rest.NewHealthHandler(pool, engine, BuildVersion()),
	},
		limiter.Limit(cfg.Server.SpeechRateLimit),
		promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}),
	)

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		metrics.Middleware(),
		middleware.CORS(cfg.CORS),
	)(mux)

	return handler, limiter.Stop
}

// serve runs srv until ctx is done, then drains in-flight requests for at
// most shutdownTimeout.
func serve(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration, logger *slog.Logger) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}
