package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/go-pg/pg/v10"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/daniilsolovey/news-cms/config"
	"github.com/daniilsolovey/news-cms/internal/db"
	"github.com/daniilsolovey/news-cms/internal/document"
	"github.com/daniilsolovey/news-cms/internal/embed"
	"github.com/daniilsolovey/news-cms/internal/newsportal"
	"github.com/daniilsolovey/news-cms/internal/rest"
	"github.com/daniilsolovey/news-cms/internal/rpc"
)

const rpcPath = "/v1/rpc/"

type App struct {
	DB        *db.Repository
	Logger    *slog.Logger
	Echo      *echo.Echo
	Manager   *newsportal.Manager
	Publisher *newsportal.Publisher
	Config    config.Config

	wg            sync.WaitGroup
	publisherCtx  context.Context
	stopPublisher context.CancelFunc
}

func New(cfg config.Config, dbConnect *pg.DB, logger *slog.Logger) *App {
	if cfg.App.LogQueries {
		dbConnect.AddQueryHook(db.NewQueryHook(logger))
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	database := db.New(dbConnect)
	manager := newsportal.NewNewsManager(
		database,
		document.NewRenderer(embed.Default()),
		newsportal.NewMetrics(registry),
	)
	handler := rest.NewNewsHandler(manager, logger, rest.Options{
		PublishToken: cfg.Publisher.Token,
		AllowOrigins: cfg.CORS.AllowOrigins,
		Gatherer:     registry,
	})

	e := handler.RegisterRoutes()
	e.Any(rpcPath, echo.WrapHandler(rpc.New(logger, manager)))

	publisherCtx, stopPublisher := context.WithCancel(context.Background())

	return &App{
		publisherCtx:  publisherCtx,
		stopPublisher: stopPublisher,

		DB:        database,
		Logger:    logger,
		Echo:      e,
		Manager:   manager,
		Publisher: newsportal.NewPublisher(manager, logger),
		Config:    cfg,
	}
}

// Run starts the scheduled publisher and serves HTTP until shutdown.
func (a *App) Run(ctx context.Context) error {
	stop := context.AfterFunc(ctx, a.stopPublisher)
	defer stop()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.Publisher.Run(a.publisherCtx, a.Config.Publisher.Interval)
	}()

	addr := fmt.Sprintf("%s:%d", a.Config.App.Host, a.Config.App.Port)
	a.Logger.Info("http server started", "addr", addr)

	err := a.Echo.Start(addr)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	return err
}

func (a *App) GracefulShutdown(ctx context.Context) error {
	a.stopPublisher()

	err := a.Echo.Shutdown(ctx)
	a.wg.Wait()

	if errors.Is(err, http.ErrServerClosed) {
		err = nil
	}
	if closeErr := a.DB.Close(); closeErr != nil {
		return errors.Join(err, fmt.Errorf("close db: %w", closeErr))
	}

	return err
}
