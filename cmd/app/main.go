package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/namsral/flag"

	"github.com/daniilsolovey/news-cms/config"
	_ "github.com/daniilsolovey/news-cms/docs"
	"github.com/daniilsolovey/news-cms/internal/app"
	"github.com/daniilsolovey/news-cms/internal/db"
)

var (
	flConfig      = flag.String("config", "config.toml", "path to TOML configuration file (CONFIG)")
	flDebug       = flag.Bool("debug", false, "enable debug mode (DEBUG)")
	flMigrate     = flag.Bool("migrate", false, "apply database migrations on start (MIGRATE)")
	flDatabaseURL = flag.String("database-url", "", "database connection URL, overrides the config file (DATABASE_URL)")
	cfg           config.Config
	lg            *slog.Logger
)

// @title News CMS API
// @version 1.0
// @description News CMS backend: public news API, editor API, embed resolving and the scheduled publish function
// @host localhost:3000
// @BasePath /

func main() {
	flag.Parse()

	lg = newLogger(*flDebug)

	var err error
	cfg, err = config.Load(*flConfig)
	exitOnError(err)

	if *flDatabaseURL != "" {
		exitOnError(cfg.SetDatabaseURL(*flDatabaseURL))
	}

	ctx := context.Background()

	if *flMigrate || cfg.App.Migrate {
		exitOnError(db.Migrate(ctx, &cfg.Database))
		lg.Info("database migrated")
	}

	dbc := pg.Connect(&cfg.Database)
	if err := dbc.Ping(ctx); err != nil {
		dbc.Close()
		exitOnError(err)
	}

	service := app.New(cfg, dbc, lg)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		err := service.Run(ctx)
		if err != nil {
			lg.Error("service run failed", "error", err)
			quit <- syscall.SIGTERM
		}
	}()

	<-quit
	lg.Info("service stopping")

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = service.GracefulShutdown(shutdownCtx)
	if err != nil {
		lg.Error("service graceful shutdown failed", "error", err)
	}
}

func newLogger(debug bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if debug {
		logLevel = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
}

func exitOnError(err error) {
	if err != nil {
		lg.Error("app init failed", "error", err)
		os.Exit(1)
	}
}
