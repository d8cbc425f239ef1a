package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"

	"github.com/goliatone/go-errors"
	"github.com/goliatone/go-logger/glog"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"

	"github.com/skarut/landing-api/internal/auth"
	"github.com/skarut/landing-api/internal/config"
	"github.com/skarut/landing-api/internal/httpapi"
	"github.com/skarut/landing-api/internal/store"
)

func main() {
	lgr := glog.NewLogger(
		glog.WithLoggerTypePretty(),
		glog.WithLevel(glog.Trace),
		glog.WithName("landing-api"),
		glog.WithAddSource(false),
		glog.WithRichErrorHandler(errors.ToSlogAttributes),
	)

	if err := run(lgr); err != nil {
		lgr.GetLogger("main").Error("fatal error", "error", err)
		os.Exit(1)
	}
}

func run(lgr *glog.BaseLogger) error {
	logger := lgr.GetLogger("main")

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx := context.Background()

	sqldb, err := sql.Open(sqliteshim.ShimName, cfg.DBConnectionString)
	if err != nil {
		return errors.Wrap(err, errors.CategoryInternal, "could not open database")
	}

	db := bun.NewDB(sqldb, sqlitedialect.New())
	defer db.Close()

	if err := store.Init(ctx, db); err != nil {
		return err
	}

	users := store.NewUsersRepository(db)

	auther := auth.NewAuthenticator(users, cfg).
		WithLogger(lgr.GetLogger("auth"))

	srv := httpapi.New(httpapi.Options{
		Auther:     auther,
		Banks:      store.NewBanksRepository(db),
		Titles:     store.NewTitlesRepository(db),
		Abouts:     store.NewAboutsRepository(db),
		ContextKey: cfg.ContextKey,
		AuthScheme: cfg.AuthScheme,
		Logger:     lgr.GetLogger("http"),
	})

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.Listen(cfg.Addr())
	}()

	signals := make(chan os.Signal, 3)
	signal.Notify(signals,
		syscall.SIGINT,
		syscall.SIGQUIT,
		syscall.SIGTERM,
	)

	return waitServer(serverErr, signals, logger, srv.Shutdown)
}

// waitServer blocks until the listener fails or a shutdown signal arrives.
// Errors come back to the caller so deferred cleanup still runs.
func waitServer(serverErr <-chan error, signals <-chan os.Signal, logger auth.Logger, shutdown func() error) error {
	select {
	case err := <-serverErr:
		return err
	case sig := <-signals:
		logger.Info("received signal, shutting down", "signal", sig.String())
		return shutdown()
	}
}
