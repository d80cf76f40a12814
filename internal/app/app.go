package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/GlebRadaev/walletsync/internal/config"
	"github.com/GlebRadaev/walletsync/internal/handlers"
	"github.com/GlebRadaev/walletsync/internal/handlers/ws"
	"github.com/GlebRadaev/walletsync/internal/pg"
	"github.com/GlebRadaev/walletsync/internal/repo"
	"github.com/GlebRadaev/walletsync/internal/service"
	"github.com/GlebRadaev/walletsync/internal/session"
	"github.com/GlebRadaev/walletsync/pkg/clients"
	"github.com/GlebRadaev/walletsync/pkg/logger"
	"github.com/GlebRadaev/walletsync/pkg/subscription"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg  *config.Config
	api  *handlers.Handlers
	srv  *service.Services
	repo *repo.Repositories
	pool *pgxpool.Pool
	hub  *ws.Hub
	subs []*subscription.Subscription

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	return a.start(ctx, cfg)
}

func (a *Application) start(ctx context.Context, cfg *config.Config) error {
	cache, err := a.walletCache(ctx, cfg)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.srv = service.New(cfg, session.New(cache), clients.NewHTTPClient())
	a.hub = ws.NewHub(cfg.AllowedOrigins)
	a.api = handlers.New(a.srv, a.hub, cfg.AllowedOrigins)
	a.subs = handlers.Forward(a.srv, a.hub)

	if err = a.srv.SignIn(ctx, cfg); err != nil {
		return fmt.Errorf("can't start session: %w", err)
	}
	if err = a.srv.Activate(ctx); err != nil {
		zap.L().Warn("bootstrap incomplete, waiting for the next refresh", zap.Error(err))
	}

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	if err = a.srv.Poller.Start(ctx); err != nil {
		return fmt.Errorf("can't start balance poller: %w", err)
	}

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

// walletCache returns the Postgres cache when a database is configured and
// the in-memory one otherwise.
func (a *Application) walletCache(ctx context.Context, cfg *config.Config) (session.Cache, error) {
	if cfg.Database == "" {
		zap.L().Info("no database configured, wallet cache is in memory")
		return session.NewMemoryCache(), nil
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return nil, fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		pool.Close()
		return nil, fmt.Errorf("can't run migrations: %w", err)
	}

	a.pool = pool
	a.repo = repo.New(pg.New(pool))
	return a.repo.WalletCache, nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		dbpool.Close()
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:              a.cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(sCtx)
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	a.shutdown()
	close(a.errCh)
	wg.Wait()

	return appErr
}

func (a *Application) shutdown() {
	for _, sub := range a.subs {
		sub.Close()
	}
	if a.srv != nil {
		a.srv.Close()
	}
	if a.hub != nil {
		if err := a.hub.Close(); err != nil {
			zap.L().Warn("failed to close ws hub", zap.Error(err))
		}
	}
	if a.pool != nil {
		a.pool.Close()
	}
}
