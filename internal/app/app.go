// Package app wires the catalog service together and owns its lifecycle.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"

	"example.com/catalog-api/internal/config"
	"example.com/catalog-api/internal/infra/persistence/sqlstore"
	httpapi "example.com/catalog-api/internal/interface/http"
	categoryuc "example.com/catalog-api/internal/usecase/category"
	productuc "example.com/catalog-api/internal/usecase/product"
	"example.com/catalog-api/internal/usecase/seed"
)

// App holds the store handle and HTTP server for one process.
type App struct {
	cfg    *config.Config
	log    logrus.FieldLogger
	store  *sqlstore.Store
	server *http.Server
}

// New opens the store, ensures the schema, and seeds empty tables. The
// returned App must be closed.
func New(ctx context.Context, cfg *config.Config, logger logrus.FieldLogger) (*App, error) {
	store, err := sqlstore.Open(ctx, cfg.DBDriver, cfg.DBDSN, logger)
	if err != nil {
		return nil, err
	}
	if err := store.EnsureSchema(ctx); err != nil {
		_ = store.Close()
		return nil, err
	}

	categoryRepo := sqlstore.NewCategoryRepository(store)
	productRepo := sqlstore.NewProductRepository(store)

	if _, err := seed.NewService(categoryRepo, productRepo, logger).Run(ctx); err != nil {
		_ = store.Close()
		return nil, err
	}

	api := httpapi.NewAPI(httpapi.Dependencies{
		CategoryService: categoryuc.NewService(categoryRepo),
		ProductService:  productuc.NewService(productRepo),
		Store:           store,
		Logger:          logger,
	})

	return &App{
		cfg:   cfg,
		log:   logger,
		store: store,
		server: &http.Server{
			Addr:         cfg.HTTPAddr,
			Handler:      api.Router(),
			ReadTimeout:  cfg.HTTPReadTimeout,
			WriteTimeout: cfg.HTTPWriteTimeout,
			IdleTimeout:  2 * cfg.HTTPReadTimeout,
		},
	}, nil
}

// Handler returns the HTTP handler served by Run.
func (a *App) Handler() http.Handler {
	return a.server.Handler
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.log.WithField("addr", a.server.Addr).Info("http server listening")
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("serve http: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.log.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http: %w", err)
	}
	return nil
}

// Close releases the store handle.
func (a *App) Close() error {
	return a.store.Close()
}
