package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"findmypet/internal/adapters/auth/token"
	"findmypet/internal/adapters/breeds/modelserving"
	"findmypet/internal/adapters/media/cached"
	"findmypet/internal/adapters/media/pinata"
	"findmypet/internal/adapters/places/googleplaces"
	"findmypet/internal/adapters/storage"
	"findmypet/internal/platform/cache"
	"findmypet/internal/platform/metrics"
	"findmypet/internal/router"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	stores, err := storage.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := stores.Close(closeCtx); err != nil {
			log.Warn("close store failed", map[string]any{"err": err})
		}
	}()

	// Redis es opcional: sin él no hay cache de URLs ni rate limit.
	var rc *cache.Cache
	if cfg.RedisURL != "" {
		rc, err = cache.Open(ctx, cfg.RedisURL)
		if err != nil {
			log.Warn("redis unavailable, continuing without cache", map[string]any{"err": err})
			rc = nil
		}
	}
	defer func() { _ = rc.Close() }()

	tokens, err := token.New(token.Config{Secret: cfg.JWTSecret, TTL: cfg.TokenTTL})
	if err != nil {
		return err
	}

	m := metrics.New()

	pin := pinata.NewClient(pinata.Config{
		JWT:       cfg.PinataJWT,
		Gateway:   cfg.PinataGateway,
		UploadURL: cfg.PinataUploadURL,
		APIURL:    cfg.PinataAPIURL,
	}, m)
	if !pin.IsConfigured() {
		log.Warn("pinata not configured, uploads will fail", nil)
	}

	placesClient := googleplaces.NewClient(googleplaces.Config{
		APIKey:  cfg.PlacesAPIKey,
		BaseURL: cfg.PlacesBaseURL,
		Timeout: 10 * time.Second,
	}, m)
	breedClient := modelserving.NewClient(modelserving.Config{
		URL:   cfg.BreedModelURL,
		Token: cfg.BreedModelToken,
	}, m)

	handler := router.NewRouter(router.Options{
		Logger:              log,
		Metrics:             m,
		Stores:              stores,
		Tokens:              tokens,
		Media:               cached.New(pin, rc, log),
		Places:              placesClient,
		Predictor:           breedClient,
		Cache:               rc,
		AuthRateLimit:       int64(cfg.AuthRateLimit),
		AuthRateLimitWindow: cfg.AuthRateLimitWindow,
		SignedURLTTL:        cfg.SignedURLTTL,
		MaxUploadBytes:      cfg.MaxUploadBytes,
		AllowedOrigins:      cfg.AllowedOrigins(),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr, "store": stores.Driver})
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

	log.Info("shutting down server", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Info("server stopped", nil)
	return nil
}
