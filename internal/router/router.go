package router

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "findmypet/docs"
	"findmypet/internal/adapters/storage"
	"findmypet/internal/domain/breeds"
	"findmypet/internal/domain/events"
	"findmypet/internal/domain/foundpets"
	"findmypet/internal/domain/missingpets"
	"findmypet/internal/domain/shelters"
	"findmypet/internal/domain/users"
	"findmypet/internal/middleware"
	"findmypet/internal/platform/cache"
	"findmypet/internal/platform/logger"
	"findmypet/internal/platform/metrics"
	"findmypet/internal/ports/auth"
	breedport "findmypet/internal/ports/breeds"
	"findmypet/internal/ports/media"
	"findmypet/internal/ports/places"
)

const defaultMaxUpload = 10 << 20

// TokenManager emite y verifica tokens (adapters/auth/token lo implementa).
type TokenManager interface {
	auth.TokenIssuer
	auth.AuthVerifier
}

type Options struct {
	Logger  logger.Logger
	Metrics *metrics.Metrics

	// Stores nil => repos en memoria.
	Stores *storage.Stores
	Tokens TokenManager
	Media  media.Store

	// Opcionales: nil deshabilita la ruta correspondiente (500/503).
	Places    places.ShelterSearcher
	Predictor breedport.Predictor

	// Cache nil => sin rate limit.
	Cache               *cache.Cache
	AuthRateLimit       int64
	AuthRateLimitWindow time.Duration

	SignedURLTTL   time.Duration
	MaxUploadBytes int64
	AllowedOrigins []string
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	stores := opts.Stores
	if stores == nil {
		stores = storage.NewMemory()
	}
	maxUpload := opts.MaxUploadBytes
	if maxUpload <= 0 {
		maxUpload = defaultMaxUpload
	}
	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	if opts.Metrics != nil {
		r.Use(opts.Metrics.Middleware)
	}
	// Recover va dentro del logger y las métricas para que un panic quede registrado como 500.
	r.Use(middleware.Recover(log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())
	}
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Services por módulo
	usersSvc := users.NewService(stores.Users, opts.Tokens)
	eventsSvc := events.NewService(stores.Events)
	sheltersSvc := shelters.NewService(stores.Shelters, opts.Places)
	missingSvc := missingpets.NewService(stores.MissingPets, usersSvc, opts.Media, eventsSvc, log).
		WithSignedURLTTL(opts.SignedURLTTL)
	foundSvc := foundpets.NewService(stores.FoundPets, sheltersSvc, opts.Media, eventsSvc, log).
		WithSignedURLTTL(opts.SignedURLTTL)
	breedsSvc := breeds.NewService(opts.Predictor)

	seedCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if inserted, err := sheltersSvc.EnsureDefault(seedCtx); err != nil {
		log.Warn("seed default shelter failed", map[string]any{"err": err})
	} else if inserted {
		log.Info("seeded default shelter", map[string]any{"name": shelters.DefaultShelter.Name})
	}

	requireAuth := middleware.RequireAuth(opts.Tokens)
	authLimit := middleware.RateLimit(opts.Cache, opts.AuthRateLimit, opts.AuthRateLimitWindow)

	// Rutas por módulo
	users.RegisterRoutes(r, usersSvc, log, authLimit)
	missingpets.RegisterRoutes(r, missingSvc, log, requireAuth, maxUpload)
	foundpets.RegisterRoutes(r, foundSvc, log, requireAuth, maxUpload)
	shelters.RegisterRoutes(r, sheltersSvc, log)
	events.RegisterRoutes(r, eventsSvc, log)
	breeds.RegisterRoutes(r, breedsSvc, log, maxUpload)

	return r
}
