package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
	"github.com/vrentals-api/internal/application/auth"
	"github.com/vrentals-api/internal/application/image"
	"github.com/vrentals-api/internal/application/listing"
	"github.com/vrentals-api/internal/application/session"
	"github.com/vrentals-api/internal/application/user"
	"github.com/vrentals-api/internal/config"
	jwtinfra "github.com/vrentals-api/internal/infrastructure/jwt"
	"github.com/vrentals-api/internal/transport/http/handler"
	appmiddleware "github.com/vrentals-api/internal/transport/http/middleware"
	"golang.org/x/time/rate"
)

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	UserRepo      UserRepository
	ListingRepo   ListingRepository
	ResetCodeRepo ResetCodeRepository
	ObjectStore   ObjectStore
	Mailer        Mailer
	JWTProvider   *jwtinfra.Provider
	// Redis enables the shared fixed-window limiter; nil selects the in-process one.
	Redis  *redis.Client
	Logger zerolog.Logger
}

// Services are the application services behind the routes. NewServices
// builds them from Deps; main also uses them for start-up seeding.
type Services struct {
	User    user.Service
	Session session.Service
	Auth    auth.Service
	Listing listing.Service
}

func NewServices(cfg *config.Config, deps *Deps) *Services {
	imageSvc := image.NewService(deps.ObjectStore)
	return &Services{
		User:    user.NewService(user.ServiceDeps{UserRepo: deps.UserRepo}),
		Session: session.NewService(session.ServiceDeps{UserRepo: deps.UserRepo, JWTProvider: deps.JWTProvider}),
		Auth: auth.NewService(auth.ServiceDeps{
			ResetCodeRepo: deps.ResetCodeRepo,
			UserRepo:      deps.UserRepo,
			Mailer:        deps.Mailer,
			CodeTTL:       cfg.ResetCodeTTL,
		}),
		Listing: listing.NewService(listing.ServiceDeps{ListingRepo: deps.ListingRepo, Images: imageSvc}),
	}
}

// NewRouter builds the application router. The returned stop func releases
// the in-process rate limiter and must be called once the server is done.
func NewRouter(cfg *config.Config, deps *Deps, svcs *Services) (http.Handler, func()) {
	r := chi.NewRouter()
	if cfg.TrustProxy {
		r.Use(chimiddleware.RealIP)
	}
	r.Use(hlog.NewHandler(deps.Logger))
	r.Use(hlog.RequestIDHandler("request_id", "X-Request-Id"))
	r.Use(hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
		hlog.FromRequest(r).Info().
			Str("method", r.Method).
			Stringer("url", r.URL).
			Int("status", status).
			Int("size", size).
			Dur("duration", duration).
			Msg("request")
	}))
	r.Use(chimiddleware.Recoverer)
	r.Use(appmiddleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(appmiddleware.Authenticate(deps.JWTProvider))

	// Credential and reset endpoints: 10 per second shared through Redis,
	// or 5/s with a burst of 10 per process.
	var sensitiveRL func(http.Handler) http.Handler
	stop := func() {}
	if deps.Redis != nil {
		sensitiveRL = appmiddleware.NewRedisRateLimiter(deps.Redis, 10, time.Second, "rl:auth").Limit
	} else {
		rl := appmiddleware.NewRateLimiter(rate.Limit(5), 10)
		sensitiveRL, stop = rl.Limit, rl.Stop
	}

	healthH := handler.NewHealthHandler()
	userH := handler.NewUserHandler(svcs.User)
	sessionH := handler.NewSessionHandler(svcs.Session)
	resetH := handler.NewPasswordResetHandler(svcs.Auth)
	listingH := handler.NewListingHandler(svcs.Listing, cfg.MaxUploadBytes)

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		// ── Public routes ───────────────────────────────────────────────────
		r.Get("/health", healthH.Check)
		r.Get("/properties", listingH.List)

		r.Group(func(r chi.Router) {
			r.Use(sensitiveRL)
			r.Post("/register", userH.Register)
			r.Post("/login", sessionH.Login)
			r.Post("/forgot-password", resetH.ForgotPassword)
			r.Post("/verify-otp", resetH.VerifyOTP)
			r.Post("/reset-password", resetH.ResetPassword)
		})

		// ── Authenticated routes ────────────────────────────────────────────
		r.With(appmiddleware.RequireAuth("Please login to add a property")).
			Post("/properties", listingH.Create)
		r.With(appmiddleware.RequireAuth("Please login to mark a property as sold")).
			Put("/properties/{id}/sold", listingH.MarkSold)
		r.With(appmiddleware.RequireAuth("Please login to mark a property as available")).
			Put("/properties/{id}/available", listingH.MarkAvailable)
	})

	return r, stop
}
