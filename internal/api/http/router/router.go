package router

import (
	"net/http"
	"time"

	"github.com/dtroode/catalog-server/internal/api/http/handler"
	"github.com/dtroode/catalog-server/internal/api/http/middleware"
	"github.com/dtroode/catalog-server/internal/api/http/response"
	"github.com/dtroode/catalog-server/internal/logger"
	"github.com/dtroode/catalog-server/internal/model"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Services groups the use cases exposed over HTTP.
type Services struct {
	Auth    handler.AuthService
	Company handler.CompanyService
	Product handler.ProductService
	Image   handler.ImageService
}

// Options configures cross-cutting HTTP behavior.
type Options struct {
	BasePath         string
	AllowedOrigins   []string
	AllowCredentials bool
	ExposeErrors     bool
	Limiter          middleware.Limiter
	RateLimitWindow  time.Duration
	MaxRequests      int
	AuthMaxRequests  int
	TrustedProxies   middleware.TrustedProxies
}

// Router represents the HTTP router for catalog operations.
// It wires handlers, authentication and cross-cutting middleware.
type Router struct {
	services       Services
	authenticator  middleware.Authenticator
	health         *handler.Health
	contextManager model.ContextManager
	logger         *logger.Logger
	opts           Options
}

// New creates new HTTP Router instance.
//
// Parameters:
//   - services: The use cases behind the endpoints
//   - authenticator: Resolves bearer tokens to users
//   - health: Readiness checks
//   - contextManager: Stores the authenticated user on the request
//   - logger: The logger for request logging
//   - opts: Base path, CORS and rate limit settings
//
// Returns a pointer to the newly created Router instance.
func New(
	services Services,
	authenticator middleware.Authenticator,
	health *handler.Health,
	contextManager model.ContextManager,
	logger *logger.Logger,
	opts Options,
) *Router {
	if opts.BasePath == "" {
		opts.BasePath = "/api"
	}
	return &Router{
		services:       services,
		authenticator:  authenticator,
		health:         health,
		contextManager: contextManager,
		logger:         logger,
		opts:           opts,
	}
}

// Register builds the handler tree.
//
// Returns the root HTTP handler.
func (r *Router) Register() http.Handler {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.authenticator, r.contextManager, r.logger)

	mux := chi.NewRouter()
	mux.Use(
		middleware.Recovery(r.logger),
		logging.Handle,
		middleware.Metrics,
		middleware.CORS(r.opts.AllowedOrigins, r.opts.AllowCredentials),
	)
	mux.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		response.JSON(w, http.StatusNotFound, response.Envelope{Message: "route not found"})
	})
	mux.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		response.JSON(w, http.StatusMethodNotAllowed, response.Envelope{Message: "method not allowed"})
	})

	mux.Handle("/metrics", promhttp.Handler())

	mux.Route(r.opts.BasePath, func(api chi.Router) {
		r.registerHealthRoutes(api)

		api.Group(func(limited chi.Router) {
			limited.Use(middleware.RateLimit(r.opts.Limiter, middleware.KeyByIP("api", r.opts.TrustedProxies), r.opts.MaxRequests, r.opts.RateLimitWindow))
			r.registerAuthRoutes(limited, authenticate)
			r.registerCompanyRoutes(limited, authenticate)
			r.registerProductRoutes(limited, authenticate)
			r.registerImageRoutes(limited, authenticate)
		})
	})

	return mux
}

func (r *Router) registerHealthRoutes(api chi.Router) {
	api.Get("/health/live", r.health.Live)
	api.Get("/health/ready", r.health.Ready)
}

func (r *Router) registerAuthRoutes(api chi.Router, authenticate *middleware.Authenticate) {
	h := handler.NewAuth(r.services.Auth, r.contextManager, r.logger, r.opts.ExposeErrors)

	api.Route("/auth", func(auth chi.Router) {
		auth.Use(
			middleware.RateLimit(r.opts.Limiter, middleware.KeyByIP("auth", r.opts.TrustedProxies), r.opts.AuthMaxRequests, r.opts.RateLimitWindow),
			middleware.BodyLimit(middleware.MaxJSONBody),
		)
		auth.Post("/register", h.Register)
		auth.Post("/login", h.Login)
		auth.Post("/refresh-token", h.RefreshToken)

		auth.Group(func(private chi.Router) {
			private.Use(authenticate.Handle)
			private.Post("/logout", h.Logout)
			private.Get("/me", h.Me)
			private.Put("/password", h.ChangePassword)
		})
	})
}

func (r *Router) registerCompanyRoutes(api chi.Router, authenticate *middleware.Authenticate) {
	h := handler.NewCompany(r.services.Company, r.contextManager, r.logger, r.opts.ExposeErrors)

	api.Route("/companies", func(companies chi.Router) {
		companies.Use(middleware.BodyLimit(middleware.MaxJSONBody))
		companies.Get("/", h.List)

		companies.Group(func(private chi.Router) {
			private.Use(authenticate.Handle)
			private.Post("/", h.Create)
			private.Get("/{id}", h.Get)
			private.Put("/{id}", h.Update)
			private.Delete("/{id}", h.Delete)
		})
	})
}

func (r *Router) registerProductRoutes(api chi.Router, authenticate *middleware.Authenticate) {
	h := handler.NewProduct(r.services.Product, r.contextManager, r.logger, r.opts.ExposeErrors)

	api.Route("/products", func(products chi.Router) {
		products.Use(authenticate.Handle, middleware.BodyLimit(middleware.MaxJSONBody))
		products.Post("/", h.Create)
		products.Get("/", h.List)
		products.Get("/{id}", h.Get)
		products.Put("/{id}", h.Update)
		products.Delete("/{id}", h.Delete)
	})
}

func (r *Router) registerImageRoutes(api chi.Router, authenticate *middleware.Authenticate) {
	h := handler.NewImage(r.services.Image, r.contextManager, r.logger, r.opts.ExposeErrors)

	api.Route("/images", func(images chi.Router) {
		images.Use(authenticate.Handle)
		images.With(middleware.BodyLimit(middleware.MaxMultipartBody)).Post("/", h.Upload)
		images.Get("/", h.List)
		images.Get("/{id}/content", h.Content)
		images.Patch("/{id}/primary", h.SetPrimary)
		images.Delete("/{id}", h.Delete)
	})
}
