package server

import (
	"fmt"
	"net/http"
	"time"

	"minimalbites/internal/cart"
	"minimalbites/internal/catalog"
	"minimalbites/internal/config"
	"minimalbites/internal/kv"
	custommiddleware "minimalbites/internal/middleware"
	"minimalbites/internal/session"
	"minimalbites/internal/transport"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	protectedPath = "/items/add"
	loginPath     = "/login"
	homePath      = "/items"
)

type Server struct {
	*http.Server
	config *config.Config
	logger *zap.Logger
}

// NewServer assembles the router. store backs cart persistence;
// redisClient may be nil, in which case the login rate limiter is
// disabled.
func NewServer(cfg *config.Config, logger *zap.Logger, store kv.Store, redisClient *redis.Client) *Server {
	// Create router
	router := chi.NewRouter()

	// Add basic middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(custommiddleware.ErrorHandlingMiddleware(logger))
	router.Use(custommiddleware.LoggingMiddleware(logger))
	router.Use(custommiddleware.CORSMiddleware(nil, cfg.Server.Env == "development"))

	// One authorization check shared by the route guard and the
	// handlers, always reading the visitor's session cookies
	isAuthenticated := func(r *http.Request) bool {
		return session.New(kv.NewCookieJar(nil, r)).IsAuthenticated(r.Context())
	}

	router.Use(custommiddleware.RouteGuard(custommiddleware.GuardConfig{
		ProtectedPaths: []string{protectedPath},
		LoginPath:      loginPath,
		HomePath:       homePath,
	}, isAuthenticated, logger))

	// Health check endpoint
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Initialize the catalog and stores
	menuCatalog := catalog.New()
	cartStore := cart.NewStore(store, time.Duration(cfg.Cart.TTLHours)*time.Hour, logger)
	cartStore.Subscribe(func(cartID string) {
		logger.Debug("Cart updated", zap.String("cart_id", cartID))
	})

	// Initialize handlers
	itemHandler := transport.NewItemHandler(menuCatalog, isAuthenticated, logger)
	cartHandler := transport.NewCartHandler(cartStore, menuCatalog, logger)
	authHandler := transport.NewAuthHandler(logger)

	var loginLimiter func(http.Handler) http.Handler
	if redisClient != nil {
		loginLimiter = custommiddleware.RateLimitMiddleware(redisClient, custommiddleware.RateLimitConfig{
			RequestsPerWindow: cfg.RateLimit.LoginRequestsPerMinute,
			Window:            time.Minute,
			KeyPrefix:         "ratelimit:login",
		}, logger)
	}

	// Register routes
	itemHandler.RegisterRoutes(router)
	cartHandler.RegisterRoutes(router)
	authHandler.RegisterRoutes(router, loginLimiter)

	server := &Server{
		Server: &http.Server{
			Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
			Handler:      router,
			IdleTimeout:  time.Minute,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		config: cfg,
		logger: logger,
	}

	return server
}

func (s *Server) Close() error {
	s.logger.Info("Closing server resources")
	s.logger.Sync()
	return nil
}
