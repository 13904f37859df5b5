package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/412299-Rodriguez/club-appointments/internal/auth"
	"github.com/412299-Rodriguez/club-appointments/internal/backend"
	"github.com/412299-Rodriguez/club-appointments/internal/booking"
	"github.com/412299-Rodriguez/club-appointments/internal/cache"
	"github.com/412299-Rodriguez/club-appointments/internal/config"
	"github.com/412299-Rodriguez/club-appointments/internal/session"
	"github.com/412299-Rodriguez/club-appointments/internal/user"
)

type Server struct {
	router *gin.Engine
	config *config.Config
	http   *http.Server
}

func New(cfg *config.Config, rest *backend.Rest, rdb *redis.Client) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())
	router.Use(RequestIDMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(RateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst))

	store := cache.New(rdb, cfg.CatalogCacheTTL)

	sessionService := session.NewService(session.NewClient(rest), store)
	bookingService := booking.NewService(booking.NewClient(rest), session.NewClient(rest), store)

	sessionHandler := session.NewHandler(sessionService, bookingService)
	bookingHandler := booking.NewHandler(bookingService)

	// The catalog works anonymously; a valid token adds booking state.
	catalog := router.Group("/")
	catalog.Use(auth.OptionalMiddleware(cfg.JWTSecret))
	{
		catalog.GET("/sessions", sessionHandler.ListUpcoming)
	}

	protected := router.Group("/")
	protected.Use(auth.Middleware(cfg.JWTSecret))
	{
		protected.GET("/bookings/my", bookingHandler.ListMy)
		protected.GET("/bookings/my/stats", bookingHandler.MyStats)
		protected.POST("/bookings", bookingHandler.Book)
		protected.POST("/bookings/:bookingID/cancel", bookingHandler.Cancel)
	}

	staff := router.Group("/staff")
	staff.Use(auth.Middleware(cfg.JWTSecret), auth.RequireRole(user.RoleAdmin))
	{
		staff.POST("/sessions", sessionHandler.Create)
		staff.POST("/sessions/:sessionID/cancel", sessionHandler.CancelSession)
	}

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())
	SetupSwagger(router)

	return &Server{
		router: router,
		config: cfg,
	}
}

func (s *Server) Start(port string) error {
	s.http = &http.Server{
		Addr:    ":" + port,
		Handler: s.router,
	}
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

// Router exposes the engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
