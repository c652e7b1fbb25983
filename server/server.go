// Package server assembles the HTTP server of the pricing service.
package server

import (
	"net/http"
	"os"
	"sync"

	"github.com/gin-gonic/gin"

	"pricegen/internal/config"
	"pricegen/pricing"
	"pricegen/server/handlers"
	"pricegen/server/middleware"
	"pricegen/server/services"
)

// Server is the HTTP server of the pricing service. It keeps no state
// between requests; every pricing run parses its own uploads.
type Server struct {
	config *config.Config

	discountService *services.DiscountService

	httpServer     *http.Server
	httpHandler    http.Handler
	handlerOnce    sync.Once
	handlerInitErr error
}

// NewServer creates the server from its configuration.
func NewServer(cfg *config.Config) *Server {
	return &Server{
		config:          cfg,
		discountService: services.NewDiscountService(cfg.PricingConfig()),
	}
}

func (s *Server) ensureHTTPHandler() (http.Handler, error) {
	s.handlerOnce.Do(func() {
		handler, err := s.buildHTTPHandler()
		if err != nil {
			s.handlerInitErr = err
			return
		}
		s.httpHandler = handler
	})

	if s.handlerInitErr != nil {
		return nil, s.handlerInitErr
	}
	return s.httpHandler, nil
}

func (s *Server) buildHTTPHandler() (http.Handler, error) {
	// release mode unless GIN_MODE overrides it
	if ginMode := os.Getenv("GIN_MODE"); ginMode == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.GinRequestIDMiddleware())
	router.Use(middleware.GinCORSMiddleware())
	router.Use(middleware.GinGzipMiddleware())
	router.Use(middleware.GinLoggerMiddleware())
	router.Use(middleware.GinRateLimitMiddleware(s.config.RateLimitRPS, s.config.RateLimitBurst))
	router.Use(gin.Recovery())

	handlers.RegisterSwaggerRoutes(router, "localhost:"+s.config.Port)

	defaultTier, err := pricing.ParseTier(s.config.DefaultTier)
	if err != nil {
		return nil, err
	}

	discountHandler := handlers.NewDiscountHandler(
		s.discountService,
		defaultTier,
		s.config.MaxUploadBytes(),
		s.config.PreviewRowLimit,
		s.config.DefaultChunkSize,
	)
	handlers.RegisterRoutes(router, discountHandler, handlers.NewTemplateHandler())

	return router, nil
}

// ServeHTTP implements http.Handler for tests and embedding.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	handler, err := s.ensureHTTPHandler()
	if err != nil {
		http.Error(w, "server is not initialized", http.StatusInternalServerError)
		return
	}

	handler.ServeHTTP(w, r)
}
