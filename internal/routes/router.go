package routes

import (
	"fmt"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"doctor-booking-server/internal/booking"
	"doctor-booking-server/internal/config"
	"doctor-booking-server/internal/middleware"
	"doctor-booking-server/internal/session"
)

// NewRouter builds the gin engine with middleware, the session store and all routes.
func NewRouter(cfg *config.Config, logger zerolog.Logger, formOpts ...booking.Option) (*gin.Engine, error) {
	store, err := session.NewStore(cfg.SessionCacheSize, logger)
	if err != nil {
		return nil, fmt.Errorf("init session store: %w", err)
	}

	router := gin.New()
	router.Use(middleware.Logger(logger))
	router.Use(gin.Recovery())

	// Configure CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Origin}
	corsConfig.AllowMethods = []string{"GET", "POST", "PATCH", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	router.Use(cors.New(corsConfig))

	SetupRoutes(router, store, cfg, logger, formOpts...)
	return router, nil
}
