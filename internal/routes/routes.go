package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"doctor-booking-server/internal/booking"
	"doctor-booking-server/internal/config"
	"doctor-booking-server/internal/handlers"
	"doctor-booking-server/internal/middleware"
	"doctor-booking-server/internal/session"
)

// SetupRoutes configures the application routes.
func SetupRoutes(router *gin.Engine, store *session.Store, cfg *config.Config, logger zerolog.Logger, formOpts ...booking.Option) {
	// Initialize handlers
	locationHandler := handlers.NewLocationHandler()
	doctorHandler := handlers.NewDoctorHandler()
	bookingHandler := handlers.NewBookingHandler(store, cfg, logger, formOpts...)
	confirmationHandler := handlers.NewConfirmationHandler(cfg, logger)

	api := router.Group("/api/v1")
	{
		// Cascading location selector: country -> state -> district -> area
		locationRoutes := api.Group("/locations")
		{
			locationRoutes.GET("/countries", locationHandler.GetCountries)
			locationRoutes.GET("/states", locationHandler.GetStates)
			locationRoutes.GET("/districts", locationHandler.GetDistricts)
			locationRoutes.GET("/areas", locationHandler.GetAreas)
		}
		api.GET("/specialties", locationHandler.GetSpecialties)

		doctorRoutes := api.Group("/doctors")
		{
			doctorRoutes.GET("", doctorHandler.GetDoctors)
			doctorRoutes.GET("/:id", doctorHandler.GetDoctor)
		}

		api.POST("/bookings", bookingHandler.CreateBooking)
		bookingRoutes := api.Group("/bookings/:sessionId")
		bookingRoutes.Use(middleware.SessionMiddleware(store))
		{
			bookingRoutes.GET("", bookingHandler.GetBooking)
			bookingRoutes.PATCH("", bookingHandler.UpdateBooking)
			bookingRoutes.POST("/next", bookingHandler.NextStep)
			bookingRoutes.POST("/back", bookingHandler.PreviousStep)
			bookingRoutes.POST("/submit", bookingHandler.SubmitBooking)
		}

		// The confirmation view is rebuilt from the signed ticket alone
		confirmationRoutes := api.Group("/confirmation")
		confirmationRoutes.Use(middleware.TicketMiddleware(cfg))
		{
			confirmationRoutes.GET("", confirmationHandler.GetConfirmation)
			confirmationRoutes.GET("/countdown", confirmationHandler.StreamCountdown)
		}
	}

	// Simple health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP", "sessions": store.Len()})
	})
}
