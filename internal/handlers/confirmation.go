package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"doctor-booking-server/internal/config"
	"doctor-booking-server/internal/countdown"
	"doctor-booking-server/internal/directory"
	"doctor-booking-server/internal/middleware"
	"doctor-booking-server/internal/models"
	"doctor-booking-server/internal/utils"
)

// ConfirmationHandler renders confirmed bookings from their tickets.
type ConfirmationHandler struct {
	Config *config.Config
	Logger zerolog.Logger
}

// NewConfirmationHandler creates a new ConfirmationHandler.
func NewConfirmationHandler(cfg *config.Config, logger zerolog.Logger) *ConfirmationHandler {
	return &ConfirmationHandler{
		Config: cfg,
		Logger: logger.With().Str("module", "confirmation").Logger(),
	}
}

// ConfirmationResponse is the e-ticket view of a booking.
type ConfirmationResponse struct {
	Appointment models.AppointmentRecord  `json:"appointment"`
	Doctor      models.Doctor             `json:"doctor"`
	Location    models.LocationDescriptor `json:"location"`
	Address     string                    `json:"address"`
	Coordinates models.Coordinates        `json:"coordinates"`
}

// GetConfirmation decodes the ticket into the confirmation view.
func (h *ConfirmationHandler) GetConfirmation(c *gin.Context) {
	claims, ok := middleware.GetTicketFromContext(c)
	if !ok {
		utils.InternalServerError(c, "Ticket not found in context. TicketMiddleware might be missing.")
		return
	}

	utils.Success(c, "Appointment confirmed", ConfirmationResponse{
		Appointment: claims.Appointment,
		Doctor:      claims.Doctor,
		Location:    claims.Location,
		Address:     claims.Doctor.Clinic + ", " + claims.Doctor.Address,
		Coordinates: directory.Coordinates(claims.Doctor.Name),
	})
}

// StreamCountdown streams the estimated wait as server-sent events, one
// "tick" per step and a final "done" once it reaches zero. Closing the
// connection stops the countdown.
func (h *ConfirmationHandler) StreamCountdown(c *gin.Context) {
	claims, ok := middleware.GetTicketFromContext(c)
	if !ok {
		utils.InternalServerError(c, "Ticket not found in context. TicketMiddleware might be missing.")
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	ticks := countdown.New(claims.Appointment.WaitTime, h.Config.CountdownTick).Start(c.Request.Context())

	finished := false
	for tick := range ticks {
		c.SSEvent("tick", tick)
		c.Writer.Flush()
		finished = tick.Remaining == 0
	}

	if finished {
		c.SSEvent("done", gin.H{"appointmentNumber": claims.Appointment.AppointmentNumber})
		c.Writer.Flush()
		return
	}
	h.Logger.Debug().
		Int("appointment_number", claims.Appointment.AppointmentNumber).
		Msg("countdown stream closed by client")
}
