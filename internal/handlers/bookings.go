package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"doctor-booking-server/internal/booking"
	"doctor-booking-server/internal/config"
	"doctor-booking-server/internal/directory"
	"doctor-booking-server/internal/middleware"
	"doctor-booking-server/internal/models"
	"doctor-booking-server/internal/session"
	"doctor-booking-server/internal/utils"
)

// BookingHandler drives the booking form of each open session.
type BookingHandler struct {
	Store    *session.Store
	Config   *config.Config
	Logger   zerolog.Logger
	FormOpts []booking.Option
}

// NewBookingHandler creates a new BookingHandler. opts are applied to every
// form it opens.
func NewBookingHandler(store *session.Store, cfg *config.Config, logger zerolog.Logger, opts ...booking.Option) *BookingHandler {
	return &BookingHandler{
		Store:    store,
		Config:   cfg,
		Logger:   logger.With().Str("module", "booking").Logger(),
		FormOpts: opts,
	}
}

// CreateBookingRequest opens a booking for a doctor chosen from a listing.
type CreateBookingRequest struct {
	Location models.LocationDescriptor `json:"location"`
	DoctorID string                    `json:"doctorId" binding:"required,uuid"`
}

// BookingState is what the form view renders for the current step.
type BookingState struct {
	SessionID string                    `json:"sessionId"`
	Step      booking.Step              `json:"step"`
	Draft     models.AppointmentDraft   `json:"draft"`
	Errors    map[string]string         `json:"errors"`
	Doctor    models.Doctor             `json:"doctor"`
	Location  models.LocationDescriptor `json:"location"`
	TimeSlots []string                  `json:"timeSlots"`
}

// SubmitResponse is returned once the booking is confirmed.
type SubmitResponse struct {
	Appointment models.AppointmentRecord  `json:"appointment"`
	Doctor      models.Doctor             `json:"doctor"`
	Location    models.LocationDescriptor `json:"location"`
	Ticket      string                    `json:"ticket"`
}

func stateOf(sess *session.Session, f *booking.Form) BookingState {
	return BookingState{
		SessionID: sess.ID.String(),
		Step:      f.Step(),
		Draft:     f.Draft(),
		Errors:    f.Errors(),
		Doctor:    f.Doctor(),
		Location:  sess.Location,
		TimeSlots: booking.TimeSlots,
	}
}

// CreateBooking regenerates the location's listing, picks the doctor and opens
// a session on the contact step.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	doctor, err := directory.Find(req.Location, req.DoctorID)
	if err != nil {
		if errors.Is(err, directory.ErrDoctorNotFound) {
			utils.NotFound(c, "Doctor not found at this location")
		} else {
			utils.InternalServerError(c, err.Error())
		}
		return
	}

	sess := h.Store.Open(req.Location, doctor, h.FormOpts...)
	h.Logger.Info().
		Str("session_id", sess.ID.String()).
		Str("doctor", doctor.Name).
		Str("location", req.Location.String()).
		Msg("booking started")

	utils.Created(c, "Booking started", stateOf(sess, sess.Form))
}

// GetBooking returns the current form state.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	sess, ok := middleware.GetSessionFromContext(c)
	if !ok {
		utils.InternalServerError(c, "Booking session not found in context")
		return
	}

	var state BookingState
	_ = sess.Do(func(f *booking.Form) error {
		state = stateOf(sess, f)
		return nil
	})
	utils.Success(c, "Booking fetched successfully", state)
}

// UpdateBooking edits form fields. Each edited field loses its error message;
// if any field cannot be edited, nothing changes.
func (h *BookingHandler) UpdateBooking(c *gin.Context) {
	sess, ok := middleware.GetSessionFromContext(c)
	if !ok {
		utils.InternalServerError(c, "Booking session not found in context")
		return
	}

	var fields map[string]string
	if err := c.ShouldBindJSON(&fields); err != nil {
		utils.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	var state BookingState
	err := sess.Do(func(f *booking.Form) error {
		err := f.SetAll(fields)
		state = stateOf(sess, f)
		return err
	})
	if err != nil {
		h.formError(c, err, state)
		return
	}

	utils.Success(c, "Booking updated", state)
}

// NextStep moves from contact details to scheduling.
func (h *BookingHandler) NextStep(c *gin.Context) {
	h.transition(c, "Continue to select date & time", func(f *booking.Form) error {
		return f.Next()
	})
}

// PreviousStep goes back to contact details.
func (h *BookingHandler) PreviousStep(c *gin.Context) {
	h.transition(c, "Back to contact details", func(f *booking.Form) error {
		return f.Back()
	})
}

// SubmitBooking confirms the booking and returns the appointment with a
// signed ticket for the confirmation view. The session is closed afterwards.
func (h *BookingHandler) SubmitBooking(c *gin.Context) {
	sess, ok := middleware.GetSessionFromContext(c)
	if !ok {
		utils.InternalServerError(c, "Booking session not found in context")
		return
	}

	var (
		rec    models.AppointmentRecord
		doctor models.Doctor
		state  BookingState
	)
	err := sess.Do(func(f *booking.Form) error {
		var err error
		rec, err = f.Submit()
		doctor = f.Doctor()
		state = stateOf(sess, f)
		return err
	})
	if err != nil {
		h.formError(c, err, state)
		return
	}

	ticket, err := utils.IssueTicket(rec, doctor, sess.Location, h.Config)
	if err != nil {
		utils.InternalServerError(c, err.Error())
		return
	}

	// The ticket carries everything the confirmation view needs.
	h.Store.Close(sess.ID)

	h.Logger.Info().
		Str("session_id", sess.ID.String()).
		Int("appointment_number", rec.AppointmentNumber).
		Str("date", rec.Date).
		Str("time", rec.Time).
		Msg("booking confirmed")

	utils.Created(c, "Appointment confirmed", SubmitResponse{
		Appointment: rec,
		Doctor:      doctor,
		Location:    sess.Location,
		Ticket:      ticket,
	})
}

func (h *BookingHandler) transition(c *gin.Context, message string, step func(f *booking.Form) error) {
	sess, ok := middleware.GetSessionFromContext(c)
	if !ok {
		utils.InternalServerError(c, "Booking session not found in context")
		return
	}

	var state BookingState
	err := sess.Do(func(f *booking.Form) error {
		err := step(f)
		state = stateOf(sess, f)
		return err
	})
	if err != nil {
		h.formError(c, err, state)
		return
	}

	utils.Success(c, message, state)
}

// formError maps form errors onto responses.
func (h *BookingHandler) formError(c *gin.Context, err error, state BookingState) {
	var verr *booking.ValidationError
	switch {
	case errors.As(err, &verr):
		utils.ValidationFailed(c, verr.Fields, state)
	case errors.Is(err, booking.ErrUnknownField):
		utils.BadRequest(c, err.Error())
	case errors.Is(err, booking.ErrFormSubmitted), errors.Is(err, booking.ErrWrongStep):
		utils.Conflict(c, err.Error())
	default:
		h.Logger.Error().Err(err).Msg("booking form failed")
		utils.InternalServerError(c, err.Error())
	}
}
