package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"doctor-booking-server/internal/directory"
	"doctor-booking-server/internal/models"
	"doctor-booking-server/internal/utils"
)

// DoctorHandler serves the generated doctor directory.
type DoctorHandler struct{}

// NewDoctorHandler creates a new DoctorHandler.
func NewDoctorHandler() *DoctorHandler {
	return &DoctorHandler{}
}

// DoctorsQuery selects a location's listing, optionally narrowed to one specialty.
type DoctorsQuery struct {
	models.LocationDescriptor
	Specialty string `form:"specialty"`
}

// DoctorListResponse is the body of a listing. Total counts the listed
// doctors, LocationTotal the location's listing before the specialty filter.
type DoctorListResponse struct {
	Location      models.LocationDescriptor `json:"location"`
	Specialty     string                    `json:"specialty,omitempty"`
	Total         int                       `json:"total"`
	LocationTotal int                       `json:"locationTotal"`
	Doctors       []models.Doctor           `json:"doctors"`
}

// DoctorDetailResponse is a single doctor with its map position.
type DoctorDetailResponse struct {
	Doctor      models.Doctor             `json:"doctor"`
	Location    models.LocationDescriptor `json:"location"`
	Coordinates models.Coordinates        `json:"coordinates"`
}

// GetDoctors lists the doctors generated for a location.
func (h *DoctorHandler) GetDoctors(c *gin.Context) {
	var q DoctorsQuery
	if !utils.BindQueryAndValidate(c, &q) {
		return
	}

	doctors := directory.Generate(q.LocationDescriptor, q.Specialty)
	utils.Success(c, "Doctors fetched successfully", DoctorListResponse{
		Location:      q.LocationDescriptor,
		Specialty:     q.Specialty,
		Total:         len(doctors),
		LocationTotal: directory.Count(q.LocationDescriptor),
		Doctors:       doctors,
	})
}

// GetDoctor returns one doctor of a location's listing.
func (h *DoctorHandler) GetDoctor(c *gin.Context) {
	var loc models.LocationDescriptor
	if !utils.BindQueryAndValidate(c, &loc) {
		return
	}

	doctor, err := directory.Find(loc, c.Param("id"))
	if err != nil {
		if errors.Is(err, directory.ErrDoctorNotFound) {
			utils.NotFound(c, "Doctor not found at this location")
		} else {
			utils.InternalServerError(c, err.Error())
		}
		return
	}

	utils.Success(c, "Doctor fetched successfully", DoctorDetailResponse{
		Doctor:      doctor,
		Location:    loc,
		Coordinates: directory.Coordinates(doctor.Name),
	})
}
