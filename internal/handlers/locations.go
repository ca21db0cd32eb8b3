package handlers

import (
	"github.com/gin-gonic/gin"

	"doctor-booking-server/internal/directory"
	"doctor-booking-server/internal/models"
	"doctor-booking-server/internal/utils"
)

// LocationHandler serves the cascading location selector and the specialty catalog.
type LocationHandler struct{}

// NewLocationHandler creates a new LocationHandler.
func NewLocationHandler() *LocationHandler {
	return &LocationHandler{}
}

type statesQuery struct {
	Country string `form:"country" binding:"required"`
}

type districtsQuery struct {
	Country string `form:"country" binding:"required"`
	State   string `form:"state" binding:"required"`
}

type areasQuery struct {
	Country  string `form:"country" binding:"required"`
	State    string `form:"state" binding:"required"`
	District string `form:"district" binding:"required"`
}

// GetCountries lists selectable countries.
func (h *LocationHandler) GetCountries(c *gin.Context) {
	utils.Success(c, "Countries fetched successfully", models.LocationOptions{
		Level:   models.LevelCountry,
		Options: directory.Countries(),
	})
}

// GetStates lists the states of a country.
func (h *LocationHandler) GetStates(c *gin.Context) {
	var q statesQuery
	if !utils.BindQueryAndValidate(c, &q) {
		return
	}
	utils.Success(c, "States fetched successfully", models.LocationOptions{
		Level:   models.LevelState,
		Options: directory.States(q.Country),
	})
}

// GetDistricts lists the districts of a state.
func (h *LocationHandler) GetDistricts(c *gin.Context) {
	var q districtsQuery
	if !utils.BindQueryAndValidate(c, &q) {
		return
	}
	utils.Success(c, "Districts fetched successfully", models.LocationOptions{
		Level:   models.LevelDistrict,
		Options: directory.Districts(q.Country, q.State),
	})
}

// GetAreas lists the areas of a district.
func (h *LocationHandler) GetAreas(c *gin.Context) {
	var q areasQuery
	if !utils.BindQueryAndValidate(c, &q) {
		return
	}
	utils.Success(c, "Areas fetched successfully", models.LocationOptions{
		Level:   models.LevelArea,
		Options: directory.Areas(q.Country, q.State, q.District),
	})
}

// GetSpecialties lists the specialty catalog used for filtering.
func (h *LocationHandler) GetSpecialties(c *gin.Context) {
	utils.Success(c, "Specialties fetched successfully", directory.Specialties())
}
