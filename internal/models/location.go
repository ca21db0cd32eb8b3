package models

import "strings"

// LocationDescriptor identifies a search context. The four fields are free text
// coming from the location selection form.
type LocationDescriptor struct {
	Area     string `form:"area" json:"area" binding:"required"`
	District string `form:"district" json:"district" binding:"required"`
	State    string `form:"state" json:"state" binding:"required"`
	Country  string `form:"country" json:"country" binding:"required"`
}

// Key is the concatenation the directory seed is computed from.
func (l LocationDescriptor) Key() string {
	return l.Area + l.District + l.State + l.Country
}

// String renders the location the way listing pages show it.
func (l LocationDescriptor) String() string {
	return strings.Join([]string{l.Area, l.District, l.State, l.Country}, ", ")
}

// LocationLevel names one step of the cascading location selector.
type LocationLevel string

const (
	LevelCountry  LocationLevel = "country"
	LevelState    LocationLevel = "state"
	LevelDistrict LocationLevel = "district"
	LevelArea     LocationLevel = "area"
)

// LocationOptions is the option list for a single selector level.
type LocationOptions struct {
	Level   LocationLevel `json:"level"`
	Options []string      `json:"options"`
}

// Coordinates is a [longitude, latitude] pair for the map widget.
type Coordinates struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}
