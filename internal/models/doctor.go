package models

// Weekday names used for doctor availability. Sunday is never offered.
const (
	Monday    = "Monday"
	Tuesday   = "Tuesday"
	Wednesday = "Wednesday"
	Thursday  = "Thursday"
	Friday    = "Friday"
	Saturday  = "Saturday"
)

// Specialty is a medical specialty a doctor can be listed under.
type Specialty struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Doctor is a fabricated directory entry. Records are regenerated on every
// listing and are never mutated after creation.
type Doctor struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Specialty     string   `json:"specialty"`
	Clinic        string   `json:"clinic"`
	Address       string   `json:"address"`
	Available     bool     `json:"available"`
	AvailableDays []string `json:"availableDays"`
	Rating        float64  `json:"rating"`
	Reviews       int      `json:"reviews"`
	Fee           int      `json:"fee"`
	Experience    int      `json:"experience"`
	WaitTime      int      `json:"waitTime"`
}
