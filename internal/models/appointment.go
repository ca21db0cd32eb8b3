package models

// Form field names. They double as the keys of validation error maps.
const (
	FieldName   = "name"
	FieldEmail  = "email"
	FieldPhone  = "phone"
	FieldDate   = "date"
	FieldTime   = "time"
	FieldReason = "reason"
)

// AppointmentDraft holds the values entered into the booking form so far.
type AppointmentDraft struct {
	Name   string `json:"name" form:"name"`
	Email  string `json:"email" form:"email"`
	Phone  string `json:"phone" form:"phone"`
	Date   string `json:"date" form:"date"`
	Time   string `json:"time" form:"time"`
	Reason string `json:"reason" form:"reason"`
}

// AppointmentRecord is the finalized booking handed to the confirmation view.
type AppointmentRecord struct {
	AppointmentDraft
	AppointmentNumber int `json:"appointmentNumber"`
	WaitTime          int `json:"waitTime"`
	Fee               int `json:"fee"`
}
