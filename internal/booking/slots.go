package booking

import (
	"slices"
	"time"
)

// DateLayout is the wire format of appointment dates.
const DateLayout = "2006-01-02"

// bookingWindowDays is how far past tomorrow an appointment may be booked.
const bookingWindowDays = 30

// TimeSlots are the half-hour slots offered every day.
var TimeSlots = []string{
	"9:00 AM", "9:30 AM", "10:00 AM", "10:30 AM",
	"11:00 AM", "11:30 AM", "2:00 PM", "2:30 PM",
	"3:00 PM", "3:30 PM", "4:00 PM", "4:30 PM",
}

// IsTimeSlot reports whether slot is one of TimeSlots.
func IsTimeSlot(slot string) bool {
	return slices.Contains(TimeSlots, slot)
}

// DateWindow returns the first and last bookable days relative to now,
// truncated to calendar days in now's location.
func DateWindow(now time.Time) (first, last time.Time) {
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	first = today.AddDate(0, 0, 1)
	last = first.AddDate(0, 0, bookingWindowDays)
	return first, last
}

// InDateWindow reports whether date (DateLayout) falls within DateWindow(now).
func InDateWindow(date string, now time.Time) bool {
	day, err := time.ParseInLocation(DateLayout, date, now.Location())
	if err != nil {
		return false
	}
	first, last := DateWindow(now)
	return !day.Before(first) && !day.After(last)
}
