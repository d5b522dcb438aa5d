package models

// Slot is one offerable start time for a date and area, annotated with the
// remaining aggregate party size. Derived, never persisted.
type Slot struct {
	Time      string `json:"time"` // "HH:MM"
	Remaining int    `json:"remaining"`
}

// DayAvailability is the availability answer for one (date, area) pair.
type DayAvailability struct {
	Date   string `json:"date"`
	Area   string `json:"area"`
	Closed bool   `json:"closed"`
	Slots  []Slot `json:"slots"`
}
