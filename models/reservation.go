package models

import "time"

// Reservation statuses. Pending and accepted reservations count toward
// capacity; the rest do not.
const (
	StatusPending   = "pending"
	StatusAccepted  = "accepted"
	StatusRejected  = "rejected"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// CountsTowardCapacity reports whether a reservation in the given status
// occupies seats.
func CountsTowardCapacity(status string) bool {
	return status == StatusPending || status == StatusAccepted
}

// Reservation is the persisted record. Operational fields (date, time, area,
// people, status) are plaintext so availability queries never decrypt; all
// PII lives in the Enc blob. EmailHash and UserHash are deterministic keyed
// hashes for equality lookup, DateIndex is a plaintext date for range queries.
type Reservation struct {
	ID              string    `bson:"id" json:"id"`
	Date            string    `bson:"date" json:"date"` // "YYYY-MM-DD"
	Time            string    `bson:"time" json:"time"` // "HH:MM"
	Area            string    `bson:"area" json:"area"`
	People          int       `bson:"people" json:"people"`
	Status          string    `bson:"status" json:"status"`
	RejectionReason string    `bson:"rejectionReason,omitempty" json:"rejectionReason,omitempty"`
	Enc             string    `bson:"enc" json:"-"`
	EmailHash       string    `bson:"emailHash" json:"-"`
	UserHash        string    `bson:"userHash" json:"-"`
	DateIndex       string    `bson:"dateIndex" json:"-"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ReservationInput is the request payload for creating a reservation.
type ReservationInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	People    int    `json:"people"`
	Area      string `json:"area"`
	Notes     string `json:"notes,omitempty"`
}

// ReservationPII is the plaintext content of the encrypted blob. Status is
// duplicated inside so the at-rest record is self-contained.
type ReservationPII struct {
	UserID    string `json:"userId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Notes     string `json:"notes,omitempty"`
	Status    string `json:"status"`
}

// ReservationView is a decrypted reservation as served to admin consumers.
type ReservationView struct {
	ID              string         `json:"id"`
	Date            string         `json:"date"`
	Time            string         `json:"time"`
	Area            string         `json:"area"`
	People          int            `json:"people"`
	Status          string         `json:"status"`
	RejectionReason string         `json:"rejectionReason,omitempty"`
	Contact         ReservationPII `json:"contact"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
}
