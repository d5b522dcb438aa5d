package reservation

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"gasthaus/models"
	"gasthaus/utils"
)

// The public form exposes a fixed, small set of seating areas. Whether an
// area is currently bookable is a business check against the config; this
// list only rejects values that were never valid.
var knownAreas = []string{"innen", "terrasse"}

var (
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phonePattern = regexp.MustCompile(`^\+?[0-9 ()/\-]{5,20}$`)
	datePattern  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// ValidateInput performs the structural validation pass over a reservation
// request. Business rules (enabled flags, slot membership, capacity) are
// checked afterwards in Create.
func ValidateInput(in *models.ReservationInput) []models.FieldIssue {
	var issues []models.FieldIssue

	// Name bounds count runes, not bytes, so umlauts do not shrink the
	// allowed length.
	if n := utf8.RuneCountInString(strings.TrimSpace(in.FirstName)); n < 1 || n > 100 {
		issues = append(issues, models.FieldIssue{Field: "firstName", Message: "must be 1 to 100 characters"})
	}
	if n := utf8.RuneCountInString(strings.TrimSpace(in.LastName)); n < 1 || n > 100 {
		issues = append(issues, models.FieldIssue{Field: "lastName", Message: "must be 1 to 100 characters"})
	}
	if len(in.Email) > 254 || !emailPattern.MatchString(in.Email) {
		issues = append(issues, models.FieldIssue{Field: "email", Message: "must be a valid email address"})
	}
	if !phonePattern.MatchString(in.Phone) {
		issues = append(issues, models.FieldIssue{Field: "phone", Message: "must be a valid phone number"})
	}
	if !datePattern.MatchString(in.Date) {
		issues = append(issues, models.FieldIssue{Field: "date", Message: "must be YYYY-MM-DD"})
	} else if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		issues = append(issues, models.FieldIssue{Field: "date", Message: "not a valid calendar date"})
	}
	if _, ok := utils.ParseHHMM(in.Time); !ok {
		issues = append(issues, models.FieldIssue{Field: "time", Message: "must be HH:MM"})
	}
	if in.People < 1 || in.People > 100 {
		issues = append(issues, models.FieldIssue{Field: "people", Message: "must be between 1 and 100"})
	}
	if !IsKnownArea(in.Area) {
		issues = append(issues, models.FieldIssue{Field: "area", Message: "unknown seating area"})
	}
	if len(in.Notes) > 500 {
		issues = append(issues, models.FieldIssue{Field: "notes", Message: "must be at most 500 characters"})
	}

	return issues
}

// IsKnownArea reports whether area is one of the fixed seating-area keys.
func IsKnownArea(area string) bool {
	for _, a := range knownAreas {
		if area == a {
			return true
		}
	}
	return false
}
