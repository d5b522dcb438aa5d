package hours

import (
	"strings"

	"gasthaus/models"
)

// Legacy documents used German weekday keys; everything is folded onto the
// canonical English keys here and nowhere else.
var dayKeyAliases = map[string]string{
	"montag":     "monday",
	"dienstag":   "tuesday",
	"mittwoch":   "wednesday",
	"donnerstag": "thursday",
	"freitag":    "friday",
	"samstag":    "saturday",
	"sonnabend":  "saturday",
	"sonntag":    "sunday",
}

func canonicalDayKey(key string) (string, bool) {
	k := strings.ToLower(strings.TrimSpace(key))
	if alias, ok := dayKeyAliases[k]; ok {
		return alias, true
	}
	for _, canonical := range models.WeekdayKeys {
		if k == canonical {
			return canonical, true
		}
	}
	return "", false
}

// normalizeDay resolves the historical day shapes ("isClosed" vs "closed",
// "shifts" vs "intervals") into the canonical one. A closed day never
// carries intervals.
func normalizeDay(raw models.RawDaySchedule) models.DaySchedule {
	closed := false
	switch {
	case raw.Closed != nil:
		closed = *raw.Closed
	case raw.IsClosed != nil:
		closed = *raw.IsClosed
	}
	if closed {
		return models.DaySchedule{Closed: true}
	}

	intervals := raw.Intervals
	if len(intervals) == 0 {
		intervals = raw.Shifts
	}
	out := make([]models.TimeInterval, len(intervals))
	copy(out, intervals)
	return models.DaySchedule{Intervals: out}
}

// Normalize merges the raw stored document over the compiled-in defaults and
// returns a fully-populated canonical config: every weekday key present,
// every default area present, slot rules complete. Pure function; callers
// own fetching the document and writing back defaults when absent.
func Normalize(doc *models.OpeningHoursDoc) *models.OpeningHoursConfig {
	cfg := Defaults()
	if doc == nil {
		return cfg
	}

	if doc.Timezone != "" {
		cfg.Timezone = doc.Timezone
	}
	if doc.ReservationsEnabled != nil {
		cfg.ReservationsEnabled = *doc.ReservationsEnabled
	}

	for key, raw := range doc.Week {
		canonical, ok := canonicalDayKey(key)
		if !ok {
			continue
		}
		cfg.Week[canonical] = normalizeDay(raw)
	}

	// Exceptions are full overrides keyed by ISO date; a date present here
	// replaces the weekday schedule entirely for that date.
	for date, raw := range doc.Exceptions {
		cfg.Exceptions[date] = normalizeDay(raw)
	}

	// Slot fields are backfilled only when absent; an explicitly stored
	// zero lead time is a valid setting and must survive the round trip.
	if doc.Slot != nil {
		if doc.Slot.StepMinutes != nil {
			cfg.Slot.StepMinutes = *doc.Slot.StepMinutes
		}
		if doc.Slot.MinLeadMinutes != nil {
			cfg.Slot.MinLeadMinutes = *doc.Slot.MinLeadMinutes
		}
		if doc.Slot.MaxAdvanceDays != nil {
			cfg.Slot.MaxAdvanceDays = *doc.Slot.MaxAdvanceDays
		}
	}

	for key, raw := range doc.Areas {
		area, ok := cfg.Areas[key]
		if !ok {
			area = models.AreaConfig{}
		}
		if raw.Enabled != nil {
			area.Enabled = *raw.Enabled
		}
		if raw.Capacity > 0 {
			area.Capacity = raw.Capacity
		}
		cfg.Areas[key] = area
	}

	return cfg
}
