package models

// Canonical weekday keys, Monday first. Every normalized config carries
// exactly these seven keys in its week map.
var WeekdayKeys = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// TimeInterval is one open stretch within a day, "HH:MM" bounds, start < end.
type TimeInterval struct {
	Start string `bson:"start" json:"start"`
	End   string `bson:"end" json:"end"`
}

// DaySchedule describes one day's opening state. Closed days carry no intervals.
type DaySchedule struct {
	Closed    bool           `bson:"closed" json:"closed"`
	Intervals []TimeInterval `bson:"intervals" json:"intervals"`
}

// SlotRules controls slot generation granularity and booking windows.
type SlotRules struct {
	StepMinutes    int `bson:"stepMinutes" json:"stepMinutes"`
	MinLeadMinutes int `bson:"minLeadMinutes" json:"minLeadMinutes"`
	MaxAdvanceDays int `bson:"maxAdvanceDays" json:"maxAdvanceDays"`
}

// AreaConfig is one seating area (e.g. "innen", "terrasse").
type AreaConfig struct {
	Enabled  bool `bson:"enabled" json:"enabled"`
	Capacity int  `bson:"capacity" json:"capacity"`
}

// OpeningHoursConfig is the canonical, fully-populated configuration every
// consumer works with. Only the normalizer may produce it.
type OpeningHoursConfig struct {
	Timezone            string                 `bson:"timezone" json:"timezone"`
	ReservationsEnabled bool                   `bson:"reservationsEnabled" json:"reservationsEnabled"`
	Week                map[string]DaySchedule `bson:"week" json:"week"`
	Exceptions          map[string]DaySchedule `bson:"exceptions" json:"exceptions"`
	Slot                SlotRules              `bson:"slot" json:"slot"`
	Areas               map[string]AreaConfig  `bson:"areas" json:"areas"`
}

// RawDaySchedule is the stored shape of a day before normalization. Older
// documents used "isClosed" and "shifts"; both are resolved by the
// normalizer and never leak past it.
type RawDaySchedule struct {
	Closed    *bool          `bson:"closed,omitempty" json:"closed,omitempty"`
	IsClosed  *bool          `bson:"isClosed,omitempty" json:"isClosed,omitempty"`
	Intervals []TimeInterval `bson:"intervals,omitempty" json:"intervals,omitempty"`
	Shifts    []TimeInterval `bson:"shifts,omitempty" json:"shifts,omitempty"`
}

// OpeningHoursDoc is the raw singleton document as read from storage.
// Any field may be missing; week keys may use legacy German day names.
type OpeningHoursDoc struct {
	Timezone            string                    `bson:"timezone,omitempty" json:"timezone,omitempty"`
	ReservationsEnabled *bool                     `bson:"reservationsEnabled,omitempty" json:"reservationsEnabled,omitempty"`
	Week                map[string]RawDaySchedule `bson:"week,omitempty" json:"week,omitempty"`
	Exceptions          map[string]RawDaySchedule `bson:"exceptions,omitempty" json:"exceptions,omitempty"`
	Slot                *RawSlotRules             `bson:"slot,omitempty" json:"slot,omitempty"`
	Areas               map[string]RawAreaConfig  `bson:"areas,omitempty" json:"areas,omitempty"`
}

// RawSlotRules mirrors SlotRules with every field optional. Pointer fields
// keep an explicit zero (a valid minLeadMinutes) distinguishable from a
// missing one.
type RawSlotRules struct {
	StepMinutes    *int `bson:"stepMinutes,omitempty" json:"stepMinutes,omitempty"`
	MinLeadMinutes *int `bson:"minLeadMinutes,omitempty" json:"minLeadMinutes,omitempty"`
	MaxAdvanceDays *int `bson:"maxAdvanceDays,omitempty" json:"maxAdvanceDays,omitempty"`
}

// RawAreaConfig mirrors AreaConfig with every field optional.
type RawAreaConfig struct {
	Enabled  *bool `bson:"enabled,omitempty" json:"enabled,omitempty"`
	Capacity int   `bson:"capacity,omitempty" json:"capacity,omitempty"`
}
