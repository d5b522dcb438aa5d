package reservation

import (
	"sort"
	"strings"
	"time"

	"gasthaus/models"
	"gasthaus/utils"
)

// GenerateSlots produces the ordered set of valid start times for one date
// and area under the given normalized config. The second return value is nil
// and closed is true when the area is disabled, the day is closed, or the
// day has no intervals.
//
// All time-of-day arithmetic runs on minutes since midnight; "today" and
// "now" are evaluated in the configured timezone, not server-local time.
func GenerateSlots(cfg *models.OpeningHoursConfig, date, area string, now time.Time) (bool, []string) {
	areaCfg, ok := cfg.Areas[area]
	if !ok || !areaCfg.Enabled {
		return true, nil
	}

	day, ok := resolveDay(cfg, date)
	if !ok || day.Closed || len(day.Intervals) == 0 {
		return true, nil
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		loc = time.UTC
	}
	localNow := now.In(loc)

	// Candidates on the current day must leave at least MinLeadMinutes
	// between now and the slot.
	cutoff := -1
	if date == localNow.Format("2006-01-02") {
		cutoff = localNow.Hour()*60 + localNow.Minute() + cfg.Slot.MinLeadMinutes
	}

	step := cfg.Slot.StepMinutes
	seen := make(map[int]struct{})
	var minutes []int
	for _, iv := range day.Intervals {
		start, okStart := utils.ParseHHMM(iv.Start)
		end, okEnd := utils.ParseHHMM(iv.End)
		if !okStart || !okEnd || start >= end {
			continue
		}
		for t := start; t < end; {
			if t >= cutoff {
				// Abutting intervals may land on the same minute; the
				// later-declared interval wins, which for bare times is a
				// plain dedupe.
				if _, dup := seen[t]; !dup {
					seen[t] = struct{}{}
					minutes = append(minutes, t)
				}
			}
			next := utils.AddMinutesOfDay(t, step)
			if next <= t {
				break // wrapped past midnight
			}
			t = next
		}
	}

	sort.Ints(minutes)
	times := make([]string, len(minutes))
	for i, m := range minutes {
		times[i] = utils.FormatHHMM(m)
	}
	return false, times
}

// resolveDay picks the exception entry for the date when one exists,
// otherwise the weekday schedule. Exceptions are full overrides, never
// merges.
func resolveDay(cfg *models.OpeningHoursConfig, date string) (models.DaySchedule, bool) {
	if day, ok := cfg.Exceptions[date]; ok {
		return day, true
	}
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return models.DaySchedule{}, false
	}
	day, ok := cfg.Week[strings.ToLower(t.Weekday().String())]
	return day, ok
}
