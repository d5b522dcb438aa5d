package hours

import (
	"fmt"
	"regexp"
	"time"

	"gasthaus/models"
	"gasthaus/utils"
)

var isoDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ValidateConfig checks the structural invariants of a canonical config
// before it is persisted by an admin write. Returns one issue per violation.
func ValidateConfig(cfg *models.OpeningHoursConfig) []models.FieldIssue {
	var issues []models.FieldIssue

	if _, err := time.LoadLocation(cfg.Timezone); err != nil {
		issues = append(issues, models.FieldIssue{Field: "timezone", Message: "unknown timezone"})
	}

	if len(cfg.Week) != len(models.WeekdayKeys) {
		issues = append(issues, models.FieldIssue{Field: "week", Message: "week must contain exactly the seven weekday keys"})
	}
	for _, key := range models.WeekdayKeys {
		day, ok := cfg.Week[key]
		if !ok {
			issues = append(issues, models.FieldIssue{Field: "week." + key, Message: "missing weekday"})
			continue
		}
		issues = append(issues, validateDay("week."+key, day)...)
	}

	for date, day := range cfg.Exceptions {
		field := "exceptions." + date
		if !isoDatePattern.MatchString(date) {
			issues = append(issues, models.FieldIssue{Field: field, Message: "key must be an ISO date (YYYY-MM-DD)"})
		} else if _, err := time.Parse("2006-01-02", date); err != nil {
			issues = append(issues, models.FieldIssue{Field: field, Message: "not a valid calendar date"})
		}
		issues = append(issues, validateDay(field, day)...)
	}

	if cfg.Slot.StepMinutes < 5 || cfg.Slot.StepMinutes > 120 {
		issues = append(issues, models.FieldIssue{Field: "slot.stepMinutes", Message: "must be between 5 and 120"})
	}
	if cfg.Slot.MinLeadMinutes < 0 || cfg.Slot.MinLeadMinutes > 1440 {
		issues = append(issues, models.FieldIssue{Field: "slot.minLeadMinutes", Message: "must be between 0 and 1440"})
	}
	if cfg.Slot.MaxAdvanceDays < 1 || cfg.Slot.MaxAdvanceDays > 365 {
		issues = append(issues, models.FieldIssue{Field: "slot.maxAdvanceDays", Message: "must be between 1 and 365"})
	}

	if len(cfg.Areas) == 0 {
		issues = append(issues, models.FieldIssue{Field: "areas", Message: "at least one area is required"})
	}
	for key, area := range cfg.Areas {
		if area.Enabled && area.Capacity < 1 {
			issues = append(issues, models.FieldIssue{Field: "areas." + key + ".capacity", Message: "enabled areas need a capacity of at least 1"})
		}
	}

	return issues
}

func validateDay(field string, day models.DaySchedule) []models.FieldIssue {
	var issues []models.FieldIssue

	if day.Closed && len(day.Intervals) > 0 {
		issues = append(issues, models.FieldIssue{Field: field, Message: "closed days must not declare intervals"})
		return issues
	}

	prevEnd := -1
	for i, iv := range day.Intervals {
		ivField := fmt.Sprintf("%s.intervals[%d]", field, i)
		start, okStart := utils.ParseHHMM(iv.Start)
		end, okEnd := utils.ParseHHMM(iv.End)
		if !okStart || !okEnd {
			issues = append(issues, models.FieldIssue{Field: ivField, Message: "times must be HH:MM"})
			continue
		}
		if start >= end {
			issues = append(issues, models.FieldIssue{Field: ivField, Message: "start must be before end"})
			continue
		}
		if start < prevEnd {
			issues = append(issues, models.FieldIssue{Field: ivField, Message: "intervals must be ordered and non-overlapping"})
		}
		prevEnd = end
	}

	return issues
}
