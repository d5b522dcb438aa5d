package hours

import "gasthaus/models"

// Defaults returns the compiled-in configuration used when storage holds no
// document or cannot be reached on a read path. Availability must degrade
// gracefully, not 500.
func Defaults() *models.OpeningHoursConfig {
	regular := models.DaySchedule{
		Intervals: []models.TimeInterval{
			{Start: "11:30", End: "14:30"},
			{Start: "17:00", End: "22:00"},
		},
	}
	weekend := models.DaySchedule{
		Intervals: []models.TimeInterval{
			{Start: "12:00", End: "22:00"},
		},
	}

	return &models.OpeningHoursConfig{
		Timezone:            "Europe/Berlin",
		ReservationsEnabled: true,
		Week: map[string]models.DaySchedule{
			"monday":    {Closed: true},
			"tuesday":   regular,
			"wednesday": regular,
			"thursday":  regular,
			"friday":    regular,
			"saturday":  weekend,
			"sunday":    weekend,
		},
		Exceptions: map[string]models.DaySchedule{},
		Slot: models.SlotRules{
			StepMinutes:    30,
			MinLeadMinutes: 60,
			MaxAdvanceDays: 60,
		},
		Areas: map[string]models.AreaConfig{
			"innen":    {Enabled: true, Capacity: 60},
			"terrasse": {Enabled: true, Capacity: 40},
		},
	}
}
