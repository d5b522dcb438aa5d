package utils

import "fmt"

// MinutesPerDay is the wraparound bound for minutes-since-midnight math.
const MinutesPerDay = 24 * 60

// ParseHHMM converts an "HH:MM" string to minutes since midnight. All slot
// arithmetic runs on these integers; time-of-day strings never reach a
// date/time library.
func ParseHHMM(s string) (int, bool) {
	if len(s) != 5 || s[2] != ':' {
		return 0, false
	}
	h, m := 0, 0
	for _, c := range []byte(s[:2]) {
		if c < '0' || c > '9' {
			return 0, false
		}
		h = h*10 + int(c-'0')
	}
	for _, c := range []byte(s[3:]) {
		if c < '0' || c > '9' {
			return 0, false
		}
		m = m*10 + int(c-'0')
	}
	if h > 23 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

// FormatHHMM renders minutes since midnight as "HH:MM".
func FormatHHMM(minutes int) string {
	minutes = ((minutes % MinutesPerDay) + MinutesPerDay) % MinutesPerDay
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// AddMinutesOfDay adds delta to a minutes-since-midnight value with explicit
// modulo-1440 wraparound.
func AddMinutesOfDay(minutes, delta int) int {
	return ((minutes+delta)%MinutesPerDay + MinutesPerDay) % MinutesPerDay
}
