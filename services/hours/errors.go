package hours

// ConfigUnavailableError signals a backing-store failure while fetching the
// opening-hours configuration on a path that must not fall back to defaults.
type ConfigUnavailableError struct {
	Err error
}

func (e *ConfigUnavailableError) Error() string {
	return "openingHoursUnavailable: " + e.Err.Error()
}

func (e *ConfigUnavailableError) Unwrap() error {
	return e.Err
}
