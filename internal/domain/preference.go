package domain

import "time"

// PreferenceDarkMode is the storage key of the dark/light display preference.
const PreferenceDarkMode = "darkMode"

type Preference struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}
