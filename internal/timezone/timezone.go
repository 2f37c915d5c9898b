package timezone

import "time"

// DefaultTimezone anchors lifecycle timestamps. Booking dates and clock
// times are plain strings in the barber's local day; only the stamped
// timestamps carry a location.
const DefaultTimezone = "America/New_York"

var defaultLoc = load(DefaultTimezone)

func load(tz string) *time.Location {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.UTC
	}
	return loc
}

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

// Location resolves tz, falling back to the default on anything
// unknown or empty.
func Location(tz string) *time.Location {
	if tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}
	return defaultLoc
}

func Now() time.Time {
	return time.Now().In(defaultLoc)
}
