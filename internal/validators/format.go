package validators

import (
	"regexp"
	"time"
)

var hhmmRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// IsValidTime reports whether s is a 24-hour HH:MM clock time. The
// schedule core assumes its inputs already passed this gate.
func IsValidTime(s string) bool {
	return hhmmRe.MatchString(s)
}

// IsValidDate reports whether s is a YYYY-MM-DD calendar date.
func IsValidDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}
