package activity

import (
	"fmt"
	"time"
)

const timestampLayout = "2006-01-02 15:04:05"

// ConvertTimestamp renders a vendor timestamp as a readable local date.
// Vendor feeds usually carry milliseconds; anything wider than ten
// digits is scaled down. Implausible values come back as tagged
// INVALID_* strings instead of bogus dates.
func ConvertTimestamp(ts int64) string {
	return convertTimestampAt(ts, time.Now())
}

func convertTimestampAt(ts int64, now time.Time) string {
	if ts == 0 {
		return ""
	}

	seconds := ts
	if seconds > 9999999999 {
		seconds /= 1000
	}

	if seconds < 0 {
		return fmt.Sprintf("INVALID_TIMESTAMP_%d", seconds)
	}

	futureLimit := now.Unix() + 2*365*24*60*60
	if seconds > futureLimit {
		return fmt.Sprintf("INVALID_FUTURE_DATE_%d", seconds)
	}

	return time.Unix(seconds, 0).Format(timestampLayout)
}
