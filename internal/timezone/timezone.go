package timezone

import "time"

// The shop operates in a single fixed local zone.
const DefaultZone = "Asia/Kolkata"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

// Location resolves tz, falling back to the shop's default zone.
func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultZone)
	return loc
}

// ParseDate parses a YYYY-MM-DD calendar day in the given zone.
func ParseDate(dateStr string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", dateStr, loc)
}

// ParseDateTime parses a YYYY-MM-DD date plus HH:mm wall-clock time
// in the given zone.
func ParseDateTime(dateStr, timeStr string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", dateStr+" "+timeStr, loc)
}

// DayKey formats an instant as the YYYY-MM-DD key leaves are stored
// under.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}
