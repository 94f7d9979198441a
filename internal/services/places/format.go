package places

import (
	"strings"

	"search-system/internal/upstream"
)

var dayNames = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// FormatOpeningHours flattens source opening-hours periods into a weekday
// abbreviation to "HHMM-HHMM" mapping. Periods without a close time are
// skipped. The result is never nil.
func FormatOpeningHours(periods []upstream.OpeningPeriod) map[string]string {
	hours := make(map[string]string)
	for day := 0; day < len(dayNames); day++ {
		for _, p := range periods {
			if p.Open.Day != day || p.Close == nil {
				continue
			}
			hours[dayNames[day]] = p.Open.Time + "-" + p.Close.Time
		}
	}
	return hours
}

// FormatContactNumber renders an 8-digit Singapore number as +65-XXXX-XXXX.
// Missing or malformed input renders as the sentinel "None", never as an
// omitted field.
func FormatContactNumber(number string) string {
	cleaned := strings.ReplaceAll(number, " ", "")
	if len(cleaned) != 8 {
		return "None"
	}
	for _, r := range cleaned {
		if r < '0' || r > '9' {
			return "None"
		}
	}
	return "+65-" + cleaned[:4] + "-" + cleaned[4:]
}
