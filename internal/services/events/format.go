package events

import (
	"net/url"
	"time"
)

// displayZone shifts event timestamps to local Singapore time for display.
var displayZone = time.FixedZone("SGT", 8*60*60)

// FormatDisplayTime renders an ISO 8601 UTC timestamp as
// "02 Jan 2006 @ 1504 HRS" in GMT+8. Unparseable input passes through
// unchanged rather than dropping the field.
func FormatDisplayTime(iso string) string {
	t, err := time.Parse("2006-01-02T15:04:05Z", iso)
	if err != nil {
		return iso
	}
	return t.In(displayZone).Format("02 Jan 2006 @ 1504") + " HRS"
}

// SearchURL builds the deterministic fallback citation link for an event
// title. This is a web-search URL, not a verified canonical one.
func SearchURL(title string) string {
	return "https://www.google.com/search?q=" + url.QueryEscape(title)
}
