package llm

import (
	"context"
)

// Intent is the classified purpose of a query. It is produced exactly once
// per request and drives which source adapter executes.
type Intent int

const (
	IntentEvent Intent = iota
	IntentLocation
)

func (i Intent) String() string {
	switch i {
	case IntentEvent:
		return "event"
	case IntentLocation:
		return "location"
	default:
		return "unknown"
	}
}

// EventCategories is the event-source category vocabulary used to narrow an
// events search.
var EventCategories = []string{
	"academic",
	"community",
	"concerts",
	"conferences",
	"expos",
	"festivals",
	"observances",
	"performing-arts",
	"public-holidays",
	"school-holidays",
	"sports",
}

// Client is the language-model collaborator behind classification and
// enrichment. Every call is single-shot; no conversation state is retained
// across calls.
type Client interface {
	// Classify determines whether a query asks about events or locations.
	Classify(ctx context.Context, query string) (Intent, error)

	// EventCategory maps a query onto one entry of EventCategories.
	EventCategory(ctx context.Context, query string) (string, error)

	// Describe generates a short descriptive paragraph for a place.
	Describe(ctx context.Context, name, address string) (string, error)

	// Offerings surfaces up to three representative offerings and prices
	// for a place.
	Offerings(ctx context.Context, name, address string) (map[string]string, error)
}
