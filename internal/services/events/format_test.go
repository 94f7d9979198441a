package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDisplayTime(t *testing.T) {
	tests := []struct {
		name string
		iso  string
		want string
	}{
		{name: "afternoon utc crosses into evening sgt", iso: "2024-03-05T12:30:00Z", want: "05 Mar 2024 @ 2030 HRS"},
		{name: "late utc rolls to next day", iso: "2024-12-31T18:00:00Z", want: "01 Jan 2025 @ 0200 HRS"},
		{name: "midnight utc", iso: "2024-06-01T00:00:00Z", want: "01 Jun 2024 @ 0800 HRS"},
		{name: "unparseable passes through", iso: "sometime next week", want: "sometime next week"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDisplayTime(tt.iso))
		})
	}
}

func TestSearchURL(t *testing.T) {
	assert.Equal(t,
		"https://www.google.com/search?q=Garden+Beats+Festival+2025",
		SearchURL("Garden Beats Festival 2025"),
	)
	assert.Equal(t,
		"https://www.google.com/search?q=Chingay+Parade+%26+Fireworks",
		SearchURL("Chingay Parade & Fireworks"),
	)
}
