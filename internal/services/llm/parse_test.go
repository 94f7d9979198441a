package llm

import (
	"testing"

	"search-system/internal/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIntent(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     Intent
		wantErr  bool
	}{
		{name: "exact event", response: "event", want: IntentEvent},
		{name: "exact location", response: "location", want: IntentLocation},
		{name: "uppercase", response: "LOCATION", want: IntentLocation},
		{name: "trailing whitespace and newline", response: "event\n", want: IntentEvent},
		{name: "quoted label", response: "'event'", want: IntentEvent},
		{name: "plural prefix", response: "events", want: IntentEvent},
		{name: "sentence prefix", response: "Location. The query names a place.", want: IntentLocation},
		{name: "unrelated answer", response: "restaurant", wantErr: true},
		{name: "empty response", response: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseIntent(tt.response)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, errs.CodeClassificationAmbiguous, errs.CodeOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseEventCategory(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     string
		wantErr  bool
	}{
		{name: "plain category", response: "concerts", want: "concerts"},
		{name: "hyphenated category", response: "performing-arts", want: "performing-arts"},
		{name: "uppercase with newline", response: "Sports\n", want: "sports"},
		{name: "out of vocabulary", response: "nightlife", wantErr: true},
		{name: "empty", response: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseEventCategory(tt.response)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseOfferings(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     map[string]string
	}{
		{
			name:     "plain lines",
			response: "Chicken Rice: $4.50\nLaksa: $5.00",
			want:     map[string]string{"Chicken Rice": "$4.50", "Laksa": "$5.00"},
		},
		{
			name:     "bulleted and numbered lines",
			response: "- Kaya Toast Set: $6.20\n2. Kopi: NA",
			want:     map[string]string{"Kaya Toast Set": "$6.20", "Kopi": "NA"},
		},
		{
			name:     "leading digits and hyphens in names survive",
			response: "7-Eleven Set: $5\n3D Art Museum Ticket: $10",
			want:     map[string]string{"7-Eleven Set": "$5", "3D Art Museum Ticket": "$10"},
		},
		{
			name:     "bulleted name starting with a digit",
			response: "- 7-Eleven Set: $5",
			want:     map[string]string{"7-Eleven Set": "$5"},
		},
		{
			name:     "missing price becomes NA",
			response: "Signature Tasting Menu:",
			want:     map[string]string{"Signature Tasting Menu": "NA"},
		},
		{
			name:     "capped at three entries",
			response: "A: 1\nB: 2\nC: 3\nD: 4",
			want:     map[string]string{"A": "1", "B": "2", "C": "3"},
		},
		{
			name:     "unparseable prose",
			response: "I could not find any pricing information for this establishment.",
			want:     map[string]string{},
		},
		{
			name:     "empty response",
			response: "",
			want:     map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseOfferings(tt.response)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIntentString(t *testing.T) {
	assert.Equal(t, "event", IntentEvent.String())
	assert.Equal(t, "location", IntentLocation.String())
	assert.Equal(t, "unknown", Intent(99).String())
}
