package llm

import (
	"fmt"
	"regexp"
	"strings"

	"search-system/internal/errs"
)

// ParseIntent maps a model response onto the Intent enum via case-insensitive
// exact or prefix match on the two known labels. Anything else is
// CLASSIFICATION_AMBIGUOUS; the pipeline never guesses a default.
func ParseIntent(response string) (Intent, error) {
	norm := normalizeLabel(response)
	switch {
	case strings.HasPrefix(norm, "event"):
		return IntentEvent, nil
	case strings.HasPrefix(norm, "location"):
		return IntentLocation, nil
	}
	return 0, errs.New(errs.CodeClassificationAmbiguous,
		fmt.Sprintf("query could not be classified as event or location (model said %q)", strings.TrimSpace(response)))
}

// ParseEventCategory validates a model response against the category
// vocabulary. An out-of-vocabulary answer is an error; the events adapter
// degrades to an unfiltered search.
func ParseEventCategory(response string) (string, error) {
	norm := normalizeLabel(response)
	for _, cat := range EventCategories {
		if norm == cat {
			return cat, nil
		}
	}
	return "", fmt.Errorf("unrecognized event category %q", strings.TrimSpace(response))
}

// listPrefix matches one leading bullet or ordinal ("- ", "* ", "2. ") so
// stripping it cannot eat digits or hyphens that belong to the offering name.
var listPrefix = regexp.MustCompile(`^\s*(?:[-*]|\d+\.)\s+`)

// ParseOfferings extracts "Offering: Price" pairs from a semi-structured
// model response, capped at three entries. Unparseable input yields an empty
// map, never an error.
func ParseOfferings(response string) map[string]string {
	offerings := make(map[string]string)
	for _, line := range strings.Split(response, "\n") {
		line = strings.TrimSpace(line)
		line = listPrefix.ReplaceAllString(line, "")
		name, price, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		name = strings.TrimSpace(name)
		price = strings.TrimSpace(price)
		if name == "" {
			continue
		}
		if price == "" {
			price = "NA"
		}
		offerings[name] = price
		if len(offerings) == 3 {
			break
		}
	}
	return offerings
}

func normalizeLabel(s string) string {
	return strings.Trim(strings.ToLower(strings.TrimSpace(s)), "'\".` ")
}
