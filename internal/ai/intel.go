package ai

import (
	"encoding/json"
	"regexp"
	"strings"
)

// intelMarkerKey identifies a payload that already carries the target
// market-analysis structure.
const intelMarkerKey = "marketOverview"

// Code-fence noise around embedded JSON.
var (
	fenceJSON   = regexp.MustCompile("(?i)```json\\s*")
	fencePlain  = regexp.MustCompile("```\\s*")
	leadingJSON = regexp.MustCompile(`(?i)^\s*json\s*`)
)

// Extraction strategies, tried in order against the cleaned text. The
// first pattern pins the span to one that actually contains the two
// marker keys; the second is a last-ditch grab of the widest {...}
// region. First successful parse wins.
var intelPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?s)\{.*"marketOverview".*"recommendations".*\}`),
	regexp.MustCompile(`(?s)\{.*\}`),
}

// ExtractIntel locates the structured market-analysis object inside a
// generation payload. It never fails: when no candidate span parses
// into an object holding both marketOverview and recommendations, it
// returns the fixed degraded placeholder and degraded=true.
func ExtractIntel(p Payload) (result map[string]interface{}, degraded bool) {
	// Already an object carrying the marker key? Accept it directly.
	if p.IsObject() {
		if _, ok := p.Object[intelMarkerKey]; ok {
			return p.Object, false
		}
		return degradedIntel(), true
	}

	cleaned := fenceJSON.ReplaceAllString(p.Text, "")
	cleaned = fencePlain.ReplaceAllString(cleaned, "")
	cleaned = leadingJSON.ReplaceAllString(cleaned, "")
	cleaned = strings.TrimSpace(cleaned)

	for _, pattern := range intelPatterns {
		span := pattern.FindString(cleaned)
		if span == "" {
			continue
		}
		var parsed map[string]interface{}
		if err := json.Unmarshal([]byte(span), &parsed); err != nil {
			continue
		}
		if hasKey(parsed, "marketOverview") && hasKey(parsed, "recommendations") {
			return parsed, false
		}
	}

	// Last resort: the whole cleaned text might itself be the object.
	var direct map[string]interface{}
	if err := json.Unmarshal([]byte(cleaned), &direct); err == nil && hasKey(direct, "marketOverview") {
		return direct, false
	}

	return degradedIntel(), true
}

func hasKey(m map[string]interface{}, key string) bool {
	v, ok := m[key]
	return ok && v != nil
}

// degradedIntel is the fixed placeholder returned when no structured
// result could be recovered from the generation output. Field values
// are stable -- clients key off them for their empty states.
func degradedIntel() map[string]interface{} {
	return map[string]interface{}{
		"marketOverview": map[string]interface{}{
			"marketSize":        "Unable to analyze. Please try with a more specific market description.",
			"customerBehavior":  "Data unavailable",
			"buyingMotivations": "Data unavailable",
		},
		"targetAudience": map[string]interface{}{
			"demographics":   "Data unavailable",
			"painPoints":     "Data unavailable",
			"buyingTriggers": "Data unavailable",
		},
		"competitorSnapshot": map[string]interface{}{
			"typicalCompetitors": "Data unavailable",
			"strengths":          "Data unavailable",
			"weaknesses":         "Data unavailable",
		},
		"trendsOpportunities": map[string]interface{}{
			"emergingTrends":   "Data unavailable",
			"marketGaps":       "Data unavailable",
			"underservedNeeds": "Data unavailable",
		},
		"recommendations": []interface{}{
			"Please try again with a more detailed market description",
			"Include specific industry or niche details",
			"Mention your target location or region",
			"Describe your ideal customer",
			"Include any specific concerns or questions",
		},
	}
}
