package ai

import "encoding/json"

// Payload is the unwrapped result of a generation call. Exactly one of
// Text or Object is meaningful: Object is non-nil only when the
// endpoint returned a JSON object that should skip text normalization
// (either a priority field held an object, or the whole response is
// already a structured market-analysis result).
type Payload struct {
	Text   string
	Object map[string]interface{}
}

// IsObject reports whether the payload carries a JSON object rather
// than text.
func (p Payload) IsObject() bool {
	return p.Object != nil
}

// envelopeFields are inspected in priority order when the response
// parses as a JSON object. The first present field wins.
var envelopeFields = [...]string{"response", "result", "text", "message"}

// UnwrapEnvelope extracts the actual payload from the raw endpoint
// response. The endpoint is free-form: it may return plain text, a bare
// JSON string, a JSON envelope with the real payload under one of
// several field names, or (for market analysis) the target object
// directly. This function never fails -- worst case the raw text passes
// through unchanged.
func UnwrapEnvelope(raw string) Payload {
	var parsed interface{}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		// Not JSON at all. The raw text is the payload.
		return Payload{Text: raw}
	}

	switch v := parsed.(type) {
	case string:
		return Payload{Text: v}
	case map[string]interface{}:
		for _, field := range envelopeFields {
			inner, ok := v[field]
			if !ok {
				continue
			}
			switch iv := inner.(type) {
			case string:
				return Payload{Text: iv}
			case map[string]interface{}:
				return Payload{Object: iv}
			default:
				// Numbers, booleans, arrays: re-serialize so the
				// caller still gets something usable as text.
				b, err := json.Marshal(iv)
				if err != nil {
					return Payload{Text: raw}
				}
				return Payload{Text: string(b)}
			}
		}
		// No envelope field. If the object already looks like a
		// structured analysis result, hand it over as-is so the
		// extractor can accept it without a text round-trip.
		if _, ok := v[intelMarkerKey]; ok {
			return Payload{Object: v}
		}
		return Payload{Text: raw}
	default:
		// Bare numbers, booleans or arrays carry no usable payload;
		// keep the raw text.
		return Payload{Text: raw}
	}
}
