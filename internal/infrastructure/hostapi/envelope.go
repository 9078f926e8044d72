package hostapi

import "encoding/json"

// DecodeStatus classifies the outcome of unwrapping a host payload.
// Callers treat anything other than DecodeOK as a parse failure; the split
// between malformed JSON and wrong shape exists for diagnostics only.
type DecodeStatus int

const (
	// DecodeOK means the payload was decoded into the target type.
	DecodeOK DecodeStatus = iota
	// DecodeMalformed means the payload (or the JSON string inside a legacy
	// d-wrapper) was not valid JSON at all.
	DecodeMalformed
	// DecodeNotEnvelope means the payload was valid JSON but did not fit the
	// target shape.
	DecodeNotEnvelope
)

// String returns a human-readable form of the status
func (s DecodeStatus) String() string {
	switch s {
	case DecodeOK:
		return "ok"
	case DecodeMalformed:
		return "malformed"
	case DecodeNotEnvelope:
		return "not_envelope"
	default:
		return "unknown"
	}
}

// dWrapper probes for the legacy SOAP-era wrapper {"d": "<json string>"}
type dWrapper struct {
	D *string `json:"d"`
}

// Unwrap decodes a host payload into T, transparently unwrapping the legacy
// {"d": "..."} envelope when present. It never panics and never returns an
// error: failures are reported through the DecodeStatus, and the zero value
// of T is returned alongside any non-OK status.
func Unwrap[T any](raw string) (T, DecodeStatus) {
	var out T

	data := []byte(raw)
	if !json.Valid(data) {
		return out, DecodeMalformed
	}

	var wrapper dWrapper
	if err := json.Unmarshal(data, &wrapper); err == nil && wrapper.D != nil {
		inner := []byte(*wrapper.D)
		if !json.Valid(inner) {
			return out, DecodeMalformed
		}
		if err := json.Unmarshal(inner, &out); err != nil {
			var zero T
			return zero, DecodeNotEnvelope
		}
		return out, DecodeOK
	}

	if err := json.Unmarshal(data, &out); err != nil {
		var zero T
		return zero, DecodeNotEnvelope
	}
	return out, DecodeOK
}

// ExtractFirstJSONObject scans text for the first balanced top-level JSON
// object and returns exactly that substring, from the first '{' through its
// matching '}'. Braces inside quoted strings do not affect depth, and
// escaped quotes do not terminate strings. If no balanced object is found
// the input is returned unchanged.
//
// The host's login endpoint pads its JSON with noise on both sides, so the
// body cannot be handed to a decoder as-is.
func ExtractFirstJSONObject(text string) string {
	depth := 0
	start := -1
	inString := false
	escaped := false

	for i := 0; i < len(text); i++ {
		c := text[i]
		if escaped {
			escaped = false
			continue
		}
		if c == '\\' {
			if inString {
				escaped = true
			}
			continue
		}
		if c == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}
		switch c {
		case '{':
			if depth == 0 {
				start = i
			}
			depth++
		case '}':
			if depth > 0 {
				depth--
				if depth == 0 {
					return text[start : i+1]
				}
			}
		}
	}
	return text
}
