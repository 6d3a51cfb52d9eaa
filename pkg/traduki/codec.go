package traduki

import (
	"bytes"
	"encoding/json"
	"time"
)

// Encode serializes a value to JSON with the wire conventions applied:
// timestamps render in the fixed egress form and enumerated values render as
// their underlying primitive (which typed constants do natively). Dynamic
// trees (map[string]any, []any) are walked so that bare time.Time values
// inside them pick up the egress form as well.
func Encode(v any) ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	err := enc.Encode(normalize(v))
	if err != nil {
		return nil, &APIError{Kind: KindParsing, Detail: "encoding request body: " + err.Error()}
	}

	// json.Encoder appends a newline.
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func normalize(v any) any {
	switch value := v.(type) {
	case time.Time:
		return Timestamp{Time: value}
	case *time.Time:
		if value == nil {
			return nil
		}

		return Timestamp{Time: *value}
	case map[string]any:
		out := make(map[string]any, len(value))
		for k, elem := range value {
			out[k] = normalize(elem)
		}

		return out
	case []any:
		out := make([]any, len(value))
		for i, elem := range value {
			out[i] = normalize(elem)
		}

		return out
	default:
		return v
	}
}

// Decode parses JSON into a dynamic tree of nulls, bools, float64s, strings,
// []any and map[string]any. Every decoded map has its string-valued entries
// that match the timestamp grammar promoted in place to Timestamp values.
// Strings that are direct members of lists are never promoted; maps nested
// inside lists are still walked. A timestamp-shaped string that is
// out-of-range stays a string.
func Decode(data []byte) (any, error) {
	var v any

	err := json.Unmarshal(data, &v)
	if err != nil {
		return nil, &APIError{Kind: KindParsing, Detail: "parsing response body: " + err.Error()}
	}

	return promote(v), nil
}

// DecodeObject is Decode restricted to a top-level JSON object.
func DecodeObject(data []byte) (map[string]any, error) {
	v, err := Decode(data)
	if err != nil {
		return nil, err
	}

	obj, ok := v.(map[string]any)
	if !ok {
		return nil, &APIError{Kind: KindParsing, Detail: "expected a JSON object"}
	}

	return obj, nil
}

func promote(v any) any {
	switch value := v.(type) {
	case map[string]any:
		for k, elem := range value {
			if s, ok := elem.(string); ok {
				if LooksLikeTimestamp(s) {
					if ts, err := ParseTimestamp(s); err == nil {
						value[k] = ts
					}
				}

				continue
			}

			value[k] = promote(elem)
		}

		return value
	case []any:
		for i, elem := range value {
			switch elem.(type) {
			case map[string]any, []any:
				value[i] = promote(elem)
			}
		}

		return value
	default:
		return v
	}
}
