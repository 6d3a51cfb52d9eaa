package traduki

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

// TimestampLayout is the egress form for every timestamp the SDK sends:
// seconds precision, explicit sign even for a zero offset, minutes-resolution
// offset.
const TimestampLayout = "2006-01-02T15:04:05-07:00"

// ErrInvalidTimestamp is returned when a string does not parse as a timestamp.
var ErrInvalidTimestamp = errors.New("invalid timestamp")

// timestampPattern matches the wire grammar
// YYYY-MM-DD[T| ]HH:MM[:SS[.ffffff]][Z | ±HH[:?MM]] without validating ranges.
var timestampPattern = regexp.MustCompile(
	`^\d{4}-\d{2}-\d{2}[T ]\d{2}:\d{2}(:\d{2}(\.\d{1,6})?)?(Z|[+-]\d{2}(:?\d{2})?)?$`)

// timestampLayouts enumerates the grammar combinations accepted on ingress.
// Go's ".999999" fraction and "Z07:00" forms are optional/Z-aware on parse,
// so each layout covers several textual variants.
var timestampLayouts = buildTimestampLayouts()

func buildTimestampLayouts() []string {
	seps := []string{"T", " "}
	times := []string{"15:04:05.999999", "15:04"}
	offsets := []string{"Z07:00", "Z0700", "Z07", ""}

	var layouts []string

	for _, sep := range seps {
		for _, clock := range times {
			for _, offset := range offsets {
				layouts = append(layouts, "2006-01-02"+sep+clock+offset)
			}
		}
	}

	return layouts
}

// Timestamp is a point in time with a timezone offset. It serializes to the
// fixed egress form and accepts the permissive ingress grammar.
type Timestamp struct {
	time.Time
}

// NewTimestamp wraps a time.Time in a Timestamp.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

// ParseTimestamp parses a string in the ingress grammar. Strings without an
// offset are interpreted as UTC.
func ParseTimestamp(value string) (Timestamp, error) {
	if !timestampPattern.MatchString(value) {
		return Timestamp{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, value)
	}

	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return Timestamp{Time: t}, nil
		}
	}

	return Timestamp{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, value)
}

// LooksLikeTimestamp reports whether a string matches the timestamp grammar.
// It does not validate field ranges; ParseTimestamp may still reject it.
func LooksLikeTimestamp(value string) bool {
	return timestampPattern.MatchString(value)
}

// String renders the egress form.
func (t Timestamp) String() string {
	return t.Format(TimestampLayout)
}

// MarshalJSON implements json.Marshaler using the egress form.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}

	return []byte(`"` + t.Format(TimestampLayout) + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler using the ingress grammar.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		*t = Timestamp{}

		return nil
	}

	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("%w: %s", ErrInvalidTimestamp, s)
	}

	parsed, err := ParseTimestamp(s[1 : len(s)-1])
	if err != nil {
		return err
	}

	*t = parsed

	return nil
}

// Equal reports whether two timestamps denote the same instant.
func (t Timestamp) Equal(other Timestamp) bool {
	return t.Time.Equal(other.Time)
}
