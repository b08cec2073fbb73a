package rift

import (
	"fmt"
	"strings"
	"time"
)

// Ref identifies an entity: a class/collection path, optionally followed by an
// instance id. The resolved "/"-joined path string is the identity used for
// both equality and the wire form.
type Ref struct {
	value string
}

// NewRef joins parts into a Ref. Parts may be strings, other Refs, or
// anything printable, so NewRef("classes", "frogs") and
// NewRef(NewRef("classes/frogs"), "123") both work.
func NewRef(parts ...any) Ref {
	segs := make([]string, 0, len(parts))
	for _, p := range parts {
		switch x := p.(type) {
		case Ref:
			segs = append(segs, x.value)
		case string:
			segs = append(segs, x)
		case fmt.Stringer:
			segs = append(segs, x.String())
		default:
			segs = append(segs, fmt.Sprint(x))
		}
	}
	return Ref{value: strings.Join(segs, "/")}
}

// Value returns the resolved path string, e.g. "classes/frogs/123".
func (r Ref) Value() string { return r.value }

// ToClass strips the instance id, leaving the collection Ref. A Ref that
// already names only a collection is returned unchanged.
func (r Ref) ToClass() Ref {
	i := strings.LastIndexByte(r.value, '/')
	if i < 0 {
		return r
	}
	return Ref{value: r.value[:i]}
}

// ID returns the instance id, everything after the last "/". A collection-only
// Ref has no id and fails with *InvalidValueError.
func (r Ref) ID() (string, error) {
	i := strings.LastIndexByte(r.value, '/')
	if i < 0 {
		return "", &InvalidValueError{Value: r, Message: "ref has no id"}
	}
	return r.value[i+1:], nil
}

func (r Ref) String() string { return r.value }

// SetRef represents a lazily evaluated server-side set. Match holds the set's
// match value; it is not evaluated client-side.
type SetRef struct {
	Match any
}

// NewSetRef wraps match in a SetRef.
func NewSetRef(match any) SetRef { return SetRef{Match: match} }

func (s SetRef) String() string { return fmt.Sprintf("SetRef(%v)", s.Match) }

// Time is an instant with up to nanosecond precision, always UTC. The
// canonical ISO-8601 string is authoritative: equality and the wire form both
// use it, so sub-microsecond precision survives a round trip untouched.
type Time struct {
	value string
}

// TimeFromString builds a Time from an ISO-8601 string. The string must carry
// a zone designator; a "+00:00" offset is normalized to "Z".
func TimeFromString(s string) (Time, error) {
	if _, err := parseISOTime(s); err != nil {
		return Time{}, err
	}
	return Time{value: strings.Replace(s, "+00:00", "Z", 1)}, nil
}

// TimeFromTime converts t to a Time. The instant is rendered in UTC with the
// fractional seconds trimmed to the precision actually present.
func TimeFromTime(t time.Time) Time {
	return Time{value: t.UTC().Format(time.RFC3339Nano)}
}

// Value returns the canonical ISO-8601 string.
func (t Time) Value() string { return t.value }

// ToTime parses the instant back into a time.Time. Fractional digits beyond
// nanoseconds are dropped; the stored string remains authoritative.
func (t Time) ToTime() (time.Time, error) {
	return parseISOTime(t.value)
}

func (t Time) String() string { return t.value }

// parseISOTime parses an ISO-8601 instant, tolerating more fractional digits
// than time.Parse accepts by truncating past nanoseconds. Strings without a
// zone designator are rejected.
func parseISOTime(s string) (time.Time, error) {
	if !hasZoneDesignator(s) {
		return time.Time{}, &InvalidValueError{Value: s, Message: "time requires a zone designator"}
	}
	parsed, err := time.Parse(time.RFC3339Nano, truncateFraction(s))
	if err != nil {
		return time.Time{}, &InvalidValueError{Value: s, Message: "unparsable time: " + err.Error()}
	}
	return parsed, nil
}

func hasZoneDesignator(s string) bool {
	t := strings.IndexByte(s, 'T')
	if t < 0 {
		return false
	}
	rest := s[t+1:]
	return strings.HasSuffix(rest, "Z") || strings.ContainsAny(rest, "+-")
}

// truncateFraction caps fractional seconds at nine digits so time.Parse can
// validate strings with finer precision.
func truncateFraction(s string) string {
	dot := strings.IndexByte(s, '.')
	if dot < 0 {
		return s
	}
	i := dot + 1
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i-dot-1 <= 9 {
		return s
	}
	return s[:dot+10] + s[i:]
}

// Date is a calendar date with no time-of-day component, stored as
// "YYYY-MM-DD".
type Date struct {
	value string
}

// DateFromString builds a Date from a "YYYY-MM-DD" string.
func DateFromString(s string) (Date, error) {
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return Date{}, &InvalidValueError{Value: s, Message: "unparsable date: " + err.Error()}
	}
	return Date{value: s}, nil
}

// DateFromTime takes the calendar date of t, dropping the time of day.
func DateFromTime(t time.Time) Date {
	return Date{value: t.Format("2006-01-02")}
}

// Value returns the "YYYY-MM-DD" string.
func (d Date) Value() string { return d.value }

// ToTime returns midnight UTC of the date.
func (d Date) ToTime() (time.Time, error) {
	parsed, err := time.Parse("2006-01-02", d.value)
	if err != nil {
		return time.Time{}, &InvalidValueError{Value: d.value, Message: "unparsable date: " + err.Error()}
	}
	return parsed, nil
}

func (d Date) String() string { return d.value }

// Obj marks a mapping as literal object data rather than an expression. It
// encodes under the "@obj" escape tag and decoding "@obj" yields an Obj, so
// literal data round-trips without colliding with the tag namespace.
type Obj map[string]any

// Arr is a convenience alias for array literals in queries and documents.
type Arr []any
