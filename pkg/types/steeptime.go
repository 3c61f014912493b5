package types

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// SteepTime is a brew duration. Its text and JSON form is "hh:mm:ss",
// the shape the REST surface exchanges; parsing additionally accepts Go
// duration strings such as "3m" for CLI convenience.
type SteepTime time.Duration

// ParseSteepTime parses "hh:mm:ss" (or "mm:ss") clock notation, falling
// back to time.ParseDuration. Returns an error wrapping ErrSteepTimeParse
// if the text is neither.
func ParseSteepTime(s string) (SteepTime, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty string", ErrSteepTimeParse)
	}

	if strings.Contains(s, ":") {
		d, err := parseClock(s)
		if err != nil {
			return 0, fmt.Errorf("%w: %q: %v", ErrSteepTimeParse, s, err)
		}
		return SteepTime(d), nil
	}

	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrSteepTimeParse, s, err)
	}
	return SteepTime(d), nil
}

// parseClock parses "hh:mm:ss" or "mm:ss" into a duration.
func parseClock(s string) (time.Duration, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("expected hh:mm:ss or mm:ss")
	}

	fields := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return 0, fmt.Errorf("segment %q is not a number", p)
		}
		if n < 0 {
			return 0, fmt.Errorf("segment %q is negative", p)
		}
		fields[i] = n
	}

	var h, m, sec int
	if len(fields) == 3 {
		h, m, sec = fields[0], fields[1], fields[2]
	} else {
		m, sec = fields[0], fields[1]
	}
	if m > 59 || sec > 59 {
		return 0, fmt.Errorf("minutes and seconds must be below 60")
	}

	return time.Duration(h)*time.Hour +
		time.Duration(m)*time.Minute +
		time.Duration(sec)*time.Second, nil
}

// Duration returns the steep time as a time.Duration.
func (t SteepTime) Duration() time.Duration {
	return time.Duration(t)
}

// String formats the steep time as "hh:mm:ss".
func (t SteepTime) String() string {
	d := time.Duration(t)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// MarshalJSON encodes the steep time as a quoted "hh:mm:ss" string.
func (t SteepTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON decodes a quoted "hh:mm:ss" or Go duration string.
func (t *SteepTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %v", ErrSteepTimeParse, err)
	}
	parsed, err := ParseSteepTime(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
