package types

import (
	"fmt"
	"strings"
	"time"
)

// Steep-time bounds and construction defaults.
const (
	MinSteepTime = SteepTime(time.Second)
	MaxSteepTime = SteepTime(30 * time.Minute)

	DefaultSteepTime = SteepTime(2 * time.Minute)
	DefaultBrewTemp  = 212
)

// Brew-temperature bounds in degrees Fahrenheit. Out-of-range values
// are clamped to MaxBrewTemp, never rejected.
const (
	MinBrewTemp = 32
	MaxBrewTemp = 212
)

// TeaVariety is the persisted record: a named tea with its steep time
// and brew temperature. ID is store-assigned; zero means unsaved.
type TeaVariety struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	SteepTime SteepTime `json:"steepTime"`
	BrewTemp  int       `json:"brewTemp"` // degrees Fahrenheit
}

// New creates a tea variety with the default steep time (2 minutes)
// and brew temperature (212 °F).
func New(name string) *TeaVariety {
	return &TeaVariety{
		Name:      name,
		SteepTime: DefaultSteepTime,
		BrewTemp:  DefaultBrewTemp,
	}
}

// NewSteeped creates a tea variety with an explicit steep time and brew
// temperature. Returns ErrSteepTimeOutOfRange if the steep time is not
// in (0, 30m]; an out-of-range brew temperature is clamped to 212 °F.
func NewSteeped(name string, steep SteepTime, brewTemp int) (*TeaVariety, error) {
	if steep <= 0 || steep > MaxSteepTime {
		return nil, fmt.Errorf("steep time %s: %w", steep, ErrSteepTimeOutOfRange)
	}
	return &TeaVariety{
		Name:      name,
		SteepTime: steep,
		BrewTemp:  clampBrewTemp(brewTemp),
	}, nil
}

// NewFromText creates a tea variety from a textual steep time such as
// "00:03:00". Returns an error wrapping ErrSteepTimeParse for invalid
// text and ErrSteepTimeOutOfRange for an out-of-bound duration.
func NewFromText(name, steep string, brewTemp int) (*TeaVariety, error) {
	st, err := ParseSteepTime(steep)
	if err != nil {
		return nil, err
	}
	return NewSteeped(name, st, brewTemp)
}

// Validate normalizes the variety in place and checks its invariants:
// the name is trimmed and must be non-empty, the brew temperature is
// clamped into (32, 212], and the steep time must be in [1s, 30m].
// Validate is idempotent; every backend runs it before add, update and
// delete. The caller must treat the receiver as consumed-and-returned,
// not as an untouched copy.
func (t *TeaVariety) Validate() error {
	t.Name = strings.TrimSpace(t.Name)
	if t.Name == "" {
		return ErrEmptyName
	}

	t.BrewTemp = clampBrewTemp(t.BrewTemp)

	if t.SteepTime < MinSteepTime || t.SteepTime > MaxSteepTime {
		return fmt.Errorf("steep time %s: %w", t.SteepTime, ErrSteepTimeOutOfRange)
	}
	return nil
}

// clampBrewTemp forces a brew temperature into (MinBrewTemp, MaxBrewTemp].
func clampBrewTemp(temp int) int {
	if temp > MaxBrewTemp || temp <= MinBrewTemp {
		return MaxBrewTemp
	}
	return temp
}
