package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

const (
	// MinutesPerDay bounds every TimeOfDay value.
	MinutesPerDay = 24 * 60
	// EndOfDay is the latest representable time of day, 23:59.
	EndOfDay TimeOfDay = MinutesPerDay - 1
)

// TimeOfDay is a wall-clock time in minutes since midnight, 0..1439.
// It carries no date and never wraps.
type TimeOfDay int

// NewTimeOfDay builds a TimeOfDay from hour and minute.
func NewTimeOfDay(hour, minute int) TimeOfDay {
	return TimeOfDay(hour*60 + minute)
}

// ParseTimeOfDay accepts "HH:MM" or "HH:MM:SS". Seconds, when present, must be
// zero since slots have minute resolution.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("invalid time of day %q", s)
	}
	h, okH := twoDigits(parts[0])
	m, okM := twoDigits(parts[1])
	if !okH || !okM || h > 23 || m > 59 {
		return 0, fmt.Errorf("invalid time of day %q", s)
	}
	if len(parts) == 3 {
		if sec, ok := twoDigits(parts[2]); !ok || sec != 0 {
			return 0, fmt.Errorf("invalid time of day %q", s)
		}
	}
	return NewTimeOfDay(h, m), nil
}

func twoDigits(s string) (int, bool) {
	if len(s) != 2 || s[0] < '0' || s[0] > '9' || s[1] < '0' || s[1] > '9' {
		return 0, false
	}
	return int(s[0]-'0')*10 + int(s[1]-'0'), true
}

// MustTimeOfDay is ParseTimeOfDay for literals; it panics on bad input.
func MustTimeOfDay(s string) TimeOfDay {
	t, err := ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return t
}

func (t TimeOfDay) Hour() int   { return int(t) / 60 }
func (t TimeOfDay) Minute() int { return int(t) % 60 }

// Valid reports whether t lies within a single day.
func (t TimeOfDay) Valid() bool {
	return t >= 0 && t <= EndOfDay
}

// Add returns t shifted by minutes, clamped to [00:00, 23:59].
func (t TimeOfDay) Add(minutes int) TimeOfDay {
	out := int(t) + minutes
	if out > int(EndOfDay) {
		return EndOfDay
	}
	if out < 0 {
		return 0
	}
	return TimeOfDay(out)
}

// String renders "HH:MM".
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// WireString renders "HH:MM:SS" as the submission endpoint expects.
func (t TimeOfDay) WireString() string {
	return fmt.Sprintf("%02d:%02d:00", t.Hour(), t.Minute())
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
