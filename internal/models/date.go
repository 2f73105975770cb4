package models

import (
	"database/sql/driver"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// DateOnly is a calendar date without a time component. It serializes to
// JSON as "YYYY-MM-DD" and maps to a SQL DATE column. Nullable fields use
// *DateOnly so an absent date serializes as null.
type DateOnly struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) DateOnly {
	return DateOnly{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate accepts only the YYYY-MM-DD form.
func ParseDate(s string) (DateOnly, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return DateOnly{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return DateOnly{t}, nil
}

func (d DateOnly) String() string {
	return d.Format(dateLayout)
}

func (d DateOnly) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *DateOnly) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid date %s", s)
	}
	parsed, err := ParseDate(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d DateOnly) Value() (driver.Value, error) {
	return d.Time, nil
}

func (d *DateOnly) Scan(value interface{}) error {
	switch v := value.(type) {
	case time.Time:
		d.Time = v
		return nil
	case []byte:
		parsed, err := ParseDate(string(v))
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case string:
		parsed, err := ParseDate(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	default:
		return fmt.Errorf("cannot scan %T into DateOnly", value)
	}
}

// Before reports whether d falls strictly before other, comparing dates only.
func (d DateOnly) Before(other DateOnly) bool {
	return d.Time.Before(other.Time)
}

func (d DateOnly) After(other DateOnly) bool {
	return d.Time.After(other.Time)
}
