package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

const (
	clockLayout = "15:04:05"
	dateLayout  = "2006-01-02"
)

// ClockTime is a time of day stored in a TIME column and rendered as HH:MM:SS.
type ClockTime string

// ParseClock accepts HH:MM, HH:MM:SS and HH:MM:SS.ffffff.
func ParseClock(raw string) (ClockTime, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range []string{"15:04", clockLayout, "15:04:05.999999999"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return ClockTime(t.Format(clockLayout)), nil
		}
	}
	return "", fmt.Errorf("invalid time of day %q", raw)
}

func (c ClockTime) Value() (driver.Value, error) {
	if c == "" {
		return nil, nil
	}
	return string(c), nil
}

func (c *ClockTime) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*c = ""
		return nil
	case time.Time:
		*c = ClockTime(v.Format(clockLayout))
		return nil
	case []byte:
		return c.scanString(string(v))
	case string:
		return c.scanString(v)
	}
	return fmt.Errorf("cannot scan %T into ClockTime", src)
}

func (c *ClockTime) scanString(s string) error {
	// sqlite may hand back a full timestamp for TIME columns
	if len(s) > len(dateLayout) && s[4] == '-' {
		if i := strings.IndexAny(s, "T "); i >= 0 {
			s = s[i+1:]
		}
		if i := strings.IndexAny(s, "+-Z"); i >= 0 {
			s = s[:i]
		}
	}
	parsed, err := ParseClock(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Date is a calendar day stored in a DATE column and rendered as YYYY-MM-DD.
type Date string

func ParseDate(raw string) (Date, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("invalid date %q", raw)
	}
	return Date(t.Format(dateLayout)), nil
}

func (d Date) Value() (driver.Value, error) {
	if d == "" {
		return nil, nil
	}
	return string(d), nil
}

func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = ""
		return nil
	case time.Time:
		*d = Date(v.Format(dateLayout))
		return nil
	case []byte:
		return d.scanString(string(v))
	case string:
		return d.scanString(v)
	}
	return fmt.Errorf("cannot scan %T into Date", src)
}

func (d *Date) scanString(s string) error {
	if len(s) > len(dateLayout) {
		s = s[:len(dateLayout)]
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
