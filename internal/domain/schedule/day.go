package schedule

import "fmt"

type DayOfWeek string

const (
	Monday    DayOfWeek = "monday"
	Tuesday   DayOfWeek = "tuesday"
	Wednesday DayOfWeek = "wednesday"
	Thursday  DayOfWeek = "thursday"
	Friday    DayOfWeek = "friday"
	Saturday  DayOfWeek = "saturday"
	Sunday    DayOfWeek = "sunday"
)

var days = []DayOfWeek{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

func (d DayOfWeek) Valid() bool {
	for _, known := range days {
		if d == known {
			return true
		}
	}
	return false
}

func ParseDayOfWeek(raw string) (DayOfWeek, error) {
	d := DayOfWeek(raw)
	if !d.Valid() {
		return "", fmt.Errorf("unknown day of week %q", raw)
	}
	return d, nil
}
