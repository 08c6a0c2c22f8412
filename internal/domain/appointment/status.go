package appointment

import (
	"fmt"
	"strings"
)

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusDone      Status = "done"
)

var statuses = []Status{StatusPending, StatusConfirmed, StatusCancelled, StatusDone}

// Statuses lists every accepted value in declaration order.
func Statuses() []Status {
	out := make([]Status, len(statuses))
	copy(out, statuses)
	return out
}

func (s Status) Valid() bool {
	for _, known := range statuses {
		if s == known {
			return true
		}
	}
	return false
}

// ParseStatus accepts the exact lowercase names only.
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if !s.Valid() {
		return "", fmt.Errorf("unknown appointment status %q", raw)
	}
	return s, nil
}

// InitialStatus is the status of an appointment created without one.
func InitialStatus() Status {
	return StatusPending
}

// OneOf renders the accepted values for validator tags and messages.
func OneOf() string {
	names := make([]string, len(statuses))
	for i, s := range statuses {
		names[i] = string(s)
	}
	return strings.Join(names, " ")
}
