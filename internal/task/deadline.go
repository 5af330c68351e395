package task

import "time"

// NearHorizonDays is how many days ahead a deadline still counts as near.
const NearHorizonDays = 3

type Proximity int

const (
	NoDeadline Proximity = iota
	Overdue
	DueSoon
	Later
)

func (p Proximity) String() string {
	switch p {
	case Overdue:
		return "overdue"
	case DueSoon:
		return "due soon"
	case Later:
		return "later"
	default:
		return "no deadline"
	}
}

// DaysUntil returns the number of whole days from today to deadline.
// It is negative once the deadline has passed.
func DaysUntil(deadline, today Date) int {
	return int(deadline.midnight().Sub(today.midnight()) / (24 * time.Hour))
}

// Classify places deadline relative to today.
func Classify(deadline, today Date) Proximity {
	if deadline.IsZero() {
		return NoDeadline
	}
	days := DaysUntil(deadline, today)
	switch {
	case days < 0:
		return Overdue
	case days <= NearHorizonDays:
		return DueSoon
	default:
		return Later
	}
}

// IsNear reports whether deadline falls between today and NearHorizonDays
// days from now, both inclusive. Past deadlines are Overdue, not near.
func IsNear(deadline, today Date) bool {
	return Classify(deadline, today) == DueSoon
}
