package domain

import (
	"time"
)

// Session duration bounds in minutes.
const (
	MinSessionMinutes = 30
	MaxSessionMinutes = 120
)

// TimeSlot is the calendar date and time interval a booking occupies.
// It is immutable once constructed; build instances through NewTimeSlot.
// Times carry no timezone semantics; the slot lives on the trainer's
// local calendar.
type TimeSlot struct {
	Date      time.Time `bson:"date" json:"date"`
	StartTime time.Time `bson:"startTime" json:"startTime"`
	EndTime   time.Time `bson:"endTime" json:"endTime"`
}

// NewTimeSlot builds a validated TimeSlot. The date portion of the first
// argument names the calendar day; the clock portions of startTime and
// endTime are re-anchored onto that day so that a slot is always
// internally consistent. Fails with ValidationError if the end does not
// come strictly after the start.
func NewTimeSlot(date, startTime, endTime time.Time) (TimeSlot, error) {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	start := anchorClock(day, startTime)
	end := anchorClock(day, endTime)

	if !end.After(start) {
		return TimeSlot{}, NewValidationError("time slot end time must be after start time")
	}

	return TimeSlot{
		Date:      day,
		StartTime: start,
		EndTime:   end,
	}, nil
}

// anchorClock places the clock portion of t onto the given day.
func anchorClock(day, t time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
}

// SameDate reports whether both slots fall on the same calendar day.
func (ts TimeSlot) SameDate(other TimeSlot) bool {
	return ts.Date.Equal(other.Date)
}

// OverlapsWith reports whether two slots collide on a trainer's calendar.
// Slots on different dates never overlap. Intervals are half-open: a slot
// ending at 10:00 does not overlap one starting at 10:00.
func (ts TimeSlot) OverlapsWith(other TimeSlot) bool {
	if !ts.SameDate(other) {
		return false
	}
	return ts.StartTime.Before(other.EndTime) && other.StartTime.Before(ts.EndTime)
}

// SessionDuration is the length of a training session in minutes,
// bounded to [MinSessionMinutes, MaxSessionMinutes].
type SessionDuration int

// NewSessionDuration validates the minute count and returns the value
// object, or a ValidationError when outside the permitted range.
func NewSessionDuration(minutes int) (SessionDuration, error) {
	if minutes < MinSessionMinutes || minutes > MaxSessionMinutes {
		return 0, NewValidationError("session duration must be between %d and %d minutes, got %d",
			MinSessionMinutes, MaxSessionMinutes, minutes)
	}
	return SessionDuration(minutes), nil
}

// Minutes returns the duration as a plain minute count.
func (d SessionDuration) Minutes() int {
	return int(d)
}
