// Package hours evaluates the workshop's weekly split-shift schedule.
package hours

import (
	"errors"
	"math"
	"time"
)

// ErrNoScheduledHours is returned when a schedule has no open intervals at
// all, which would otherwise make the next-opening scan spin forever.
var ErrNoScheduledHours = errors.New("hours: schedule has no open intervals")

// Interval is an open window expressed in fractional hours since midnight
// (7.5 = 07:30). Both bounds are inclusive.
type Interval struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Schedule maps the two weekday classes to their open intervals. Friday runs
// a reduced morning; every other day is a regular working day.
type Schedule struct {
	Regular []Interval
	Friday  []Interval

	location *time.Location
}

// NewSchedule builds a schedule evaluated in the given location.
// A nil location means UTC.
func NewSchedule(regular, friday []Interval, loc *time.Location) *Schedule {
	if loc == nil {
		loc = time.UTC
	}
	return &Schedule{Regular: regular, Friday: friday, location: loc}
}

// DefaultSchedule returns the workshop's posted hours: 7:30–13:30 and
// 15:00–19:30 on regular days, 7:30–12:30 and 15:00–19:30 on Fridays.
func DefaultSchedule(loc *time.Location) *Schedule {
	return NewSchedule(
		[]Interval{{Start: 7.5, End: 13.5}, {Start: 15, End: 19.5}},
		[]Interval{{Start: 7.5, End: 12.5}, {Start: 15, End: 19.5}},
		loc,
	)
}

// Location returns the zone the schedule is evaluated in.
func (s *Schedule) Location() *time.Location {
	return s.location
}

// IntervalsFor returns the open intervals for a weekday.
func (s *Schedule) IntervalsFor(day time.Weekday) []Interval {
	if day == time.Friday {
		return s.Friday
	}
	return s.Regular
}

func fractionalHour(t time.Time) float64 {
	return float64(t.Hour()) +
		float64(t.Minute())/60 +
		float64(t.Second())/3600 +
		float64(t.Nanosecond())/3600e9
}

func (iv Interval) contains(h float64) bool {
	return h >= iv.Start && h <= iv.End
}

func (iv Interval) startClock() (hour, min int) {
	hour = int(iv.Start)
	min = int(math.Round((iv.Start - float64(hour)) * 60))
	return hour, min
}

// IsOpen reports whether the workshop is open at the given instant,
// inclusive of both interval bounds.
func (s *Schedule) IsOpen(t time.Time) bool {
	local := t.In(s.location)
	h := fractionalHour(local)
	for _, iv := range s.IntervalsFor(local.Weekday()) {
		if iv.contains(h) {
			return true
		}
	}
	return false
}

// NextOpening returns the earliest open instant at or after t. The scan is
// bounded to eight days so a schedule with no intervals reports
// ErrNoScheduledHours instead of looping.
func (s *Schedule) NextOpening(t time.Time) (time.Time, error) {
	local := t.In(s.location)
	if s.IsOpen(local) {
		return local, nil
	}
	for offset := 0; offset < 8; offset++ {
		day := local.AddDate(0, 0, offset)
		for _, iv := range s.IntervalsFor(day.Weekday()) {
			hour, min := iv.startClock()
			start := time.Date(day.Year(), day.Month(), day.Day(), hour, min, 0, 0, s.location)
			if !start.Before(local) {
				return start, nil
			}
		}
	}
	return time.Time{}, ErrNoScheduledHours
}

// Status is a point-in-time snapshot for the UI's status card.
type Status struct {
	Open        bool
	CheckedAt   time.Time
	NextOpening time.Time
}

// StatusAt evaluates the schedule at t.
func (s *Schedule) StatusAt(t time.Time) (Status, error) {
	st := Status{Open: s.IsOpen(t), CheckedAt: t.In(s.location)}
	if !st.Open {
		next, err := s.NextOpening(t)
		if err != nil {
			return Status{}, err
		}
		st.NextOpening = next
	}
	return st, nil
}
