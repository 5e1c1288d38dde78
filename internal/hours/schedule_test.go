package hours

import (
	"testing"
	"time"
)

// 2026-08-31 is a Monday, 2026-09-04 is a Friday.
func mustDate(t *testing.T, y int, m time.Month, d, hh, mm, ss, ns int) time.Time {
	t.Helper()
	return time.Date(y, m, d, hh, mm, ss, ns, time.UTC)
}

func TestIsOpenRegularDay(t *testing.T) {
	s := DefaultSchedule(time.UTC)

	monday10 := mustDate(t, 2026, time.August, 31, 10, 0, 0, 0)
	if !s.IsOpen(monday10) {
		t.Error("expected open Monday 10:00")
	}

	monday14 := mustDate(t, 2026, time.August, 31, 14, 0, 0, 0)
	if s.IsOpen(monday14) {
		t.Error("expected closed during midday break")
	}

	monday20 := mustDate(t, 2026, time.August, 31, 20, 0, 0, 0)
	if s.IsOpen(monday20) {
		t.Error("expected closed after evening shift")
	}
}

func TestIsOpenInclusiveBoundary(t *testing.T) {
	s := DefaultSchedule(time.UTC)

	// 13.5 fractional hours is 13:30:00 exactly — still open.
	atClose := mustDate(t, 2026, time.August, 31, 13, 30, 0, 0)
	if !s.IsOpen(atClose) {
		t.Error("expected open at the inclusive end bound 13:30:00")
	}

	// Any instant past the bound is closed.
	justAfter := atClose.Add(time.Millisecond)
	if s.IsOpen(justAfter) {
		t.Error("expected closed just after 13:30:00")
	}

	atOpen := mustDate(t, 2026, time.August, 31, 7, 30, 0, 0)
	if !s.IsOpen(atOpen) {
		t.Error("expected open at the inclusive start bound 7:30:00")
	}
}

func TestFridayMiddayClosed(t *testing.T) {
	s := DefaultSchedule(time.UTC)

	friday13 := mustDate(t, 2026, time.September, 4, 13, 0, 0, 0)
	if s.IsOpen(friday13) {
		t.Error("expected closed Friday 13:00 (reduced morning ends 12:30)")
	}

	next, err := s.NextOpening(friday13)
	if err != nil {
		t.Fatalf("NextOpening: %v", err)
	}
	want := mustDate(t, 2026, time.September, 4, 15, 0, 0, 0)
	if !next.Equal(want) {
		t.Errorf("expected next opening same day 15:00, got %s", next)
	}
}

func TestNextOpeningWhenAlreadyOpen(t *testing.T) {
	s := DefaultSchedule(time.UTC)
	monday10 := mustDate(t, 2026, time.August, 31, 10, 0, 0, 0)
	next, err := s.NextOpening(monday10)
	if err != nil {
		t.Fatalf("NextOpening: %v", err)
	}
	if !next.Equal(monday10) {
		t.Errorf("expected the instant itself when open, got %s", next)
	}
}

func TestNextOpeningRollsToNextDay(t *testing.T) {
	s := DefaultSchedule(time.UTC)
	mondayNight := mustDate(t, 2026, time.August, 31, 21, 0, 0, 0)
	next, err := s.NextOpening(mondayNight)
	if err != nil {
		t.Fatalf("NextOpening: %v", err)
	}
	want := mustDate(t, 2026, time.September, 1, 7, 30, 0, 0)
	if !next.Equal(want) {
		t.Errorf("expected Tuesday 07:30, got %s", next)
	}
}

func TestNextOpeningEmptySchedule(t *testing.T) {
	s := NewSchedule(nil, nil, time.UTC)
	if _, err := s.NextOpening(time.Now()); err != ErrNoScheduledHours {
		t.Fatalf("expected ErrNoScheduledHours, got %v", err)
	}
}

func TestStatusAt(t *testing.T) {
	s := DefaultSchedule(time.UTC)

	open, err := s.StatusAt(mustDate(t, 2026, time.August, 31, 10, 0, 0, 0))
	if err != nil {
		t.Fatalf("StatusAt: %v", err)
	}
	if !open.Open {
		t.Error("expected open status")
	}

	closed, err := s.StatusAt(mustDate(t, 2026, time.August, 31, 14, 0, 0, 0))
	if err != nil {
		t.Fatalf("StatusAt: %v", err)
	}
	if closed.Open {
		t.Error("expected closed status")
	}
	if closed.NextOpening.Hour() != 15 {
		t.Errorf("expected next opening 15:00, got %s", closed.NextOpening)
	}

	if _, err := NewSchedule(nil, nil, time.UTC).StatusAt(time.Now()); err == nil {
		t.Error("expected error for empty schedule")
	}
}

func TestScheduleLocation(t *testing.T) {
	muscat := time.FixedZone("GST", 4*3600)
	s := DefaultSchedule(muscat)

	// 06:00 UTC on a Monday is 10:00 in Muscat — open.
	utcMorning := mustDate(t, 2026, time.August, 31, 6, 0, 0, 0)
	if !s.IsOpen(utcMorning) {
		t.Error("expected open when local Muscat time is 10:00")
	}
}
