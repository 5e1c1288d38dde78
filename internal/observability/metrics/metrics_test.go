package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestBookingMetricsObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewBookingMetrics(reg)
	m.ObserveSessionStarted()
	m.ObserveSubmission("composed", "en")
	m.ObserveValidationFailure("invalid_phone")
	m.SetBusinessOpen(true)
	m.SetBusinessOpen(false)
}

func TestBookingMetricsNilSafe(t *testing.T) {
	var m *BookingMetrics
	m.ObserveSessionStarted()
	m.ObserveSubmission("composed", "ar")
	m.ObserveValidationFailure("past_date")
	m.SetBusinessOpen(true)
}
