package metrics

import "github.com/prometheus/client_golang/prometheus"

// BookingMetrics exposes counters/gauges for the appointment form flow.
type BookingMetrics struct {
	sessionsStarted    prometheus.Counter
	submissionsTotal   *prometheus.CounterVec
	validationFailures *prometheus.CounterVec
	businessOpen       prometheus.Gauge
}

func NewBookingMetrics(reg prometheus.Registerer) *BookingMetrics {
	m := &BookingMetrics{
		sessionsStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "workshop",
			Subsystem: "booking",
			Name:      "sessions_started_total",
			Help:      "Total booking form sessions created",
		}),
		submissionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "workshop",
			Subsystem: "booking",
			Name:      "submissions_total",
			Help:      "Total submission attempts",
		}, []string{"status", "locale"}),
		validationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "workshop",
			Subsystem: "booking",
			Name:      "validation_failures_total",
			Help:      "Details-step validation failures by rule kind",
		}, []string{"kind"}),
		businessOpen: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "workshop",
			Subsystem: "hours",
			Name:      "business_open",
			Help:      "1 when the workshop is currently open, 0 otherwise",
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.sessionsStarted, m.submissionsTotal, m.validationFailures, m.businessOpen)
	return m
}

func (m *BookingMetrics) ObserveSessionStarted() {
	if m == nil {
		return
	}
	m.sessionsStarted.Inc()
}

func (m *BookingMetrics) ObserveSubmission(status, locale string) {
	if m == nil {
		return
	}
	m.submissionsTotal.WithLabelValues(status, locale).Inc()
}

func (m *BookingMetrics) ObserveValidationFailure(kind string) {
	if m == nil {
		return
	}
	m.validationFailures.WithLabelValues(kind).Inc()
}

func (m *BookingMetrics) SetBusinessOpen(open bool) {
	if m == nil {
		return
	}
	if open {
		m.businessOpen.Set(1)
		return
	}
	m.businessOpen.Set(0)
}
