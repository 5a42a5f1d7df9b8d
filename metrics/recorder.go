package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder holds the service's metrics and is shared by the request handlers.
// It works against either registry mode.
type Recorder struct {
	signups         CounterVec
	unregistrations CounterVec
	rejections      CounterVec
	participants    GaugeVec
}

// NewRecorder registers the service's metrics with the given registry.
func NewRecorder(reg Registry) (*Recorder, error) {
	signups, err := reg.NewCounterVec(prometheus.CounterOpts{
		Name: "signups_total",
		Help: "Number of successful activity signups.",
	}, []string{"activity"})
	if err != nil {
		return nil, fmt.Errorf("creating signups counter: %w", err)
	}

	unregistrations, err := reg.NewCounterVec(prometheus.CounterOpts{
		Name: "unregistrations_total",
		Help: "Number of successful activity unregistrations.",
	}, []string{"activity"})
	if err != nil {
		return nil, fmt.Errorf("creating unregistrations counter: %w", err)
	}

	rejections, err := reg.NewCounterVec(prometheus.CounterOpts{
		Name: "rejected_requests_total",
		Help: "Number of signup/unregister requests rejected, by reason.",
	}, []string{"reason"})
	if err != nil {
		return nil, fmt.Errorf("creating rejections counter: %w", err)
	}

	participants, err := reg.NewGaugeVec(prometheus.GaugeOpts{
		Name: "participants",
		Help: "Current roster size per activity.",
	}, []string{"activity"})
	if err != nil {
		return nil, fmt.Errorf("creating participants gauge: %w", err)
	}

	return &Recorder{
		signups:         signups,
		unregistrations: unregistrations,
		rejections:      rejections,
		participants:    participants,
	}, nil
}

// RecordSignup records a successful signup and the resulting roster size.
func (r *Recorder) RecordSignup(activity string, rosterSize int) {
	r.signups.With(prometheus.Labels{"activity": activity}).Inc()
	r.participants.With(prometheus.Labels{"activity": activity}).Set(float64(rosterSize))
}

// RecordUnregister records a successful unregistration and the resulting roster size.
func (r *Recorder) RecordUnregister(activity string, rosterSize int) {
	r.unregistrations.With(prometheus.Labels{"activity": activity}).Inc()
	r.participants.With(prometheus.Labels{"activity": activity}).Set(float64(rosterSize))
}

// RecordRejection records a rejected signup or unregister request.
// Reason is a short label like "not_found" or "duplicate".
func (r *Recorder) RecordRejection(reason string) {
	r.rejections.With(prometheus.Labels{"reason": reason}).Inc()
}
