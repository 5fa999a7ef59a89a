package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Transition outcomes.
const (
	OutcomeApplied  = "applied"
	OutcomeRejected = "rejected"
)

// Advice outcomes.
const (
	AdviceGenerated = "generated"
	AdviceFallback  = "fallback"
	AdviceStale     = "stale"
)

var (
	transitionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "coach_app",
		Subsystem: "state",
		Name:      "transitions_total",
		Help:      "State transitions dispatched, by transition name and outcome.",
	}, []string{"transition", "outcome"})
	undoTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "coach_app",
		Subsystem: "state",
		Name:      "undo_total",
		Help:      "Snapshots restored through undo.",
	})
	adviceTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "coach_app",
		Subsystem: "advice",
		Name:      "responses_total",
		Help:      "Advice generator responses, by outcome.",
	}, []string{"outcome"})
	adviceInFlight = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "coach_app",
		Subsystem: "advice",
		Name:      "requests_in_flight",
		Help:      "Advice requests waiting on the generator.",
	})
)

func init() {
	prometheus.MustRegister(transitionsTotal, undoTotal, adviceTotal, adviceInFlight)
}

// RecordTransition counts one dispatched transition.
func RecordTransition(name string, err error) {
	outcome := OutcomeApplied
	if err != nil {
		outcome = OutcomeRejected
	}
	transitionsTotal.WithLabelValues(name, outcome).Inc()
}

// RecordUndo counts one restored snapshot.
func RecordUndo() {
	undoTotal.Inc()
}

// RecordAdvice counts one advice response.
func RecordAdvice(outcome string) {
	adviceTotal.WithLabelValues(outcome).Inc()
}

// AdviceStarted and AdviceFinished track requests in flight.
func AdviceStarted() {
	adviceInFlight.Inc()
}

func AdviceFinished() {
	adviceInFlight.Dec()
}
