// Package metrics exposes Prometheus collectors for chat traffic.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder is safe to use as a nil pointer; all methods become no-ops.
type Recorder struct {
	chatRequests   *prometheus.CounterVec
	chatDuration   *prometheus.HistogramVec
	keyValidations *prometheus.CounterVec
	sessions       prometheus.Counter
}

func New(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		chatRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "kirana",
			Name:      "chat_requests_total",
			Help:      "Chat calls to the LLM by assistant mode and outcome.",
		}, []string{"mode", "outcome"}),
		chatDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "kirana",
			Name:      "chat_duration_seconds",
			Help:      "Latency of LLM chat calls.",
			Buckets:   []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32, 60},
		}, []string{"mode"}),
		keyValidations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "kirana",
			Name:      "key_validations_total",
			Help:      "API key validation attempts by result.",
		}, []string{"result"}),
		sessions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "kirana",
			Name:      "sessions_created_total",
			Help:      "Browser sessions created since start.",
		}),
	}
	reg.MustRegister(r.chatRequests, r.chatDuration, r.keyValidations, r.sessions)
	return r
}

// ObserveChat records one gateway call. outcome is "ok" or an error kind.
func (r *Recorder) ObserveChat(mode, outcome string, d time.Duration) {
	if r == nil {
		return
	}
	r.chatRequests.WithLabelValues(mode, outcome).Inc()
	r.chatDuration.WithLabelValues(mode).Observe(d.Seconds())
}

func (r *Recorder) KeyValidation(ok bool) {
	if r == nil {
		return
	}
	result := "invalid"
	if ok {
		result = "valid"
	}
	r.keyValidations.WithLabelValues(result).Inc()
}

func (r *Recorder) SessionCreated() {
	if r == nil {
		return
	}
	r.sessions.Inc()
}
