package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the intake pipeline.
type Metrics struct {
	SubmissionsTotal     *prometheus.CounterVec
	PaymentInitiations   *prometheus.CounterVec
	PaymentVerifications *prometheus.CounterVec
	NotificationFailures prometheus.Counter
	StoreUnavailable     prometheus.Counter
}

// New creates and registers all metrics on the given registerer.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		SubmissionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "leadgate_submissions_total",
			Help: "Submissions processed, labelled by domain and outcome.",
		}, []string{"domain", "outcome"}),
		PaymentInitiations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "leadgate_payment_initiations_total",
			Help: "Hosted payment page initiations, labelled by outcome.",
		}, []string{"outcome"}),
		PaymentVerifications: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "leadgate_payment_verifications_total",
			Help: "Payment verification calls, labelled by result status.",
		}, []string{"status"}),
		NotificationFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "leadgate_notification_failures_total",
			Help: "Notification tasks that failed; deliveries are best-effort.",
		}),
		StoreUnavailable: factory.NewCounter(prometheus.CounterOpts{
			Name: "leadgate_store_unavailable_total",
			Help: "Writes skipped because the record store was unreachable.",
		}),
	}
}

// NewDefault registers on the default Prometheus registry.
func NewDefault() *Metrics {
	return New(prometheus.DefaultRegisterer)
}

func (m *Metrics) ObserveSubmission(domain, outcome string) {
	m.SubmissionsTotal.WithLabelValues(domain, outcome).Inc()
}
