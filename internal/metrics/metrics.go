package metrics

import "github.com/prometheus/client_golang/prometheus"

const namespace = "order_notifier"

// Context labels for the two ingestion paths.
const (
	ContextForeground = "foreground"
	ContextBackground = "background"
)

// Transition results.
const (
	ResultOK       = "ok"
	ResultInvalid  = "invalid"
	ResultConflict = "conflict"
	ResultError    = "error"
	ResultNoOp     = "noop"
)

type Metrics struct {
	EventsReceived       *prometheus.CounterVec
	EventsDuplicate      *prometheus.CounterVec
	EventsMalformed      *prometheus.CounterVec
	Presentations        *prometheus.CounterVec
	PresentationFailures *prometheus.CounterVec
	Popups               prometheus.Counter
	FeedAppends          prometheus.Counter

	Transitions    *prometheus.CounterVec
	ItemDeliveries *prometheus.CounterVec

	TokenRegistrationFailures prometheus.Counter
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		EventsReceived: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "events_received_total",
				Help:      "Total number of notification events received",
			},
			[]string{"source", "context"},
		),
		EventsDuplicate: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "events_duplicate_total",
				Help:      "Total number of events suppressed as duplicates",
			},
			[]string{"source", "context"},
		),
		EventsMalformed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "events_malformed_total",
				Help:      "Total number of events dropped as malformed",
			},
			[]string{"source", "context"},
		),
		Presentations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "presentations_total",
				Help:      "Total number of notifications rendered on the surface",
			},
			[]string{"channel", "context"},
		),
		PresentationFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "presentation_failures_total",
				Help:      "Total number of notifications the surface refused",
			},
			[]string{"context"},
		),
		Popups: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "popups_total",
				Help:      "Total number of in-app popup signals emitted",
			},
		),
		FeedAppends: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "feed_appends_total",
				Help:      "Total number of notifications appended to the in-app feed",
			},
		),
		Transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "transitions_total",
				Help:      "Total number of order status transitions requested by staff",
			},
			[]string{"to", "result"},
		),
		ItemDeliveries: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "item_deliveries_total",
				Help:      "Total number of item delivered marks requested by staff",
			},
			[]string{"result"},
		),
		TokenRegistrationFailures: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "token_registration_failures_total",
				Help:      "Total number of push token registrations that could not be forwarded",
			},
		),
	}

	if reg != nil {
		reg.MustRegister(
			m.EventsReceived,
			m.EventsDuplicate,
			m.EventsMalformed,
			m.Presentations,
			m.PresentationFailures,
			m.Popups,
			m.FeedAppends,
			m.Transitions,
			m.ItemDeliveries,
			m.TokenRegistrationFailures,
		)
	}

	return m
}
