package metrics

import (
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "nailstudio",
			Name:      "http_requests_total",
			Help:      "HTTP requests by endpoint and status.",
		},
		[]string{"endpoint", "status"},
	)

	entriesBooked = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "nailstudio",
			Name:      "entries_booked_total",
			Help:      "Entries accepted by the slot conflict checker.",
		},
	)

	slotConflicts = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "nailstudio",
			Name:      "slot_conflicts_total",
			Help:      "Booking attempts rejected because the slot was taken.",
		},
	)
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(httpRequests, entriesBooked, slotConflicts)
	})
}

// IncHTTP increments the request counter for an endpoint label.
func IncHTTP(endpoint string, status int) {
	httpRequests.WithLabelValues(endpoint, strconv.Itoa(status)).Inc()
}

func IncEntryBooked() {
	entriesBooked.Inc()
}

func IncSlotConflict() {
	slotConflicts.Inc()
}
