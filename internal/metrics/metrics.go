package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ClientsRegistered = promauto.NewCounter(prometheus.CounterOpts{
		Name: "roomfinder_clients_registered_total",
		Help: "Registered clients",
	})

	BookingsConfirmed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "roomfinder_bookings_confirmed_total",
		Help: "Paid bookings committed to the ledger",
	})

	BookingsRescheduled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "roomfinder_bookings_rescheduled_total",
		Help: "Paid reschedules committed to the ledger",
	})

	BookingsCancelled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "roomfinder_bookings_cancelled_total",
		Help: "Cancelled bookings",
	})

	BookingsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "roomfinder_bookings_rejected_total",
		Help: "Booking operations rejected by validation",
	}, []string{"reason"})
)
