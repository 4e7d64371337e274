package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	bookingsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "travel_bookings_created_total",
		Help: "The total number of bookings created",
	})
	bookingStatusChanges = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "travel_booking_status_changes_total",
		Help: "Booking status updates by target status",
	}, []string{"status"})
	orderIDCollisions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "travel_order_id_collisions_total",
		Help: "Order id candidates rejected, by the stage that caught the collision",
	}, []string{"stage"})
)
