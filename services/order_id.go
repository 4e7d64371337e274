package services

import (
	"context"
	"fmt"

	"travel-backend/models"
	"travel-backend/utils"
)

const DefaultOrderIDAttempts = 25

// OrderIDAllocator hands out 4-digit order ids that are not used by any stored booking.
// The check is not atomic with the insert; BookingService retries the insert when the
// unique index still rejects the id.
type OrderIDAllocator struct {
	lookup      OrderIDLookup
	generate    func() (string, error)
	maxAttempts int
}

func NewOrderIDAllocator(lookup OrderIDLookup, maxAttempts int) *OrderIDAllocator {
	if maxAttempts <= 0 {
		maxAttempts = DefaultOrderIDAttempts
	}
	return &OrderIDAllocator{
		lookup:      lookup,
		generate:    utils.GenerateOrderID,
		maxAttempts: maxAttempts,
	}
}

func (a *OrderIDAllocator) MaxAttempts() int { return a.maxAttempts }

// Allocate returns an order id that was free at the time of the check, or a
// conflict error once maxAttempts candidates were all taken.
func (a *OrderIDAllocator) Allocate(ctx context.Context) (string, error) {
	for attempt := 0; attempt < a.maxAttempts; attempt++ {
		candidate, err := a.generate()
		if err != nil {
			return "", fmt.Errorf("generate order id: %w", err)
		}
		taken, err := a.lookup.OrderIDExists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("check order id: %w", err)
		}
		if !taken {
			return candidate, nil
		}
		orderIDCollisions.WithLabelValues("lookup").Inc()
	}
	return "", models.Conflictf("Could not allocate a unique order id, please try again later")
}
