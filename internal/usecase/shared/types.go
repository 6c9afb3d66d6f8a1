package shared

import (
	"context"

	"venue-reservation/internal/domain/reservation"
)

// ChangeNotifier fans occupancy changes out to live viewers. Delivery is
// best effort; it never fails the operation that caused the change.
type ChangeNotifier interface {
	AvailabilityChanged(ctx context.Context, key reservation.SlotKey)
	LockExpired(ctx context.Context, sessionToken string)
}
