package usecase

import (
	"venue-reservation/internal/infra"
	"venue-reservation/internal/pkg/errs"
)

var (
	ErrRegionNotFound          = errs.New("region not found")
	ErrReservationNotFound     = errs.New("reservation not found")
	ErrNoTablesAvailable       = errs.New("no tables available")
	ErrNoValidHold             = errs.New("no valid hold for this session")
	ErrNoHoldsForSession       = errs.New("no holds found for this session")
	ErrEmptySessionToken       = errs.New("session token is required")
	ErrEmptyEmail              = errs.New("email is required")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

func invalidInput(err error) error {
	return errs.Mark(err, errs.ErrInvalidInput)
}

func notFound(err error) error {
	return errs.Mark(err, errs.ErrNotFound)
}

// storageFailure hides the storage detail behind the internal marker while
// keeping it in the chain for logging.
func storageFailure(err error, msg string) error {
	return errs.Mark(errs.Mark(errs.Wrap(err, msg), ErrDatabaseOperationFailed), errs.ErrInternal)
}

func isNotFound(err error) bool {
	return infra.IsKind(err, infra.KindNotFound)
}
