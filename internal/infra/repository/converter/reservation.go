package converter

import (
	"fmt"

	"venue-reservation/internal/domain/reservation"
	"venue-reservation/internal/domain/timegrid"
	"venue-reservation/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// ReservationRow mirrors one row of the reservations table. Hold and customer
// columns are nullable; exactly one group is populated per status.
type ReservationRow struct {
	ID              uuid.UUID
	Date            pgtype.Date
	TimeSlot        string
	RegionID        uuid.UUID
	Status          string
	HoldToken       pgtype.Text
	HoldExpiresAt   pgtype.Timestamptz
	CustomerName    pgtype.Text
	CustomerEmail   pgtype.Text
	CustomerPhone   pgtype.Text
	PartySize       pgtype.Int4
	ChildrenCount   pgtype.Int4
	WantsSmoking    pgtype.Bool
	Celebrating     pgtype.Bool
	CelebrationName pgtype.Text
	CreatedAt       pgtype.Timestamptz
	UpdatedAt       pgtype.Timestamptz
}

// ScanTargets returns the destinations in ReservationColumns order.
func (r *ReservationRow) ScanTargets() []any {
	return []any{
		&r.ID, &r.Date, &r.TimeSlot, &r.RegionID, &r.Status,
		&r.HoldToken, &r.HoldExpiresAt,
		&r.CustomerName, &r.CustomerEmail, &r.CustomerPhone,
		&r.PartySize, &r.ChildrenCount, &r.WantsSmoking, &r.Celebrating, &r.CelebrationName,
		&r.CreatedAt, &r.UpdatedAt,
	}
}

const ReservationColumns = `id, date, time_slot, region_id, status,
	hold_token, hold_expires_at,
	customer_name, customer_email, customer_phone,
	party_size, children_count, wants_smoking, celebrating, celebration_name,
	created_at, updated_at`

func ReservationToDomain(row ReservationRow) (*reservation.Reservation, error) {
	date := timegrid.DateOf(pgconv.DateFromPgtype(row.Date))
	slot := timegrid.Slot(row.TimeSlot)
	createdAt := pgconv.TimeFromPgtype(row.CreatedAt)
	updatedAt := pgconv.TimeFromPgtype(row.UpdatedAt)

	switch reservation.Status(row.Status) {
	case reservation.StatusHeld:
		return reservation.ReconstructHold(
			row.ID, date, slot, row.RegionID,
			pgconv.StringFromPgtype(row.HoldToken),
			pgconv.TimeFromPgtype(row.HoldExpiresAt),
			createdAt, updatedAt,
		), nil
	case reservation.StatusConfirmed:
		customer := reservation.ReconstructCustomer(reservation.CustomerParams{
			Name:            pgconv.StringFromPgtype(row.CustomerName),
			Email:           pgconv.StringFromPgtype(row.CustomerEmail),
			Phone:           pgconv.StringFromPgtype(row.CustomerPhone),
			PartySize:       pgconv.IntFromPgtype(row.PartySize),
			ChildrenCount:   pgconv.IntFromPgtype(row.ChildrenCount),
			WantsSmoking:    pgconv.BoolFromPgtype(row.WantsSmoking),
			Celebrating:     pgconv.BoolFromPgtype(row.Celebrating),
			CelebrationName: pgconv.StringFromPgtype(row.CelebrationName),
		})
		return reservation.ReconstructConfirmed(row.ID, date, slot, row.RegionID, customer, createdAt, updatedAt), nil
	default:
		return nil, fmt.Errorf("unknown reservation status %q", row.Status)
	}
}

// ReservationToRow fills only the column group that matches the reservation's
// status, leaving the other group NULL.
func ReservationToRow(res *reservation.Reservation) ReservationRow {
	row := ReservationRow{
		ID:        res.ID(),
		Date:      pgconv.DateToPgtype(res.Date().Time()),
		TimeSlot:  res.Slot().String(),
		RegionID:  res.RegionID(),
		Status:    res.Status().String(),
		CreatedAt: pgconv.TimeToPgtype(res.CreatedAt()),
		UpdatedAt: pgconv.TimeToPgtype(res.UpdatedAt()),
	}
	if h, ok := res.Hold(); ok {
		row.HoldToken = pgconv.StringToPgtype(h.Token())
		row.HoldExpiresAt = pgconv.TimeToPgtype(h.ExpiresAt())
	}
	if c, ok := res.Customer(); ok {
		row.CustomerName = pgconv.StringToPgtype(c.Name())
		row.CustomerEmail = pgconv.StringToPgtype(c.Email().String())
		row.CustomerPhone = pgconv.StringToPgtype(c.Phone().String())
		row.PartySize = pgconv.IntToPgtype(c.PartySize())
		row.ChildrenCount = pgconv.IntToPgtype(c.ChildrenCount())
		row.WantsSmoking = pgconv.BoolToPgtype(c.WantsSmoking())
		row.Celebrating = pgconv.BoolToPgtype(c.Celebrating())
		row.CelebrationName = pgconv.OptionalString(c.CelebrationName())
	}
	return row
}
