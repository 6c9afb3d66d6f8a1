package repository

import (
	"context"
	"log/slog"
	"time"

	"venue-reservation/internal/domain/reservation"
	"venue-reservation/internal/domain/timegrid"
	"venue-reservation/internal/infra"
	"venue-reservation/internal/infra/repository/converter"
	"venue-reservation/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// activeClause matches rows that occupy a table at $now.
const activeClause = `(status = 'CONFIRMED' OR hold_expires_at > @now)`

type ReservationRepository struct {
	db     DBTX
	logger *slog.Logger
}

func NewReservationRepository(db DBTX, logger *slog.Logger) *ReservationRepository {
	return &ReservationRepository{
		db:     db,
		logger: logger,
	}
}

func (r *ReservationRepository) CountActive(
	ctx context.Context,
	regionID uuid.UUID,
	date timegrid.Date,
	slots []timegrid.Slot,
	now time.Time,
) (int, error) {
	starts := make([]string, len(slots))
	for i, s := range slots {
		starts[i] = s.String()
	}

	var n int64
	err := r.db.QueryRow(ctx, `
		SELECT count(*) FROM reservations
		WHERE region_id = @region_id
		  AND date = @date
		  AND time_slot = ANY(@slots)
		  AND `+activeClause,
		pgx.NamedArgs{
			"region_id": regionID,
			"date":      pgconv.DateToPgtype(date.Time()),
			"slots":     starts,
			"now":       now,
		},
	).Scan(&n)
	if err != nil {
		return 0, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to count occupied tables", err)
	}
	return int(n), nil
}

func (r *ReservationRepository) ListActiveOnDate(ctx context.Context, date timegrid.Date, now time.Time) ([]*reservation.Reservation, error) {
	return r.many(ctx, "failed to list reservations for date", `
		SELECT `+converter.ReservationColumns+` FROM reservations
		WHERE date = @date AND `+activeClause+`
		ORDER BY time_slot, created_at, id`,
		pgx.NamedArgs{"date": pgconv.DateToPgtype(date.Time()), "now": now},
	)
}

func (r *ReservationRepository) Insert(ctx context.Context, res *reservation.Reservation) error {
	row := converter.ReservationToRow(res)
	_, err := r.db.Exec(ctx, `
		INSERT INTO reservations (`+converter.ReservationColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`,
		row.ID, row.Date, row.TimeSlot, row.RegionID, row.Status,
		row.HoldToken, row.HoldExpiresAt,
		row.CustomerName, row.CustomerEmail, row.CustomerPhone,
		row.PartySize, row.ChildrenCount, row.WantsSmoking, row.Celebrating, row.CelebrationName,
		row.CreatedAt, row.UpdatedAt,
	)
	if err != nil {
		return r.writeErr(err, "failed to insert reservation")
	}
	return nil
}

// FindHoldForUpdate locks the session's unexpired hold on the slot until the
// surrounding transaction ends.
func (r *ReservationRepository) FindHoldForUpdate(ctx context.Context, key reservation.SlotKey, token string, now time.Time) (*reservation.Reservation, error) {
	res, err := r.one(r.db.QueryRow(ctx, `
		SELECT `+converter.ReservationColumns+` FROM reservations
		WHERE region_id = @region_id
		  AND date = @date
		  AND time_slot = @slot
		  AND status = 'HELD'
		  AND hold_token = @token
		  AND hold_expires_at > @now
		ORDER BY created_at
		LIMIT 1
		FOR UPDATE`,
		pgx.NamedArgs{
			"region_id": key.RegionID,
			"date":      pgconv.DateToPgtype(key.Date.Time()),
			"slot":      key.Slot.String(),
			"token":     token,
			"now":       now,
		},
	))
	if err != nil {
		return nil, r.readErr(err, "hold not found", "failed to find hold")
	}
	return res, nil
}

func (r *ReservationRepository) UpdateConfirmed(ctx context.Context, res *reservation.Reservation) error {
	row := converter.ReservationToRow(res)
	tag, err := r.db.Exec(ctx, `
		UPDATE reservations SET
			status           = $2,
			hold_token       = NULL,
			hold_expires_at  = NULL,
			customer_name    = $3,
			customer_email   = $4,
			customer_phone   = $5,
			party_size       = $6,
			children_count   = $7,
			wants_smoking    = $8,
			celebrating      = $9,
			celebration_name = $10,
			updated_at       = $11
		WHERE id = $1 AND status = 'HELD'`,
		row.ID, row.Status,
		row.CustomerName, row.CustomerEmail, row.CustomerPhone,
		row.PartySize, row.ChildrenCount, row.WantsSmoking, row.Celebrating, row.CelebrationName,
		row.UpdatedAt,
	)
	if err != nil {
		return r.writeErr(err, "failed to confirm reservation")
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "hold to confirm not found", nil)
	}
	return nil
}

func (r *ReservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	res, err := r.one(r.db.QueryRow(ctx,
		`SELECT `+converter.ReservationColumns+` FROM reservations WHERE id = $1`, id))
	if err != nil {
		return nil, r.readErr(err, "reservation not found", "failed to find reservation by ID")
	}
	return res, nil
}

func (r *ReservationRepository) Delete(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	res, err := r.one(r.db.QueryRow(ctx,
		`DELETE FROM reservations WHERE id = $1 RETURNING `+converter.ReservationColumns, id))
	if err != nil {
		return nil, r.readErr(err, "reservation not found", "failed to delete reservation")
	}
	return res, nil
}

func (r *ReservationRepository) DeleteHoldsByToken(ctx context.Context, token string) ([]*reservation.Reservation, error) {
	return r.many(ctx, "failed to release holds", `
		DELETE FROM reservations
		WHERE status = 'HELD' AND hold_token = @token
		RETURNING `+converter.ReservationColumns,
		pgx.NamedArgs{"token": token},
	)
}

// DeleteExpiredHolds reaps every hold with expires_at <= now in one statement.
func (r *ReservationRepository) DeleteExpiredHolds(ctx context.Context, now time.Time) ([]*reservation.Reservation, error) {
	return r.many(ctx, "failed to delete expired holds", `
		DELETE FROM reservations
		WHERE status = 'HELD' AND hold_expires_at <= @now
		RETURNING `+converter.ReservationColumns,
		pgx.NamedArgs{"now": now},
	)
}

func (r *ReservationRepository) ListConfirmed(ctx context.Context) ([]*reservation.Reservation, error) {
	return r.many(ctx, "failed to list confirmed reservations", `
		SELECT `+converter.ReservationColumns+` FROM reservations
		WHERE status = 'CONFIRMED'
		ORDER BY created_at DESC, id`,
		pgx.NamedArgs{},
	)
}

func (r *ReservationRepository) ListConfirmedByEmail(ctx context.Context, email string) ([]*reservation.Reservation, error) {
	return r.many(ctx, "failed to list reservations by email", `
		SELECT `+converter.ReservationColumns+` FROM reservations
		WHERE status = 'CONFIRMED' AND customer_email = @email
		ORDER BY date DESC, time_slot ASC, id`,
		pgx.NamedArgs{"email": email},
	)
}

func (r *ReservationRepository) one(row pgx.Row) (*reservation.Reservation, error) {
	var rr converter.ReservationRow
	if err := row.Scan(rr.ScanTargets()...); err != nil {
		return nil, err
	}
	return converter.ReservationToDomain(rr)
}

func (r *ReservationRepository) many(ctx context.Context, failMsg, sql string, args pgx.NamedArgs) ([]*reservation.Reservation, error) {
	rows, err := r.db.Query(ctx, sql, args)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, failMsg, err)
	}
	defer rows.Close()

	out := []*reservation.Reservation{}
	for rows.Next() {
		res, err := r.one(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, failMsg, err)
		}
		out = append(out, res)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, failMsg, err)
	}
	return out, nil
}

func (r *ReservationRepository) readErr(err error, missMsg, failMsg string) error {
	if pgconv.IsNoRows(err) {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, missMsg, err)
	}
	return infra.WrapRepoErr(r.logger, infra.KindDBFailure, failMsg, err)
}

func (r *ReservationRepository) writeErr(err error, msg string) error {
	switch {
	case pgconv.IsUniqueViolation(err):
		return infra.WrapRepoErr(r.logger, infra.KindDuplicateKey, msg, err)
	case pgconv.IsForeignKeyViolation(err):
		return infra.WrapRepoErr(r.logger, infra.KindForeignKeyViolated, msg, err)
	case pgconv.IsCheckViolation(err):
		return infra.WrapRepoErr(r.logger, infra.KindCheckViolated, msg, err)
	default:
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, msg, err)
	}
}
