package availability_repo

import (
	"context"
	"errors"
	"fmt"

	"booking-refund-service/internal/domain/availability"
	"booking-refund-service/pkg/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PgAvailabilityRepo struct {
	pg *postgres.Postgres
	repo
}

func NewPgAvailabilityRepo(pg *postgres.Postgres) availability.AvailabilityRepo {
	return &PgAvailabilityRepo{
		pg:   pg,
		repo: repo{db: pg.Pool, builder: pg.Builder},
	}
}

func (r *PgAvailabilityRepo) InTransaction(ctx context.Context, fn func(repo availability.TxAvailabilityRepo) error) error {
	return r.pg.InTransaction(ctx, func(tx postgres.Executor) error {
		txRepo := &repo{db: tx, builder: r.pg.Builder}
		return fn(txRepo)
	})
}

type repo struct {
	db      postgres.Executor
	builder squirrel.StatementBuilderType
}

// GetActiveBookingOverlap uses the half-open overlap test:
// check_in < range.End AND range.Start < check_out.
func (r *repo) GetActiveBookingOverlap(ctx context.Context, roomID string, dr availability.DateRange) (*availability.BookingOverlap, error) {
	query, args, err := r.builder.
		Select("id", "room_id", "check_in_date", "check_out_date", "status").
		From("bookings").
		Where(squirrel.Eq{"room_id": roomID}).
		Where(squirrel.Eq{"status": availability.ActiveBookingStatuses}).
		Where(squirrel.Lt{"check_in_date": dr.End}).
		Where(squirrel.Gt{"check_out_date": dr.Start}).
		OrderBy("check_in_date").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build booking overlap query: %w", err)
	}

	var overlap availability.BookingOverlap
	var rawStatus string
	row := r.db.QueryRow(ctx, query, args...)
	err = row.Scan(&overlap.BookingID, &overlap.RoomID, &overlap.CheckInDate, &overlap.CheckOutDate, &rawStatus)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan booking overlap row: %w", err)
	}
	overlap.Status = availability.BookingStatus(rawStatus)

	return &overlap, nil
}

// GetBlockedOverlap tests the inclusive block window against the half-open
// query range: start_date < range.End AND end_date >= range.Start.
func (r *repo) GetBlockedOverlap(ctx context.Context, roomID string, dr availability.DateRange) (*availability.BlockedDateRange, error) {
	query, args, err := r.builder.
		Select("id", "room_id", "business_id", "start_date", "end_date", "reason", "notes", "created_at").
		From("blocked_dates").
		Where(squirrel.Eq{"room_id": roomID}).
		Where(squirrel.Lt{"start_date": dr.End}).
		Where(squirrel.GtOrEq{"end_date": dr.Start}).
		OrderBy("start_date").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build blocked overlap query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query blocked overlap: %w", err)
	}
	defer rows.Close()

	blocked, err := parseBlockedRows(rows)
	if err != nil {
		return nil, err
	}
	if len(blocked) == 0 {
		return nil, nil
	}
	return &blocked[0], nil
}

func (r *repo) CreateBlockedDate(ctx context.Context, blocked availability.BlockedDateRange) error {
	query, args, err := r.builder.Insert("blocked_dates").
		Columns("id", "room_id", "business_id", "start_date", "end_date", "reason", "notes", "created_at").
		Values(blocked.ID, blocked.RoomID, blocked.BusinessID, blocked.StartDate, blocked.EndDate, blocked.Reason, blocked.Notes, blocked.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert query: %w", err)
	}

	_, err = r.db.Exec(ctx, query, args...)
	if postgres.IsPgErrorExclusionViolation(err) {
		// the gist exclusion constraint on (room_id, daterange) fired:
		// another overlapping block won the race
		return availability.ErrBlockedConflict
	}
	if err != nil {
		return fmt.Errorf("create blocked date: %w", err)
	}
	return nil
}

func (r *repo) DeleteBlockedDate(ctx context.Context, id string) (bool, error) {
	query, args, err := r.builder.Delete("blocked_dates").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build delete query: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete blocked date: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *repo) ListBlockedDates(ctx context.Context, roomID string) ([]availability.BlockedDateRange, error) {
	query, args, err := r.builder.
		Select("id", "room_id", "business_id", "start_date", "end_date", "reason", "notes", "created_at").
		From("blocked_dates").
		Where(squirrel.Eq{"room_id": roomID}).
		OrderBy("start_date").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query blocked dates: %w", err)
	}
	defer rows.Close()

	return parseBlockedRows(rows)
}

func (r *repo) ListRoomIDs(ctx context.Context, businessID uuid.UUID) ([]string, error) {
	query, args, err := r.builder.
		Select("id").
		From("rooms").
		Where(squirrel.Eq{"business_id": businessID}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build rooms query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query rooms: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan room row: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate room rows: %w", err)
	}
	return ids, nil
}

// Helper functions
func parseBlockedRows(rows pgx.Rows) ([]availability.BlockedDateRange, error) {
	var blocked []availability.BlockedDateRange
	for rows.Next() {
		var b availability.BlockedDateRange
		var rawReason string
		err := rows.Scan(&b.ID, &b.RoomID, &b.BusinessID, &b.StartDate, &b.EndDate, &rawReason, &b.Notes, &b.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan blocked date row: %w", err)
		}

		reason, err := availability.NewBlockReason(rawReason)
		if err != nil {
			return nil, fmt.Errorf("invalid block reason in database: %w", err)
		}
		b.Reason = reason

		blocked = append(blocked, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate blocked date rows: %w", err)
	}

	return blocked, nil
}
