package availability_repo

import (
	"context"
	"testing"
	"time"

	"booking-refund-service/internal/domain/availability"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (*repo, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return &repo{db: mock, builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)}, mock
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestGetActiveBookingOverlap(t *testing.T) {
	repo, mock := newMockRepo(t)
	ctx := context.Background()

	r := availability.DateRange{Start: day("2026-03-10"), End: day("2026-03-15")}

	t.Run("should return the overlapping active booking", func(t *testing.T) {
		rows := mock.NewRows([]string{"id", "room_id", "check_in_date", "check_out_date", "status"}).
			AddRow("booking-1", "room-1", day("2026-03-08"), day("2026-03-12"), "Confirmed")

		mock.ExpectQuery(`SELECT id, room_id, check_in_date, check_out_date, status FROM bookings WHERE room_id = \$1 AND status IN \(\$2,\$3,\$4\) AND check_in_date < \$5 AND check_out_date > \$6 ORDER BY check_in_date LIMIT 1`).
			WithArgs("room-1",
				availability.BookingPending, availability.BookingConfirmed, availability.BookingCheckedIn,
				r.End, r.Start).
			WillReturnRows(rows)

		overlap, err := repo.GetActiveBookingOverlap(ctx, "room-1", r)

		require.NoError(t, err)
		require.NotNil(t, overlap)
		assert.Equal(t, "booking-1", overlap.BookingID)
		assert.Equal(t, availability.BookingConfirmed, overlap.Status)
	})

	t.Run("should return nil when no booking overlaps", func(t *testing.T) {
		rows := mock.NewRows([]string{"id", "room_id", "check_in_date", "check_out_date", "status"})

		mock.ExpectQuery(`SELECT id, room_id, check_in_date, check_out_date, status FROM bookings`).
			WithArgs("room-1",
				availability.BookingPending, availability.BookingConfirmed, availability.BookingCheckedIn,
				r.End, r.Start).
			WillReturnRows(rows)

		overlap, err := repo.GetActiveBookingOverlap(ctx, "room-1", r)

		require.NoError(t, err)
		assert.Nil(t, overlap)
	})
}

func TestGetBlockedOverlap(t *testing.T) {
	repo, mock := newMockRepo(t)
	ctx := context.Background()

	r := availability.DateRange{Start: day("2026-03-10"), End: day("2026-03-15")}
	businessID := uuid.New()

	t.Run("should return the overlapping block", func(t *testing.T) {
		rows := mock.NewRows([]string{"id", "room_id", "business_id", "start_date", "end_date", "reason", "notes", "created_at"}).
			AddRow("blocked-1", "room-1", businessID, day("2026-03-12"), day("2026-03-20"), "maintenance", nil, time.Now())

		mock.ExpectQuery(`SELECT id, room_id, business_id, start_date, end_date, reason, notes, created_at FROM blocked_dates WHERE room_id = \$1 AND start_date < \$2 AND end_date >= \$3 ORDER BY start_date LIMIT 1`).
			WithArgs("room-1", r.End, r.Start).
			WillReturnRows(rows)

		blocked, err := repo.GetBlockedOverlap(ctx, "room-1", r)

		require.NoError(t, err)
		require.NotNil(t, blocked)
		assert.Equal(t, "blocked-1", blocked.ID)
		assert.Equal(t, availability.BlockMaintenance, blocked.Reason)
	})

	t.Run("should return nil when nothing is blocked", func(t *testing.T) {
		rows := mock.NewRows([]string{"id", "room_id", "business_id", "start_date", "end_date", "reason", "notes", "created_at"})

		mock.ExpectQuery(`SELECT id, room_id, business_id, start_date, end_date, reason, notes, created_at FROM blocked_dates`).
			WithArgs("room-1", r.End, r.Start).
			WillReturnRows(rows)

		blocked, err := repo.GetBlockedOverlap(ctx, "room-1", r)

		require.NoError(t, err)
		assert.Nil(t, blocked)
	})
}

func TestCreateBlockedDate(t *testing.T) {
	repo, mock := newMockRepo(t)
	ctx := context.Background()

	blocked := availability.BlockedDateRange{
		ID:         "blocked-1",
		RoomID:     "room-1",
		BusinessID: uuid.New(),
		StartDate:  day("2026-03-10"),
		EndDate:    day("2026-03-12"),
		Reason:     availability.BlockMaintenance,
		CreatedAt:  time.Now(),
	}

	t.Run("should insert the blocked range", func(t *testing.T) {
		mock.ExpectExec(`INSERT INTO blocked_dates \(id,room_id,business_id,start_date,end_date,reason,notes,created_at\) VALUES \(\$1,\$2,\$3,\$4,\$5,\$6,\$7,\$8\)`).
			WithArgs(blocked.ID, blocked.RoomID, blocked.BusinessID, blocked.StartDate, blocked.EndDate,
				blocked.Reason, (*string)(nil), blocked.CreatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		err := repo.CreateBlockedDate(ctx, blocked)

		require.NoError(t, err)
	})

	t.Run("should map an exclusion violation to ErrBlockedConflict", func(t *testing.T) {
		mock.ExpectExec(`INSERT INTO blocked_dates`).
			WithArgs(blocked.ID, blocked.RoomID, blocked.BusinessID, blocked.StartDate, blocked.EndDate,
				blocked.Reason, (*string)(nil), blocked.CreatedAt).
			WillReturnError(&pgconn.PgError{Code: "23P01"})

		err := repo.CreateBlockedDate(ctx, blocked)

		assert.ErrorIs(t, err, availability.ErrBlockedConflict)
	})

	t.Run("should handle database error", func(t *testing.T) {
		mock.ExpectExec(`INSERT INTO blocked_dates`).
			WithArgs(blocked.ID, blocked.RoomID, blocked.BusinessID, blocked.StartDate, blocked.EndDate,
				blocked.Reason, (*string)(nil), blocked.CreatedAt).
			WillReturnError(assert.AnError)

		err := repo.CreateBlockedDate(ctx, blocked)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "create blocked date")
	})
}

func TestDeleteBlockedDate(t *testing.T) {
	repo, mock := newMockRepo(t)
	ctx := context.Background()

	t.Run("should report true when a row was deleted", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM blocked_dates WHERE id = \$1`).
			WithArgs("blocked-1").
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		deleted, err := repo.DeleteBlockedDate(ctx, "blocked-1")

		require.NoError(t, err)
		assert.True(t, deleted)
	})

	t.Run("should report false for an unknown id", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM blocked_dates WHERE id = \$1`).
			WithArgs("blocked-404").
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		deleted, err := repo.DeleteBlockedDate(ctx, "blocked-404")

		require.NoError(t, err)
		assert.False(t, deleted)
	})
}

func TestListRoomIDs(t *testing.T) {
	repo, mock := newMockRepo(t)
	ctx := context.Background()
	businessID := uuid.New()

	t.Run("should list the business's room ids", func(t *testing.T) {
		rows := mock.NewRows([]string{"id"}).
			AddRow("room-a").
			AddRow("room-b")

		mock.ExpectQuery(`SELECT id FROM rooms WHERE business_id = \$1 ORDER BY id`).
			WithArgs(businessID.String()).
			WillReturnRows(rows)

		ids, err := repo.ListRoomIDs(ctx, businessID)

		require.NoError(t, err)
		assert.Equal(t, []string{"room-a", "room-b"}, ids)
	})
}
