package refund_repo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"booking-refund-service/internal/domain/ledger"
	"booking-refund-service/internal/domain/refund"
	"booking-refund-service/pkg/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

// PgRefundRepo is the main repository. It spans refund_requests,
// refund_events and the ledger tables so the succeeded transition and its
// ledger side effect can share one transaction.
type PgRefundRepo struct {
	pg *postgres.Postgres
	repo
}

func NewPgRefundRepo(pg *postgres.Postgres) refund.RefundRepo {
	return &PgRefundRepo{
		pg:   pg,
		repo: repo{db: pg.Pool, builder: pg.Builder},
	}
}

func (r *PgRefundRepo) InTransaction(ctx context.Context, fn func(repo refund.TxRefundRepo) error) error {
	return r.pg.InTransaction(ctx, func(tx postgres.Executor) error {
		txRepo := &repo{db: tx, builder: r.pg.Builder}
		return fn(txRepo)
	})
}

type repo struct {
	db      postgres.Executor
	builder squirrel.StatementBuilderType
}

var refundColumns = []string{
	"id", "resource_kind", "resource_id", "payment_id", "requested_by",
	"amount", "original_amount", "reason", "notes", "status",
	"external_refund_id", "external_payment_id", "error_message", "retry_count",
	"requested_at", "processed_at", "completed_at", "updated_at",
}

func (r *repo) GetRefunds(ctx context.Context, query *refund.RefundsQuery) ([]refund.RefundRequest, error) {
	sql, args := r.buildRefundsQuery(query)
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query refunds: %w", err)
	}
	defer rows.Close()

	return parseRefundRows(rows)
}

func (r *repo) CreateRefund(ctx context.Context, request refund.RefundRequest) error {
	query, args, err := r.builder.Insert("refund_requests").
		Columns(refundColumns...).
		Values(request.ID, request.ResourceKind, request.ResourceID, request.PaymentID, request.RequestedBy,
			request.Amount, request.OriginalAmount, request.Reason, request.Notes, request.Status,
			request.ExternalRefundID, request.ExternalPaymentID, request.ErrorMessage, request.RetryCount,
			request.RequestedAt, request.ProcessedAt, request.CompletedAt, request.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert query: %w", err)
	}

	_, err = r.db.Exec(ctx, query, args...)
	if postgres.IsPgErrorUniqueViolation(err) {
		// the partial unique index on (resource_kind, resource_id) fired:
		// another active refund won the race
		return refund.ErrActiveRefundExists
	}
	if err != nil {
		return fmt.Errorf("create refund: %w", err)
	}
	return nil
}

func (r *repo) UpdateRefund(ctx context.Context, request refund.RefundRequest) error {
	query, args, err := r.builder.Update("refund_requests").
		Set("status", request.Status).
		Set("external_refund_id", request.ExternalRefundID).
		Set("error_message", request.ErrorMessage).
		Set("retry_count", request.RetryCount).
		Set("processed_at", request.ProcessedAt).
		Set("completed_at", request.CompletedAt).
		Set("updated_at", request.UpdatedAt).
		Where(squirrel.Eq{"id": request.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update query: %w", err)
	}

	_, err = r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update refund: %w", err)
	}
	return nil
}

func (r *repo) CreateRefundEvent(ctx context.Context, event refund.RefundEvent) error {
	query, args, err := r.builder.Insert("refund_events").
		Columns("id", "refund_id", "kind", "from_status", "to_status", "data", "created_at").
		Values(event.ID, event.RefundID, event.Kind, event.FromStatus, event.ToStatus, event.Data, event.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert query: %w", err)
	}

	_, err = r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("create refund event: %w", err)
	}
	return nil
}

func (r *repo) MarkResourceRefunded(ctx context.Context, kind ledger.ResourceKind, resourceID string) error {
	table, terminal := "orders", "refunded"
	if kind == ledger.KindBooking {
		table, terminal = "bookings", "Refunded"
	}

	// guarded update keeps the call idempotent under duplicate callbacks
	query, args, err := r.builder.Update(table).
		Set("status", terminal).
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"id": resourceID}).
		Where(squirrel.NotEq{"status": terminal}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build mark refunded query: %w", err)
	}

	_, err = r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("mark %s refunded: %w", kind, err)
	}
	return nil
}

func (r *repo) StatsByStatus(ctx context.Context, from, to time.Time) ([]refund.StatusStat, error) {
	query, args, err := r.builder.Select("status", "COUNT(*)", "COALESCE(SUM(amount), 0)").
		From("refund_requests").
		Where(squirrel.GtOrEq{"requested_at": from}).
		Where(squirrel.Lt{"requested_at": to}).
		GroupBy("status").
		OrderBy("status").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build stats query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query refund stats: %w", err)
	}
	defer rows.Close()

	var stats []refund.StatusStat
	for rows.Next() {
		var stat refund.StatusStat
		var rawStatus string
		if err := rows.Scan(&rawStatus, &stat.Count, &stat.Sum); err != nil {
			return nil, fmt.Errorf("scan stats row: %w", err)
		}
		status, err := refund.NewStatus(rawStatus)
		if err != nil {
			return nil, fmt.Errorf("invalid status in database: %w", err)
		}
		stat.Status = status
		stats = append(stats, stat)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate stats rows: %w", err)
	}
	return stats, nil
}

func (r *repo) buildRefundsQuery(q *refund.RefundsQuery) (string, []interface{}) {
	query := r.builder.Select(refundColumns...).
		From("refund_requests")

	if len(q.IDs) > 0 {
		query = query.Where(squirrel.Eq{"id": q.IDs})
	}
	if q.ResourceKind != nil {
		query = query.Where(squirrel.Eq{"resource_kind": *q.ResourceKind})
	}
	if len(q.ResourceIDs) > 0 {
		query = query.Where(squirrel.Eq{"resource_id": q.ResourceIDs})
	}
	if len(q.RequestedBy) > 0 {
		query = query.Where(squirrel.Eq{"requested_by": q.RequestedBy})
	}
	if len(q.Statuses) > 0 {
		query = query.Where(squirrel.Eq{"status": q.Statuses})
	}
	if q.From != nil {
		query = query.Where(squirrel.GtOrEq{"requested_at": *q.From})
	}
	if q.To != nil {
		query = query.Where(squirrel.Lt{"requested_at": *q.To})
	}

	if q.SortBy != nil && q.SortOrder != nil {
		query = query.OrderBy(fmt.Sprintf("%s %s", *q.SortBy, *q.SortOrder))
	}

	if q.Pagination != nil {
		offset := (q.Pagination.PageNumber - 1) * q.Pagination.PageSize
		query = query.Limit(uint64(q.Pagination.PageSize)).Offset(uint64(offset))
	}

	sql, args, _ := query.ToSql()
	return sql, args
}

// Helper functions
func parseRefundRows(rows pgx.Rows) ([]refund.RefundRequest, error) {
	var refunds []refund.RefundRequest
	for rows.Next() {
		var ref refund.RefundRequest
		var rawKind, rawStatus, rawReason string
		var processedAt, completedAt sql.NullTime
		err := rows.Scan(&ref.ID, &rawKind, &ref.ResourceID, &ref.PaymentID, &ref.RequestedBy,
			&ref.Amount, &ref.OriginalAmount, &rawReason, &ref.Notes, &rawStatus,
			&ref.ExternalRefundID, &ref.ExternalPaymentID, &ref.ErrorMessage, &ref.RetryCount,
			&ref.RequestedAt, &processedAt, &completedAt, &ref.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan refund row: %w", err)
		}

		kind, err := ledger.NewResourceKind(rawKind)
		if err != nil {
			return nil, fmt.Errorf("invalid resource kind in database: %w", err)
		}
		ref.ResourceKind = kind

		status, err := refund.NewStatus(rawStatus)
		if err != nil {
			return nil, fmt.Errorf("invalid status in database: %w", err)
		}
		ref.Status = status

		reason, err := refund.NewReason(rawReason)
		if err != nil {
			return nil, fmt.Errorf("invalid reason in database: %w", err)
		}
		ref.Reason = reason

		if processedAt.Valid {
			ref.ProcessedAt = &processedAt.Time
		}
		if completedAt.Valid {
			ref.CompletedAt = &completedAt.Time
		}

		refunds = append(refunds, ref)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate refund rows: %w", err)
	}

	return refunds, nil
}
