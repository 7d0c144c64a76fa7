package ledger_repo

import (
	"context"
	"errors"
	"fmt"

	"booking-refund-service/internal/domain/ledger"
	"booking-refund-service/pkg/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

// PgLedgerRepo is the read adapter over the externally-owned orders,
// bookings and payments tables.
type PgLedgerRepo struct {
	pg *postgres.Postgres
}

func NewPgLedgerRepo(pg *postgres.Postgres) ledger.Reader {
	return &PgLedgerRepo{pg: pg}
}

func (r *PgLedgerRepo) GetResourceForRefundCheck(ctx context.Context, kind ledger.ResourceKind, resourceID string) (*ledger.Snapshot, error) {
	table := "orders"
	if kind == ledger.KindBooking {
		table = "bookings"
	}

	query, args, err := r.pg.Builder.
		Select("r.user_id", "r.status", "p.id", "p.method", "p.status", "p.external_payment_id", "r.total_amount").
		From(table+" r").
		LeftJoin("payments p ON p.resource_kind = ? AND p.resource_id = r.id", kind).
		Where(squirrel.Eq{"r.id": resourceID}).
		OrderBy("p.created_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build refund check query: %w", err)
	}

	var (
		snapshot  ledger.Snapshot
		paymentID *string
		method    *string
		payStatus *string
	)
	row := r.pg.Pool.QueryRow(ctx, query, args...)
	err = row.Scan(&snapshot.OwnerID, &snapshot.Status, &paymentID, &method, &payStatus, &snapshot.ExternalPaymentID, &snapshot.TotalAmount)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan refund check row: %w", err)
	}

	if paymentID != nil {
		snapshot.PaymentID = *paymentID
	}
	if method != nil {
		snapshot.PaymentMethod = ledger.PaymentMethod(*method)
	}
	if payStatus != nil {
		snapshot.PaymentStatus = ledger.PaymentStatus(*payStatus)
	}

	return &snapshot, nil
}
