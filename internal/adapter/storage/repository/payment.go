package repository

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/mimimart/backend/internal/core/domain"
	"github.com/mimimart/backend/internal/core/port"
)

var paymentColumns = []string{
	"id", "order_id", "number", "method", "amount", "status",
	"external_transaction_id", "paid_at", "expired_at", "created_at", "updated_at",
}

func (r *Repository) GetPaymentByNumber(ctx context.Context, number domain.PaymentNumber) (*domain.Payment, error) {
	payment, err := r.getPaymentByNumberTx(ctx, r.db, number, false)
	if err != nil {
		return nil, translateError(err)
	}
	return payment, nil
}

func (r *Repository) GetPendingPaymentByOrderID(ctx context.Context, orderID int64) (*domain.Payment, error) {
	payment, err := r.getPendingPaymentTx(ctx, r.db, orderID, false)
	if err != nil {
		return nil, translateError(err)
	}
	return payment, nil
}

// CreatePaymentIfAbsent is the idempotency guard shared by the synchronous
// checkout path and the outbox-driven path. Whichever runs second finds the
// pending payment the first one created and returns it untouched.
func (r *Repository) CreatePaymentIfAbsent(ctx context.Context, payment *domain.Payment) (*domain.Payment, bool, error) {
	var surviving *domain.Payment
	var created bool

	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		var err error
		surviving, created, err = r.createPaymentIfAbsentTx(ctx, tx, payment)
		return err
	})
	if err != nil {
		return nil, false, translateError(err)
	}

	return surviving, created, nil
}

// UpdatePaymentWithOrder runs fn against the payment and its owning order
// under row locks, then persists both. The order row is locked first to keep
// the lock order consistent with UpdateOrderByNumber.
func (r *Repository) UpdatePaymentWithOrder(ctx context.Context, number domain.PaymentNumber, fn port.UpdatePaymentFn) (*domain.Payment, error) {
	var payment *domain.Payment

	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		var err error
		payment, err = r.getPaymentByNumberTx(ctx, tx, number, false)
		if err != nil {
			return err
		}

		order, err := r.getOrderByIDTx(ctx, tx, payment.OrderID, true)
		if err != nil {
			return err
		}

		payment, err = r.getPaymentByNumberTx(ctx, tx, number, true)
		if err != nil {
			return err
		}

		if err := fn(payment, order); err != nil {
			return err
		}

		if err := r.savePaymentTx(ctx, tx, payment); err != nil {
			return err
		}
		return r.saveOrderTx(ctx, tx, order)
	})
	if err != nil {
		return nil, translateError(err)
	}

	return payment, nil
}

func (r *Repository) ListOverduePendingPayments(ctx context.Context, now time.Time) ([]*domain.Payment, error) {
	statement := r.db.QueryBuilder.
		Select(paymentColumns...).
		From("payments").
		Where(sq.Eq{"status": domain.PaymentStatusPending}).
		Where(sq.Lt{"expired_at": now}).
		OrderBy("expired_at")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	payments := make([]*domain.Payment, 0)
	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, payment)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return payments, nil
}

func (r *Repository) createPaymentIfAbsentTx(ctx context.Context, tx pgx.Tx, payment *domain.Payment) (*domain.Payment, bool, error) {
	existing, err := r.getPendingPaymentTx(ctx, tx, payment.OrderID, true)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}

	statement := r.db.QueryBuilder.
		Insert("payments").
		Columns("order_id", "number", "method", "amount", "status",
			"external_transaction_id", "expired_at", "created_at", "updated_at").
		Values(payment.OrderID, payment.Number, payment.Method, payment.Amount.String(), payment.Status,
			payment.ExternalTransactionID, payment.ExpiredAt, payment.CreatedAt, payment.UpdatedAt).
		Suffix("RETURNING id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, false, err
	}

	err = tx.QueryRow(ctx, sql, args...).Scan(&payment.ID)
	if err != nil {
		return nil, false, err
	}

	return payment, true, nil
}

func (r *Repository) savePaymentTx(ctx context.Context, tx pgx.Tx, payment *domain.Payment) error {
	statement := r.db.QueryBuilder.
		Update("payments").
		Set("status", payment.Status).
		Set("external_transaction_id", payment.ExternalTransactionID).
		Set("paid_at", payment.PaidAt).
		Set("updated_at", payment.UpdatedAt).
		Where(sq.Eq{"id": payment.ID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, sql, args...)
	return err
}

func (r *Repository) getPaymentByNumberTx(ctx context.Context, q querier, number domain.PaymentNumber, forUpdate bool) (*domain.Payment, error) {
	statement := r.db.QueryBuilder.
		Select(paymentColumns...).
		From("payments").
		Where(sq.Eq{"number": number})
	if forUpdate {
		statement = statement.Suffix("FOR UPDATE")
	}

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	return scanPayment(q.QueryRow(ctx, sql, args...))
}

// getPendingPaymentTx returns pgx.ErrNoRows when the order has no pending
// payment; callers decide whether that is an error.
func (r *Repository) getPendingPaymentTx(ctx context.Context, q querier, orderID int64, forUpdate bool) (*domain.Payment, error) {
	statement := r.db.QueryBuilder.
		Select(paymentColumns...).
		From("payments").
		Where(sq.Eq{"order_id": orderID, "status": domain.PaymentStatusPending})
	if forUpdate {
		statement = statement.Suffix("FOR UPDATE")
	}

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	return scanPayment(q.QueryRow(ctx, sql, args...))
}

func (r *Repository) getOrderByIDTx(ctx context.Context, q querier, orderID int64, forUpdate bool) (*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": orderID})
	if forUpdate {
		statement = statement.Suffix("FOR UPDATE")
	}

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	order, err := scanOrder(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, err
	}

	order.Items, err = r.loadOrderItems(ctx, q, order.ID)
	if err != nil {
		return nil, err
	}

	return order, nil
}

func scanPayment(row pgx.Row) (*domain.Payment, error) {
	var payment domain.Payment
	var number, amount string

	err := row.Scan(
		&payment.ID,
		&payment.OrderID,
		&number,
		&payment.Method,
		&amount,
		&payment.Status,
		&payment.ExternalTransactionID,
		&payment.PaidAt,
		&payment.ExpiredAt,
		&payment.CreatedAt,
		&payment.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	payment.Number, err = domain.ParsePaymentNumber(number)
	if err != nil {
		return nil, err
	}
	payment.Amount, err = domain.NewMoneyFromString(amount)
	if err != nil {
		return nil, err
	}

	return &payment, nil
}
