package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/mimimart/backend/internal/core/domain"
)

func (r *Repository) insertOrderEventTx(ctx context.Context, tx pgx.Tx, order *domain.Order) error {
	statement := r.db.QueryBuilder.
		Insert("order_events").
		Columns("event_id", "order_number", "member_id", "total_amount", "created_at").
		Values(uuid.NewString(), order.Number, order.MemberID, order.TotalAmount.String(), order.CreatedAt)

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, sql, args...)
	return err
}

// PendingOrderEvents returns unprocessed outbox rows, oldest first. Rows stay
// pending until MarkOrderEventProcessed, so a crashed dispatcher redelivers.
func (r *Repository) PendingOrderEvents(ctx context.Context, limit int) ([]domain.OrderCreatedEvent, error) {
	statement := r.db.QueryBuilder.
		Select("event_id", "order_number", "member_id", "total_amount", "created_at").
		From("order_events").
		Where("processed_at IS NULL").
		OrderBy("created_at").
		Limit(uint64(limit))

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	events := make([]domain.OrderCreatedEvent, 0)
	for rows.Next() {
		var event domain.OrderCreatedEvent
		var number, total string
		if err := rows.Scan(&event.EventID, &number, &event.MemberID, &total, &event.CreatedAt); err != nil {
			return nil, err
		}
		event.OrderNumber, err = domain.ParseOrderNumber(number)
		if err != nil {
			return nil, err
		}
		event.TotalAmount, err = domain.NewMoneyFromString(total)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

func (r *Repository) MarkOrderEventProcessed(ctx context.Context, eventID string) error {
	statement := r.db.QueryBuilder.
		Update("order_events").
		Set("processed_at", sq.Expr("now()")).
		Where(sq.Eq{"event_id": eventID}).
		Where("processed_at IS NULL")

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return translateError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDataNotFound
	}
	return nil
}
