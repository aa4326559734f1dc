package repository

import (
	"context"
	"encoding/json"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/mimimart/backend/internal/core/domain"
	"github.com/mimimart/backend/internal/core/port"
)

var orderColumns = []string{
	"id", "member_id", "number", "status", "total_amount",
	"receiver_name", "receiver_phone", "shipping_address", "delivery_method", "delivery_note",
	"cancellation_reason", "created_at", "updated_at",
}

// snapshotRecord is the stored form of a product snapshot. Prices are kept as
// strings so the jsonb never loses decimal precision.
type snapshotRecord struct {
	Name  string `json:"name"`
	Price string `json:"price"`
	Image string `json:"image"`
}

// CheckoutOrder commits the whole checkout as one transaction: the order with
// its item snapshots, the pending payment built by newPayment, the
// order-created outbox event and the cart cleanup.
func (r *Repository) CheckoutOrder(ctx context.Context, order *domain.Order, newPayment port.CheckoutPaymentFn) (*domain.Order, *domain.Payment, error) {
	var payment *domain.Payment

	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		if err := r.insertOrderTx(ctx, tx, order); err != nil {
			return err
		}

		built, err := newPayment(order.ID)
		if err != nil {
			return err
		}
		payment, _, err = r.createPaymentIfAbsentTx(ctx, tx, built)
		if err != nil {
			return err
		}

		if err := r.insertOrderEventTx(ctx, tx, order); err != nil {
			return err
		}

		return r.clearCartTx(ctx, tx, order.MemberID)
	})
	if err != nil {
		return nil, nil, translateError(err)
	}

	return order, payment, nil
}

func (r *Repository) GetOrderByNumber(ctx context.Context, number domain.OrderNumber) (*domain.Order, error) {
	order, err := r.getOrderByNumberTx(ctx, r.db, number, false)
	if err != nil {
		return nil, translateError(err)
	}
	return order, nil
}

func (r *Repository) GetOrderByID(ctx context.Context, id int64) (*domain.Order, error) {
	order, err := r.getOrderByIDTx(ctx, r.db, id, false)
	if err != nil {
		return nil, translateError(err)
	}
	return order, nil
}

func (r *Repository) ListOrdersByMember(ctx context.Context, memberID int64) ([]*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"member_id": memberID}).
		OrderBy("created_at DESC")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	orders := make([]*domain.Order, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, order := range orders {
		order.Items, err = r.loadOrderItems(ctx, r.db, order.ID)
		if err != nil {
			return nil, err
		}
	}

	return orders, nil
}

// UpdateOrderByNumber runs fn against the order and its pending payment (nil
// when the order has none) under row locks, then persists whatever fn changed.
func (r *Repository) UpdateOrderByNumber(ctx context.Context, number domain.OrderNumber, fn port.UpdateOrderFn) (*domain.Order, error) {
	var order *domain.Order

	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		var err error
		order, err = r.getOrderByNumberTx(ctx, tx, number, true)
		if err != nil {
			return err
		}

		pending, err := r.getPendingPaymentTx(ctx, tx, order.ID, true)
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return err
		}

		if err := fn(order, pending); err != nil {
			return err
		}

		if err := r.saveOrderTx(ctx, tx, order); err != nil {
			return err
		}
		if pending != nil {
			return r.savePaymentTx(ctx, tx, pending)
		}
		return nil
	})
	if err != nil {
		return nil, translateError(err)
	}

	return order, nil
}

func (r *Repository) insertOrderTx(ctx context.Context, tx pgx.Tx, order *domain.Order) error {
	statement := r.db.QueryBuilder.
		Insert("orders").
		Columns("member_id", "number", "status", "total_amount",
			"receiver_name", "receiver_phone", "shipping_address", "delivery_method", "delivery_note",
			"cancellation_reason", "created_at", "updated_at").
		Values(order.MemberID, order.Number, order.Status, order.TotalAmount.String(),
			order.Delivery.ReceiverName, order.Delivery.ReceiverPhone, order.Delivery.ShippingAddress,
			order.Delivery.Method, order.Delivery.Note,
			order.CancellationReason, order.CreatedAt, order.UpdatedAt).
		Suffix("RETURNING id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	err = tx.QueryRow(ctx, sql, args...).Scan(&order.ID)
	if err != nil {
		return err
	}

	for i := range order.Items {
		item := &order.Items[i]
		snapshot, err := json.Marshal(snapshotRecord{
			Name:  item.Snapshot.Name,
			Price: item.Snapshot.Price.String(),
			Image: item.Snapshot.Image,
		})
		if err != nil {
			return err
		}

		itemSt := r.db.QueryBuilder.
			Insert("order_items").
			Columns("order_id", "product_id", "snapshot", "quantity", "subtotal").
			Values(order.ID, item.ProductID, string(snapshot), item.Quantity, item.Subtotal.String())

		sql, args, err := itemSt.ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			return err
		}
	}

	return nil
}

func (r *Repository) saveOrderTx(ctx context.Context, tx pgx.Tx, order *domain.Order) error {
	statement := r.db.QueryBuilder.
		Update("orders").
		Set("status", order.Status).
		Set("cancellation_reason", order.CancellationReason).
		Set("updated_at", order.UpdatedAt).
		Where(sq.Eq{"id": order.ID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, sql, args...)
	return err
}

func (r *Repository) getOrderByNumberTx(ctx context.Context, q querier, number domain.OrderNumber, forUpdate bool) (*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"number": number})
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

func (r *Repository) loadOrderItems(ctx context.Context, q querier, orderID int64) ([]domain.OrderItem, error) {
	statement := r.db.QueryBuilder.
		Select("product_id", "snapshot", "quantity", "subtotal").
		From("order_items").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]domain.OrderItem, 0)
	for rows.Next() {
		var item domain.OrderItem
		var snapshot []byte
		var subtotal string
		if err := rows.Scan(&item.ProductID, &snapshot, &item.Quantity, &subtotal); err != nil {
			return nil, err
		}

		var rec snapshotRecord
		if err := json.Unmarshal(snapshot, &rec); err != nil {
			return nil, err
		}
		price, err := domain.NewMoneyFromString(rec.Price)
		if err != nil {
			return nil, err
		}
		item.Snapshot = domain.ProductSnapshot{Name: rec.Name, Price: price, Image: rec.Image}

		item.Subtotal, err = domain.NewMoneyFromString(subtotal)
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var order domain.Order
	var number, total string

	err := row.Scan(
		&order.ID,
		&order.MemberID,
		&number,
		&order.Status,
		&total,
		&order.Delivery.ReceiverName,
		&order.Delivery.ReceiverPhone,
		&order.Delivery.ShippingAddress,
		&order.Delivery.Method,
		&order.Delivery.Note,
		&order.CancellationReason,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	order.Number, err = domain.ParseOrderNumber(number)
	if err != nil {
		return nil, err
	}
	order.TotalAmount, err = domain.NewMoneyFromString(total)
	if err != nil {
		return nil, err
	}

	return &order, nil
}
