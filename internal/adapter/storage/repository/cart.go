package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/mimimart/backend/internal/core/domain"
)

func (r *Repository) GetCart(ctx context.Context, memberID int64) (*domain.Cart, error) {
	statement := r.db.QueryBuilder.
		Select("product_id", "quantity").
		From("cart_items").
		Where(sq.Eq{"member_id": memberID}).
		OrderBy("product_id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	items := make([]domain.CartItem, 0)
	for rows.Next() {
		var item domain.CartItem
		if err := rows.Scan(&item.ProductID, &item.Quantity); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return domain.ReconstructCart(memberID, items)
}

func (r *Repository) UpsertCartItem(ctx context.Context, memberID int64, item domain.CartItem) error {
	statement := r.db.QueryBuilder.
		Insert("cart_items").
		Columns("member_id", "product_id", "quantity").
		Values(memberID, item.ProductID, item.Quantity).
		Suffix("ON CONFLICT (member_id, product_id) DO UPDATE SET quantity = EXCLUDED.quantity")

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	if err != nil {
		return translateError(err)
	}
	return nil
}

func (r *Repository) RemoveCartItem(ctx context.Context, memberID int64, productID int64) error {
	statement := r.db.QueryBuilder.
		Delete("cart_items").
		Where(sq.Eq{"member_id": memberID, "product_id": productID})

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

// ReplaceCart swaps the member's stored cart for the given one atomically.
// Used by the guest-cart merge, where partial writes would lose lines.
func (r *Repository) ReplaceCart(ctx context.Context, cart *domain.Cart) error {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		if err := r.clearCartTx(ctx, tx, cart.MemberID); err != nil {
			return err
		}
		for _, item := range cart.Items() {
			statement := r.db.QueryBuilder.
				Insert("cart_items").
				Columns("member_id", "product_id", "quantity").
				Values(cart.MemberID, item.ProductID, item.Quantity)

			sql, args, err := statement.ToSql()
			if err != nil {
				return err
			}
			if _, err := tx.Exec(ctx, sql, args...); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return translateError(err)
	}
	return nil
}

func (r *Repository) ClearCart(ctx context.Context, memberID int64) error {
	err := r.clearCartTx(ctx, r.db, memberID)
	if err != nil {
		return translateError(err)
	}
	return nil
}

func (r *Repository) clearCartTx(ctx context.Context, q querier, memberID int64) error {
	statement := r.db.QueryBuilder.
		Delete("cart_items").
		Where(sq.Eq{"member_id": memberID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	_, err = q.Exec(ctx, sql, args...)
	return err
}
