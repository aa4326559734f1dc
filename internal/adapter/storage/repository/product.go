package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/mimimart/backend/internal/core/domain"
)

func (r *Repository) ListProductsByIDs(ctx context.Context, ids []int64) (map[int64]domain.Product, error) {
	if len(ids) == 0 {
		return map[int64]domain.Product{}, nil
	}

	statement := r.db.QueryBuilder.
		Select("id", "name", "price", "image_url").
		From("products").
		Where(sq.Eq{"id": ids})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	products := make(map[int64]domain.Product, len(ids))
	for rows.Next() {
		var p domain.Product
		var price string
		err := rows.Scan(&p.ID, &p.Name, &price, &p.ImageURL)
		if err != nil {
			return nil, err
		}
		p.Price, err = domain.NewMoneyFromString(price)
		if err != nil {
			return nil, err
		}
		products[p.ID] = p
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
