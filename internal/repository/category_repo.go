package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/marian079/crusty-kiosk/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CategoryRepository struct {
	DB *pgxpool.Pool
}

func NewCategoryRepository(db *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

func (r *CategoryRepository) ListCategories(ctx context.Context) ([]model.Category, error) {
	query := `SELECT id, name, icon FROM categories ORDER BY id`
	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var out []model.Category
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Icon); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *CategoryRepository) GetCategory(ctx context.Context, id string) (*model.Category, error) {
	var c model.Category
	query := `SELECT id, name, icon FROM categories WHERE id=$1`
	if err := r.DB.QueryRow(ctx, query, id).Scan(&c.ID, &c.Name, &c.Icon); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}
