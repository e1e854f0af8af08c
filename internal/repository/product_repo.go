package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/marian079/crusty-kiosk/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProductRepository struct {
	DB *pgxpool.Pool
}

func NewProductRepository(db *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{DB: db}
}

// ListProducts returns every product, or only those in the given category
// when categoryID is non-empty.
func (r *ProductRepository) ListProducts(ctx context.Context, categoryID string) ([]model.Product, error) {
	query := `SELECT id, name, description, price::text, category_id, image_url FROM products`
	args := []any{}
	if categoryID != "" {
		query += ` WHERE category_id=$1`
		args = append(args, categoryID)
	}
	query += ` ORDER BY id`

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var out []model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.CategoryID, &p.ImageURL); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// UpdateProduct replaces a product's display fields. Order items keep the
// name and price snapshotted at order time.
func (r *ProductRepository) UpdateProduct(ctx context.Context, p model.Product) error {
	query := `UPDATE products SET name=$1, description=$2, price=$3, category_id=$4, image_url=$5 WHERE id=$6`
	tag, err := r.DB.Exec(ctx, query, p.Name, p.Description, p.Price, p.CategoryID, p.ImageURL, p.ID)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ProductRepository) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	var p model.Product
	query := `SELECT id, name, description, price::text, category_id, image_url FROM products WHERE id=$1`
	if err := r.DB.QueryRow(ctx, query, id).Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.CategoryID, &p.ImageURL); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}
