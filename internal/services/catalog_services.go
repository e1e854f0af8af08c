package services

import (
	"context"

	"github.com/marian079/crusty-kiosk/internal/model"
)

// CategoryStore and ProductStore are the read-side storage contracts the
// catalog service depends on; both the pgx repositories and the in-memory
// store satisfy them.
type CategoryStore interface {
	ListCategories(ctx context.Context) ([]model.Category, error)
	GetCategory(ctx context.Context, id string) (*model.Category, error)
}

type ProductStore interface {
	ListProducts(ctx context.Context, categoryID string) ([]model.Product, error)
	GetProduct(ctx context.Context, id string) (*model.Product, error)
}

// CatalogService is the read-only façade over categories and products.
type CatalogService struct {
	Categories CategoryStore
	Products   ProductStore
}

func NewCatalogService(cs CategoryStore, ps ProductStore) *CatalogService {
	return &CatalogService{Categories: cs, Products: ps}
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]model.Category, error) {
	return s.Categories.ListCategories(ctx)
}

func (s *CatalogService) GetCategory(ctx context.Context, id string) (*model.Category, error) {
	return s.Categories.GetCategory(ctx, id)
}

// ListProducts returns all products, or only those of one category when
// categoryID is non-empty.
func (s *CatalogService) ListProducts(ctx context.Context, categoryID string) ([]model.Product, error) {
	return s.Products.ListProducts(ctx, categoryID)
}

func (s *CatalogService) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	return s.Products.GetProduct(ctx, id)
}
