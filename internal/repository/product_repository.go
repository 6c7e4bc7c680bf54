package repository

import (
	"context"

	"app/internal/domain/model"
)

type ProductRepository interface {
	FindByID(ctx context.Context, productID int64) (model.Product, error)
	// FindNamesByIDs returns a producto id -> nombre map for the given ids.
	// Missing ids are simply absent from the map.
	FindNamesByIDs(ctx context.Context, ids []int64) (map[int64]string, error)
	// List returns the catalog, optionally filtered by category.
	List(ctx context.Context, category string) ([]model.Product, error)
}
