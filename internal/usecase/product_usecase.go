package usecase

import (
	"context"
	"net/http"

	"app/internal/domain/model"
	"app/internal/repository"
)

type ProductUsecase struct {
	products repository.ProductRepository
}

func NewProductUsecase(products repository.ProductRepository) *ProductUsecase {
	return &ProductUsecase{products: products}
}

type ProductListOutput struct {
	Items []model.Product `json:"items"`
	Total int             `json:"total"`
}

// ListMenu returns the catalog, optionally filtered by categoria.
func (u *ProductUsecase) ListMenu(ctx context.Context, category string) (ProductListOutput, error) {
	items, err := u.products.List(ctx, category)
	if err != nil {
		return ProductListOutput{}, NewHTTPError(http.StatusInternalServerError, "Error al obtener los productos.")
	}
	if items == nil {
		items = []model.Product{}
	}
	return ProductListOutput{Items: items, Total: len(items)}, nil
}
