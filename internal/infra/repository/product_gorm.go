package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type ProductGormRepository struct {
	db *gorm.DB
}

func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

func (r *ProductGormRepository) FindByID(ctx context.Context, productID int64) (model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).Where("id = ?", productID).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}

func (r *ProductGormRepository) FindNamesByIDs(ctx context.Context, ids []int64) (map[int64]string, error) {
	names := make(map[int64]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	var products []model.Product
	err := r.db.WithContext(ctx).
		Select("id", "nombre").
		Where("id IN ?", ids).
		Find(&products).Error
	if err != nil {
		return nil, err
	}

	for _, p := range products {
		names[p.ID] = p.Name
	}
	return names, nil
}

func (r *ProductGormRepository) List(ctx context.Context, category string) ([]model.Product, error) {
	q := r.db.WithContext(ctx).Model(&model.Product{})
	if category != "" {
		q = q.Where("categoria = ?", category)
	}

	var products []model.Product
	if err := q.Order("id asc").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}
