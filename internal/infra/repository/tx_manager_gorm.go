package repository

import (
	"context"

	"gorm.io/gorm"

	repo "app/internal/repository"
)

type txReposGorm struct {
	users      repo.UserRepository
	orders     repo.OrderRepository
	orderLines repo.OrderLineRepository
	products   repo.ProductRepository
}

func (r *txReposGorm) Users() repo.UserRepository           { return r.users }
func (r *txReposGorm) Orders() repo.OrderRepository         { return r.orders }
func (r *txReposGorm) OrderLines() repo.OrderLineRepository { return r.orderLines }
func (r *txReposGorm) Products() repo.ProductRepository     { return r.products }

type TxManagerGorm struct {
	db *gorm.DB
}

func NewTxManagerGorm(db *gorm.DB) *TxManagerGorm {
	return &TxManagerGorm{db: db}
}

func (tm *TxManagerGorm) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// rebuild the repos on the tx handle
		r := &txReposGorm{
			users:      NewUserGormRepository(tx),
			orders:     NewOrderGormRepository(tx),
			orderLines: NewOrderLineGormRepository(tx),
			products:   NewProductGormRepository(tx),
		}
		return fn(r)
	})
}
