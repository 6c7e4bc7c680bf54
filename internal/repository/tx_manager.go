package repository

import "context"

// TxRepos is the set of repositories bound to one open transaction.
type TxRepos interface {
	Users() UserRepository
	Orders() OrderRepository
	OrderLines() OrderLineRepository
	Products() ProductRepository
}

// TransactionManager hides begin/commit/rollback from the usecases.
// If fn returns an error the whole transaction is rolled back.
type TransactionManager interface {
	WithinTx(ctx context.Context, fn func(r TxRepos) error) error
}
